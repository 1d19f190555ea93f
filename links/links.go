// seehuhn.de/go/pdfnav - navigation support for PDF viewers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package links reads the link annotations of PDF pages and carries out
// the corresponding actions through a [pdfnav.LinkService].
package links

import (
	"context"
	"errors"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/action"
	"seehuhn.de/go/pdf/destination"
	"seehuhn.de/go/pdf/file"

	"seehuhn.de/go/pdfnav"
	"seehuhn.de/go/pdfnav/view"
)

// Kind says what happens when a link is activated.
type Kind int

// These are the supported kinds of links.
const (
	// Internal links go to a destination in the same document.
	Internal Kind = iota + 1

	// External links point to a URL or to another file.
	External

	// NamedAction links execute a named action, like "NextPage".
	NamedAction

	// SetOCGState links change the visibility of optional content.
	SetOCGState

	// Unsupported links use an action which is not implemented here.
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case Internal:
		return "internal"
	case External:
		return "external"
	case NamedAction:
		return "named action"
	case SetOCGState:
		return "set OCG state"
	case Unsupported:
		return "unsupported"
	default:
		return "invalid"
	}
}

// Link is a link annotation.
//
// PDF 2.0 section: 12.5.6.5
type Link struct {
	// Rect is the active area of the link, in default user space.
	Rect rect.Rect

	Kind Kind

	// Dest is the target of an internal link.
	Dest pdfnav.Destination

	// URL is the address of an external link.  For links to other files,
	// this is the file name.
	URL string

	// NewWindow is set for links to other files which ask to be opened in a
	// new window.
	NewWindow bool

	// Action is the action name of a NamedAction link, or the action type
	// of an Unsupported link.
	Action pdf.Name

	// State is the action dictionary of a SetOCGState link.
	State pdf.Dict
}

// Contains reports whether the point (x, y) lies in the active area of the
// link.
func (l *Link) Contains(x, y float64) bool {
	return x >= l.Rect.LLx && x <= l.Rect.URx && y >= l.Rect.LLy && y <= l.Rect.URy
}

// Extract returns the link annotations of a page.  Annotations of other
// types are skipped.  Malformed link annotations are skipped as well, but an
// unreadable /Annots array is an error.
func Extract(r pdf.Getter, page pdf.Object) ([]*Link, error) {
	pageDict, err := pdf.GetDict(r, page)
	if err != nil {
		return nil, err
	}
	annots, err := pdf.GetArray(r, pageDict["Annots"])
	if err != nil {
		return nil, err
	}

	var res []*Link
	for _, obj := range annots {
		dict, err := pdf.GetDict(r, obj)
		if err != nil || dict == nil {
			continue
		}
		if tp, _ := pdf.GetName(r, dict["Subtype"]); tp != "Link" {
			continue
		}
		l, err := decodeLink(r, dict)
		if err != nil {
			continue
		}
		res = append(res, l)
	}
	return res, nil
}

func decodeLink(r pdf.Getter, dict pdf.Dict) (*Link, error) {
	l := &Link{}

	box, err := getRect(r, dict["Rect"])
	if err != nil {
		return nil, err
	}
	l.Rect = box

	x := pdf.NewExtractor(r)

	// /Dest and /A are mutually exclusive; /Dest wins if both are present.
	if dict["Dest"] != nil {
		dest, err := convertDest(x, dict["Dest"])
		if err != nil {
			return nil, err
		}
		l.Kind = Internal
		l.Dest = dest
		return l, nil
	}

	actDict, err := pdf.GetDict(r, dict["A"])
	if err != nil {
		return nil, err
	} else if actDict == nil {
		return nil, errNoAction
	}
	tp, err := pdf.GetName(r, actDict["S"])
	if err != nil {
		return nil, err
	}

	a, err := action.Decode(x, actDict)
	if err != nil {
		if supported[tp] {
			return nil, err
		}
		l.Kind = Unsupported
		l.Action = tp
		return l, nil
	}

	switch a := a.(type) {
	case *action.GoTo:
		if a.Dest == nil {
			return nil, errInvalidDest
		}
		dest, err := view.Convert(a.Dest)
		if err != nil {
			return nil, err
		}
		l.Kind = Internal
		l.Dest = dest
	case *action.URI:
		l.Kind = External
		l.URL = a.URI
	case *action.GoToR:
		name, err := fileName(a.F)
		if err != nil {
			return nil, err
		}
		l.Kind = External
		l.URL = name
		l.NewWindow = a.NewWindow == action.NewWindowNew
	case *action.Launch:
		name, err := fileName(a.F)
		if err != nil {
			return nil, err
		}
		l.Kind = External
		l.URL = name
		l.NewWindow = a.NewWindow == action.NewWindowNew
	case *action.Named:
		l.Kind = NamedAction
		l.Action = pdf.Name(a.N)
	case *action.SetOCGState:
		l.Kind = SetOCGState
		l.State = actDict
	default:
		l.Kind = Unsupported
		l.Action = tp
	}
	return l, nil
}

// supported lists the action types which [Activate] can carry out.
// Links using one of these types are only kept if the action is valid.
var supported = map[pdf.Name]bool{
	"GoTo":        true,
	"GoToR":       true,
	"Launch":      true,
	"URI":         true,
	"Named":       true,
	"SetOCGState": true,
}

// Destination converts the destination of a link annotation or a go-to
// action.  Names and strings are named destinations, arrays are explicit
// destinations.  Dictionaries with a /D entry are unwrapped.
//
// PDF 2.0 section: 12.3.2
func Destination(r pdf.Getter, obj pdf.Object) (pdfnav.Destination, error) {
	return convertDest(pdf.NewExtractor(r), obj)
}

func convertDest(x *pdf.Extractor, obj pdf.Object) (pdfnav.Destination, error) {
	d, err := destination.Decode(x, obj)
	if err != nil {
		return nil, err
	} else if d == nil {
		return nil, errInvalidDest
	}
	return view.Convert(d)
}

// Activate carries out the action of a link.
//
// Internal links make s scroll the viewer to the destination.  For
// external links, the method returns an anchor with the attributes of the
// hyperlink, or nil if s has external links disabled.  The remaining kinds
// are passed on to s.
func Activate(ctx context.Context, s *pdfnav.LinkService, l *Link) (*pdfnav.Anchor, error) {
	switch l.Kind {
	case Internal:
		return nil, s.GoToDestination(ctx, l.Dest)
	case External:
		if !s.ExternalLinkEnabled() {
			return nil, nil
		}
		a := &pdfnav.Anchor{}
		s.AddLinkAttributes(a, l.URL, l.NewWindow)
		return a, nil
	case NamedAction:
		s.ExecuteNamedAction(l.Action)
	case SetOCGState:
		s.ExecuteSetOCGState(l.State)
	}
	return nil, nil
}

func getRect(r pdf.Getter, obj pdf.Object) (rect.Rect, error) {
	arr, err := pdf.GetArray(r, obj)
	if err != nil {
		return rect.Rect{}, err
	} else if len(arr) != 4 {
		return rect.Rect{}, errInvalidRect
	}

	var x [4]float64
	for i, elem := range arr {
		v, err := pdf.GetNumber(r, elem)
		if err != nil {
			return rect.Rect{}, err
		}
		x[i] = float64(v)
	}

	// The corners can be given in any order.
	return rect.Rect{
		LLx: math.Min(x[0], x[2]),
		LLy: math.Min(x[1], x[3]),
		URx: math.Max(x[0], x[2]),
		URy: math.Max(x[1], x[3]),
	}, nil
}

// fileName returns the name of the file described by a file specification.
// The Unicode name is preferred.
func fileName(fs *file.Specification) (string, error) {
	switch {
	case fs == nil:
		return "", errInvalidFile
	case fs.FileNameUnicode != "":
		return fs.FileNameUnicode, nil
	case fs.FileName != "":
		return fs.FileName, nil
	default:
		return "", errInvalidFile
	}
}

var (
	errNoAction    = errors.New("link without action")
	errInvalidDest = errors.New("invalid destination")
	errInvalidRect = errors.New("invalid link rectangle")
	errInvalidFile = errors.New("invalid file specification")
)
