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

// Package view converts between the destination types of
// seehuhn.de/go/pdf/destination and the destinations used by a
// [pdfnav.LinkService].
//
// The link service treats the view parameters of an explicit destination as
// opaque.  Viewers which want to apply them, and tools which display them,
// can decode them with [Decode].
//
// PDF 2.0 section: 12.3.2
package view

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/destination"

	"seehuhn.de/go/pdfnav"
)

// Decode returns the destination described by an explicit destination
// array.  If dest contains references, r is used to resolve them.
func Decode(r pdf.Getter, dest pdfnav.Explicit) (destination.Destination, error) {
	if len(dest) == 0 {
		return nil, errEmpty
	}
	return destination.Decode(pdf.NewExtractor(r), pdf.Array(dest))
}

// Convert turns a decoded destination into a destination for a
// [pdfnav.LinkService].  Named destinations become [pdfnav.Named], all
// other types become [pdfnav.Explicit].
func Convert(d destination.Destination) (pdfnav.Destination, error) {
	if named, ok := d.(*destination.Named); ok {
		return pdfnav.Named(named.Name), nil
	}
	return Make(d)
}

// Make returns the explicit destination array for d.
// Parameters which are [destination.Unset] are written as null.
func Make(d destination.Destination) (pdfnav.Explicit, error) {
	page, params, ok := explicit(d)
	if !ok {
		return nil, errNotExplicit
	}

	res := pdfnav.Explicit{page, pdf.Name(d.DestinationType())}
	for _, x := range params {
		if math.IsNaN(x) {
			res = append(res, nil)
		} else {
			res = append(res, pdf.Number(x))
		}
	}
	return res, nil
}

// Format returns a short description of the view of d, in PDF syntax.
// For example, "XYZ 0 720 null".  The page is not included.
func Format(d destination.Destination) string {
	if named, ok := d.(*destination.Named); ok {
		return "named " + strconv.Quote(string(named.Name))
	}
	_, params, ok := explicit(d)
	if !ok {
		return "invalid"
	}

	parts := []string{string(d.DestinationType())}
	for _, x := range params {
		if math.IsNaN(x) {
			parts = append(parts, "null")
		} else {
			parts = append(parts, strconv.FormatFloat(x, 'f', -1, 64))
		}
	}
	return strings.Join(parts, " ")
}

// explicit returns the page and the parameters of an explicit destination,
// in the order used in the PDF file.
func explicit(d destination.Destination) (pdf.Object, []float64, bool) {
	switch d := d.(type) {
	case *destination.XYZ:
		return d.Page, []float64{d.Left, d.Top, d.Zoom}, true
	case *destination.Fit:
		return d.Page, nil, true
	case *destination.FitH:
		return d.Page, []float64{d.Top}, true
	case *destination.FitV:
		return d.Page, []float64{d.Left}, true
	case *destination.FitR:
		return d.Page, []float64{d.Left, d.Bottom, d.Right, d.Top}, true
	case *destination.FitB:
		return d.Page, nil, true
	case *destination.FitBH:
		return d.Page, []float64{d.Top}, true
	case *destination.FitBV:
		return d.Page, []float64{d.Left}, true
	default:
		return nil, nil, false
	}
}

var (
	errEmpty       = &pdf.MalformedFileError{Err: errors.New("empty destination array")}
	errNotExplicit = errors.New("not an explicit destination")
)
