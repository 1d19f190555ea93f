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

package pdfnav

import (
	"html"
	"strings"
)

// LinkElement is a hyperlink in the user interface, for example an HTML
// anchor element.
type LinkElement interface {
	SetHref(url string)
	SetRel(rel string)
	SetTarget(target string)
}

// AddLinkAttributes sets the address, rel and target attributes of a link
// which points outside the document.  The url is used as given.
//
// If newWindow is true, the target is "_blank".  Otherwise the configured
// target is used, or no target at all.
func (s *LinkService) AddLinkAttributes(link LinkElement, url string, newWindow bool) {
	link.SetHref(url)
	link.SetRel(s.ExternalLinkRel())
	if newWindow {
		link.SetTarget("_blank")
	} else {
		link.SetTarget(s.ExternalLinkTarget())
	}
}

// Anchor is a LinkElement which records the attributes.
type Anchor struct {
	Href   string
	Rel    string
	Target string
}

var _ LinkElement = (*Anchor)(nil)

// SetHref implements the [LinkElement] interface.
func (a *Anchor) SetHref(url string) { a.Href = url }

// SetRel implements the [LinkElement] interface.
func (a *Anchor) SetRel(rel string) { a.Rel = rel }

// SetTarget implements the [LinkElement] interface.
func (a *Anchor) SetTarget(target string) { a.Target = target }

// HTML returns the opening tag of an HTML anchor element with the recorded
// attributes.  Empty attributes are omitted.
func (a *Anchor) HTML() string {
	b := &strings.Builder{}
	b.WriteString("<a")
	for _, attr := range [][2]string{
		{"href", a.Href},
		{"rel", a.Rel},
		{"target", a.Target},
	} {
		if attr[1] == "" {
			continue
		}
		b.WriteString(" " + attr[0] + `="`)
		b.WriteString(html.EscapeString(attr[1]))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	return b.String()
}
