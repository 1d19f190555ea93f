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
	"context"

	"seehuhn.de/go/pdf"
)

// Destination is a target location within a document.
//
// The three implementations are [Named], [Explicit] and [Pending].
type Destination interface {
	isDestination()
}

// Named refers to an entry in the document's table of named destinations.
type Named string

// Explicit is an explicit destination array.  The first element is the
// page reference, the remaining elements describe the view and are passed
// on to the viewer unchanged.
//
// PDF 2.0 section: 12.3.2.2
type Explicit pdf.Array

// Pending is a destination which is not known yet.  The function is called
// once per navigation request and must return the destination array.  A
// result which is not a [pdf.Array] is reported as an invalid destination.
type Pending func(ctx context.Context) (pdf.Object, error)

func (Named) isDestination()    {}
func (Explicit) isDestination() {}
func (Pending) isDestination()  {}

// PageRef identifies the page of an explicit destination.
//
// The two implementations are [PageObject] and [PageIndex].
type PageRef interface {
	isPageRef()
}

// PageObject is an indirect reference to a page dictionary.  It can only be
// converted to a page index by the document which contains the page.
type PageObject pdf.Reference

// PageIndex is a zero-based page index.  Destinations of remote go-to
// actions use this form.
type PageIndex int

func (PageObject) isPageRef() {}
func (PageIndex) isPageRef()  {}

// GetPageRef returns the page reference at the start of an explicit
// destination.  The error is [ErrInvalidDestRef] if the array is empty or if
// the first element is neither a reference nor an integer.
func GetPageRef(dest Explicit) (PageRef, error) {
	if len(dest) == 0 {
		return nil, ErrInvalidDestRef
	}
	switch ref := dest[0].(type) {
	case pdf.Reference:
		return PageObject(ref), nil
	case pdf.Integer:
		return PageIndex(ref), nil
	default:
		return nil, ErrInvalidDestRef
	}
}

// Target is a fully resolved destination.
type Target struct {
	// Dest is the explicit destination array, or nil when navigating to a
	// page without a specific view.
	Dest Explicit

	// PageIndex is the zero-based index of the target page.
	PageIndex int

	// PageNumber is PageIndex+1.
	PageNumber int
}
