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

// Document gives access to the parts of a PDF document which are needed for
// navigation.  The package pdfnav/pdfdoc implements this interface for
// PDF files.
type Document interface {
	// NumPages returns the number of pages in the document.
	NumPages() int

	// Destination looks up a named destination.  If the name is not
	// defined, the method returns (nil, nil).
	Destination(ctx context.Context, name string) (pdf.Object, error)

	// PageIndex returns the zero-based index of the page with the given
	// page dictionary.
	PageIndex(ctx context.Context, ref pdf.Reference) (int, error)
}

// Viewer is the widget which displays the document.
type Viewer interface {
	CurrentPageNumber() int
	SetCurrentPageNumber(pageNumber int)

	// ScrollPageIntoView makes the given page visible.  If t.Dest is not
	// nil, the view parameters of the destination should be applied.
	ScrollPageIntoView(t Target)
}
