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

// Package pdfnav connects a PDF document to a viewer widget.
//
// A [LinkService] resolves destinations to pages and asks the viewer to
// scroll to them.  Destinations can be given in three forms:
//
//   - [Named]: a key into the document's named destinations
//   - [Explicit]: a destination array, as found in link annotations
//   - [Pending]: a function which supplies the destination array later
//
// The page of an explicit destination is either an indirect reference to
// a page dictionary ([PageObject]), which must be looked up in the
// document, or a page index ([PageIndex]).
//
// The service also computes the attributes of hyperlinks to locations
// outside the document, see [LinkService.AddLinkAttributes].
//
// The document and the viewer are supplied by the caller through the
// [Document] and [Viewer] interfaces.  The sub-package pdfdoc implements
// Document for PDF files read with seehuhn.de/go/pdf, the sub-package
// viewer contains a simple Viewer.
package pdfnav
