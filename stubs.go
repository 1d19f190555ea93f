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

import "seehuhn.de/go/pdf"

// The methods in this file are part of the interface which viewer widgets
// expect from a link service.  The LinkService has no history, no URL
// fragments, no page cache and no optional content, so they do nothing.

// Rotation always returns 0.
func (s *LinkService) Rotation() int { return 0 }

// SetRotation does nothing.
func (s *LinkService) SetRotation(int) {}

// SetHistory does nothing.
func (s *LinkService) SetHistory(any) {}

// DestinationHash returns "#".
func (s *LinkService) DestinationHash(Destination) string { return "#" }

// AnchorURL returns "#".
func (s *LinkService) AnchorURL(string) string { return "#" }

// SetHash does nothing.
func (s *LinkService) SetHash(string) {}

// ExecuteNamedAction does nothing.
//
// PDF 2.0 section: 12.6.4.11
func (s *LinkService) ExecuteNamedAction(pdf.Name) {}

// ExecuteSetOCGState does nothing.
//
// PDF 2.0 section: 12.6.4.13
func (s *LinkService) ExecuteSetOCGState(pdf.Dict) {}

// CachePageRef does nothing.
func (s *LinkService) CachePageRef(pageNumber int, ref pdf.Reference) {}

// IsPageVisible returns true.
func (s *LinkService) IsPageVisible(pageNumber int) bool { return true }

// IsPageCached returns true.
func (s *LinkService) IsPageCached(pageNumber int) bool { return true }
