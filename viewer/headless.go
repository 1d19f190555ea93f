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

// Package viewer implements a viewer without a display.
//
// A [Headless] viewer keeps track of the current page and passes scroll
// requests on to a callback.  This is useful for command line tools and for
// testing code which uses a [pdfnav.LinkService].
package viewer

import (
	"sync"

	"go.uber.org/atomic"

	"seehuhn.de/go/pdfnav"
)

// Headless is a [pdfnav.Viewer] without a display.
type Headless struct {
	// OnScroll, if not nil, is called for every scroll request, after the
	// current page has been updated.
	OnScroll func(t pdfnav.Target)

	page atomic.Int64

	mu    sync.Mutex
	last  *pdfnav.Target
	count int
}

var _ pdfnav.Viewer = (*Headless)(nil)

// CurrentPageNumber returns the current page number.
// Before the first scroll request, this is 0.
func (v *Headless) CurrentPageNumber() int {
	return int(v.page.Load())
}

// SetCurrentPageNumber sets the current page number.
func (v *Headless) SetCurrentPageNumber(pageNumber int) {
	v.page.Store(int64(pageNumber))
}

// ScrollPageIntoView implements the [pdfnav.Viewer] interface.
func (v *Headless) ScrollPageIntoView(t pdfnav.Target) {
	v.page.Store(int64(t.PageNumber))

	v.mu.Lock()
	v.last = &t
	v.count++
	v.mu.Unlock()

	if v.OnScroll != nil {
		v.OnScroll(t)
	}
}

// Last returns the most recent scroll request, or nil if there was none.
func (v *Headless) Last() *pdfnav.Target {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.last == nil {
		return nil
	}
	t := *v.last
	return &t
}

// Count returns the number of scroll requests received so far.
func (v *Headless) Count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.count
}
