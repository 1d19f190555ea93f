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
	"errors"
	"sync"

	"seehuhn.de/go/pdf"
)

// fakeDoc is a Document with a fixed table of named destinations.
type fakeDoc struct {
	pages int
	dests map[string]pdf.Object
	refs  map[pdf.Reference]int

	// block, if not nil, delays lookups until it is closed.
	block chan struct{}

	mu      sync.Mutex
	lookups []string
}

var errFakeLookup = errors.New("lookup failed")

func (d *fakeDoc) NumPages() int {
	return d.pages
}

func (d *fakeDoc) Destination(ctx context.Context, name string) (pdf.Object, error) {
	d.mu.Lock()
	d.lookups = append(d.lookups, name)
	d.mu.Unlock()

	if d.block != nil {
		select {
		case <-d.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if name == "error" {
		return nil, errFakeLookup
	}
	return d.dests[name], nil
}

func (d *fakeDoc) PageIndex(ctx context.Context, ref pdf.Reference) (int, error) {
	idx, ok := d.refs[ref]
	if !ok {
		return 0, errFakeLookup
	}
	return idx, nil
}

// fakeViewer records all scroll requests.
type fakeViewer struct {
	mu       sync.Mutex
	page     int
	requests []Target
	done     chan Target
}

func (v *fakeViewer) CurrentPageNumber() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

func (v *fakeViewer) SetCurrentPageNumber(pageNumber int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = pageNumber
}

func (v *fakeViewer) ScrollPageIntoView(t Target) {
	v.mu.Lock()
	v.page = t.PageNumber
	v.requests = append(v.requests, t)
	v.mu.Unlock()

	if v.done != nil {
		v.done <- t
	}
}

func (v *fakeViewer) calls() []Target {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Target(nil), v.requests...)
}

var (
	ref1 = pdf.NewReference(1, 0)
	ref2 = pdf.NewReference(2, 0)
	ref9 = pdf.NewReference(9, 0)
)

// newTestService returns a service bound to a document with 10 pages and a
// few named destinations.
func newTestService() (*LinkService, *fakeDoc, *fakeViewer) {
	doc := &fakeDoc{
		pages: 10,
		dests: map[string]pdf.Object{
			"chapter":   pdf.Array{ref2, pdf.Name("XYZ"), pdf.Integer(0), pdf.Integer(792), nil},
			"index":     pdf.Array{pdf.Integer(5), pdf.Name("Fit")},
			"dict":      pdf.Dict{"D": pdf.Array{ref1, pdf.Name("Fit")}},
			"broken":    pdf.Array{ref9, pdf.Name("Fit")},
			"far":       pdf.Array{pdf.Integer(10), pdf.Name("Fit")},
			"negative":  pdf.Array{pdf.Integer(-1), pdf.Name("Fit")},
			"empty":     pdf.Array{},
			"name-page": pdf.Array{pdf.Name("first"), pdf.Name("Fit")},
		},
		refs: map[pdf.Reference]int{
			ref1: 0,
			ref2: 3,
		},
	}
	v := &fakeViewer{}

	s := New(nil)
	s.SetDocument(doc)
	s.SetViewer(v)
	return s, doc, v
}
