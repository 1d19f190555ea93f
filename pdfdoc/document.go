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

// Package pdfdoc implements the [pdfnav.Document] interface for PDF files.
//
// The page tree is read once, when the Document is created.  Named
// destinations are looked up on demand, first in the /Dests dictionary of
// the document catalog (PDF 1.1) and then in the /Dests name tree of the
// document's name dictionary (PDF 1.2).
package pdfdoc

import (
	"context"
	"errors"
	"fmt"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdfnav"
)

// Document gives access to the pages and named destinations of a PDF file.
type Document struct {
	r pdf.Getter

	pages []pdf.Reference
	index map[pdf.Reference]int
}

var _ pdfnav.Document = (*Document)(nil)

// New reads the page tree of r.
func New(r pdf.Getter) (*Document, error) {
	pages, err := findPages(r)
	if err != nil {
		return nil, err
	}

	index := make(map[pdf.Reference]int, len(pages))
	for i, ref := range pages {
		if ref == 0 {
			continue
		}
		if _, dup := index[ref]; !dup {
			index[ref] = i
		}
	}

	d := &Document{
		r:     r,
		pages: pages,
		index: index,
	}
	return d, nil
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return len(d.pages)
}

// PageRef returns the reference to the page dictionary of the page with
// the given zero-based index.  If the page dictionary is stored as a direct
// object, or if the index is out of range, the method returns 0.
func (d *Document) PageRef(pageIndex int) pdf.Reference {
	if pageIndex < 0 || pageIndex >= len(d.pages) {
		return 0
	}
	return d.pages[pageIndex]
}

// PageIndex returns the zero-based index of the page with page dictionary
// ref.  If ref does not point to a page of this document, the error
// is [ErrUnknownPage].
func (d *Document) PageIndex(ctx context.Context, ref pdf.Reference) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	idx, ok := d.index[ref]
	if !ok {
		return 0, fmt.Errorf("%s: %w", ref, ErrUnknownPage)
	}
	return idx, nil
}

// Destination looks up the named destination with the given name.  The
// result is the explicit destination array, or nil if the name is not
// defined.
//
// PDF 2.0 section: 12.3.2.4
func (d *Document) Destination(ctx context.Context, name string) (pdf.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	catalog := d.r.GetMeta().Catalog

	// PDF 1.1: a dictionary, keyed by names
	dests, err := pdf.GetDict(d.r, catalog.Dests)
	if err != nil {
		return nil, err
	}
	if obj, ok := dests[pdf.Name(name)]; ok {
		return d.unwrap(obj)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// PDF 1.2: a name tree, keyed by strings
	root, err := d.destsTree()
	if err != nil || root == nil {
		return nil, err
	}
	obj, err := d.lookupInNode(root, pdf.String(name), 0)
	if errors.Is(err, errNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return d.unwrap(obj)
}

// unwrap resolves a named destination value.  The value is either an
// explicit destination array, or a dictionary with the array in its
// /D entry.
func (d *Document) unwrap(obj pdf.Object) (pdf.Object, error) {
	obj, err := pdf.Resolve(d.r, obj)
	if err != nil {
		return nil, err
	}
	if dict, ok := obj.(pdf.Dict); ok {
		return pdf.Resolve(d.r, dict["D"])
	}
	return obj, nil
}

func (d *Document) destsTree() (pdf.Dict, error) {
	names, err := pdf.GetDict(d.r, d.r.GetMeta().Catalog.Names)
	if err != nil || names == nil {
		return nil, err
	}
	return pdf.GetDict(d.r, names["Dests"])
}

var (
	// ErrUnknownPage indicates that a reference does not point to a page of
	// the document.
	ErrUnknownPage = errors.New("not a page of this document")

	errNotFound        = errors.New("name not found")
	errInvalidPageTree = errors.New("invalid page tree")
	errTreeTooDeep     = errors.New("name tree too deep")
)
