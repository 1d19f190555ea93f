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

// Package testpdf writes a small PDF file with named destinations and
// link annotations, for use in tests.
package testpdf

import (
	"bytes"
	"testing"

	"seehuhn.de/go/pdf"
)

// NumPages is the number of pages in the test document.
const NumPages = 5

// Doc is the test document, after it has been written and read back.
type Doc struct {
	// R reads the document.
	R *pdf.Reader

	// Data is the PDF file.
	Data []byte

	// Pages are the page dictionaries, in page order.
	Pages []pdf.Reference

	// NotAPage is a reference to an object which is not a page.
	NotAPage pdf.Reference
}

// The named destinations of the test document, and the page index each
// one points to.  Names mapped to -1 cannot be resolved.
var Dests = map[string]int{
	"intro":   0, // catalog /Dests, plain array
	"wrapped": 1, // catalog /Dests, dictionary with /D
	"chap1":   2, // name tree, first leaf
	"chap2":   3, // name tree, first leaf, indirect value
	"chap3":   -1,
	"zeta":    4, // name tree, page index instead of reference
}

// Write creates the test document.
//
// The page tree has two levels.  The first page carries seven
// annotations: six links and one text annotation.
func Write(t testing.TB) *Doc {
	t.Helper()

	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, pdf.V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}

	put := func(ref pdf.Reference, obj pdf.Object) {
		t.Helper()
		if err := w.Put(ref, obj); err != nil {
			t.Fatal(err)
		}
	}

	root := w.Alloc()
	nodeA := w.Alloc()
	nodeB := w.Alloc()
	pages := make([]pdf.Reference, NumPages)
	for i := range pages {
		pages[i] = w.Alloc()
	}
	mediaBox := pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Integer(595), pdf.Integer(842)}

	put(root, pdf.Dict{
		"Type":     pdf.Name("Pages"),
		"Kids":     pdf.Array{nodeA, pages[2], nodeB},
		"Count":    pdf.Integer(NumPages),
		"MediaBox": mediaBox,
	})
	put(nodeA, pdf.Dict{
		"Type":   pdf.Name("Pages"),
		"Parent": root,
		"Kids":   pdf.Array{pages[0], pages[1]},
		"Count":  pdf.Integer(2),
	})
	put(nodeB, pdf.Dict{
		"Type":   pdf.Name("Pages"),
		"Parent": root,
		"Kids":   pdf.Array{pages[3], pages[4]},
		"Count":  pdf.Integer(2),
	})

	// annotations of the first page
	notAPage := w.Alloc()
	put(notAPage, pdf.Dict{"Type": pdf.Name("Font")})

	rect := func(llx, lly float64) pdf.Array {
		return pdf.Array{pdf.Number(llx), pdf.Number(lly), pdf.Number(llx + 100), pdf.Number(lly + 20)}
	}
	uriAction := w.Alloc()
	put(uriAction, pdf.Dict{
		"S":   pdf.Name("URI"),
		"URI": pdf.String("https://example.com/?a=1&b=2"),
	})
	annots := pdf.Array{
		pdf.Dict{ // 0: named destination via /Dest
			"Subtype": pdf.Name("Link"),
			"Rect":    rect(72, 700),
			"Dest":    pdf.String("chap1"),
		},
		pdf.Dict{ // 1: URI action, stored indirectly
			"Subtype": pdf.Name("Link"),
			"Rect":    rect(72, 650),
			"A":       uriAction,
		},
		pdf.Dict{ // 2: explicit destination
			"Subtype": pdf.Name("Link"),
			"Rect":    rect(72, 600),
			"Dest":    pdf.Array{pages[4], pdf.Name("FitH"), pdf.Integer(500)},
		},
		pdf.Dict{ // 3: GoTo action with an old-style name destination
			"Subtype": pdf.Name("Link"),
			"Rect":    rect(72, 550),
			"A": pdf.Dict{
				"S": pdf.Name("GoTo"),
				"D": pdf.Name("intro"),
			},
		},
		pdf.Dict{ // 4: named action
			"Subtype": pdf.Name("Link"),
			"Rect":    rect(72, 500),
			"A": pdf.Dict{
				"S": pdf.Name("Named"),
				"N": pdf.Name("NextPage"),
			},
		},
		pdf.Dict{ // 5: broken link
			"Subtype": pdf.Name("Link"),
			"Rect":    rect(72, 450),
			"A": pdf.Dict{
				"S": pdf.Name("GoTo"),
				"D": pdf.Array{notAPage, pdf.Name("Fit")},
			},
		},
		pdf.Dict{
			"Subtype":  pdf.Name("Text"),
			"Rect":     rect(300, 700),
			"Contents": pdf.String("note"),
		},
	}

	for i, ref := range pages {
		dict := pdf.Dict{
			"Type":   pdf.Name("Page"),
			"Parent": root,
		}
		switch {
		case i < 2:
			dict["Parent"] = nodeA
		case i > 2:
			dict["Parent"] = nodeB
		}
		if i == 0 {
			dict["Annots"] = annots
		}
		put(ref, dict)
	}

	// named destinations, old style
	wrapped := w.Alloc()
	put(wrapped, pdf.Dict{
		"D": pdf.Array{pages[1], pdf.Name("XYZ"), pdf.Integer(0), pdf.Integer(720), nil},
	})
	dests := pdf.Dict{
		"intro":   pdf.Array{pages[0], pdf.Name("Fit")},
		"wrapped": wrapped,
	}

	// named destinations, name tree
	chap2 := w.Alloc()
	put(chap2, pdf.Array{pages[3], pdf.Name("Fit")})
	leaf1 := w.Alloc()
	put(leaf1, pdf.Dict{
		"Limits": pdf.Array{pdf.String("chap1"), pdf.String("chap2")},
		"Names": pdf.Array{
			pdf.String("chap1"), pdf.Array{pages[2], pdf.Name("FitH"), pdf.Integer(500)},
			pdf.String("chap2"), chap2,
		},
	})
	leaf2 := w.Alloc()
	put(leaf2, pdf.Dict{
		"Limits": pdf.Array{pdf.String("chap3"), pdf.String("zeta")},
		"Names": pdf.Array{
			pdf.String("chap3"), pdf.Array{notAPage, pdf.Name("Fit")},
			pdf.String("zeta"), pdf.Array{pdf.Integer(4), pdf.Name("Fit")},
		},
	})
	treeRoot := w.Alloc()
	put(treeRoot, pdf.Dict{
		"Kids": pdf.Array{leaf1, leaf2},
	})

	catalog := w.GetMeta().Catalog
	catalog.Pages = root
	catalog.Dests = dests
	catalog.Names = pdf.Dict{"Dests": treeRoot}

	err = w.Close()
	if err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	r, err := pdf.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { r.Close() })

	return &Doc{
		R:        r,
		Data:     data,
		Pages:    pages,
		NotAPage: notAPage,
	}
}
