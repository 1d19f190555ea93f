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

package pdfdoc

import (
	"iter"
	"slices"

	"seehuhn.de/go/pdf"
)

// maxTreeDepth limits the recursion into name trees, to protect against
// reference loops in malformed files.
const maxTreeDepth = 32

// lookupInNode searches a name tree for key.  Intermediate nodes are
// only entered if key lies within their /Limits.
//
// PDF 2.0 section: 7.9.6
func (d *Document) lookupInNode(node pdf.Dict, key pdf.String, depth int) (pdf.Object, error) {
	if depth > maxTreeDepth {
		return nil, &pdf.MalformedFileError{Err: errTreeTooDeep}
	}

	if names, ok := node["Names"]; ok {
		arr, err := pdf.GetArray(d.r, names)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < len(arr); i += 2 {
			k, err := pdf.GetString(d.r, arr[i])
			if err != nil {
				continue
			}
			if string(k) == string(key) {
				return arr[i+1], nil
			}
		}
		return nil, errNotFound
	}

	kids, err := pdf.GetArray(d.r, node["Kids"])
	if err != nil {
		return nil, err
	}
	for _, kid := range kids {
		child, err := pdf.GetDict(d.r, kid)
		if err != nil || child == nil {
			continue
		}

		limits, err := pdf.GetArray(d.r, child["Limits"])
		if err != nil || len(limits) != 2 {
			continue
		}
		lo, err := pdf.GetString(d.r, limits[0])
		if err != nil {
			continue
		}
		hi, err := pdf.GetString(d.r, limits[1])
		if err != nil {
			continue
		}

		if string(key) >= string(lo) && string(key) <= string(hi) {
			return d.lookupInNode(child, key, depth+1)
		}
	}

	return nil, errNotFound
}

// Names iterates over all named destinations of the document.  Entries of
// the catalog's /Dests dictionary come first, sorted by name, followed by
// the entries of the /Dests name tree in tree order.  The values are the
// unresolved objects stored in the file.
//
// Malformed nodes of the name tree are skipped, together with their
// descendants, and keys which are not strings are ignored.  Iteration
// continues with the remaining nodes.
func (d *Document) Names() iter.Seq2[string, pdf.Object] {
	return func(yield func(string, pdf.Object) bool) {
		dests, _ := pdf.GetDict(d.r, d.r.GetMeta().Catalog.Dests)
		keys := make([]pdf.Name, 0, len(dests))
		for key := range dests {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			if !yield(string(key), dests[key]) {
				return
			}
		}

		root, err := d.destsTree()
		if err != nil || root == nil {
			return
		}
		d.yieldFromNode(root, 0, yield)
	}
}

func (d *Document) yieldFromNode(node pdf.Dict, depth int, yield func(string, pdf.Object) bool) bool {
	if depth > maxTreeDepth {
		return true
	}

	if names, ok := node["Names"]; ok {
		arr, err := pdf.GetArray(d.r, names)
		if err != nil {
			return true
		}
		for i := 0; i+1 < len(arr); i += 2 {
			k, err := pdf.GetString(d.r, arr[i])
			if err != nil {
				continue
			}
			if !yield(string(k), arr[i+1]) {
				return false
			}
		}
		return true
	}

	kids, err := pdf.GetArray(d.r, node["Kids"])
	if err != nil {
		return true
	}
	for _, kid := range kids {
		child, err := pdf.GetDict(d.r, kid)
		if err != nil || child == nil {
			continue
		}
		if !d.yieldFromNode(child, depth+1, yield) {
			return false
		}
	}
	return true
}
