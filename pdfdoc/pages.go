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

import "seehuhn.de/go/pdf"

// findPages returns the page dictionaries of a document, in page order.
// Pages which are stored as direct objects are represented by 0.
func findPages(r pdf.Getter) ([]pdf.Reference, error) {
	catalog := r.GetMeta().Catalog
	if catalog.Pages == 0 {
		return nil, &pdf.MalformedFileError{Err: errInvalidPageTree}
	}

	var res []pdf.Reference
	todo := []pdf.Object{catalog.Pages}
	seen := map[pdf.Reference]bool{
		catalog.Pages: true,
	}
	for len(todo) > 0 {
		k := len(todo) - 1
		obj := todo[k]
		todo = todo[:k]

		node, err := pdf.GetDict(r, obj)
		if err != nil {
			return nil, err
		}
		tp, err := pdf.GetName(r, node["Type"])
		if err != nil {
			return nil, err
		}

		switch tp {
		case "Page":
			ref, _ := obj.(pdf.Reference)
			res = append(res, ref)
		case "Pages":
			kids, err := pdf.GetArray(r, node["Kids"])
			if err != nil {
				return nil, err
			}
			for i := len(kids) - 1; i >= 0; i-- {
				kid := kids[i]
				if kidRef, ok := kid.(pdf.Reference); ok {
					if seen[kidRef] {
						return nil, &pdf.MalformedFileError{Err: errInvalidPageTree}
					}
					seen[kidRef] = true
				}
				todo = append(todo, kid)
			}
		default:
			// Some writers omit /Type on leaf nodes.
			if node["Kids"] == nil && node != nil {
				ref, _ := obj.(pdf.Reference)
				res = append(res, ref)
			}
		}
	}

	return res, nil
}
