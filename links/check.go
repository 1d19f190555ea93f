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

package links

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdfnav"
	"seehuhn.de/go/pdfnav/pdfdoc"
)

// Problem is an internal link which cannot be resolved.
type Problem struct {
	// PageIndex is the zero-based index of the page containing the link.
	PageIndex int

	// Index is the position of the link in the list of links of the page.
	Index int

	Link *Link
	Err  error
}

// ExtractAll returns the links of all pages of doc, indexed by page.
// Pages whose dictionary is stored as a direct object have no links.
func ExtractAll(r pdf.Getter, doc *pdfdoc.Document) ([][]*Link, error) {
	res := make([][]*Link, doc.NumPages())
	for i := range res {
		ref := doc.PageRef(i)
		if ref == 0 {
			continue
		}
		ll, err := Extract(r, ref)
		if err != nil {
			return nil, err
		}
		res[i] = ll
	}
	return res, nil
}

// Check resolves all internal links, using at most limit goroutines at a
// time (no limit if limit <= 0).  The viewer of s is not used.
//
// The problems are returned in page order.  An error is only returned if
// ctx is canceled.
func Check(ctx context.Context, s *pdfnav.LinkService, pages [][]*Link, limit int) ([]Problem, error) {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	var mu sync.Mutex
	var problems []Problem

	for pageIndex, ll := range pages {
		for i, l := range ll {
			if l.Kind != Internal {
				continue
			}
			g.Go(func() error {
				_, err := s.Resolve(gctx, l.Dest)
				if err == nil {
					return nil
				}
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}

				mu.Lock()
				problems = append(problems, Problem{
					PageIndex: pageIndex,
					Index:     i,
					Link:      l,
					Err:       err,
				})
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(problems, func(a, b Problem) int {
		if c := cmp.Compare(a.PageIndex, b.PageIndex); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
	return problems, nil
}
