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
	"fmt"
	"strconv"

	"seehuhn.de/go/pdf"
)

// GoToDestination resolves dest and scrolls the viewer to the target page.
//
// The viewer is called exactly once if the method succeeds, and not at all
// if it fails.  The method blocks while the document looks up named
// destinations and page references.
func (s *LinkService) GoToDestination(ctx context.Context, dest Destination) error {
	const op = "GoToDestination"

	t, err := s.resolve(ctx, op, dest)
	if err != nil {
		return err
	}

	v := s.currentViewer()
	if v == nil {
		return fail(op, ErrNoViewer)
	}
	if err := s.checkPageNumber(op, t.PageNumber); err != nil {
		return err
	}

	v.ScrollPageIntoView(*t)
	return nil
}

// NavigateTo starts GoToDestination in a new goroutine and returns
// immediately.  Failures are written to the error log of the service.
func (s *LinkService) NavigateTo(ctx context.Context, dest Destination) {
	go func() {
		err := s.GoToDestination(ctx, dest)
		if err != nil {
			s.logger().Print(err)
		}
	}()
}

// Resolve converts dest to a page of the bound document, without involving
// the viewer.
func (s *LinkService) Resolve(ctx context.Context, dest Destination) (*Target, error) {
	const op = "Resolve"

	t, err := s.resolve(ctx, op, dest)
	if err != nil {
		return nil, err
	}
	if err := s.checkPageNumber(op, t.PageNumber); err != nil {
		return nil, err
	}
	return t, nil
}

// GoToPage scrolls the viewer to the given page.  Page numbers start at 1.
func (s *LinkService) GoToPage(pageNumber int) error {
	const op = "GoToPage"

	v := s.currentViewer()
	if v == nil {
		return fail(op, ErrNoViewer)
	}
	if err := s.checkPageNumber(op, pageNumber); err != nil {
		return err
	}

	v.ScrollPageIntoView(Target{
		PageIndex:  pageNumber - 1,
		PageNumber: pageNumber,
	})
	return nil
}

// resolve runs the two lookup stages.  The document is fetched separately
// for each stage.
func (s *LinkService) resolve(ctx context.Context, op string, dest Destination) (*Target, error) {
	explicit, err := s.explicitDest(ctx, op, dest)
	if err != nil {
		return nil, err
	}

	pageIndex, err := s.pageIndex(ctx, op, explicit)
	if err != nil {
		return nil, err
	}

	return &Target{
		Dest:       explicit,
		PageIndex:  pageIndex,
		PageNumber: pageIndex + 1,
	}, nil
}

func (s *LinkService) explicitDest(ctx context.Context, op string, dest Destination) (Explicit, error) {
	doc := s.document()
	if doc == nil {
		return nil, fail(op, ErrNoDocument)
	}

	var obj pdf.Object
	var err error
	switch dest := dest.(type) {
	case Named:
		if dest == "" {
			return nil, fail(op, ErrNoDestination)
		}
		obj, err = doc.Destination(ctx, string(dest))
		if err != nil {
			return nil, failValue(op, ErrInvalidDestination, string(dest), err)
		}
	case Explicit:
		if dest == nil {
			return nil, fail(op, ErrNoDestination)
		}
		return dest, nil
	case Pending:
		if dest == nil {
			return nil, fail(op, ErrNoDestination)
		}
		obj, err = dest(ctx)
		if err != nil {
			return nil, failValue(op, ErrInvalidDestination, "", err)
		}
	default:
		return nil, fail(op, ErrNoDestination)
	}

	arr, ok := obj.(pdf.Array)
	if !ok {
		return nil, failValue(op, ErrInvalidDestination, format(obj), nil)
	}
	return Explicit(arr), nil
}

func (s *LinkService) pageIndex(ctx context.Context, op string, dest Explicit) (int, error) {
	doc := s.document()
	if doc == nil {
		return 0, fail(op, ErrNoDocument)
	}

	ref, err := GetPageRef(dest)
	if err != nil {
		subject := "undefined"
		if len(dest) > 0 {
			subject = format(dest[0])
		}
		return 0, failValue(op, err, subject, nil)
	}

	switch ref := ref.(type) {
	case PageObject:
		idx, err := doc.PageIndex(ctx, pdf.Reference(ref))
		if err != nil {
			return 0, failValue(op, ErrInvalidPageRef, format(pdf.Reference(ref)), err)
		}
		return idx, nil
	case PageIndex:
		return int(ref), nil
	}
	return 0, failValue(op, ErrInvalidDestRef, format(dest[0]), nil)
}

func (s *LinkService) checkPageNumber(op string, pageNumber int) error {
	if pageNumber < 1 || pageNumber > s.PagesCount() {
		return failValue(op, ErrInvalidPageNumber, strconv.Itoa(pageNumber), nil)
	}
	return nil
}

func format(obj pdf.Object) string {
	switch obj := obj.(type) {
	case nil:
		return "null"
	case pdf.Reference:
		return fmt.Sprintf("%d %d R", obj.Number(), obj.Generation())
	}
	return fmt.Sprint(obj)
}
