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
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pdf"
)

func TestGoToPage(t *testing.T) {
	s, _, v := newTestService()

	for pageNumber := 1; pageNumber <= 10; pageNumber++ {
		err := s.GoToPage(pageNumber)
		if err != nil {
			t.Fatalf("GoToPage(%d): %v", pageNumber, err)
		}
	}

	calls := v.calls()
	if len(calls) != 10 {
		t.Fatalf("got %d viewer calls, want 10", len(calls))
	}
	for i, call := range calls {
		want := Target{PageIndex: i, PageNumber: i + 1}
		if diff := cmp.Diff(want, call); diff != "" {
			t.Errorf("call %d (-want +got):\n%s", i, diff)
		}
	}
}

func TestGoToPageOutOfRange(t *testing.T) {
	s, _, v := newTestService()

	for _, pageNumber := range []int{0, -1, 11, 1000} {
		err := s.GoToPage(pageNumber)
		if !errors.Is(err, ErrInvalidPageNumber) {
			t.Errorf("GoToPage(%d): got %v, want %v", pageNumber, err, ErrInvalidPageNumber)
		}
	}
	if n := len(v.calls()); n != 0 {
		t.Errorf("got %d viewer calls, want 0", n)
	}

	err := s.GoToPage(11)
	want := `GoToPage: "11" is not a valid page number`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestGoToPageUnbound(t *testing.T) {
	s := New(nil)
	err := s.GoToPage(1)
	if !errors.Is(err, ErrNoViewer) {
		t.Errorf("no viewer: got %v, want %v", err, ErrNoViewer)
	}

	// with a viewer but without a document, every page is out of range
	v := &fakeViewer{}
	s.SetViewer(v)
	err = s.GoToPage(1)
	if !errors.Is(err, ErrInvalidPageNumber) {
		t.Errorf("no document: got %v, want %v", err, ErrInvalidPageNumber)
	}
	if len(v.calls()) != 0 {
		t.Error("viewer was called")
	}
}

func TestGoToDestination(t *testing.T) {
	s, doc, v := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		dest Destination
		want Target
	}{
		{
			name: "named, page reference",
			dest: Named("chapter"),
			want: Target{
				Dest:       Explicit{ref2, pdf.Name("XYZ"), pdf.Integer(0), pdf.Integer(792), nil},
				PageIndex:  3,
				PageNumber: 4,
			},
		},
		{
			name: "named, page index",
			dest: Named("index"),
			want: Target{
				Dest:       Explicit{pdf.Integer(5), pdf.Name("Fit")},
				PageIndex:  5,
				PageNumber: 6,
			},
		},
		{
			name: "explicit, page index",
			dest: Explicit{pdf.Integer(5), pdf.Name("FitH"), pdf.Integer(100)},
			want: Target{
				Dest:       Explicit{pdf.Integer(5), pdf.Name("FitH"), pdf.Integer(100)},
				PageIndex:  5,
				PageNumber: 6,
			},
		},
		{
			name: "explicit, page reference",
			dest: Explicit{ref1, pdf.Name("Fit")},
			want: Target{
				Dest:       Explicit{ref1, pdf.Name("Fit")},
				PageIndex:  0,
				PageNumber: 1,
			},
		},
		{
			name: "pending",
			dest: Pending(func(ctx context.Context) (pdf.Object, error) {
				return pdf.Array{ref2, pdf.Name("Fit")}, nil
			}),
			want: Target{
				Dest:       Explicit{ref2, pdf.Name("Fit")},
				PageIndex:  3,
				PageNumber: 4,
			},
		},
		{
			name: "last page",
			dest: Explicit{pdf.Integer(9)},
			want: Target{
				Dest:       Explicit{pdf.Integer(9)},
				PageIndex:  9,
				PageNumber: 10,
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			before := len(v.calls())
			err := s.GoToDestination(ctx, c.dest)
			if err != nil {
				t.Fatal(err)
			}
			calls := v.calls()
			if len(calls) != before+1 {
				t.Fatalf("got %d viewer calls, want 1", len(calls)-before)
			}
			if diff := cmp.Diff(c.want, calls[len(calls)-1]); diff != "" {
				t.Errorf("unexpected target (-want +got):\n%s", diff)
			}
			if s.Page() != c.want.PageNumber {
				t.Errorf("current page: got %d, want %d", s.Page(), c.want.PageNumber)
			}
		})
	}

	if diff := cmp.Diff([]string{"chapter", "index"}, doc.lookups); diff != "" {
		t.Errorf("unexpected lookups (-want +got):\n%s", diff)
	}
}

func TestGoToDestinationErrors(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		dest Destination
		want error
	}{
		{"nil", nil, ErrNoDestination},
		{"empty name", Named(""), ErrNoDestination},
		{"nil array", Explicit(nil), ErrNoDestination},
		{"nil function", Pending(nil), ErrNoDestination},
		{"unknown name", Named("unknown"), ErrInvalidDestination},
		{"dictionary", Named("dict"), ErrInvalidDestination},
		{"failed lookup", Named("error"), ErrInvalidDestination},
		{"pending returns a name", Pending(func(context.Context) (pdf.Object, error) {
			return pdf.Name("chapter"), nil
		}), ErrInvalidDestination},
		{"pending fails", Pending(func(context.Context) (pdf.Object, error) {
			return nil, errFakeLookup
		}), ErrInvalidDestination},
		{"unknown page", Named("broken"), ErrInvalidPageRef},
		{"empty array", Named("empty"), ErrInvalidDestRef},
		{"empty explicit", Explicit{}, ErrInvalidDestRef},
		{"name as page", Named("name-page"), ErrInvalidDestRef},
		{"real as page", Explicit{pdf.Real(1.5), pdf.Name("Fit")}, ErrInvalidDestRef},
		{"index too large", Named("far"), ErrInvalidPageNumber},
		{"negative index", Named("negative"), ErrInvalidPageNumber},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, _, v := newTestService()
			err := s.GoToDestination(ctx, c.dest)
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
			var navErr *NavigationError
			if !errors.As(err, &navErr) {
				t.Errorf("%T is not a *NavigationError", err)
			} else if navErr.Op != "GoToDestination" {
				t.Errorf("wrong operation %q", navErr.Op)
			}
			if n := len(v.calls()); n != 0 {
				t.Errorf("got %d viewer calls, want 0", n)
			}
		})
	}
}

func TestGoToDestinationUnbound(t *testing.T) {
	ctx := context.Background()

	s, _, v := newTestService()
	s.SetDocument(nil)
	err := s.GoToDestination(ctx, Explicit{pdf.Integer(0)})
	if !errors.Is(err, ErrNoDocument) {
		t.Errorf("no document: got %v, want %v", err, ErrNoDocument)
	}

	// the document check comes first
	err = s.GoToDestination(ctx, nil)
	if !errors.Is(err, ErrNoDocument) {
		t.Errorf("no document, no destination: got %v, want %v", err, ErrNoDocument)
	}

	s, _, v = newTestService()
	s.SetViewer(nil)
	err = s.GoToDestination(ctx, Named("chapter"))
	if !errors.Is(err, ErrNoViewer) {
		t.Errorf("no viewer: got %v, want %v", err, ErrNoViewer)
	}

	// the viewer check comes before the range check
	err = s.GoToDestination(ctx, Named("far"))
	if !errors.Is(err, ErrNoViewer) {
		t.Errorf("no viewer, bad page: got %v, want %v", err, ErrNoViewer)
	}
	if len(v.calls()) != 0 {
		t.Error("unbound viewer was called")
	}
}

func TestErrorCause(t *testing.T) {
	s, _, _ := newTestService()

	err := s.GoToDestination(context.Background(), Named("broken"))
	if !errors.Is(err, errFakeLookup) {
		t.Errorf("cause of %v is not %v", err, errFakeLookup)
	}
	want := `GoToDestination: "9 0 R" is not a valid page reference: lookup failed`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	err = s.GoToDestination(context.Background(), Named("unknown"))
	want = `GoToDestination: "null" is not a valid destination array`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestResolve(t *testing.T) {
	s, _, v := newTestService()
	s.SetViewer(nil)

	got, err := s.Resolve(context.Background(), Named("chapter"))
	if err != nil {
		t.Fatal(err)
	}
	if got.PageIndex != 3 || got.PageNumber != 4 {
		t.Errorf("unexpected target %+v", got)
	}

	_, err = s.Resolve(context.Background(), Named("far"))
	if !errors.Is(err, ErrInvalidPageNumber) {
		t.Errorf("got %v, want %v", err, ErrInvalidPageNumber)
	}

	if len(v.calls()) != 0 {
		t.Error("Resolve used the viewer")
	}
}

func TestCanceled(t *testing.T) {
	s, doc, v := newTestService()
	doc.block = make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	errC := make(chan error)
	go func() {
		errC <- s.GoToDestination(ctx, Named("chapter"))
	}()
	cancel()

	err := <-errC
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want %v", err, context.Canceled)
	}
	if !errors.Is(err, ErrInvalidDestination) {
		t.Errorf("got %v, want %v", err, ErrInvalidDestination)
	}
	if len(v.calls()) != 0 {
		t.Error("viewer was called")
	}
}

// TestRebind checks that a document bound while a lookup is in progress is
// used for the second stage of the lookup.
func TestRebind(t *testing.T) {
	s, doc, v := newTestService()
	doc.block = make(chan struct{})

	other := &fakeDoc{
		pages: 10,
		refs:  map[pdf.Reference]int{ref2: 7},
	}

	errC := make(chan error)
	go func() {
		errC <- s.GoToDestination(context.Background(), Named("chapter"))
	}()

	// wait for the first stage to start
	for {
		doc.mu.Lock()
		n := len(doc.lookups)
		doc.mu.Unlock()
		if n > 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	s.SetDocument(other)
	close(doc.block)

	if err := <-errC; err != nil {
		t.Fatal(err)
	}
	calls := v.calls()
	if len(calls) != 1 || calls[0].PageIndex != 7 {
		t.Errorf("unexpected calls %+v", calls)
	}
}

func TestNavigateTo(t *testing.T) {
	s, _, v := newTestService()
	v.done = make(chan Target, 1)

	s.NavigateTo(context.Background(), Named("chapter"))

	select {
	case got := <-v.done:
		if got.PageNumber != 4 {
			t.Errorf("got page %d, want 4", got.PageNumber)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timeout")
	}
}

func TestNavigateToLogsErrors(t *testing.T) {
	buf := &syncBuffer{}
	logged := make(chan struct{})
	buf.onWrite = func() { close(logged) }

	s := New(&Options{ErrorLog: log.New(buf, "", 0)})
	s.SetDocument(&fakeDoc{pages: 1})
	s.SetViewer(&fakeViewer{})

	s.NavigateTo(context.Background(), Named("unknown"))

	select {
	case <-logged:
	case <-time.After(10 * time.Second):
		t.Fatal("timeout")
	}
	if msg := buf.String(); !strings.Contains(msg, "not a valid destination array") {
		t.Errorf("unexpected log message %q", msg)
	}
}

func TestConcurrentNavigation(t *testing.T) {
	s, _, v := newTestService()
	v.done = make(chan Target, 20)

	for i := 0; i < 10; i++ {
		s.NavigateTo(context.Background(), Explicit{pdf.Integer(i)})
		s.NavigateTo(context.Background(), Named("chapter"))
	}

	seen := map[int]int{}
	for i := 0; i < 20; i++ {
		select {
		case got := <-v.done:
			seen[got.PageNumber]++
		case <-time.After(10 * time.Second):
			t.Fatal("timeout")
		}
	}
	if seen[4] != 11 {
		t.Errorf("page 4 visited %d times, want 11", seen[4])
	}
	if s.Page() < 1 || s.Page() > 10 {
		t.Errorf("invalid current page %d", s.Page())
	}
}

type syncBuffer struct {
	buf     bytes.Buffer
	onWrite func()
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	n, err := b.buf.Write(p)
	if b.onWrite != nil {
		b.onWrite()
		b.onWrite = nil
	}
	return n, err
}

func (b *syncBuffer) String() string {
	return b.buf.String()
}
