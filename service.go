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
	"log"
	"reflect"
	"sync"
)

// DefaultLinkRel is the value of the rel attribute of external links, unless
// a different value is configured.
const DefaultLinkRel = "noopener noreferrer nofollow"

// Options can be used to configure a [LinkService].
// A nil value is equivalent to a pointer to the zero value.
type Options struct {
	// ExternalLinkDisabled turns off external hyperlinks.
	ExternalLinkDisabled bool

	// ExternalLinkRel, if set, replaces [DefaultLinkRel].
	ExternalLinkRel string

	// ExternalLinkTarget is the target attribute of external links which do
	// not request a new window.
	ExternalLinkTarget string

	// ErrorLog receives the errors of navigation requests started by
	// [LinkService.NavigateTo].  If this is nil, the standard logger is used.
	ErrorLog *log.Logger
}

// LinkService connects a document to a viewer.  It resolves destinations to
// pages and tells the viewer which page to show.
//
// The document and the viewer are owned by the caller and can be replaced
// at any time.  A LinkService is safe for concurrent use.
type LinkService struct {
	mu sync.RWMutex

	doc    Document
	viewer Viewer

	externalLinkEnabled bool
	externalLinkRel     string
	externalLinkTarget  string

	errorLog *log.Logger
}

// New returns a LinkService without document and viewer.
func New(opt *Options) *LinkService {
	if opt == nil {
		opt = &Options{}
	}
	return &LinkService{
		externalLinkEnabled: !opt.ExternalLinkDisabled,
		externalLinkRel:     opt.ExternalLinkRel,
		externalLinkTarget:  opt.ExternalLinkTarget,
		errorLog:            opt.ErrorLog,
	}
}

// SetDocument binds the service to a document.  Use nil to unbind.
// A nil pointer wrapped in the interface also unbinds the document.
func (s *LinkService) SetDocument(doc Document) {
	if isNil(doc) {
		doc = nil
	}
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
}

// SetViewer binds the service to a viewer.  Use nil to unbind.
// A nil pointer wrapped in the interface also unbinds the viewer.
func (s *LinkService) SetViewer(v Viewer) {
	if isNil(v) {
		v = nil
	}
	s.mu.Lock()
	s.viewer = v
	s.mu.Unlock()
}

// isNil reports whether x is nil, or an interface holding a nil pointer,
// map, slice, function or channel.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	switch v := reflect.ValueOf(x); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// SetExternalLinkRel sets the rel attribute for external links.  The empty
// string restores [DefaultLinkRel].
func (s *LinkService) SetExternalLinkRel(rel string) {
	s.mu.Lock()
	s.externalLinkRel = rel
	s.mu.Unlock()
}

// SetExternalLinkTarget sets the target attribute for external links which
// do not ask for a new window.
func (s *LinkService) SetExternalLinkTarget(target string) {
	s.mu.Lock()
	s.externalLinkTarget = target
	s.mu.Unlock()
}

// SetExternalLinkEnabled switches external hyperlinks on or off.
func (s *LinkService) SetExternalLinkEnabled(enabled bool) {
	s.mu.Lock()
	s.externalLinkEnabled = enabled
	s.mu.Unlock()
}

// ExternalLinkEnabled reports whether external hyperlinks should be made
// clickable.
func (s *LinkService) ExternalLinkEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.externalLinkEnabled
}

// ExternalLinkRel returns the rel attribute used for external links.
func (s *LinkService) ExternalLinkRel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.externalLinkRel == "" {
		return DefaultLinkRel
	}
	return s.externalLinkRel
}

// ExternalLinkTarget returns the configured target attribute, or the empty
// string if none is set.
func (s *LinkService) ExternalLinkTarget() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.externalLinkTarget
}

// PagesCount returns the number of pages of the bound document, or 0 if no
// document is bound.
func (s *LinkService) PagesCount() int {
	doc := s.document()
	if doc == nil {
		return 0
	}
	return doc.NumPages()
}

// Page returns the current page number of the viewer, or 0 if no viewer is
// bound.
func (s *LinkService) Page() int {
	v := s.currentViewer()
	if v == nil {
		return 0
	}
	return v.CurrentPageNumber()
}

// SetPage sets the current page number of the viewer.  The value is passed
// on without range checks.
func (s *LinkService) SetPage(pageNumber int) error {
	v := s.currentViewer()
	if v == nil {
		return fail("SetPage", ErrNoViewer)
	}
	v.SetCurrentPageNumber(pageNumber)
	return nil
}

func (s *LinkService) document() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

func (s *LinkService) currentViewer() Viewer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewer
}

func (s *LinkService) logger() *log.Logger {
	if s.errorLog != nil {
		return s.errorLog
	}
	return log.Default()
}
