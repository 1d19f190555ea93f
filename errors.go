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
	"errors"
	"strconv"
)

// These errors describe the ways in which a navigation request can fail.
// All errors returned by a [LinkService] wrap exactly one of them.
var (
	ErrNoDocument         = errors.New("PDF document not loaded")
	ErrNoViewer           = errors.New("PDF viewer is not initialized")
	ErrNoDestination      = errors.New("destination is not specified")
	ErrInvalidDestination = errors.New("not a valid destination array")
	ErrInvalidPageRef     = errors.New("not a valid page reference")
	ErrInvalidDestRef     = errors.New("not a valid destination reference")
	ErrInvalidPageNumber  = errors.New("not a valid page number")
)

// NavigationError is returned when a navigation request cannot be carried
// out.  Use [errors.Is] with one of the Err* values to find the reason.
type NavigationError struct {
	// Op is the operation which failed, for example "GoToPage".
	Op string

	// Subject is the offending value, if any, formatted for display.
	Subject string

	// Err is one of the Err* sentinel values.
	Err error

	// Cause is an optional lower-level error, for example the error
	// returned by a failed document lookup.
	Cause error
}

func (err *NavigationError) Error() string {
	msg := err.Op + ": "
	if err.Subject != "" {
		msg += strconv.Quote(err.Subject) + " is " + err.Err.Error()
	} else {
		msg += err.Err.Error()
	}
	if err.Cause != nil {
		msg += ": " + err.Cause.Error()
	}
	return msg
}

// Unwrap returns the sentinel error and, if present, the underlying cause.
func (err *NavigationError) Unwrap() []error {
	if err.Cause == nil {
		return []error{err.Err}
	}
	return []error{err.Err, err.Cause}
}

func fail(op string, reason error) error {
	return &NavigationError{Op: op, Err: reason}
}

func failValue(op string, reason error, subject string, cause error) error {
	return &NavigationError{Op: op, Subject: subject, Err: reason, Cause: cause}
}
