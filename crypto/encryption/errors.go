// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package encryption

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Kind defines the type of error returned by this package and the field
// engine built on top of it. Kinds are semantically meaningful and may be
// interpreted by the caller, e.g. to decide whether an operation should be
// retried.
type Kind int

const (
	// Other indicates an unclassified error.
	Other Kind = iota
	// NullArgument indicates a required argument was absent.
	NullArgument
	// CredentialNotFound indicates the named credential is absent from
	// the registry.
	CredentialNotFound
	// UnknownAlgorithm indicates an algorithm tag outside the closed
	// enumeration, or one the closed enumeration names but has no
	// implementation for (RC2).
	UnknownAlgorithm
	// UnsupportedProtocol indicates an envelope version byte other
	// than 1.
	UnsupportedProtocol
	// Truncated indicates an envelope shorter than its declared IV
	// length.
	Truncated
	// CipherError indicates the underlying primitive rejected input:
	// bad padding, bad key length, or bad block alignment.
	CipherError
	// InvalidPath indicates a null or empty element in a field-level
	// path list.
	InvalidPath
	// NoPaths indicates an empty field-level path list.
	NoPaths
	// Canceled indicates the caller's cancellation signal was observed.
	Canceled
)

var kindStrings = map[Kind]string{
	Other:               "unknown error",
	NullArgument:        "null argument",
	CredentialNotFound:  "credential not found",
	UnknownAlgorithm:    "unknown algorithm",
	UnsupportedProtocol: "unsupported protocol",
	Truncated:           "truncated envelope",
	CipherError:         "cipher error",
	InvalidPath:         "invalid path",
	NoPaths:             "no paths",
	Canceled:            "operation was canceled",
}

// String returns a human-readable description of k.
func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return kindStrings[Other]
}

// Error is the standard error type returned by this module. It carries a
// Kind (an error code), an optional Message, the offending Arg (when the
// error concerns a specific argument, e.g. a credential name or a path
// expression), and an optional wrapped cause.
//
// Errors constructed by this package should go through E, which interprets
// its arguments positionally by type.
type Error struct {
	Kind    Kind
	Message string
	Arg     string
	Err     error
}

// E constructs a new *Error from its arguments. Arguments are interpreted
// according to their type:
//
//   - Kind: sets the error's Kind
//   - string: the first string sets Message; a second sets Arg
//   - error: sets the wrapped cause
//
// Unrecognized argument types cause E to panic: E is only ever called with
// literal arguments inside this module, so a mismatched call is a
// programming error, not a runtime condition.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("errors.E: no args")
	}
	e := new(Error)
	strCount := 0
	for _, arg := range args {
		switch v := arg.(type) {
		case Kind:
			e.Kind = v
		case string:
			switch strCount {
			case 0:
				e.Message = v
			case 1:
				e.Arg = v
			default:
				e.Message = e.Message + " " + v
			}
			strCount++
		case *Error:
			cp := *v
			e.Err = &cp
		case error:
			e.Err = v
		default:
			panic(fmt.Sprintf("errors.E: unsupported argument type %T", arg))
		}
	}
	if e.Kind == Other {
		if inner, ok := e.Err.(*Error); ok {
			e.Kind = inner.Kind
		}
	}
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b bytes.Buffer
	if e.Message != "" {
		b.WriteString(e.Message)
	}
	if e.Arg != "" {
		pad(&b, ": ")
		b.WriteString(e.Arg)
	}
	if e.Kind != Other {
		pad(&b, ": ")
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		pad(&b, ": ")
		b.WriteString(e.Err.Error())
	}
	if b.Len() == 0 {
		return e.Kind.String()
	}
	return b.String()
}

// Unwrap returns e's cause, if any, allowing errors.Is/errors.As to see
// through chained *Error values.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether err's Kind matches kind, unwrapping through any chain
// of *Error values.
func Is(kind Kind, err error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind == kind {
				return true
			}
			err = e.Err
			continue
		}
		return false
	}
	return false
}

func pad(b *bytes.Buffer, sep string) {
	if b.Len() == 0 {
		return
	}
	b.WriteString(sep)
}

// New is synonymous with errors.New, retained so callers need import only
// this package's error type in the common case.
func New(msg string) error {
	return errors.New(msg)
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
