// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package field

import (
	"fmt"

	"github.com/grailbio/credcrypt/crypto/encryption"
)

// CryptoProvider is the subset of the root credcrypt.Crypto facade the
// field engine needs. It is declared locally, rather than imported, so
// this package does not depend on the root module package — callers pass
// their *credcrypt.crypto (or any stand-in, e.g. in tests) as this
// interface.
type CryptoProvider interface {
	GetEncryptor(name string) (*encryption.Encryptor, error)
	GetDecryptor(name string) (*encryption.Decryptor, error)
}

// Error reports a field-level encrypt/decrypt failure. It carries the path
// expression and the index (within that path's matches, in document order)
// being rewritten when the underlying cause occurred, so a caller can
// report exactly which field failed.
type Error struct {
	Path       string
	MatchIndex int
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("field path %q match %d: %v", e.Path, e.MatchIndex, e.Err)
}

// Unwrap allows errors.Is/errors.As, and encryption.Is, to see through to
// the wrapped *encryption.Error.
func (e *Error) Unwrap() error { return e.Err }

func wrapErr(path string, idx int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Path: path, MatchIndex: idx, Err: err}
}

// validatePaths enforces the path-list contract shared by every entry
// point in this package: the list must be non-empty (NoPaths), and no
// element may be empty (InvalidPath), regardless of its position in the
// list — a later valid path does not excuse an earlier empty one.
func validatePaths(paths []string) error {
	if len(paths) == 0 {
		return encryption.E(encryption.NoPaths, "path list is empty")
	}
	for _, p := range paths {
		if p == "" {
			return encryption.E(encryption.InvalidPath, "path list contains an empty expression")
		}
	}
	return nil
}

// lazyEncryptor defers resolving an Encryptor from a CryptoProvider until
// the first path match, so that a document none of whose paths match never
// touches the credential registry (see spec design note on lazy
// encryptor/decryptor acquisition).
type lazyEncryptor struct {
	crypto CryptoProvider
	name   string
	enc    *encryption.Encryptor
}

func (l *lazyEncryptor) get() (*encryption.Encryptor, error) {
	if l.enc == nil {
		enc, err := l.crypto.GetEncryptor(l.name)
		if err != nil {
			return nil, err
		}
		l.enc = enc
	}
	return l.enc, nil
}

// lazyDecryptor is lazyEncryptor's decrypt-side twin.
type lazyDecryptor struct {
	crypto CryptoProvider
	name   string
	dec    *encryption.Decryptor
}

func (l *lazyDecryptor) get() (*encryption.Decryptor, error) {
	if l.dec == nil {
		dec, err := l.crypto.GetDecryptor(l.name)
		if err != nil {
			return nil, err
		}
		l.dec = dec
	}
	return l.dec, nil
}
