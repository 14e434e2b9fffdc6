// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package asyncfacade wraps credcrypt.Crypto's synchronous methods in an
// already-completed Future, for callers whose own API is asynchronous and
// who need a value of that shape rather than actual concurrency. It exists
// for API-shape compatibility only: no call here ever suspends, because
// the cryptographic path never suspends (see spec design note 2). Callers
// who want real asynchrony around a blocking call should use their own
// goroutine plus channel; the one place in this module where a call can
// genuinely suspend is field.EncryptXMLContext/DecryptXMLContext and their
// JSON equivalents, which accept a context.Context for that reason.
package asyncfacade

import "github.com/grailbio/credcrypt"

// Future holds a value that is already available: Get never blocks.
type Future struct {
	value string
	err   error
}

// Get returns the value this Future was constructed with.
func (f *Future) Get() (string, error) {
	return f.value, f.err
}

// AsyncCrypto adapts a credcrypt.Crypto to return Futures instead of
// (string, error) pairs directly.
type AsyncCrypto struct {
	sync credcrypt.Crypto
}

// New wraps sync as an AsyncCrypto.
func New(sync credcrypt.Crypto) *AsyncCrypto {
	return &AsyncCrypto{sync: sync}
}

// EncryptString calls the wrapped Crypto's EncryptString synchronously and
// returns the result as an already-completed Future.
func (a *AsyncCrypto) EncryptString(plain, name string) *Future {
	v, err := a.sync.EncryptString(plain, name)
	return &Future{value: v, err: err}
}

// DecryptString is EncryptString's decrypt-direction twin.
func (a *AsyncCrypto) DecryptString(s, name string) *Future {
	v, err := a.sync.DecryptString(s, name)
	return &Future{value: v, err: err}
}
