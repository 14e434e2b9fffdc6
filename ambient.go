// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package credcrypt

import (
	"sync"
)

// This file implements the process-wide ambient Crypto accessor. It exists
// for callers that genuinely cannot thread a Crypto value through their
// call chain (top-level helpers, package-init-time code); internal code in
// this module never reads it. Set is expected to be called once, near
// process startup, before any concurrent access to Default; once set, the
// ambient value is immutable for the life of the process, mirroring the
// registry it typically wraps.

var (
	ambientMu sync.RWMutex
	ambient   Crypto
)

// Set installs c as the process-wide ambient Crypto. Set and Default are
// both guarded by ambientMu, so they may run concurrently; Set is
// intended to be called at most once, at startup.
func Set(c Crypto) {
	ambientMu.Lock()
	defer ambientMu.Unlock()
	ambient = c
}

// Default returns the process-wide ambient Crypto previously installed by
// Set, or nil if none has been installed.
func Default() Crypto {
	ambientMu.RLock()
	defer ambientMu.RUnlock()
	return ambient
}

// Encrypt is a convenience wrapper around Default().EncryptString. It
// panics if no ambient Crypto has been installed: callers that want
// explicit error handling should hold their own Crypto value instead.
func Encrypt(plain string, name string) (string, error) {
	c := Default()
	if c == nil {
		panic("credcrypt: no ambient Crypto installed; call Set first")
	}
	return c.EncryptString(plain, name)
}

// Decrypt is the Encrypt-symmetric convenience wrapper around
// Default().DecryptString.
func Decrypt(s string, name string) (string, error) {
	c := Default()
	if c == nil {
		panic("credcrypt: no ambient Crypto installed; call Set first")
	}
	return c.DecryptString(s, name)
}
