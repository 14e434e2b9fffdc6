// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package field

import (
	"testing"

	"github.com/grailbio/credcrypt/crypto/encryption"
)

// testCrypto is a minimal CryptoProvider backed directly by an
// encryption.Registry, standing in for the root credcrypt.Crypto facade so
// this package's tests do not need to import it (that would not be a
// cycle, since the root package does not import field, but keeping field's
// tests independent of it keeps the dependency direction obviously one-way).
type testCrypto struct {
	registry *encryption.Registry
}

func (c *testCrypto) GetEncryptor(name string) (*encryption.Encryptor, error) {
	cred, err := c.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return encryption.NewEncryptor(cred), nil
}

func (c *testCrypto) GetDecryptor(name string) (*encryption.Decryptor, error) {
	cred, err := c.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return encryption.NewDecryptor(cred), nil
}

func newTestCrypto(t *testing.T) *testCrypto {
	t.Helper()
	cred, err := encryption.NewCredential("default", encryption.AES, make([]byte, 32), 16)
	if err != nil {
		t.Fatalf("NewCredential: %v", err)
	}
	reg := encryption.NewRegistry()
	if err := reg.Add(cred, true); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return &testCrypto{registry: reg}
}
