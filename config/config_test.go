// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package config_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/credcrypt/config"
	"github.com/grailbio/credcrypt/crypto/encryption"
)

func key(n int) string {
	return base64.StdEncoding.EncodeToString(make([]byte, n))
}

func TestLoadBuildsRegistry(t *testing.T) {
	records := []config.CredentialRecord{
		{Name: "primary", Algorithm: "AES", KeyBase64: key(32), IVSize: 16, Default: true},
		{Name: "legacy", Algorithm: "TripleDES", KeyBase64: key(24), IVSize: 8},
	}
	registry, err := config.Load(records)
	require.NoError(t, err)

	cred, err := registry.Get("")
	require.NoError(t, err)
	assert.Equal(t, "primary", cred.Name())

	cred, err = registry.Get("legacy")
	require.NoError(t, err)
	assert.Equal(t, encryption.TripleDES, cred.Algorithm())

	assert.True(t, registry.CanEncrypt("primary"))
	assert.False(t, registry.CanEncrypt("missing"))
}

func TestLoadRejectsMultipleDefaults(t *testing.T) {
	records := []config.CredentialRecord{
		{Name: "a", Algorithm: "AES", KeyBase64: key(16), IVSize: 16, Default: true},
		{Name: "b", Algorithm: "AES", KeyBase64: key(16), IVSize: 16, Default: true},
	}
	_, err := config.Load(records)
	require.Error(t, err)
}

func TestLoadRejectsUnknownAlgorithm(t *testing.T) {
	_, err := config.Load([]config.CredentialRecord{
		{Name: "a", Algorithm: "Blowfish", KeyBase64: key(16), IVSize: 16},
	})
	require.Error(t, err)
	assert.True(t, encryption.Is(encryption.UnknownAlgorithm, err))
}

func TestLoadRejectsRC2(t *testing.T) {
	_, err := config.Load([]config.CredentialRecord{
		{Name: "a", Algorithm: "RC2", KeyBase64: key(8), IVSize: 8},
	})
	require.Error(t, err)
	assert.True(t, encryption.Is(encryption.UnknownAlgorithm, err))
}

func TestLoadRejectsBadKeyLength(t *testing.T) {
	_, err := config.Load([]config.CredentialRecord{
		{Name: "a", Algorithm: "AES", KeyBase64: key(5), IVSize: 16},
	})
	require.Error(t, err)
	assert.True(t, encryption.Is(encryption.CipherError, err))
}

func TestLoadRejectsInvalidBase64(t *testing.T) {
	_, err := config.Load([]config.CredentialRecord{
		{Name: "a", Algorithm: "AES", KeyBase64: "not-valid-base64!!", IVSize: 16},
	})
	require.Error(t, err)
}
