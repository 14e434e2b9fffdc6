// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package encryption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentialRejectsRC2(t *testing.T) {
	_, err := NewCredential("c", RC2, make([]byte, 8), 8)
	require.Error(t, err)
	assert.True(t, Is(UnknownAlgorithm, err))
}

func TestNewCredentialRejectsUnknownAlgorithm(t *testing.T) {
	_, err := NewCredential("c", Algorithm(99), make([]byte, 16), 16)
	require.Error(t, err)
	assert.True(t, Is(UnknownAlgorithm, err))
}

func TestNewCredentialRejectsBadKeyAndIVSize(t *testing.T) {
	_, err := NewCredential("c", AES, make([]byte, 5), 16)
	require.Error(t, err)
	assert.True(t, Is(CipherError, err))

	_, err = NewCredential("c", AES, make([]byte, 16), 8)
	require.Error(t, err)
	assert.True(t, Is(CipherError, err))
}

func TestNewCredentialAccepts(t *testing.T) {
	cred, err := NewCredential("primary", AES, make([]byte, 32), 16)
	require.NoError(t, err)
	assert.Equal(t, "primary", cred.Name())
	assert.Equal(t, AES, cred.Algorithm())
}

func TestRegistryDefaultResolution(t *testing.T) {
	reg := NewRegistry()
	primary, err := NewCredential("primary", AES, make([]byte, 32), 16)
	require.NoError(t, err)
	require.NoError(t, reg.Add(primary, true))

	secondary, err := NewCredential("secondary", TripleDES, make([]byte, 24), 8)
	require.NoError(t, err)
	require.NoError(t, reg.Add(secondary, false))

	cred, err := reg.Get("")
	require.NoError(t, err)
	assert.Equal(t, "primary", cred.Name())

	cred, err = reg.Get("secondary")
	require.NoError(t, err)
	assert.Equal(t, "secondary", cred.Name())

	_, err = reg.Get("missing")
	require.Error(t, err)
	assert.True(t, Is(CredentialNotFound, err))
}

func TestRegistryRejectsDuplicateNameAndDefault(t *testing.T) {
	reg := NewRegistry()
	a, err := NewCredential("a", AES, make([]byte, 16), 16)
	require.NoError(t, err)
	b, err := NewCredential("a", AES, make([]byte, 16), 16)
	require.NoError(t, err)

	require.NoError(t, reg.Add(a, true))
	assert.Error(t, reg.Add(b, false))

	c, err := NewCredential("c", AES, make([]byte, 16), 16)
	require.NoError(t, err)
	assert.Error(t, reg.Add(c, true)) // a second default
}

func TestRegistryNoDefaultConfigured(t *testing.T) {
	reg := NewRegistry()
	cred, err := NewCredential("only", AES, make([]byte, 16), 16)
	require.NoError(t, err)
	require.NoError(t, reg.Add(cred, false))

	_, err = reg.Get("")
	require.Error(t, err)
	assert.True(t, Is(CredentialNotFound, err))
	assert.False(t, reg.CanEncrypt(""))
	assert.True(t, reg.CanEncrypt("only"))
}
