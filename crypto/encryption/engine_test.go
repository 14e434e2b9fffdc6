// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package encryption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncryptDecryptBytesRoundTrip checks that decrypting an encrypted
// byte slice recovers it exactly, and that the envelope's version and IV
// length bytes are set as expected.
func TestEncryptDecryptBytesRoundTrip(t *testing.T) {
	cred, err := NewCredential("c", AES, make([]byte, 32), 16)
	require.NoError(t, err)
	enc := NewEncryptor(cred)
	dec := NewDecryptor(cred)

	plain := []byte{0x00, 0x01, 0x02, 0x03}
	envelope, err := enc.EncryptBytes(plain)
	require.NoError(t, err)

	assert.Equal(t, byte(1), envelope[0])
	ivLen := int(envelope[1]) | int(envelope[2])<<8
	assert.Equal(t, 16, ivLen)

	decrypted, err := dec.DecryptBytes(envelope)
	require.NoError(t, err)
	assert.Equal(t, plain, decrypted)
}

// TestEncryptDecryptStringRoundTrip checks that decrypting an encrypted
// UTF-8 string recovers it exactly.
func TestEncryptDecryptStringRoundTrip(t *testing.T) {
	cred, err := NewCredential("c", TripleDES, make([]byte, 24), 8)
	require.NoError(t, err)
	enc := NewEncryptor(cred)
	dec := NewDecryptor(cred)

	plain := "héllo, wörld"
	envelope, err := enc.EncryptString(plain)
	require.NoError(t, err)

	decrypted, err := dec.DecryptString(envelope)
	require.NoError(t, err)
	assert.Equal(t, plain, decrypted)
}

// TestEncryptBytesIVFreshness checks that two encryptions of identical
// plaintext under the same credential produce different envelopes.
func TestEncryptBytesIVFreshness(t *testing.T) {
	cred, err := NewCredential("c", AES, make([]byte, 16), 16)
	require.NoError(t, err)
	enc := NewEncryptor(cred)

	plain := []byte("identical plaintext")
	a, err := enc.EncryptBytes(plain)
	require.NoError(t, err)
	b, err := enc.EncryptBytes(plain)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// TestEncryptBytesSatisfiesIsEnveloped checks that every output of
// EncryptBytes passes the isEnveloped shape probe.
func TestEncryptBytesSatisfiesIsEnveloped(t *testing.T) {
	cred, err := NewCredential("c", AES, make([]byte, 16), 16)
	require.NoError(t, err)
	enc := NewEncryptor(cred)
	envelope, err := enc.EncryptBytes([]byte("x"))
	require.NoError(t, err)
	assert.True(t, isEnveloped(envelope))
}

// TestDecryptBytesVersionCheck checks that an envelope with an
// unrecognized version byte fails with UnsupportedProtocol.
func TestDecryptBytesVersionCheck(t *testing.T) {
	cred, err := NewCredential("c", AES, make([]byte, 16), 16)
	require.NoError(t, err)
	dec := NewDecryptor(cred)

	bad := append([]byte{0x02, 16, 0}, make([]byte, 32)...)
	_, err = dec.DecryptBytes(bad)
	require.Error(t, err)
	assert.True(t, Is(UnsupportedProtocol, err))
}

func TestDecryptBytesRejectsMismatchedIVSize(t *testing.T) {
	aesCred, err := NewCredential("c", AES, make([]byte, 16), 16)
	require.NoError(t, err)
	desCred, err := NewCredential("d", DES, make([]byte, 8), 8)
	require.NoError(t, err)

	envelope, err := NewEncryptor(aesCred).EncryptBytes([]byte("x"))
	require.NoError(t, err)

	_, err = NewDecryptor(desCred).DecryptBytes(envelope)
	require.Error(t, err)
	assert.True(t, Is(CipherError, err))
}

func TestDecryptStringRejectsInvalidBase64(t *testing.T) {
	cred, err := NewCredential("c", AES, make([]byte, 16), 16)
	require.NoError(t, err)
	_, err = NewDecryptor(cred).DecryptString("not valid base64!!")
	require.Error(t, err)
	assert.True(t, Is(CipherError, err))
}
