// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package encryption

import (
	"bytes"
	"encoding/base64"
)

// Encryptor performs single-shot byte and string encryption against one
// Credential. It is safe to reuse across calls and across goroutines: it
// holds only an immutable reference to its Credential.
type Encryptor struct {
	cred *Credential
}

// NewEncryptor returns an Encryptor bound to cred.
func NewEncryptor(cred *Credential) *Encryptor {
	return &Encryptor{cred: cred}
}

// EncryptBytes encrypts plain and returns a self-describing envelope: a
// freshly drawn IV is framed by the header (see writeHeader), followed by
// plain's CBC/PKCS#7 ciphertext under the encryptor's credential.
func (e *Encryptor) EncryptBytes(plain []byte) ([]byte, error) {
	block, err := newBlock(e.cred.algorithm, e.cred.key)
	if err != nil {
		return nil, err
	}
	iv, err := generateIV(e.cred.ivSize)
	if err != nil {
		return nil, E(CipherError, "failed to generate IV", err)
	}
	var buf bytes.Buffer
	if _, err := writeHeader(&buf, iv); err != nil {
		return nil, E(CipherError, "failed to write envelope header", err)
	}
	buf.Write(cbcEncrypt(block, iv, plain))
	return buf.Bytes(), nil
}

// EncryptString encodes plain as UTF-8, encrypts it, and returns the
// envelope Base64-encoded with the standard alphabet and padding.
func (e *Encryptor) EncryptString(plain string) (string, error) {
	envelope, err := e.EncryptBytes([]byte(plain))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(envelope), nil
}

// Decryptor performs single-shot byte and string decryption against one
// Credential. Like Encryptor, it is stateless between calls and safe to
// reuse concurrently.
type Decryptor struct {
	cred *Credential
}

// NewDecryptor returns a Decryptor bound to cred.
func NewDecryptor(cred *Credential) *Decryptor {
	return &Decryptor{cred: cred}
}

// DecryptBytes reads envelope's header to recover the IV, then decrypts
// the remaining bytes under the decryptor's credential. Failure to parse
// the header surfaces as UnsupportedProtocol or Truncated; failure of the
// underlying cipher transform (bad padding, bad block alignment) surfaces
// as CipherError.
func (d *Decryptor) DecryptBytes(envelope []byte) ([]byte, error) {
	r := bytes.NewReader(envelope)
	iv, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if len(iv) != d.cred.ivSize {
		return nil, E(CipherError, "IV length does not match credential")
	}
	block, err := newBlock(d.cred.algorithm, d.cred.key)
	if err != nil {
		return nil, err
	}
	ciphertext := make([]byte, r.Len())
	if _, err := r.Read(ciphertext); err != nil {
		return nil, E(Truncated, "failed to read ciphertext", err)
	}
	return cbcDecrypt(block, iv, ciphertext)
}

// DecryptString Base64-decodes s, decrypts the result, and decodes the
// plaintext as UTF-8.
func (d *Decryptor) DecryptString(s string) (string, error) {
	envelope, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", E(CipherError, "failed to decode base64 envelope", err)
	}
	plain, err := d.DecryptBytes(envelope)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
