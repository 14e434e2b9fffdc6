// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package credcrypt

import "github.com/grailbio/credcrypt/crypto/encryption"

// Crypto is the top-level facade: it resolves a credential name to an
// Encryptor/Decryptor pair and exposes one-shot encrypt/decrypt
// convenience methods. encrypt/decrypt calls carry no state across calls;
// concurrent calls on the same Crypto are independent of one another.
type Crypto interface {
	// EncryptBytes encrypts plain under the named credential (the default
	// credential if name is empty).
	EncryptBytes(plain []byte, name string) ([]byte, error)
	// DecryptBytes decrypts envelope under the named credential.
	DecryptBytes(envelope []byte, name string) ([]byte, error)
	// EncryptString encrypts plain and returns a Base64 envelope.
	EncryptString(plain string, name string) (string, error)
	// DecryptString decrypts a Base64 envelope produced by EncryptString.
	DecryptString(s string, name string) (string, error)

	// GetEncryptor returns an Encryptor bound to the named credential.
	GetEncryptor(name string) (*encryption.Encryptor, error)
	// GetDecryptor returns a Decryptor bound to the named credential.
	GetDecryptor(name string) (*encryption.Decryptor, error)

	// CanEncrypt reports whether GetEncryptor(name) would succeed.
	CanEncrypt(name string) bool
	// CanDecrypt reports whether GetDecryptor(name) would succeed.
	CanDecrypt(name string) bool
}

// crypto is the sole implementation of Crypto. It is a thin wrapper around
// a *encryption.Registry that delegates each operation to the Encryptor or
// Decryptor the registry's credential resolves to.
type crypto struct {
	registry *encryption.Registry
}

// New returns a Crypto backed by registry. registry must not be mutated
// after it is passed to New.
func New(registry *encryption.Registry) Crypto {
	return &crypto{registry: registry}
}

func (c *crypto) GetEncryptor(name string) (*encryption.Encryptor, error) {
	cred, err := c.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return encryption.NewEncryptor(cred), nil
}

func (c *crypto) GetDecryptor(name string) (*encryption.Decryptor, error) {
	cred, err := c.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return encryption.NewDecryptor(cred), nil
}

func (c *crypto) CanEncrypt(name string) bool { return c.registry.CanEncrypt(name) }
func (c *crypto) CanDecrypt(name string) bool { return c.registry.CanDecrypt(name) }

func (c *crypto) EncryptBytes(plain []byte, name string) ([]byte, error) {
	enc, err := c.GetEncryptor(name)
	if err != nil {
		return nil, err
	}
	return enc.EncryptBytes(plain)
}

func (c *crypto) DecryptBytes(envelope []byte, name string) ([]byte, error) {
	dec, err := c.GetDecryptor(name)
	if err != nil {
		return nil, err
	}
	return dec.DecryptBytes(envelope)
}

func (c *crypto) EncryptString(plain string, name string) (string, error) {
	enc, err := c.GetEncryptor(name)
	if err != nil {
		return "", err
	}
	return enc.EncryptString(plain)
}

func (c *crypto) DecryptString(s string, name string) (string, error) {
	dec, err := c.GetDecryptor(name)
	if err != nil {
		return "", err
	}
	return dec.DecryptString(s)
}
