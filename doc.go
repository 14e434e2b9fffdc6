// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package credcrypt provides a credential-keyed encryption facade on top
// of crypto/encryption's registry, cipher adapter, and envelope codec, plus
// a field-level engine (see the field package) that rewrites selected
// nodes of an XML or JSON document through that same pipeline.
//
// # Basic usage
//
//	registry := encryption.NewRegistry()
//	cred, _ := encryption.NewCredential("primary", encryption.AES, key, 16)
//	_ = registry.Add(cred, true)
//
//	c := credcrypt.New(registry)
//	envelope, _ := c.EncryptString("hello", "")
//	plain, _ := c.DecryptString(envelope, "")
//
// # Concurrency
//
// A Crypto value is safe for concurrent use: the registry it wraps is
// immutable once built, and Encryptor/Decryptor handles hold only a
// reference to an immutable Credential.
package credcrypt
