// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package encryption implements a credential-keyed symmetric encryption
// pipeline: a closed set of block cipher algorithms, a registry that binds
// logical credential names to key material and an algorithm, and a
// self-describing cipher-text envelope that carries its own IV inline.
//
// Credentials are opaque: key management and rotation are the caller's
// responsibility. This package only consumes key material already present
// in a Credential; it never derives, stores, or rotates keys.
//
// Encrypted output uses the following format:
//
//	version (1 byte)    = 0x01
//	ivLength (2 bytes)  little-endian uint16
//	iv (ivLength bytes)
//	ciphertext (remainder, block-aligned per the algorithm's padding)
//
// Only version 1 is defined. ivLength is 8 for DES/TripleDES (and the
// reserved, never-constructible RC2 tag) or 16 for AES/Rijndael.
package encryption
