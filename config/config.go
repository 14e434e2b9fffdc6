// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config builds a credential registry from an external,
// serialization-agnostic list of credential records — the boundary between
// this module and whatever loads its configuration (JSON, YAML, a flag
// file, ...). Load parses the flat record list, validates it, and hands
// back a ready-to-use registry rather than a package-level global.
package config

import (
	"encoding/base64"

	"github.com/grailbio/credcrypt/crypto/encryption"
	"github.com/grailbio/credcrypt/log"
)

// CredentialRecord is one entry of the external credential list this
// package loads. Algorithm is the credential's canonical algorithm name
// ("AES", "DES", "RC2", "Rijndael", "TripleDES" — see
// encryption.ParseAlgorithm); KeyBase64 is the raw key material, standard
// Base64-encoded; at most one record in a list may set Default.
type CredentialRecord struct {
	Name      string
	Algorithm string
	KeyBase64 string
	IVSize    int
	Default   bool
}

// Load validates records and builds the encryption.Registry they describe.
// It fails fast — before constructing any Credential — if more than one
// record sets Default, and it fails on the first record whose Algorithm
// name is unrecognized or names RC2 (which is enumerated but never
// constructible: see encryption.NewCredential), whose KeyBase64 does not
// decode, or whose key length or IVSize does not match its algorithm.
func Load(records []CredentialRecord) (*encryption.Registry, error) {
	defaults := 0
	for _, r := range records {
		if r.Default {
			defaults++
		}
	}
	if defaults > 1 {
		return nil, encryption.E(encryption.Other, "config: more than one record sets Default")
	}

	registry := encryption.NewRegistry()
	for _, r := range records {
		algorithm, ok := encryption.ParseAlgorithm(r.Algorithm)
		if !ok {
			return nil, encryption.E(encryption.UnknownAlgorithm, "config: unrecognized algorithm", r.Algorithm)
		}
		key, err := base64.StdEncoding.DecodeString(r.KeyBase64)
		if err != nil {
			return nil, encryption.E(encryption.CipherError, "config: invalid base64 key material", r.Name, err)
		}
		cred, err := encryption.NewCredential(r.Name, algorithm, key, r.IVSize)
		if err != nil {
			return nil, err
		}
		if err := registry.Add(cred, r.Default); err != nil {
			return nil, err
		}
		log.Debug.Printf("config: loaded credential %q (%s, default=%v)", r.Name, algorithm, r.Default)
	}
	return registry, nil
}
