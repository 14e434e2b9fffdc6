// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package encryption

import "sync"

// Credential binds a caller-visible name to key material and the algorithm
// it is used with. Name is a label, never a secret: it is neither the key
// nor derived from it. A Credential's KeyMaterial must be a valid key
// length for its Algorithm; NewCredential enforces this.
type Credential struct {
	name      string
	algorithm Algorithm
	key       []byte
	ivSize    int
}

// NewCredential validates and constructs a Credential. It fails with
// UnknownAlgorithm if algorithm is outside the closed enumeration or is
// RC2 (see Algorithm), and with CipherError if key is not a valid length
// for algorithm or ivSize is not the algorithm's block size.
func NewCredential(name string, algorithm Algorithm, key []byte, ivSize int) (*Credential, error) {
	if !validAlgorithm(algorithm) {
		return nil, E(UnknownAlgorithm, "algorithm not in "+joinNames(allAlgorithmNames))
	}
	if algorithm == RC2 {
		return nil, E(UnknownAlgorithm, "RC2 has no available implementation")
	}
	if !validKeySize(algorithm, len(key)) {
		return nil, E(CipherError, "invalid key length for "+algorithm.String(), name)
	}
	if ivSize != blockSizes[algorithm] {
		return nil, E(CipherError, "invalid IV size for "+algorithm.String(), name)
	}
	return &Credential{name: name, algorithm: algorithm, key: append([]byte(nil), key...), ivSize: ivSize}, nil
}

// Name returns the credential's caller-visible name.
func (c *Credential) Name() string { return c.name }

// Algorithm returns the credential's algorithm.
func (c *Credential) Algorithm() Algorithm { return c.algorithm }

// Registry is an immutable, concurrency-safe mapping from credential name
// to Credential, built once at startup. A nil or empty name passed to Get
// resolves to the registry's default credential, if one was designated.
//
// Callers construct and hold a Registry value explicitly rather than
// reaching for a package-level global; the ambient, process-wide accessor
// lives separately in the top-level credcrypt package for callers that
// genuinely need one.
type Registry struct {
	mu          sync.RWMutex
	credentials map[string]*Credential
	defaultName string
	hasDefault  bool
}

// NewRegistry builds an empty, mutable-until-returned Registry. Use Add to
// populate it, then treat the result as immutable: Registry's exported
// methods are safe for concurrent read-only use once construction is
// finished, but Add itself is not safe to call concurrently with Get.
func NewRegistry() *Registry {
	return &Registry{credentials: make(map[string]*Credential)}
}

// Add registers cred under its own name. If isDefault is true, cred also
// becomes the registry's default credential. Add fails if a credential
// with the same name is already registered, or if a default is already
// designated and isDefault is true for a second time.
func (r *Registry) Add(cred *Credential, isDefault bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.credentials[cred.name]; exists {
		return E(Other, "duplicate credential name", cred.name)
	}
	if isDefault && r.hasDefault {
		return E(Other, "registry already has a default credential")
	}
	r.credentials[cred.name] = cred
	if isDefault {
		r.defaultName = cred.name
		r.hasDefault = true
	}
	return nil
}

// Get returns the credential named name. An empty name resolves to the
// registry's default credential. Get fails with CredentialNotFound if name
// is non-empty and absent, or if name is empty and no default was
// designated.
func (r *Registry) Get(name string) (*Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name == "" {
		if !r.hasDefault {
			return nil, E(CredentialNotFound, "no default credential configured")
		}
		name = r.defaultName
	}
	cred, ok := r.credentials[name]
	if !ok {
		return nil, E(CredentialNotFound, "credential not registered", name)
	}
	return cred, nil
}

// CanEncrypt reports whether Get(name) would succeed. It exists separately
// from CanDecrypt so that a future registry implementation may authorize
// the two operations asymmetrically; today they are equivalent.
func (r *Registry) CanEncrypt(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

// CanDecrypt reports whether Get(name) would succeed. See CanEncrypt.
func (r *Registry) CanDecrypt(name string) bool {
	_, err := r.Get(name)
	return err == nil
}
