// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package encryption

// Algorithm identifies one of the closed set of symmetric cipher algorithms
// a Credential may name. New code should prefer AES; the remaining tags are
// retained only for compatibility with cipher-text produced by legacy
// credentials.
type Algorithm uint8

const (
	// AES selects AES (Rijndael-128) in CBC mode, 16-byte IV.
	AES Algorithm = iota
	// DES selects single-key DES in CBC mode, 8-byte IV.
	DES
	// RC2 is retained for enumeration completeness only: no Go
	// implementation is available, and constructing a Credential that
	// names it fails immediately (see NewCredential).
	RC2
	// Rijndael is an alias for AES: the 128-bit-block variant of Rijndael
	// is AES itself, and no Go library implements Rijndael's variable
	// block-size superset.
	Rijndael
	// TripleDES selects 3DES (EDE, 24-byte key) in CBC mode, 8-byte IV.
	TripleDES
)

var algorithmNames = map[Algorithm]string{
	AES:       "AES",
	DES:       "DES",
	RC2:       "RC2",
	Rijndael:  "Rijndael",
	TripleDES: "TripleDES",
}

// String returns the canonical name of a, or "Algorithm(unknown)" if a is
// outside the closed enumeration.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "Algorithm(unknown)"
}

// ParseAlgorithm maps a canonical algorithm name to its tag. It is
// case-sensitive, matching the credential registry's treatment of names
// elsewhere in this package.
func ParseAlgorithm(name string) (Algorithm, bool) {
	for tag, n := range algorithmNames {
		if n == name {
			return tag, true
		}
	}
	return 0, false
}

// keySizes lists the valid key lengths, in bytes, for each algorithm.
var keySizes = map[Algorithm][]int{
	AES:       {16, 24, 32},
	DES:       {8},
	Rijndael:  {16, 24, 32},
	TripleDES: {24},
}

// blockSizes lists the block size (and therefore IV size) in bytes for each
// algorithm.
var blockSizes = map[Algorithm]int{
	AES:       16,
	DES:       8,
	Rijndael:  16,
	TripleDES: 8,
}

// validKeySize reports whether n is a valid key length for a.
func validKeySize(a Algorithm, n int) bool {
	for _, s := range keySizes[a] {
		if s == n {
			return true
		}
	}
	return false
}

// validAlgorithm reports whether a is a member of the closed enumeration.
func validAlgorithm(a Algorithm) bool {
	_, ok := algorithmNames[a]
	return ok
}
