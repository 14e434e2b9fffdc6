// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package encryption

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
)

// randSource is the io.Reader new IVs are drawn from. It is a package
// variable so that SetRandSource can substitute a deterministic source in
// tests without threading a generator through every call.
var randSource io.Reader = rand.Reader

// SetRandSource overrides the random source used to generate IVs. It is
// intended for tests and must not be called concurrently with encryption.
func SetRandSource(r io.Reader) {
	randSource = r
}

// ivPool hands out reusable byte buffers sized for IV generation, one per
// logical "worker" (goroutine). sync.Pool's per-P recycling is Go's
// contention-free analogue of a thread-local handle: each goroutine that
// calls generateIV gets a buffer without contending with others, and the
// pool reclaims buffers it no longer needs under memory pressure.
var ivPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, maxIVSize)
		return &b
	},
}

// maxIVSize is large enough for every algorithm's block size (the largest
// defined IV size is AES/Rijndael's 16 bytes).
const maxIVSize = 16

// generateIV draws n cryptographically strong random bytes from randSource
// for use as an IV. n must not exceed maxIVSize.
func generateIV(n int) ([]byte, error) {
	if n > maxIVSize {
		return nil, fmt.Errorf("requested IV size %d exceeds maximum %d", n, maxIVSize)
	}
	bufp := ivPool.Get().(*[]byte)
	defer ivPool.Put(bufp)
	scratch := (*bufp)[:n]
	read, err := io.ReadFull(randSource, scratch)
	if err != nil {
		return nil, fmt.Errorf("failed to read %d bytes of random data: %w", n, err)
	}
	if read != n {
		return nil, fmt.Errorf("short IV read: got %d, want %d", read, n)
	}
	iv := make([]byte, n)
	copy(iv, scratch)
	return iv, nil
}
