// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package encryption

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEBasic(t *testing.T) {
	err := E(CipherError, "bad padding", "credA")
	e, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, CipherError, e.Kind)
	assert.Equal(t, "bad padding", e.Message)
	assert.Equal(t, "credA", e.Arg)
	assert.Contains(t, err.Error(), "bad padding")
	assert.Contains(t, err.Error(), "credA")
	assert.Contains(t, err.Error(), "cipher error")
}

func TestEWrapsError(t *testing.T) {
	cause := errors.New("underlying")
	err := E(Truncated, "short read", cause)
	assert.True(t, Is(Truncated, err))
	assert.ErrorIs(t, err, cause)
}

func TestEInheritsInnerKind(t *testing.T) {
	inner := E(UnsupportedProtocol, "bad version")
	outer := E("wrapped", inner)
	e := outer.(*Error)
	assert.Equal(t, UnsupportedProtocol, e.Kind)
	assert.True(t, Is(UnsupportedProtocol, outer))
}

func TestEPanicsOnUnsupportedType(t *testing.T) {
	assert.Panics(t, func() { E(42) })
	assert.Panics(t, func() { E() })
}

func TestIsUnwrapsChain(t *testing.T) {
	innermost := E(CipherError, "bad key")
	middle := E(Other, innermost)
	assert.True(t, Is(CipherError, middle))
	assert.False(t, Is(Truncated, middle))
	assert.False(t, Is(CipherError, errors.New("plain")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "cipher error", CipherError.String())
	assert.Equal(t, "unknown error", Kind(999).String())
}
