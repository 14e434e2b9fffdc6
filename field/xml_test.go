// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package field

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/credcrypt/crypto/encryption"
)

func parseXML(t *testing.T, doc string) *xmlquery.Node {
	t.Helper()
	n, err := xmlquery.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return n
}

// TestXMLFieldRoundTrip checks that encrypting a leaf element leaves its
// sibling untouched, and that decrypting the same path recovers the
// original document.
func TestXMLFieldRoundTrip(t *testing.T) {
	crypto := newTestCrypto(t)
	doc := `<r><a>secret</a><b>visible</b></r>`

	encrypted, err := EncryptXML(crypto, doc, []string{"/r/a"}, "")
	require.NoError(t, err)

	root := parseXML(t, encrypted)
	bNode := xmlquery.FindOne(root, "/r/b")
	require.NotNil(t, bNode)
	assert.Equal(t, "visible", bNode.InnerText())

	aNode := xmlquery.FindOne(root, "/r/a")
	require.NotNil(t, aNode)
	assert.NotEqual(t, "secret", aNode.InnerText())

	decrypted, err := DecryptXML(crypto, encrypted, []string{"/r/a"}, "")
	require.NoError(t, err)

	finalRoot := parseXML(t, decrypted)
	finalA := xmlquery.FindOne(finalRoot, "/r/a")
	require.NotNil(t, finalA)
	assert.Equal(t, "secret", finalA.InnerText())
}

// TestXMLFieldElementChildren checks the "has element children" branch:
// the inner markup, not just the concatenated text, is what gets
// encrypted and later restored.
func TestXMLFieldElementChildren(t *testing.T) {
	crypto := newTestCrypto(t)
	doc := `<r><a><inner>v1</inner><inner>v2</inner></a></r>`

	encrypted, err := EncryptXML(crypto, doc, []string{"/r/a"}, "")
	require.NoError(t, err)

	root := parseXML(t, encrypted)
	aNode := xmlquery.FindOne(root, "/r/a")
	require.NotNil(t, aNode)
	assert.False(t, hasElementChildren(aNode), "children should have collapsed to a single text node")

	decrypted, err := DecryptXML(crypto, encrypted, []string{"/r/a"}, "")
	require.NoError(t, err)

	finalRoot := parseXML(t, decrypted)
	inners := xmlquery.FindOne(finalRoot, "/r/a")
	require.NotNil(t, inners)
	assert.Equal(t, "v1v2", inners.InnerText())
}

// TestXMLFieldNoMatch checks that a path matching nothing leaves the
// document unchanged.
func TestXMLFieldNoMatch(t *testing.T) {
	crypto := newTestCrypto(t)
	doc := `<r><a>x</a></r>`
	out, err := EncryptXML(crypto, doc, []string{"/r/missing"}, "")
	require.NoError(t, err)
	root := parseXML(t, out)
	a := xmlquery.FindOne(root, "/r/a")
	require.NotNil(t, a)
	assert.Equal(t, "x", a.InnerText())
}

func TestXMLFieldNoPaths(t *testing.T) {
	crypto := newTestCrypto(t)
	_, err := EncryptXML(crypto, `<r/>`, nil, "")
	require.Error(t, err)
	assert.True(t, encryption.Is(encryption.NoPaths, err))
}

func TestXMLFieldInvalidPath(t *testing.T) {
	crypto := newTestCrypto(t)
	_, err := EncryptXML(crypto, `<r><a>x</a></r>`, []string{"/r/a", ""}, "")
	require.Error(t, err)
	assert.True(t, encryption.Is(encryption.InvalidPath, err))
}
