// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package field

import (
	"context"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/grailbio/credcrypt/crypto/encryption"
)

// EncryptXML rewrites, under the credential name resolves to, every node
// each expression in paths selects in doc, and returns the rewritten
// document. An element with element children has its inner markup
// collapsed to a single encrypted text node; a leaf element has just its
// text value encrypted.
func EncryptXML(crypto CryptoProvider, doc string, paths []string, name string) (string, error) {
	return encryptXML(context.Background(), crypto, doc, paths, name)
}

// DecryptXML is EncryptXML's inverse: it decrypts every node each
// expression in paths selects. A node whose value was not actually
// produced by EncryptXML is left untouched rather than treated as an
// error: an identity decryption is not a failure.
func DecryptXML(crypto CryptoProvider, doc string, paths []string, name string) (string, error) {
	return decryptXML(context.Background(), crypto, doc, paths, name)
}

func encryptXML(ctx context.Context, crypto CryptoProvider, doc string, paths []string, name string) (string, error) {
	if err := validatePaths(paths); err != nil {
		return "", err
	}
	root, err := xmlquery.Parse(strings.NewReader(doc))
	if err != nil {
		return "", encryption.E(encryption.Other, "failed to parse XML document", err)
	}

	lazy := &lazyEncryptor{crypto: crypto, name: name}

	for _, path := range paths {
		nodes, err := xmlquery.QueryAll(root, path)
		if err != nil {
			return "", encryption.E(encryption.InvalidPath, "failed to evaluate XPath expression", path, err)
		}
		for i, n := range nodes {
			if err := ctx.Err(); err != nil {
				return "", wrapErr(path, i, encryption.E(encryption.Canceled, "context canceled"))
			}
			enc, err := lazy.get()
			if err != nil {
				return "", wrapErr(path, i, err)
			}
			var plain string
			if hasElementChildren(n) {
				plain = n.OutputXML(false)
			} else {
				plain = n.InnerText()
			}
			cipher, err := enc.EncryptString(plain)
			if err != nil {
				return "", wrapErr(path, i, err)
			}
			setElementText(n, cipher)
		}
	}
	return root.OutputXML(false), nil
}

func decryptXML(ctx context.Context, crypto CryptoProvider, doc string, paths []string, name string) (string, error) {
	if err := validatePaths(paths); err != nil {
		return "", err
	}
	root, err := xmlquery.Parse(strings.NewReader(doc))
	if err != nil {
		return "", encryption.E(encryption.Other, "failed to parse XML document", err)
	}

	lazy := &lazyDecryptor{crypto: crypto, name: name}

	for _, path := range paths {
		nodes, err := xmlquery.QueryAll(root, path)
		if err != nil {
			return "", encryption.E(encryption.InvalidPath, "failed to evaluate XPath expression", path, err)
		}
		for i, n := range nodes {
			if err := ctx.Err(); err != nil {
				return "", wrapErr(path, i, encryption.E(encryption.Canceled, "context canceled"))
			}
			dec, err := lazy.get()
			if err != nil {
				return "", wrapErr(path, i, err)
			}
			original := n.InnerText()
			plain, err := dec.DecryptString(original)
			if err != nil || plain == original {
				// Not an envelope this credential produced: leave the
				// node as-is rather than fail the whole traversal.
				continue
			}
			decryptElementValue(n, plain)
		}
	}
	return root.OutputXML(false), nil
}

// hasElementChildren reports whether n has at least one child that is
// itself an element (as opposed to only text/CDATA/comment children).
func hasElementChildren(n *xmlquery.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return true
		}
	}
	return false
}

// setElementText discards n's children and, if text is non-empty,
// replaces them with a single text node holding text. This is the
// encrypt-direction rewrite: every matched node, whatever it held before,
// becomes a single opaque text value.
func setElementText(n *xmlquery.Node, text string) {
	n.FirstChild = nil
	n.LastChild = nil
	if text == "" {
		return
	}
	child := &xmlquery.Node{
		Type:   xmlquery.TextNode,
		Data:   text,
		Parent: n,
	}
	n.FirstChild = child
	n.LastChild = child
}

// decryptElementValue assigns decrypted as n's content. It first tries to
// parse decrypted as inner XML markup (the shape EncryptXML produces for
// a node that had element children); if that fails to parse as XML it
// falls back to assigning decrypted as a literal text value.
func decryptElementValue(n *xmlquery.Node, decrypted string) {
	wrapped := "<credcrypt-field>" + decrypted + "</credcrypt-field>"
	doc, err := xmlquery.Parse(strings.NewReader(wrapped))
	if err != nil {
		setElementText(n, decrypted)
		return
	}
	wrapper := xmlquery.FindOne(doc, "//credcrypt-field")
	if wrapper == nil {
		setElementText(n, decrypted)
		return
	}
	n.FirstChild = nil
	n.LastChild = nil
	for c := wrapper.FirstChild; c != nil; {
		next := c.NextSibling
		c.Parent = n
		c.PrevSibling = nil
		c.NextSibling = nil
		if n.FirstChild == nil {
			n.FirstChild = c
		} else {
			n.LastChild.NextSibling = c
			c.PrevSibling = n.LastChild
		}
		n.LastChild = c
		c = next
	}
}
