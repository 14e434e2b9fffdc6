// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package field implements field-level encryption: given a document (XML
// or JSON) and an ordered, non-empty list of path expressions, it rewrites
// every node each expression matches through a credcrypt.Crypto's
// encrypt/decrypt pipeline, leaving the rest of the document untouched.
//
// XML paths are XPath 1.0 expressions evaluated with
// github.com/antchfx/xmlquery. JSON paths are JSONPath expressions
// ($-rooted) evaluated with this package's own minimal walker (see
// jsonpath.go) against the tree encoding/json produces.
//
// A credcrypt.Crypto is only asked for an Encryptor/Decryptor the first
// time some path actually matches; a document none of whose paths match is
// returned unchanged without ever touching the crypto layer.
package field
