// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package field

import "context"

// EncryptXMLContext is EncryptXML's cancellable variant. ctx is checked
// before every per-field crypto call; observing cancellation aborts the
// traversal and returns a Canceled error, leaving the (possibly partially
// rewritten) document tree unpublished. This is the one place in the
// package where suspension genuinely belongs — a remote cipher provider
// backing CryptoProvider could block here — unlike the synchronous
// entry points, which never suspend.
func EncryptXMLContext(ctx context.Context, crypto CryptoProvider, doc string, paths []string, name string) (string, error) {
	return encryptXML(ctx, crypto, doc, paths, name)
}

// DecryptXMLContext is DecryptXML's cancellable variant. See EncryptXMLContext.
func DecryptXMLContext(ctx context.Context, crypto CryptoProvider, doc string, paths []string, name string) (string, error) {
	return decryptXML(ctx, crypto, doc, paths, name)
}

// EncryptJSONContext is EncryptJSON's cancellable variant. See EncryptXMLContext.
func EncryptJSONContext(ctx context.Context, crypto CryptoProvider, doc string, paths []string, name string) (string, error) {
	return encryptJSON(ctx, crypto, doc, paths, name)
}

// DecryptJSONContext is DecryptJSON's cancellable variant. See EncryptXMLContext.
func DecryptJSONContext(ctx context.Context, crypto CryptoProvider, doc string, paths []string, name string) (string, error) {
	return decryptJSON(ctx, crypto, doc, paths, name)
}
