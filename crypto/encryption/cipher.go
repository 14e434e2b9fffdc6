// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package encryption

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
)

// allAlgorithmNames lists every member of the closed Algorithm enumeration,
// in declaration order, for use in UnknownAlgorithm error messages.
var allAlgorithmNames = []string{"AES", "DES", "RC2", "Rijndael", "TripleDES"}

// newBlock returns a cipher.Block for the given algorithm and key, sized
// according to key. It fails with UnknownAlgorithm if algorithm is outside
// the closed enumeration or is RC2 (no Go implementation exists), and with
// CipherError if key is not a valid length for algorithm.
func newBlock(algorithm Algorithm, key []byte) (cipher.Block, error) {
	if !validAlgorithm(algorithm) {
		return nil, E(UnknownAlgorithm, "algorithm not in "+joinNames(allAlgorithmNames))
	}
	if algorithm == RC2 {
		return nil, E(UnknownAlgorithm, "RC2 has no available implementation; valid algorithms are "+joinNames(allAlgorithmNames))
	}
	if !validKeySize(algorithm, len(key)) {
		return nil, E(CipherError, "invalid key size for "+algorithm.String())
	}
	switch algorithm {
	case AES, Rijndael:
		return aes.NewCipher(key)
	case DES:
		return des.NewCipher(key)
	case TripleDES:
		return des.NewTripleDESCipher(key)
	default:
		return nil, E(UnknownAlgorithm, "algorithm not in "+joinNames(allAlgorithmNames))
	}
}

// ivSize returns the block (and therefore IV) size, in bytes, for algorithm.
func ivSize(algorithm Algorithm) int {
	return blockSizes[algorithm]
}

// pkcs7Pad pads src to a multiple of blockSize using PKCS#7 padding. No
// ecosystem library in the example corpus implements raw PKCS#7 byte
// padding (as opposed to PKCS#7/CMS message envelopes); this is a small,
// self-contained routine rather than a dependency.
func pkcs7Pad(src []byte, blockSize int) []byte {
	padLen := blockSize - len(src)%blockSize
	padding := bytes.Repeat([]byte{byte(padLen)}, padLen)
	return append(src, padding...)
}

// pkcs7Unpad removes PKCS#7 padding from src, which must be a non-empty
// multiple of blockSize. It fails with CipherError if the padding is
// malformed.
func pkcs7Unpad(src []byte, blockSize int) ([]byte, error) {
	n := len(src)
	if n == 0 || n%blockSize != 0 {
		return nil, E(CipherError, "ciphertext is not block-aligned")
	}
	padLen := int(src[n-1])
	if padLen == 0 || padLen > blockSize || padLen > n {
		return nil, E(CipherError, "invalid padding")
	}
	for _, b := range src[n-padLen:] {
		if int(b) != padLen {
			return nil, E(CipherError, "invalid padding")
		}
	}
	return src[:n-padLen], nil
}

// cbcEncrypt pads plaintext with PKCS#7 and encrypts it with block in CBC
// mode under iv, returning the ciphertext.
func cbcEncrypt(block cipher.Block, iv, plaintext []byte) []byte {
	padded := pkcs7Pad(plaintext, block.BlockSize())
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return ciphertext
}

// cbcDecrypt decrypts ciphertext with block in CBC mode under iv and
// removes its PKCS#7 padding.
func cbcDecrypt(block cipher.Block, iv, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%block.BlockSize() != 0 {
		return nil, E(CipherError, "ciphertext is not block-aligned")
	}
	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)
	return pkcs7Unpad(plain, block.BlockSize())
}
