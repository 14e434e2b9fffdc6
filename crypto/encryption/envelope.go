// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package encryption

import (
	"encoding/binary"
	"fmt"
	"io"
)

// protocolVersion is the only envelope version this package writes or
// understands.
const protocolVersion = uint8(1)

// writeHeader writes the envelope header — one version byte, a
// little-endian uint16 IV length, then the IV itself — to w.
func writeHeader(w io.Writer, iv []byte) (int64, error) {
	var n int64
	if err := binary.Write(w, binary.LittleEndian, protocolVersion); err != nil {
		return n, fmt.Errorf("failed to write protocol version: %w", err)
	}
	n++
	if len(iv) > 0xFFFF {
		return n, fmt.Errorf("IV too long: %d bytes", len(iv))
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(iv))); err != nil {
		return n, fmt.Errorf("failed to write IV length: %w", err)
	}
	n += 2
	written, err := w.Write(iv)
	n += int64(written)
	if err != nil {
		return n, fmt.Errorf("failed to write IV: %w", err)
	}
	return n, nil
}

// readHeader reads an envelope header from r and returns the IV it framed.
// It fails with UnsupportedProtocol if the version byte is not 1, and with
// Truncated if r is short of the declared IV length (or of the header
// itself).
func readHeader(r io.Reader) (iv []byte, err error) {
	var version uint8
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, E(Truncated, "failed to read protocol version", err)
	}
	if version != protocolVersion {
		return nil, E(UnsupportedProtocol, fmt.Sprintf("unsupported envelope version %d", version))
	}
	var ivLen uint16
	if err := binary.Read(r, binary.LittleEndian, &ivLen); err != nil {
		return nil, E(Truncated, "failed to read IV length", err)
	}
	iv = make([]byte, ivLen)
	if _, err := io.ReadFull(r, iv); err != nil {
		return nil, E(Truncated, "failed to read IV", err)
	}
	return iv, nil
}

// headerSize returns the number of bytes writeHeader produces for an IV of
// length n: one version byte, two length bytes, then the IV itself.
func headerSize(n int) int {
	return 3 + n
}

// validIVLen is the set of IV lengths this package's envelopes may declare;
// isEnveloped treats any other length as a negative shape match.
var validIVLen = map[int]bool{8: true, 16: true}

// isEnveloped reports whether b has the three-byte prefix shape of an
// envelope produced by Encryptor.EncryptBytes: version byte 1, followed by
// a little-endian uint16 IV length of 8 or 16, followed by at least that
// many bytes. This is a shape probe, not an authentication check: it may
// produce false positives on bytes that happen to match the prefix, and it
// never inspects ciphertext bytes.
func isEnveloped(b []byte) bool {
	if len(b) < 3 {
		return false
	}
	if b[0] != protocolVersion {
		return false
	}
	ivLen := int(binary.LittleEndian.Uint16(b[1:3]))
	if !validIVLen[ivLen] {
		return false
	}
	return len(b) >= headerSize(ivLen)
}
