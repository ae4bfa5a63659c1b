// seehuhn.de/go/vrcmeta - VRChat photo metadata in PNG files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Signature is the 8-byte sequence at the start of every PNG file.
const Signature = "\x89PNG\r\n\x1a\n"

// IsPNG reports whether buf starts with the PNG signature.
func IsPNG(buf []byte) bool {
	return len(buf) >= len(Signature) && string(buf[:len(Signature)]) == Signature
}

// Parse splits a PNG file into chunks.
//
// Parsing stops after the IEND chunk or at the end of the buffer, whichever
// comes first.  Data following the IEND chunk is ignored.  A missing
// signature or a truncated chunk cause a [FormatError].
//
// Chunks with a checksum mismatch are returned as they are; use
// [Chunk.IsValid] to detect them, or use [ParseStrict] instead.
func Parse(buf []byte) ([]Chunk, error) {
	return parse(buf, false)
}

// ParseStrict is like [Parse], but fails with a [FormatError] if any chunk
// has a checksum mismatch.
func ParseStrict(buf []byte) ([]Chunk, error) {
	return parse(buf, true)
}

func parse(buf []byte, strict bool) ([]Chunk, error) {
	if !IsPNG(buf) {
		return nil, errNoSignature
	}

	var chunks []Chunk
	pos := len(Signature)
	for pos < len(buf) {
		if len(buf)-pos < chunkOverhead {
			return nil, FormatError(fmt.Sprintf("truncated chunk header at offset %d", pos))
		}
		dataLen := binary.BigEndian.Uint32(buf[pos : pos+4])
		tp := string(buf[pos+4 : pos+8])
		if dataLen > maxDataLen {
			return nil, FormatError(fmt.Sprintf("%q chunk at offset %d: invalid length %d", tp, pos, dataLen))
		}
		end := pos + chunkOverhead + int(dataLen)
		if end > len(buf) || end < pos {
			return nil, FormatError(fmt.Sprintf("%q chunk at offset %d is truncated", tp, pos))
		}

		c := Chunk{raw: bytes.Clone(buf[pos:end])}
		if strict && !c.IsValid() {
			return nil, FormatError(fmt.Sprintf("%q chunk at offset %d: checksum mismatch", tp, pos))
		}
		chunks = append(chunks, c)
		pos = end

		if tp == TypeIEND {
			break
		}
	}
	return chunks, nil
}

// Serialize writes the PNG signature followed by the given chunks.
//
// The chunks are written exactly as they are, in the order given.  No check
// is made that the result is a valid PNG file.
func Serialize(chunks []Chunk) []byte {
	n := len(Signature)
	for _, c := range chunks {
		n += len(c.raw)
	}
	buf := make([]byte, 0, n)
	buf = append(buf, Signature...)
	for _, c := range chunks {
		buf = append(buf, c.raw...)
	}
	return buf
}

// FormatError reports that the input is not a valid PNG file.
type FormatError string

func (e FormatError) Error() string {
	return "png: invalid format: " + string(e)
}

// ErrInvalidArgument is returned when a function is called with an invalid
// argument, for example a chunk type which is not four bytes long.
var ErrInvalidArgument = errors.New("invalid argument")

var errNoSignature = FormatError("missing PNG signature")
