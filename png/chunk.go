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

// Package png splits PNG files into chunks and joins chunks back into PNG
// files.
//
// The package does not decode image data.  It only knows about the
// container format: an 8-byte signature followed by a sequence of chunks,
// the last of which is an IEND chunk.  Each chunk consists of
//
//   - a 4-byte big-endian data length,
//   - a 4-byte chunk type, for example "IHDR",
//   - the chunk data,
//   - a 4-byte big-endian CRC-32 of the chunk type and data.
//
// See https://www.w3.org/TR/png/#5DataRep for details.
package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Chunk is a single PNG chunk.
//
// A Chunk holds the exact encoded bytes of the chunk and is never modified
// after construction.  Use [NewChunk] to create new chunks and [Parse] to
// read chunks from a PNG file.
type Chunk struct {
	raw []byte
}

// chunkOverhead is the number of bytes in a chunk which are not data:
// length, type and checksum.
const chunkOverhead = 12

// maxDataLen is the largest data length allowed by the PNG specification.
const maxDataLen = math.MaxInt32

// NewChunk creates a new chunk with the given type and data.  The length and
// checksum are computed automatically.
//
// The chunk type must be exactly four bytes long, otherwise
// [ErrInvalidArgument] is returned.
func NewChunk(tp string, data []byte) (Chunk, error) {
	if len(tp) != 4 {
		return Chunk{}, fmt.Errorf("%w: chunk type %q is not 4 bytes long",
			ErrInvalidArgument, tp)
	}
	if int64(len(data)) > maxDataLen {
		return Chunk{}, fmt.Errorf("%w: %d bytes of data for %s chunk",
			ErrInvalidArgument, len(data), tp)
	}

	raw := make([]byte, chunkOverhead+len(data))
	binary.BigEndian.PutUint32(raw[0:4], uint32(len(data)))
	copy(raw[4:8], tp)
	copy(raw[8:], data)
	binary.BigEndian.PutUint32(raw[len(raw)-4:], CRC(raw[4:len(raw)-4]))
	return Chunk{raw: raw}, nil
}

// Type returns the four-letter chunk type, for example "IHDR".
func (c Chunk) Type() string {
	if len(c.raw) < chunkOverhead {
		return ""
	}
	return string(c.raw[4:8])
}

// Data returns a copy of the chunk data.
func (c Chunk) Data() []byte {
	if len(c.raw) < chunkOverhead {
		return nil
	}
	return bytes.Clone(c.raw[8 : len(c.raw)-4])
}

// Len returns the data length stored in the length field of the chunk.
func (c Chunk) Len() int {
	if len(c.raw) < chunkOverhead {
		return 0
	}
	return int(binary.BigEndian.Uint32(c.raw[0:4]))
}

// CRC returns the checksum stored in the chunk.
func (c Chunk) CRC() uint32 {
	if len(c.raw) < chunkOverhead {
		return 0
	}
	return binary.BigEndian.Uint32(c.raw[len(c.raw)-4:])
}

// Bytes returns a copy of the encoded chunk, including the length, type and
// checksum fields.
func (c Chunk) Bytes() []byte {
	return bytes.Clone(c.raw)
}

// EncodedLen returns the number of bytes in the encoded chunk.
func (c Chunk) EncodedLen() int {
	return len(c.raw)
}

// IsValid reports whether the stored checksum matches the chunk type and
// data, and whether the stored length matches the number of data bytes.
func (c Chunk) IsValid() bool {
	if len(c.raw) < chunkOverhead {
		return false
	}
	if c.Len() != len(c.raw)-chunkOverhead {
		return false
	}
	return CRC(c.raw[4:len(c.raw)-4]) == c.CRC()
}

// IsAncillary reports whether the chunk is ancillary, i.e. whether a
// decoder may safely ignore it.
func (c Chunk) IsAncillary() bool {
	return IsAncillary(c.Type())
}

// Equal reports whether c and other have the same encoded bytes.
func (c Chunk) Equal(other Chunk) bool {
	return bytes.Equal(c.raw, other.raw)
}

func (c Chunk) String() string {
	return fmt.Sprintf("%s (%d bytes)", c.Type(), c.Len())
}

// IsAncillary reports whether tp is the type of an ancillary chunk.  These
// chunk types start with a lower-case letter.
func IsAncillary(tp string) bool {
	return len(tp) == 4 && tp[0]&0x20 != 0
}

// TypeIEND is the type of the chunk which ends a PNG file.
const TypeIEND = "IEND"
