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

package vrcmeta

import (
	"fmt"

	"seehuhn.de/go/vrcmeta/png"
)

// Decode reads the metadata from a PNG file held in memory.
//
// All chunks in the file must have correct checksums.  Use [DecodeLenient] to
// read metadata from files with damaged chunks.
func Decode(buf []byte) (*Metadata, error) {
	return decode(buf, png.ParseStrict)
}

// DecodeLenient is like [Decode], but ignores checksum errors.
func DecodeLenient(buf []byte) (*Metadata, error) {
	return decode(buf, png.Parse)
}

func decode(buf []byte, parse func([]byte) ([]png.Chunk, error)) (*Metadata, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrInvalidArgument)
	}
	chunks, err := parse(buf)
	if err != nil {
		return nil, err
	}
	return Extract(chunks)
}

// Encode returns a copy of the PNG file buf, with the metadata replaced by m.
//
// Existing metadata in buf is removed, even if the corresponding fields in m
// are nil.  All other chunks are copied unchanged.  On error, no data is
// returned.
func Encode(buf []byte, m *Metadata) ([]byte, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrInvalidArgument)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: missing metadata", ErrInvalidArgument)
	}
	chunks, err := png.ParseStrict(buf)
	if err != nil {
		return nil, err
	}
	chunks, err = Rebuild(chunks, m)
	if err != nil {
		return nil, err
	}
	return png.Serialize(chunks), nil
}

// Strip returns a copy of the PNG file buf with all metadata removed.
func Strip(buf []byte) ([]byte, error) {
	return Encode(buf, &Metadata{})
}
