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

import "seehuhn.de/go/vrcmeta/png"

// Rebuild replaces the metadata in a sequence of PNG chunks.
//
// All existing metadata chunks are removed, and chunks for the fields of m
// are inserted immediately before the final IEND chunk: first the date, then
// the world and the photographer, and finally one chunk per user, in the
// order of m.Users.  Nil fields produce no chunks.  All other chunks are kept
// in their original order.
//
// The argument chunks is not modified.  The last chunk must be an IEND chunk,
// otherwise a [png.FormatError] is returned.  If m fails [Metadata.Validate],
// an error wrapping [ErrInvalidArgument] is returned.
func Rebuild(chunks []png.Chunk, m *Metadata) ([]png.Chunk, error) {
	err := m.Validate()
	if err != nil {
		return nil, err
	}

	if len(chunks) == 0 || chunks[len(chunks)-1].Type() != png.TypeIEND {
		return nil, errNoIEND
	}
	for _, c := range chunks[:len(chunks)-1] {
		if c.Type() == png.TypeIEND {
			return nil, errMisplacedIEND
		}
	}

	var meta []png.Chunk
	add := func(tag, text string) error {
		c, err := png.NewChunk(tag, encodeText(text))
		if err != nil {
			return err
		}
		meta = append(meta, c)
		return nil
	}

	if m.Date != nil {
		err = add(TagDate, FormatDate(*m.Date))
		if err != nil {
			return nil, err
		}
	}
	if m.World != nil {
		err = add(TagWorld, *m.World)
		if err != nil {
			return nil, err
		}
	}
	if m.Photographer != nil {
		err = add(TagPhotographer, *m.Photographer)
		if err != nil {
			return nil, err
		}
	}
	for _, u := range m.Users {
		err = add(TagUser, u.String())
		if err != nil {
			return nil, err
		}
	}

	res := make([]png.Chunk, 0, len(chunks)+len(meta))
	for _, c := range chunks[:len(chunks)-1] {
		if !IsMetadataTag(c.Type()) {
			res = append(res, c)
		}
	}
	res = append(res, meta...)
	res = append(res, chunks[len(chunks)-1])
	return res, nil
}

var (
	errNoIEND        = png.FormatError("missing IEND chunk")
	errMisplacedIEND = png.FormatError("IEND chunk is not the last chunk")
)
