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

// Extract collects the metadata stored in a sequence of PNG chunks.
//
// Chunks which do not hold metadata are ignored.  If the date, world or
// photographer chunk occurs more than once, a [*DuplicateFieldError] is
// returned.  A date chunk with malformed contents is treated like a missing
// date chunk.
func Extract(chunks []png.Chunk) (*Metadata, error) {
	var date, world, photographer *string
	m := &Metadata{}

	for _, c := range chunks {
		tag := c.Type()
		field, isMeta := FieldForTag(tag)
		if !isMeta {
			continue
		}

		text := decodeText(c.Data())
		if field == FieldUser {
			m.Users = append(m.Users, ParseUser(text))
			continue
		}

		var dst **string
		switch field {
		case FieldDate:
			dst = &date
		case FieldWorld:
			dst = &world
		case FieldPhotographer:
			dst = &photographer
		}
		if *dst != nil {
			return nil, &DuplicateFieldError{Tag: tag}
		}
		*dst = &text
	}

	if date != nil {
		t, err := ParseDate(*date)
		if err == nil {
			m.Date = &t
		}
	}
	m.World = world
	m.Photographer = photographer

	return m, nil
}
