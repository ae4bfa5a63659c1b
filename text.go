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
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// decodeText converts the data of a metadata chunk to a string.
//
// Metadata is written as UTF-8.  Some older tools used the Windows code page
// of a Japanese system instead, so data which is not valid UTF-8 is decoded
// as Shift_JIS.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	s, err := japanese.ShiftJIS.NewDecoder().Bytes(data)
	if err != nil || !utf8.Valid(s) {
		return strings.ToValidUTF8(string(data), "�")
	}
	return string(s)
}

// encodeText converts a string to the data of a metadata chunk.
func encodeText(s string) []byte {
	return []byte(s)
}
