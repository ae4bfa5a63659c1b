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

import "hash/crc32"

// CRC computes the CRC-32 checksum used in PNG chunks.
//
// This is the IEEE variant (reflected polynomial 0xEDB88320, initial value
// and final XOR all ones), which is also used by zlib.  For a chunk, the
// checksum covers the chunk type followed by the chunk data.
func CRC(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}
