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

// Package vrcmeta reads and writes VRChat photo metadata in PNG files.
//
// # Metadata
//
// The main type in this package is the [Metadata] type, which describes
// where and when a photo was taken, and who was present.  Metadata can be
// read from PNG data using the [Decode] function and written into PNG data
// using the [Encode] function.  [ReadFile] and [WriteFile] do the same for
// files on disk.
//
// # Storage Format
//
// Metadata is stored in private, ancillary PNG chunks, which are ignored by
// image viewers and editors:
//
//   - "vrCd" holds the date and time the photo was taken, in the form
//     YYYYMMDDhhmmssfff (local time, millisecond precision).
//   - "vrCw" holds the name of the world.
//   - "vrCp" holds the name of the photographer.
//   - "vrCu" holds the name of one user who was present.  This chunk is
//     repeated once for every user.  The user name can be followed by
//     " : @handle", where handle is the user's social media screen name.
//
// The date, world and photographer chunks may occur at most once.  When
// metadata is written, all existing metadata chunks are removed and the
// new chunks are inserted immediately before the IEND chunk, in the order
// listed above.  All other chunks are copied unchanged.
//
// # Errors
//
// Malformed PNG data causes a [png.FormatError].  Repeated date, world or
// photographer chunks cause a [DuplicateFieldError].  Dates which cannot be
// parsed are silently ignored; use [ParseDate] where a strict check is
// needed.
package vrcmeta
