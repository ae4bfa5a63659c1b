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
	"time"
	"unicode/utf8"

	"seehuhn.de/go/vrcmeta/png"
)

// Metadata is the information stored in a VRChat photo.
// Fields which are not present in the photo are nil.
type Metadata struct {
	// Date is the time the photo was taken.
	Date *time.Time

	// World is the name of the world where the photo was taken.
	World *string

	// Photographer is the display name of the user who took the photo.
	Photographer *string

	// Users is the list of users present in the photo, in the order
	// they are stored in the file.
	Users []User
}

// IsZero reports whether no metadata fields are set.
func (m *Metadata) IsZero() bool {
	return m == nil ||
		m.Date == nil && m.World == nil && m.Photographer == nil && len(m.Users) == 0
}

// Validate checks that m can be stored in a PNG file and read back
// unchanged.  If this is not the case, an error wrapping
// [ErrInvalidArgument] is returned.
//
// The following conditions are checked:
//   - The date lies within the years 0 to 9999.
//   - All text fields are valid UTF-8.
//   - User names are not empty.
//   - Handles start with "@" and contain only ASCII letters, digits
//     and underscores.
//   - A user name without a handle does not itself end in " : @handle".
func (m *Metadata) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: missing metadata", ErrInvalidArgument)
	}

	if m.Date != nil {
		if s := FormatDate(*m.Date); len(s) != dateLen {
			return fmt.Errorf("%w: date %s out of range", ErrInvalidArgument, m.Date)
		}
	}
	if m.World != nil && !utf8.ValidString(*m.World) {
		return fmt.Errorf("%w: world name is not valid UTF-8", ErrInvalidArgument)
	}
	if m.Photographer != nil && !utf8.ValidString(*m.Photographer) {
		return fmt.Errorf("%w: photographer name is not valid UTF-8", ErrInvalidArgument)
	}

	for i, u := range m.Users {
		switch {
		case u.Name == "":
			return fmt.Errorf("%w: user %d: empty name", ErrInvalidArgument, i)
		case !utf8.ValidString(u.Name):
			return fmt.Errorf("%w: user %d: name is not valid UTF-8", ErrInvalidArgument, i)
		case u.Handle != nil && !IsHandle(*u.Handle):
			return fmt.Errorf("%w: user %d: invalid handle %q", ErrInvalidArgument, i, *u.Handle)
		case u.Handle == nil && ParseUser(u.Name).Handle != nil:
			return fmt.Errorf("%w: user %d: name %q looks like name and handle",
				ErrInvalidArgument, i, u.Name)
		}
	}
	return nil
}

// DuplicateFieldError is returned when a PNG file contains more than one
// date, world or photographer chunk.
type DuplicateFieldError struct {
	// Tag is the chunk type which occurs more than once.
	Tag string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate %q chunk", e.Tag)
}

// ErrInvalidArgument is returned when a function is called with invalid
// arguments, for example with an empty buffer or an invalid user handle.
var ErrInvalidArgument = png.ErrInvalidArgument
