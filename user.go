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

import "strings"

// User is a user who was present when a photo was taken.
type User struct {
	// Name is the display name of the user.
	Name string

	// Handle is the social media screen name of the user, starting with "@",
	// or nil if the handle is not known.
	Handle *string
}

// handleSep separates the display name from the handle in a user chunk.
const handleSep = " : "

// ParseUser splits the contents of a user chunk into display name and handle.
//
// If text has the form "<name> : @<handle>", where <handle> consists only of
// ASCII letters, digits and underscores, the user name and the handle
// (including the "@") are returned separately.  Otherwise, the whole text is
// used as the user name and the handle is nil.
//
// A display name which itself ends in " : @word" cannot be distinguished
// from a handle.  Such names are split at the last " : @".
func ParseUser(text string) User {
	idx := strings.LastIndex(text, handleSep+"@")
	if idx < 0 {
		return User{Name: text}
	}
	handle := text[idx+len(handleSep):]
	if !IsHandle(handle) {
		return User{Name: text}
	}
	return User{Name: text[:idx], Handle: &handle}
}

// String returns the user in the form stored in a user chunk.
// This is the inverse of [ParseUser].
func (u User) String() string {
	if u.Handle == nil {
		return u.Name
	}
	return u.Name + handleSep + *u.Handle
}

// IsHandle reports whether s is a syntactically valid handle, i.e. an "@"
// followed by ASCII letters, digits and underscores.
func IsHandle(s string) bool {
	if !strings.HasPrefix(s, "@") {
		return false
	}
	for _, c := range []byte(s[1:]) {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '_':
			// pass
		default:
			return false
		}
	}
	return true
}
