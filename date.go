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
)

// dateLen is the length of a date in a date chunk, YYYYMMDDhhmmssfff.
const dateLen = 17

// dateLayout is the Go time layout for dates in date chunks, with a "."
// inserted between the seconds and the milliseconds.
const dateLayout = "20060102150405.000"

// FormatDate formats t in the form used in date chunks.  The time is
// converted to local time and truncated to millisecond precision.
func FormatDate(t time.Time) string {
	s := t.In(time.Local).Format(dateLayout)
	return s[:14] + s[15:]
}

// ParseDate parses the contents of a date chunk.
//
// The text must consist of exactly 17 decimal digits, in the form
// YYYYMMDDhhmmssfff, and must describe a valid date and time.  The result is
// in local time.  If the text is malformed, a [*DateParseError] is returned.
func ParseDate(text string) (time.Time, error) {
	if len(text) != dateLen {
		return time.Time{}, &DateParseError{Text: text}
	}
	for _, c := range []byte(text) {
		if c < '0' || c > '9' {
			return time.Time{}, &DateParseError{Text: text}
		}
	}
	t, err := time.ParseInLocation(dateLayout, text[:14]+"."+text[14:], time.Local)
	if err != nil {
		return time.Time{}, &DateParseError{Text: text, Err: err}
	}
	return t, nil
}

// DateParseError is returned by [ParseDate] when the contents of a date chunk
// are malformed.
type DateParseError struct {
	Text string
	Err  error
}

func (e *DateParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed date %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("malformed date %q", e.Text)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
