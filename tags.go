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
	"sort"

	"golang.org/x/exp/maps"
)

// Field identifies one of the metadata fields stored in a PNG file.
type Field int

// These are the metadata fields, in the order they are written to a PNG
// file.
const (
	FieldDate Field = iota + 1
	FieldWorld
	FieldPhotographer
	FieldUser
)

// The chunk types used to store the metadata fields.
const (
	TagDate         = "vrCd"
	TagWorld        = "vrCw"
	TagPhotographer = "vrCp"
	TagUser         = "vrCu"
)

var fieldTags = map[Field]string{
	FieldDate:         TagDate,
	FieldWorld:        TagWorld,
	FieldPhotographer: TagPhotographer,
	FieldUser:         TagUser,
}

var tagFields = map[string]Field{
	TagDate:         FieldDate,
	TagWorld:        FieldWorld,
	TagPhotographer: FieldPhotographer,
	TagUser:         FieldUser,
}

// Tag returns the PNG chunk type used to store the field.
// The empty string is returned for unknown fields.
func (f Field) Tag() string {
	return fieldTags[f]
}

// Repeatable reports whether the field may occur more than once.
// Only [FieldUser] is repeatable.
func (f Field) Repeatable() bool {
	return f == FieldUser
}

func (f Field) String() string {
	switch f {
	case FieldDate:
		return "date"
	case FieldWorld:
		return "world"
	case FieldPhotographer:
		return "photographer"
	case FieldUser:
		return "user"
	default:
		return "unknown"
	}
}

// FieldForTag returns the metadata field stored in chunks of the given type.
// If tag is not a metadata chunk type, the second return value is false.
func FieldForTag(tag string) (Field, bool) {
	f, ok := tagFields[tag]
	return f, ok
}

// IsMetadataTag reports whether chunks of the given type hold metadata.
func IsMetadataTag(tag string) bool {
	_, ok := tagFields[tag]
	return ok
}

// Tags returns the chunk types of all metadata fields, in sorted order.
func Tags() []string {
	tags := maps.Keys(tagFields)
	sort.Strings(tags)
	return tags
}
