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

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/vrcmeta"
)

// metaFile is the YAML representation of the metadata.
type metaFile struct {
	File         string     `yaml:"file,omitempty"`
	Date         string     `yaml:"date,omitempty"`
	World        *string    `yaml:"world,omitempty"`
	Photographer *string    `yaml:"photographer,omitempty"`
	Users        []userFile `yaml:"users,omitempty"`
}

type userFile struct {
	Name   string `yaml:"name"`
	Handle string `yaml:"handle,omitempty"`
}

const displayDateLayout = "2006-01-02 15:04:05.000"

// dateLayouts are the accepted date formats in metadata files, in addition
// to the format used inside PNG files.  Dates without a time zone are in
// local time.
var dateLayouts = []string{
	displayDateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
}

func loadMetaFile(name string) (*vrcmeta.Metadata, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var doc metaFile
	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	m, err := doc.toMetadata()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

func (doc *metaFile) toMetadata() (*vrcmeta.Metadata, error) {
	m := &vrcmeta.Metadata{
		World:        doc.World,
		Photographer: doc.Photographer,
	}
	if doc.Date != "" {
		t, err := parseDate(doc.Date)
		if err != nil {
			return nil, err
		}
		m.Date = &t
	}
	for _, u := range doc.Users {
		user := vrcmeta.User{Name: u.Name}
		if u.Handle != "" {
			handle := u.Handle
			user.Handle = &handle
		}
		m.Users = append(m.Users, user)
	}

	err := m.Validate()
	if err != nil {
		return nil, err
	}
	return m, nil
}

func toMetaFile(m *vrcmeta.Metadata) *metaFile {
	doc := &metaFile{
		World:        m.World,
		Photographer: m.Photographer,
	}
	if m.Date != nil {
		doc.Date = m.Date.Format(displayDateLayout)
	}
	for _, u := range m.Users {
		user := userFile{Name: u.Name}
		if u.Handle != nil {
			user.Handle = *u.Handle
		}
		doc.Users = append(doc.Users, user)
	}
	return doc
}

func parseDate(s string) (time.Time, error) {
	if t, err := vrcmeta.ParseDate(s); err == nil {
		return t, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}
