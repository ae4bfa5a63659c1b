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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteReadFile(t *testing.T) {
	dir := t.TempDir()
	img := testImage(t)
	m := testCases[len(testCases)-1]

	name := filepath.Join(dir, "photo.png")
	err := WriteFile(name, img, m)
	if err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(m, got); d != "" {
		t.Errorf("metadata differs (-want +got):\n%s", d)
	}
}

func TestWriteFileError(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "photo.png")

	img := testImage(t)
	err := os.WriteFile(name, img, 0o600)
	if err != nil {
		t.Fatal(err)
	}

	// An invalid user must leave the existing file untouched.
	bad := &Metadata{Users: []User{{Name: ""}}}
	err = WriteFile(name, img, bad)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v, want ErrInvalidArgument", err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, img) {
		t.Error("file was modified")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("found %d directory entries, want 1", len(entries))
	}
}

func TestUpdateFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "photo.png")
	err := os.WriteFile(name, testImage(t), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	m := &Metadata{Photographer: ptr("Alice")}
	err = UpdateFile(name, m)
	if err != nil {
		t.Fatal(err)
	}

	fi, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Errorf("file mode changed to %v", fi.Mode().Perm())
	}

	got, err := ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(m, got); d != "" {
		t.Errorf("metadata differs (-want +got):\n%s", d)
	}
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	img := testImage(t)

	var names []string
	var want []*Metadata
	for i := 0; i < 20; i++ {
		m := &Metadata{
			World: ptr(fmt.Sprintf("World %d", i)),
			Users: []User{{Name: fmt.Sprintf("User %d", i)}},
		}
		name := filepath.Join(dir, fmt.Sprintf("photo%02d.png", i))
		err := WriteFile(name, img, m)
		if err != nil {
			t.Fatal(err)
		}
		names = append(names, name)
		want = append(want, m)
	}

	for _, limit := range []int{0, 1, 4} {
		got, err := ReadFiles(context.Background(), names, limit)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("limit %d: metadata differs (-want +got):\n%s", limit, d)
		}
	}
}

func TestReadFilesError(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	err := WriteFile(good, testImage(t), &Metadata{World: ptr("x")})
	if err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.png")

	res, err := ReadFiles(context.Background(), []string{good, missing, good}, 2)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got error %v, want fs.ErrNotExist", err)
	}
	if res != nil {
		t.Error("results returned on error")
	}
}

func TestReadFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "photo.png")
	err := WriteFile(name, testImage(t), &Metadata{})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ReadFiles(ctx, []string{name, name}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want context.Canceled", err)
	}
}
