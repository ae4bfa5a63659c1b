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
	"context"
	"fmt"
	"os"

	"github.com/facebookgo/atomicfile"
	"golang.org/x/sync/errgroup"
)

// ReadFile reads the metadata from a PNG file.
func ReadFile(filename string) (*Metadata, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	m, err := Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return m, nil
}

// ReadFiles reads the metadata from several PNG files concurrently.
//
// At most limit files are processed at the same time; if limit is less than
// one, there is no limit.  The results are returned in the order of
// filenames.  If any file cannot be read, or if ctx is cancelled, the
// remaining files are skipped and the first error is returned.
func ReadFiles(ctx context.Context, filenames []string, limit int) ([]*Metadata, error) {
	res := make([]*Metadata, len(filenames))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, name := range filenames {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := ReadFile(name)
			if err != nil {
				return err
			}
			res[i] = m
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		return nil, err
	}
	return res, nil
}

// WriteFile writes the PNG file img to disk, with the metadata replaced by
// m.  See [Encode] for details.
//
// The file is replaced atomically: if an error occurs, an existing file is
// left unchanged.
func WriteFile(filename string, img []byte, m *Metadata) error {
	out, err := Encode(img, m)
	if err != nil {
		return err
	}

	perm := os.FileMode(0o644)
	if fi, err := os.Stat(filename); err == nil {
		perm = fi.Mode().Perm()
	}

	f, err := atomicfile.New(filename, perm)
	if err != nil {
		return err
	}
	_, err = f.Write(out)
	if err != nil {
		f.Abort()
		return err
	}
	return f.Close()
}

// UpdateFile replaces the metadata in an existing PNG file.
func UpdateFile(filename string, m *Metadata) error {
	img, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	err = WriteFile(filename, img, m)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}
