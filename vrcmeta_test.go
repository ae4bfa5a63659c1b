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
	"errors"
	"image"
	"image/color"
	stdpng "image/png"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/vrcmeta/png"
)

// testImage returns a small PNG image, encoded by the standard library.
func testImage(t *testing.T) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 4; i++ {
		img.Set(i, i, color.NRGBA{R: 200, G: uint8(50 * i), B: 10, A: 255})
	}
	buf := &bytes.Buffer{}
	err := stdpng.Encode(buf, img)
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestEncodeDecode(t *testing.T) {
	img := testImage(t)
	for i, m := range testCases {
		out, err := Encode(img, m)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}

		// The pixels must be unchanged.
		a, err := stdpng.Decode(bytes.NewReader(img))
		if err != nil {
			t.Fatal(err)
		}
		b, err := stdpng.Decode(bytes.NewReader(out))
		if err != nil {
			t.Errorf("%d: result is not a valid PNG image: %v", i, err)
			continue
		}
		if d := cmp.Diff(a, b); d != "" {
			t.Errorf("%d: image changed (-want +got):\n%s", i, d)
		}

		got, err := Decode(out)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if d := cmp.Diff(m, got); d != "" {
			t.Errorf("%d: metadata differs (-want +got):\n%s", i, d)
		}
	}
}

func TestEncodeIdempotent(t *testing.T) {
	img := testImage(t)
	m := testCases[len(testCases)-1]

	once, err := Encode(img, m)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Encode(once, m)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(once, twice) {
		t.Error("encoding twice gives a different result")
	}
}

func TestStrip(t *testing.T) {
	img := testImage(t)
	withMeta, err := Encode(img, testCases[len(testCases)-1])
	if err != nil {
		t.Fatal(err)
	}

	stripped, err := Strip(withMeta)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(img, stripped) {
		t.Error("stripped image differs from the original")
	}
}

func TestDecodeSignature(t *testing.T) {
	img := testImage(t)
	withMeta, err := Encode(img, testCases[len(testCases)-1])
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(png.Signature); i++ {
		bad := bytes.Clone(withMeta)
		bad[i] ^= 0x20

		_, err := Decode(bad)
		var formatErr png.FormatError
		if !errors.As(err, &formatErr) {
			t.Errorf("byte %d: got error %v, want FormatError", i, err)
		}
		_, err = Encode(bad, &Metadata{})
		if !errors.As(err, &formatErr) {
			t.Errorf("byte %d: Encode: got error %v, want FormatError", i, err)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, buf := range [][]byte{nil, {}} {
		_, err := Decode(buf)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Decode: got error %v, want ErrInvalidArgument", err)
		}
		_, err = Encode(buf, &Metadata{})
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Encode: got error %v, want ErrInvalidArgument", err)
		}
	}

	_, err := Encode(testImage(t), nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Encode(nil): got error %v, want ErrInvalidArgument", err)
	}
}

func TestDecodeDuplicate(t *testing.T) {
	chunks, err := png.ParseStrict(testImage(t))
	if err != nil {
		t.Fatal(err)
	}
	n := len(chunks)
	dup := []png.Chunk{
		mustChunk(t, TagWorld, "A"),
		mustChunk(t, TagWorld, "B"),
	}
	chunks = append(chunks[:n-1:n-1], append(dup, chunks[n-1])...)
	buf := png.Serialize(chunks)

	_, err = Decode(buf)
	var dupErr *DuplicateFieldError
	if !errors.As(err, &dupErr) || dupErr.Tag != TagWorld {
		t.Errorf("got error %v, want DuplicateFieldError", err)
	}

	// Encoding replaces both chunks.
	out, err := Encode(buf, &Metadata{World: ptr("C")})
	if err != nil {
		t.Fatal(err)
	}
	m, err := Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if m.World == nil || *m.World != "C" {
		t.Errorf("wrong world %v", m.World)
	}
}

func TestDecodeLenient(t *testing.T) {
	m := &Metadata{
		Date:  ptr(time.Date(2022, time.March, 4, 5, 6, 7, 800_000_000, time.Local)),
		World: ptr("Damaged"),
	}
	buf, err := Encode(testImage(t), m)
	if err != nil {
		t.Fatal(err)
	}

	// damage the checksum of the IHDR chunk
	buf[8+8+13] ^= 0xFF

	_, err = Decode(buf)
	var formatErr png.FormatError
	if !errors.As(err, &formatErr) {
		t.Errorf("Decode: got error %v, want FormatError", err)
	}
	_, err = Encode(buf, m)
	if !errors.As(err, &formatErr) {
		t.Errorf("Encode: got error %v, want FormatError", err)
	}

	got, err := DecodeLenient(buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(m, got); d != "" {
		t.Errorf("metadata differs (-want +got):\n%s", d)
	}
}

func TestDecodeNoMetadata(t *testing.T) {
	m, err := Decode(testImage(t))
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsZero() {
		t.Errorf("unexpected metadata %#v", m)
	}
}
