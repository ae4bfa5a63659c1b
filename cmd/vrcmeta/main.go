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

// Vrcmeta shows, sets and removes VRChat photo metadata in PNG files.
//
// Usage:
//
//	vrcmeta [flags] show [--yaml] FILE...
//	vrcmeta [flags] write -m META.yaml [-o OUTPUT] FILE
//	vrcmeta [flags] strip [-o OUTPUT] FILE
//
// The metadata file for "write" is a YAML document like the following:
//
//	date: 2023-06-15 14:30:22.123
//	world: The Great Pug
//	photographer: Alice
//	users:
//	  - name: Alice
//	    handle: "@alice_vr"
//	  - name: Bob
//
// All keys are optional.  Without -o, the input file is modified in place.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/vrcmeta"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vrcmeta: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet("vrcmeta", pflag.ContinueOnError)
	flags.SetInterspersed(false)
	verbose := flags.BoolP("verbose", "v", false, "log debug messages")
	lenient := flags.Bool("lenient", false, "ignore checksum errors when reading files")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	err := flags.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	c := &command{
		log:     logger,
		lenient: *lenient,
		stdout:  stdout,
	}

	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return errors.New("no command given")
	}
	switch rest[0] {
	case "show":
		return c.show(rest[1:])
	case "write":
		return c.write(rest[1:])
	case "strip":
		return c.strip(rest[1:])
	default:
		return fmt.Errorf("unknown command %q", rest[0])
	}
}

const usage = `usage:
  vrcmeta [flags] show [--yaml] FILE...
  vrcmeta [flags] write -m META.yaml [-o OUTPUT] FILE
  vrcmeta [flags] strip [-o OUTPUT] FILE

flags:
`

func newLogger(verbose bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}

type command struct {
	log     *zap.Logger
	lenient bool
	stdout  io.Writer
}

func (c *command) show(args []string) error {
	flags := pflag.NewFlagSet("show", pflag.ContinueOnError)
	asYAML := flags.Bool("yaml", false, "print the metadata as YAML")
	err := flags.Parse(args)
	if err != nil {
		return err
	}
	files := flags.Args()
	if len(files) == 0 {
		return errors.New("show: no files given")
	}

	var enc *yaml.Encoder
	if *asYAML {
		enc = yaml.NewEncoder(c.stdout)
		enc.SetIndent(2)
		defer enc.Close()
	}

	failed := 0
	for _, name := range files {
		m, err := c.readFile(name)
		if err != nil {
			c.log.Error("cannot read metadata", zap.String("file", name), zap.Error(err))
			failed++
			continue
		}

		if enc != nil {
			doc := toMetaFile(m)
			doc.File = name
			err = enc.Encode(doc)
		} else {
			if len(files) > 1 {
				fmt.Fprintf(c.stdout, "%s:\n", name)
			}
			err = printText(c.stdout, m)
		}
		if err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(files))
	}
	return nil
}

func (c *command) write(args []string) error {
	flags := pflag.NewFlagSet("write", pflag.ContinueOnError)
	metaName := flags.StringP("metadata", "m", "", "YAML file with the new metadata")
	output := flags.StringP("output", "o", "", "output file (default: modify the input file)")
	err := flags.Parse(args)
	if err != nil {
		return err
	}
	if *metaName == "" {
		return errors.New("write: no metadata file given")
	}
	if flags.NArg() != 1 {
		return errors.New("write: expected exactly one input file")
	}

	m, err := loadMetaFile(*metaName)
	if err != nil {
		return err
	}
	return c.replace(flags.Arg(0), *output, m)
}

func (c *command) strip(args []string) error {
	flags := pflag.NewFlagSet("strip", pflag.ContinueOnError)
	output := flags.StringP("output", "o", "", "output file (default: modify the input file)")
	err := flags.Parse(args)
	if err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errors.New("strip: expected exactly one input file")
	}
	return c.replace(flags.Arg(0), *output, &vrcmeta.Metadata{})
}

// replace writes the image from file in with its metadata replaced by m.
func (c *command) replace(in, out string, m *vrcmeta.Metadata) error {
	if out == "" {
		out = in
	}

	img, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	c.log.Debug("read image", zap.String("file", in), zap.Int("bytes", len(img)))

	err = vrcmeta.WriteFile(out, img, m)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	c.log.Info("metadata written",
		zap.String("file", out),
		zap.Bool("date", m.Date != nil),
		zap.Bool("world", m.World != nil),
		zap.Bool("photographer", m.Photographer != nil),
		zap.Int("users", len(m.Users)))
	return nil
}

func (c *command) readFile(name string) (*vrcmeta.Metadata, error) {
	buf, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	c.log.Debug("read image", zap.String("file", name), zap.Int("bytes", len(buf)))

	if c.lenient {
		return vrcmeta.DecodeLenient(buf)
	}
	return vrcmeta.Decode(buf)
}

// printText prints metadata in the format used by the original VRChat
// metadata tools.
func printText(w io.Writer, m *vrcmeta.Metadata) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	if m.Date != nil {
		printf("Date: %s\n", m.Date.Format(displayDateLayout))
	}
	if m.Photographer != nil {
		printf("Photo by: %s\n", *m.Photographer)
	}
	if m.World != nil {
		printf("World: %s\n", *m.World)
	}
	for _, u := range m.Users {
		printf("User: %s\n", u)
	}
	return err
}
