// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recipe describes meshes as lists of placed shape parts that
// are read from TOML or YAML files and merged into a single mesh.
package recipe

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mxgrey/crab-edu/base/errors"
	"github.com/mxgrey/crab-edu/mesh"
	"github.com/mxgrey/crab-edu/shapes"
)

// Format is a recipe file format.
type Format int32

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// ErrUnknownFormat is returned for file names without a supported extension.
var ErrUnknownFormat = errors.New("recipe: unknown recipe file format")

// FormatFromFilename returns the format implied by the file extension.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
}

// Recipe is a named list of parts.
type Recipe struct {
	// Name is the name given to the generated mesh.
	Name string `toml:"name" yaml:"name"`

	Parts []Part `toml:"parts" yaml:"parts"`
}

// Open reads the recipe in the named file, using the format given by
// its extension.
func Open(filename string) (*Recipe, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rc, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if rc.Name == "" {
		rc.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return rc, nil
}

// Read decodes a recipe in the given format. Unknown fields are errors.
func Read(r io.Reader, format Format) (*Recipe, error) {
	rc := &Recipe{}
	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(rc)
		if err == io.EOF {
			err = nil
		}
	default:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(rc)
	}
	if err != nil {
		return nil, fmt.Errorf("recipe: decoding %v: %w", format, err)
	}
	rc.Defaults()
	return rc, nil
}

// ReadString decodes a recipe from a string.
func ReadString(s string, format Format) (*Recipe, error) {
	return Read(strings.NewReader(s), format)
}

// Write encodes the recipe in the given format.
func (rc *Recipe) Write(w io.Writer, format Format) error {
	if format == YAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rc); err != nil {
			return err
		}
		return enc.Close()
	}
	return toml.NewEncoder(w).Encode(rc)
}

// String returns the recipe encoded as TOML.
func (rc *Recipe) String() string {
	var b bytes.Buffer
	errors.Log(rc.Write(&b, TOML))
	return b.String()
}

// Defaults fills in defaults for every part.
func (rc *Recipe) Defaults() {
	for i := range rc.Parts {
		rc.Parts[i].Defaults()
	}
}

// Build generates and merges all of the parts. Texture coordinates
// survive only if every part has them.
func (rc *Recipe) Build() (*shapes.Buffer, error) {
	var out *shapes.Buffer
	for i := range rc.Parts {
		b, err := rc.Parts[i].Build()
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		if out == nil {
			out = b
			continue
		}
		out = out.MergeWith(b)
	}
	if out == nil {
		return shapes.NewEmptyBuffer(), nil
	}
	return out, nil
}

// Mesh builds the recipe into a named mesh.
func (rc *Recipe) Mesh() (*mesh.Mesh, error) {
	b, err := rc.Build()
	if err != nil {
		return nil, err
	}
	m := b.IntoMesh()
	m.Name = rc.Name
	return m, nil
}
