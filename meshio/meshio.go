// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio writes generated meshes to common interchange formats
// so that they can be inspected outside of a renderer.
package meshio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mxgrey/crab-edu/base/errors"
	"github.com/mxgrey/crab-edu/mesh"
)

// Format is a mesh file format.
type Format int32

const (
	// OBJ is the Wavefront OBJ text format.
	OBJ Format = iota

	// STL is the binary STL format.
	STL
)

func (f Format) String() string {
	switch f {
	case OBJ:
		return "obj"
	case STL:
		return "stl"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// ErrUnknownFormat is returned for file names without a supported extension.
var ErrUnknownFormat = errors.New("meshio: unknown mesh file format")

// FormatFromFilename returns the format implied by the file extension.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".obj":
		return OBJ, nil
	case ".stl":
		return STL, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
}

// checkMesh returns an error if the mesh cannot be exported.
func checkMesh(m *mesh.Mesh) error {
	if m.Topology != mesh.TriangleList {
		return fmt.Errorf("meshio: cannot export %v mesh", m.Topology)
	}
	if !m.HasAttribute(mesh.Position) {
		return fmt.Errorf("meshio: mesh has no positions")
	}
	return m.Validate()
}

// Save writes the mesh to the named file in the format given by its
// extension.
func Save(m *mesh.Mesh, filename string) error {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	switch format {
	case STL:
		err = WriteSTL(f, m)
	default:
		err = WriteOBJ(f, m)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
