// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/mxgrey/crab-edu/math32"
	"github.com/mxgrey/crab-edu/mesh"
)

const headerSize = 80

// stlHeader is the fixed size start of a binary STL file.
type stlHeader struct {
	Header [headerSize]byte
	NTri   uint32
}

// stlTri is one binary STL triangle record.
type stlTri struct {
	// Normal plus three vertex triplets: [3]float{x,y,z}
	N, V1, V2, V3 [3]float32
	_             uint16 // unused attribute byte count
}

func vec3Array(v math32.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// WriteSTL writes the mesh as a binary STL file. STL stores flat
// triangles only: each facet normal is computed from the triangle's
// winding, and vertex normals and texture coordinates are dropped.
func WriteSTL(w io.Writer, m *mesh.Mesh) error {
	if err := checkMesh(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	hdr := stlHeader{NTri: uint32(m.NumTriangles())}
	copy(hdr.Header[:], m.Name)
	if err := binary.Write(bw, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("meshio: error writing STL header: %w", err)
	}
	for ti := range m.NumTriangles() {
		a, b, c := m.Triangle(ti)
		pa, pb, pc := m.Position(a), m.Position(b), m.Position(c)
		tri := stlTri{
			N:  vec3Array(math32.Normal(pa, pb, pc)),
			V1: vec3Array(pa),
			V2: vec3Array(pb),
			V3: vec3Array(pc),
		}
		if err := binary.Write(bw, binary.LittleEndian, &tri); err != nil {
			return fmt.Errorf("meshio: error writing STL triangle %d: %w", ti, err)
		}
	}
	return bw.Flush()
}

// ReadSTL reads a binary STL file into a non-indexed triangle list mesh
// whose vertex normals are the facet normals.
func ReadSTL(r io.Reader) (*mesh.Mesh, error) {
	var hdr stlHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("meshio: error reading STL header: %w", err)
	}
	m := mesh.New(mesh.TriangleList)
	m.Name = strings.TrimRight(string(hdr.Header[:]), " \x00")
	capacity := 9 * int(min(hdr.NTri, 1<<16))
	pos := math32.NewArrayF32(0, capacity)
	norm := math32.NewArrayF32(0, capacity)
	for i := uint32(0); i < hdr.NTri; i++ {
		var tri stlTri
		if err := binary.Read(r, binary.LittleEndian, &tri); err != nil {
			return nil, fmt.Errorf("meshio: error reading STL triangle %d: %w", i, err)
		}
		for _, v := range [][3]float32{tri.V1, tri.V2, tri.V3} {
			pos.Append(v[:]...)
			norm.Append(tri.N[:]...)
		}
	}
	m.SetAttribute(mesh.Position, pos)
	m.SetAttribute(mesh.Normal, norm)
	return m, nil
}
