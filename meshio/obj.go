// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mxgrey/crab-edu/mesh"
)

// WriteOBJ writes the mesh as a Wavefront OBJ object with positions,
// normals, texture coordinates when present, and one face per triangle.
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	if err := checkMesh(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	name := m.Name
	if name == "" {
		name = "mesh"
	}
	fmt.Fprintf(bw, "o %s\n", name)

	nv := m.NumVertex()
	pos := m.Attributes[mesh.Position]
	for i := 0; i < nv; i++ {
		fmt.Fprintf(bw, "v %g %g %g\n", pos[i*3], pos[i*3+1], pos[i*3+2])
	}
	uv, hasUV := m.Attribute(mesh.UV0)
	if hasUV {
		for i := 0; i < nv; i++ {
			fmt.Fprintf(bw, "vt %g %g\n", uv[i*2], uv[i*2+1])
		}
	}
	norm, hasNorm := m.Attribute(mesh.Normal)
	if hasNorm {
		for i := 0; i < nv; i++ {
			fmt.Fprintf(bw, "vn %g %g %g\n", norm[i*3], norm[i*3+1], norm[i*3+2])
		}
	}

	// OBJ indices start at 1
	corner := func(ix uint32) string {
		n := ix + 1
		switch {
		case hasUV && hasNorm:
			return fmt.Sprintf("%d/%d/%d", n, n, n)
		case hasNorm:
			return fmt.Sprintf("%d//%d", n, n)
		case hasUV:
			return fmt.Sprintf("%d/%d", n, n)
		}
		return fmt.Sprintf("%d", n)
	}
	for ti := range m.NumTriangles() {
		a, b, c := m.Triangle(ti)
		fmt.Fprintf(bw, "f %s %s %s\n", corner(a), corner(b), corner(c))
	}
	return bw.Flush()
}
