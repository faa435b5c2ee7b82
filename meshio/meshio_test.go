// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mxgrey/crab-edu/base/tolassert"
	"github.com/mxgrey/crab-edu/mesh"
	"github.com/mxgrey/crab-edu/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromFilename(t *testing.T) {
	f, err := FormatFromFilename("dir/arrow.OBJ")
	require.NoError(t, err)
	assert.Equal(t, OBJ, f)
	f, err = FormatFromFilename("arrow.stl")
	require.NoError(t, err)
	assert.Equal(t, STL, f)
	assert.Equal(t, "stl", f.String())
	_, err = FormatFromFilename("arrow.ply")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteOBJ(t *testing.T) {
	m := shapes.FlatSquare(2).IntoMesh()
	m.Name = "square"
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, m))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	count := map[string]int{}
	for _, ln := range lines {
		count[strings.Fields(ln)[0]]++
	}
	assert.Equal(t, "o square", lines[0])
	assert.Equal(t, 8, count["v"])
	assert.Equal(t, 8, count["vt"])
	assert.Equal(t, 8, count["vn"])
	assert.Equal(t, 4, count["f"])
	assert.Contains(t, buf.String(), "v -1 -1 0\n")
	assert.Contains(t, buf.String(), "f 1/1/1 2/2/2 3/3/3\n")
}

func TestWriteOBJNoUV(t *testing.T) {
	m := shapes.Box(1, 1, 1).IntoMesh()
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, m))
	assert.True(t, strings.HasPrefix(buf.String(), "o mesh\n"))
	assert.Contains(t, buf.String(), "f 1//1 2//2 3//3\n")
	assert.NotContains(t, buf.String(), "vt ")
}

func TestWriteErrors(t *testing.T) {
	lines := mesh.New(mesh.LineList)
	assert.Error(t, WriteOBJ(&bytes.Buffer{}, lines))
	assert.Error(t, WriteSTL(&bytes.Buffer{}, lines))
	assert.Error(t, WriteSTL(&bytes.Buffer{}, mesh.New(mesh.TriangleList)))
}

func TestSTLRoundTrip(t *testing.T) {
	m := shapes.Box(2, 2, 2).IntoMesh()
	m.Name = "box"
	var buf bytes.Buffer
	require.NoError(t, WriteSTL(&buf, m))
	assert.Equal(t, 84+50*12, buf.Len())

	rm, err := ReadSTL(&buf)
	require.NoError(t, err)
	assert.Equal(t, "box", rm.Name)
	require.NoError(t, rm.Validate())
	assert.Equal(t, 12, rm.NumTriangles())
	assert.Equal(t, 36, rm.NumVertex())
	for ti := range rm.NumTriangles() {
		a, b, c := m.Triangle(ti)
		ra, rb, rc := rm.Triangle(ti)
		assert.Equal(t, m.Position(a), rm.Position(ra))
		assert.Equal(t, m.Position(b), rm.Position(rb))
		assert.Equal(t, m.Position(c), rm.Position(rc))
		// facet normals agree with the box's face normals
		tolassert.EqualVector3(t, m.Normal(a), rm.Normal(ra), 1e-6)
	}
}

func TestReadSTLTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSTL(&buf, shapes.Box(1, 1, 1).IntoMesh()))
	_, err := ReadSTL(bytes.NewReader(buf.Bytes()[:buf.Len()-10]))
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"arrow.obj", "arrow.stl"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, Save(shapes.CylinderArrow(0.1), fn))
		st, err := os.Stat(fn)
		require.NoError(t, err)
		assert.NotZero(t, st.Size())
	}
	assert.ErrorIs(t, Save(shapes.Box(1, 1, 1).IntoMesh(), filepath.Join(dir, "box.txt")), ErrUnknownFormat)

	m, err := os.Open(filepath.Join(dir, "arrow.stl"))
	require.NoError(t, err)
	defer m.Close()
	rm, err := ReadSTL(m)
	require.NoError(t, err)
	assert.Equal(t, "arrow", rm.Name)
	tolassert.Equal(t, 0.8, rm.BBox().Max.X)
}
