// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxgrey/crab-edu/meshio"
	"github.com/mxgrey/crab-edu/shapes"
)

const boxRecipe = `
[[parts]]
kind = "box"
size = [1.0, 2.0, 3.0]
`

func asciiOutput(w io.Writer) *termenv.Output {
	return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
}

func writeRecipe(t *testing.T, dir, name, text string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(text), 0o644))
	return fn
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	fn := writeRecipe(t, dir, "box.toml", boxRecipe)
	c := &Config{Output: filepath.Join(dir, "out.stl")}

	var b bytes.Buffer
	ofn, err := Build(c, fn, asciiOutput(&b))
	require.NoError(t, err)
	assert.Equal(t, c.Output, ofn)
	assert.Equal(t, "built box: 24 vertices, 12 triangles, size 1 x 2 x 3 -> "+ofn+"\n", b.String())

	f, err := os.Open(ofn)
	require.NoError(t, err)
	defer f.Close()
	m, err := meshio.ReadSTL(f)
	require.NoError(t, err)
	assert.Equal(t, 12, m.NumTriangles())
}

func TestBuildDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	fn := writeRecipe(t, dir, "box.toml", boxRecipe)
	ofn, err := Build(&Config{}, fn, asciiOutput(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "box.obj"), ofn)
	assert.FileExists(t, ofn)
}

func TestBuildErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Build(&Config{}, filepath.Join(dir, "missing.toml"), asciiOutput(io.Discard))
	assert.Error(t, err)

	fn := writeRecipe(t, dir, "bad.toml", "[[parts]]\nkind = \"smooth_wrap\"\n")
	_, err = Build(&Config{}, fn, asciiOutput(io.Discard))
	assert.ErrorContains(t, err, "needs 2 circles")

	fn = writeRecipe(t, dir, "box.toml", boxRecipe)
	_, err = Build(&Config{Output: filepath.Join(dir, "out.ply")}, fn, asciiOutput(io.Discard))
	assert.ErrorIs(t, err, meshio.ErrUnknownFormat)
}

func TestArrow(t *testing.T) {
	dir := t.TempDir()
	c := &Config{Output: filepath.Join(dir, "pen.obj")}
	var b bytes.Buffer
	ofn, err := Arrow(c, shapes.DefaultStroke(), asciiOutput(&b))
	require.NoError(t, err)
	assert.FileExists(t, ofn)
	assert.Contains(t, b.String(), "built arrow:")
}

func TestRootCommands(t *testing.T) {
	dir := t.TempDir()
	fn := writeRecipe(t, dir, "box.yaml", "parts:\n  - kind: flat_rect\n    size: [1, 1, 0]\n")

	run := func(args ...string) string {
		root := NewRoot()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(io.Discard)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return out.String()
	}

	list := run("list")
	assert.Contains(t, list, "smooth_wrap\n")
	assert.Contains(t, list, "flat_rect\n")

	ofn := filepath.Join(dir, "rect.stl")
	run("build", fn, "-o", ofn, "-q")
	assert.FileExists(t, ofn)

	ofn = filepath.Join(dir, "thick.obj")
	run("arrow", "--diameter", "0.5", "-o", ofn)
	assert.FileExists(t, ofn)

	root := NewRoot()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"build"})
	assert.Error(t, root.Execute())
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := writeRecipe(t, dir, "box.toml", boxRecipe)
	c := &Config{Output: filepath.Join(dir, "out.stl")}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, c, fn, asciiOutput(io.Discard))
	}()

	size := func() int64 {
		st, err := os.Stat(c.Output)
		if err != nil {
			return 0
		}
		return st.Size()
	}
	// binary STL: 84 byte header plus 50 bytes per triangle
	require.Eventually(t, func() bool { return size() == 84+50*12 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(fn, []byte(boxRecipe+boxRecipe), 0o644))
	require.Eventually(t, func() bool { return size() == 84+50*24 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
