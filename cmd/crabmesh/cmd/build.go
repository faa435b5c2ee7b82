// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/mxgrey/crab-edu/mesh"
	"github.com/mxgrey/crab-edu/meshio"
	"github.com/mxgrey/crab-edu/recipe"
)

func newBuildCmd(c *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "build <recipe>",
		Short: "Build a recipe file into a mesh file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := Build(c, args[0], termenv.NewOutput(cmd.OutOrStdout()))
			return err
		},
	}
}

// outputFor returns the expanded output file name for the given input.
func (c *Config) outputFor(input string) (string, error) {
	if c.Output != "" {
		return homedir.Expand(c.Output)
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".obj", nil
}

// Build reads the recipe file, builds it and saves the mesh, writing
// a summary to out. It returns the name of the written file.
func Build(c *Config, recipeFile string, out *termenv.Output) (string, error) {
	fn, err := homedir.Expand(recipeFile)
	if err != nil {
		return "", err
	}
	rc, err := recipe.Open(fn)
	if err != nil {
		return "", err
	}
	m, err := rc.Mesh()
	if err != nil {
		return "", fmt.Errorf("%s: %w", fn, err)
	}
	ofn, err := c.outputFor(fn)
	if err != nil {
		return "", err
	}
	if err := meshio.Save(m, ofn); err != nil {
		return "", err
	}
	slog.Info("built recipe", "recipe", fn, "parts", len(rc.Parts), "output", ofn)
	Summary(out, m, ofn)
	return ofn, nil
}

// Summary writes a one line description of the saved mesh.
func Summary(out *termenv.Output, m *mesh.Mesh, filename string) {
	bb := m.BBox()
	size := bb.Size()
	name := m.Name
	if name == "" {
		name = "mesh"
	}
	fmt.Fprintf(out, "%s %s: %d vertices, %d triangles, size %.3g x %.3g x %.3g -> %s\n",
		out.String("built").Foreground(out.Color("2")).Bold(),
		name, m.NumVertex(), m.NumTriangles(), size.X, size.Y, size.Z,
		out.String(filename).Foreground(out.Color("6")))
}
