// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/mxgrey/crab-edu/meshio"
	"github.com/mxgrey/crab-edu/shapes"
)

func newArrowCmd(c *Config) *cobra.Command {
	var diameter float32
	cmd := &cobra.Command{
		Use:   "arrow",
		Short: "Export the pen arrow mesh for a volume stroke",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := Arrow(c, shapes.VolumeStroke{Diameter: diameter}, termenv.NewOutput(cmd.OutOrStdout()))
			return err
		},
	}
	cmd.Flags().Float32VarP(&diameter, "diameter", "d", shapes.DefaultStroke().(shapes.VolumeStroke).Diameter, "stroke diameter")
	return cmd
}

// Arrow saves the arrow mesh for the given stroke, by default to
// arrow.obj, and returns the name of the written file.
func Arrow(c *Config, s shapes.Stroke, out *termenv.Output) (string, error) {
	ofn := "arrow.obj"
	if c.Output != "" {
		var err error
		ofn, err = homedir.Expand(c.Output)
		if err != nil {
			return "", err
		}
	}
	m := shapes.ArrowFor(s)
	if err := meshio.Save(m, ofn); err != nil {
		return "", err
	}
	Summary(out, m, ofn)
	return ofn, nil
}
