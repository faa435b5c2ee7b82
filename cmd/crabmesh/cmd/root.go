// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the crabmesh commands.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mxgrey/crab-edu/base/logx"
	"github.com/mxgrey/crab-edu/shapes"
)

// Config is the configuration shared by all commands.
type Config struct {
	// Output is the mesh file to write. Its extension selects the
	// format. If empty, it is derived from the input name.
	Output string

	// VeryVerbose shows debug messages, including skipped degenerate shapes.
	VeryVerbose bool

	// Verbose shows informational messages.
	Verbose bool

	// Quiet shows only errors.
	Quiet bool
}

// setupLogging installs the default logger at the level selected by the
// verbosity flags and routes shape generation messages through it.
func (c *Config) setupLogging() *slog.Logger {
	logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
	l := logx.SetDefaultLogger()
	shapes.SetLogger(l)
	return l
}

// NewRoot returns the root crabmesh command with all subcommands.
func NewRoot() *cobra.Command {
	c := &Config{}
	root := &cobra.Command{
		Use:          "crabmesh",
		Short:        "Build meshes from shape recipes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.setupLogging()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&c.Output, "output", "o", "", "output mesh file (.obj or .stl)")
	pf.BoolVar(&c.VeryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&c.Verbose, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&c.Quiet, "quiet", "q", false, "show only errors")

	root.AddCommand(newBuildCmd(c), newWatchCmd(c), newArrowCmd(c), newListCmd())
	return root
}
