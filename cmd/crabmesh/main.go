// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command crabmesh builds meshes from shape recipes and exports them
// as OBJ or STL files.
package main

import (
	"os"

	"github.com/mxgrey/crab-edu/cmd/crabmesh/cmd"
)

func main() {
	if err := cmd.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
