// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"github.com/mxgrey/crab-edu/base/errors"
	"github.com/mxgrey/crab-edu/mesh"
)

// Stroke is the kind of line a pen draws. The set of kinds is closed:
// [VolumeStroke] is currently the only one.
type Stroke interface {
	isStroke()
}

// VolumeStroke draws a solid tube of the given diameter.
type VolumeStroke struct {
	Diameter float32
}

func (VolumeStroke) isStroke() {}

// DefaultStroke returns the stroke a pen starts with.
func DefaultStroke() Stroke {
	return VolumeStroke{Diameter: 0.01}
}

// ArrowFor returns the arrow mesh that indicates a pen drawing with the
// given stroke.
func ArrowFor(s Stroke) *mesh.Mesh {
	switch s := s.(type) {
	case VolumeStroke:
		return CylinderArrow(s.Diameter / 2)
	default:
		panic(errors.Contract("ArrowFor", "unknown stroke kind %T", s))
	}
}
