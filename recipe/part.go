// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipe

import (
	"fmt"

	"github.com/mxgrey/crab-edu/math32"
	"github.com/mxgrey/crab-edu/shapes"
)

// Vec3 is a vector written as a three element array, [x, y, z].
type Vec3 [3]float32

// V returns the vector as a [math32.Vector3].
func (v Vec3) V() math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}

// Transform places a part: it is scaled, then rotated by Euler angles
// in degrees about x, y and z, then translated.
type Transform struct {
	Translate Vec3 `toml:"translate" yaml:"translate"`
	Rotate    Vec3 `toml:"rotate" yaml:"rotate"`

	// Scale defaults to [1, 1, 1].
	Scale Vec3 `toml:"scale" yaml:"scale"`
}

// Affine returns the transform as a [math32.Affine3].
func (tf *Transform) Affine() math32.Affine3 {
	euler := tf.Rotate.V()
	euler = math32.Vec3(math32.DegToRad(euler.X), math32.DegToRad(euler.Y), math32.DegToRad(euler.Z))
	return math32.ScaleRotationTranslation(tf.Scale.V(), math32.NewQuatEuler(euler), tf.Translate.V())
}

// Part is one shape of a [Recipe]. Which fields apply depends on Kind;
// the rest are ignored. Walls and arcs take the defaults of
// [shapes.Wall] and [shapes.FlatArc] for unset fields.
type Part struct {
	Kind Kind `toml:"kind" yaml:"kind"`

	// Size is the box size, or the x and y size of a flat rect.
	Size Vec3 `toml:"size" yaml:"size"`

	// Circle is the base of a cone or pyramid, or a disk.
	Circle shapes.Circle `toml:"circle" yaml:"circle"`

	// Circles are the two rings joined by a wrap.
	Circles []shapes.Circle `toml:"circles" yaml:"circles"`

	// Peak is the apex of a cone or pyramid.
	Peak Vec3 `toml:"peak" yaml:"peak"`

	// Resolution is the number of points or segments around rings.
	Resolution int `toml:"resolution" yaml:"resolution"`

	// Rings is the number of sphere divisions from pole to pole.
	Rings int `toml:"rings" yaml:"rings"`

	Radius float32 `toml:"radius" yaml:"radius"`
	Height float32 `toml:"height" yaml:"height"`

	// Start and End are the endpoints of walls, strokes and arrows.
	// Start is also the pivot of arcs.
	Start Vec3 `toml:"start" yaml:"start"`
	End   Vec3 `toml:"end" yaml:"end"`

	// Thickness is the width of walls and strokes, and the thickness
	// of arcs.
	Thickness float32 `toml:"thickness" yaml:"thickness"`

	TextureWidth  float32 `toml:"texture_width" yaml:"texture_width"`
	TextureHeight float32 `toml:"texture_height" yaml:"texture_height"`

	// Tip is the tip length of arrows and the half height of diamonds.
	Tip float32 `toml:"tip" yaml:"tip"`

	// Width is the handle width of arrows and the half width of diamonds.
	Width float32 `toml:"width" yaml:"width"`

	// TipWidth is the width of an arrow's tip.
	TipWidth float32 `toml:"tip_width" yaml:"tip_width"`

	// Arc parameters; angles are in degrees.
	InitialAngle      float32 `toml:"initial_angle" yaml:"initial_angle"`
	Sweep             float32 `toml:"sweep" yaml:"sweep"`
	VerticesPerDegree float32 `toml:"vertices_per_degree" yaml:"vertices_per_degree"`

	Transform Transform `toml:"transform" yaml:"transform"`
}

// Defaults fills in default values for unset fields.
func (p *Part) Defaults() {
	if p.Resolution == 0 {
		p.Resolution = shapes.CylinderResolution
	}
	if p.Rings == 0 {
		p.Rings = p.Resolution / 2
	}
	if p.VerticesPerDegree == 0 {
		p.VerticesPerDegree = 1
	}
	if p.Transform.Scale == (Vec3{}) {
		p.Transform.Scale = Vec3{1, 1, 1}
	}
}

// Build generates the part's geometry, placed by its transform.
func (p *Part) Build() (*shapes.Buffer, error) {
	b, err := p.shape()
	if err != nil {
		return nil, err
	}
	return b.TransformBy(p.Transform.Affine()), nil
}

func (p *Part) shape() (*shapes.Buffer, error) {
	switch p.Kind {
	case Box:
		return shapes.Box(p.Size[0], p.Size[1], p.Size[2]), nil
	case Wall:
		return p.wall().Build(), nil
	case Cylinder:
		return shapes.CylinderWithResolution(p.Height, p.Radius, p.Resolution), nil
	case Cone:
		return shapes.Cone(p.Circle, p.Peak.V(), p.Resolution), nil
	case Pyramid:
		return shapes.Pyramid(p.Circle, p.Peak.V(), p.Resolution), nil
	case Diamond:
		return shapes.Diamond(p.Tip, p.Width), nil
	case BoxyWrap, SmoothWrap:
		if len(p.Circles) != 2 {
			return nil, fmt.Errorf("recipe: %v needs 2 circles, got %d", p.Kind, len(p.Circles))
		}
		circles := [2]shapes.Circle{p.Circles[0], p.Circles[1]}
		if p.Kind == BoxyWrap {
			return shapes.BoxyWrap(circles, p.Resolution), nil
		}
		return shapes.SmoothWrap(circles, p.Resolution), nil
	case TopDisk:
		return shapes.TopDisk(p.Circle, p.Resolution), nil
	case BottomDisk:
		return shapes.BottomDisk(p.Circle, p.Resolution), nil
	case FlatDisk:
		return shapes.FlatDisk(p.Circle, p.Resolution), nil
	case Sphere:
		return shapes.Sphere(p.Radius, p.Resolution, p.Rings), nil
	case Arc:
		return p.arc().Build(), nil
	case FlatArrow:
		return shapes.FlatArrowBetween(p.Start.V(), p.End.V(), p.Width, p.Tip, p.TipWidth), nil
	case LineStroke:
		return shapes.LineStroke(p.Start.V(), p.End.V(), p.Thickness), nil
	case FlatRect:
		return shapes.FlatRect(p.Size[0], p.Size[1]), nil
	}
	return nil, fmt.Errorf("recipe: unsupported shape kind %v", p.Kind)
}

// wall returns the part as a [shapes.Wall]. Unset fields keep the
// wall defaults.
func (p *Part) wall() *shapes.Wall {
	w := &shapes.Wall{}
	w.Defaults()
	w.Start = p.Start.V()
	if p.End != (Vec3{}) {
		w.End = p.End.V()
	}
	if p.Thickness != 0 {
		w.Thickness = p.Thickness
	}
	if p.Height != 0 {
		w.Height = p.Height
	}
	w.TextureWidth = p.TextureWidth
	w.TextureHeight = p.TextureHeight
	return w
}

// arc returns the part as a [shapes.FlatArc]. Unset fields keep the
// arc defaults.
func (p *Part) arc() *shapes.FlatArc {
	a := &shapes.FlatArc{}
	a.Defaults()
	a.Pivot = p.Start.V()
	a.InitialAngle = math32.DegToRad(p.InitialAngle)
	if p.Radius != 0 {
		a.OuterRadius = p.Radius
	}
	if p.Thickness != 0 {
		a.InnerThickness = p.Thickness
	}
	if p.Sweep != 0 {
		a.Sweep = math32.DegToRad(p.Sweep)
	}
	if p.VerticesPerDegree != 0 {
		a.VerticesPerDegree = p.VerticesPerDegree
	}
	return a
}
