// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipe

import (
	"fmt"
	"strings"
)

// Kind is the kind of shape a [Part] generates.
type Kind int32

const (
	Box Kind = iota
	Wall
	Cylinder
	Cone
	Pyramid
	Diamond
	BoxyWrap
	SmoothWrap
	TopDisk
	BottomDisk
	FlatDisk
	Sphere
	Arc
	FlatArrow
	LineStroke
	FlatRect
)

var kindNames = [...]string{
	"box", "wall", "cylinder", "cone", "pyramid", "diamond",
	"boxy_wrap", "smooth_wrap", "top_disk", "bottom_disk", "flat_disk",
	"sphere", "arc", "flat_arrow", "line_stroke", "flat_rect",
}

// Kinds returns all the shape kinds.
func Kinds() []Kind {
	ks := make([]Kind, len(kindNames))
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range kindNames {
		if n == s {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("recipe: unknown shape kind %q", string(text))
}
