// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// An OutputScale maps from the interval [0, 1] to an output range,
// such as device coordinates.
type OutputScale struct {
	min, max float64
	clamp    clampMode
}

type clampMode int

const (
	clampCrop clampMode = iota
	clampNone
	clampClamp
)

// NewOutputScale returns a scale from [0, 1] to [min, max] that
// crops out-of-range values.
func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, clampCrop}
}

// Crop makes s report out-of-range values as unmappable.
func (s *OutputScale) Crop() {
	s.clamp = clampCrop
}

// Unclamp makes s extrapolate out-of-range values.
func (s *OutputScale) Unclamp() {
	s.clamp = clampNone
}

// Clamp makes s pin out-of-range values to the ends of the output
// range.
func (s *OutputScale) Clamp() {
	s.clamp = clampClamp
}

// Of maps x from [0, 1] to the output range. The boolean result is
// false if x was cropped.
func (s OutputScale) Of(x float64) (float64, bool) {
	if s.clamp == clampCrop {
		if x < 0 || x > 1 {
			return 0, false
		}
	} else if s.clamp == clampClamp {
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(s.max-s.min) + s.min, true
}

// TickPositions returns the tick marks of s mapped through s and
// then out. Ticks cropped by out are dropped, so a tick outside the
// domain of s produces no position.
func TickPositions(s Interface, out OutputScale, n int) (major, minor []float64) {
	mj, mn := s.Ticks(n)
	for _, v := range mj {
		if x, ok := out.Of(s.Of(v)); ok {
			major = append(major, x)
		}
	}
	for _, v := range mn {
		if x, ok := out.Of(s.Of(v)); ok {
			minor = append(minor, x)
		}
	}
	return
}
