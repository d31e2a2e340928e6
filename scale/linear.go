// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "github.com/aclements/go-scale/ticks"

type Linear struct {
	min, width float64
}

// NewLinear returns a new linear scale spanning input.
func NewLinear(input []float64) Linear {
	min, max := minmax(input)
	return Linear{min, max - min}
}

func (s Linear) Of(x float64) float64 {
	return (x - s.min) / s.width
}

// Nice expands the domain of s outward to multiples of the major
// tick spacing, so the first and last major ticks land on the ends
// of the scale.
//
// n is the target number of major ticks.
func (s *Linear) Nice(n int) {
	lo, hi := ticks.Nice(s.min, s.min+s.width, float64(n))
	s.min, s.width = lo, hi-lo
}

// Ticks returns nicely rounded tick marks covering the domain of s.
// Major ticks are spaced by 1, 2, or 5 times a power of ten, chosen
// so there are about n of them. Minor ticks subdivide the major step.
func (s Linear) Ticks(n int) (major, minor []float64) {
	lo, hi := s.min, s.min+s.width
	major = ticks.Ticks(lo, hi, float64(n))
	if len(major) < 2 {
		return major, nil
	}

	// The finer grid always contains the major grid, and values
	// on both grids are the same doubles, so dropping the major
	// positions by exact comparison is safe.
	sub := ticks.Ticks(lo, hi, float64(5*n))
	j := 0
	for _, x := range sub {
		for j < len(major) && major[j] < x {
			j++
		}
		if j < len(major) && major[j] == x {
			continue
		}
		minor = append(minor, x)
	}
	return major, minor
}
