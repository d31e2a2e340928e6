// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// A scale satisfies Interface if it maps from some input range to an
// output interval [0, 1].
type Interface interface {
	// Of maps x from the input range to [0, 1].
	Of(x float64) float64

	// Ticks returns tick marks for this scale in input space,
	// given a hint of how many major ticks to produce.
	Ticks(n int) (major, minor []float64)
}
