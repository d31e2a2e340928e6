// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks computes human-friendly values for axis tick marks.
//
// The spacing between ticks is always a "nice" number: 1, 2, 5, or 10
// times a power of ten. Given a range and a hint of how many ticks to
// produce, Ticks returns the nicely rounded values spanning the range,
// TickStep returns the spacing alone, and Nice expands the range
// outward to whole multiples of the spacing.
package ticks

import "math"

// The threshold between two candidate steps is their geometric mean,
// so the chosen multiplier is the closest of 1, 2, 5, and 10 to the
// raw step in log space.
var (
	sqrt50 = math.Sqrt(50)
	sqrt10 = math.Sqrt(10)
	sqrt2  = math.Sqrt(2)
)

// increment returns the nice tick spacing for the ascending range
// [start, stop] subdivided roughly count times. A positive result is
// the step itself. A negative result -d encodes the fractional step
// 1/d; keeping the exact power-of-ten divisor lets callers scale by
// an integer rather than by an inexact binary fraction like 0.005.
func increment(start, stop, count float64) float64 {
	step := (stop - start) / count
	power := math.Floor(math.Log10(step))
	frac := step / math.Pow(10, power)

	mult := 1.0
	switch {
	case frac >= sqrt50:
		mult = 10
	case frac >= sqrt10:
		mult = 5
	case frac >= sqrt2:
		mult = 2
	}

	if power >= 0 {
		return mult * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / mult
}

// TickStep returns the spacing between the values Ticks returns for
// the same arguments: 1, 2, 5, or 10 times a power of ten, negated
// when stop < start so the step points from start toward stop. A zero
// step means the range cannot be subdivided: start equals stop or
// count is not positive.
//
// Increasing count never increases the magnitude of the step.
//
// Non-finite arguments are outside the contract; TickStep returns 0
// for them.
func TickStep(start, stop, count float64) float64 {
	if start == stop || count <= 0 {
		return 0
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	var step float64
	switch inc := increment(start, stop, count); {
	case math.IsNaN(inc) || math.IsInf(inc, 0):
		return 0
	case inc > 0:
		step = inc
	default:
		// Divide by the exact integer divisor so fractional
		// steps come out as correctly rounded decimals.
		step = 1 / -inc
	}
	if reverse {
		step = -step
	}
	return step
}

// Ticks returns evenly spaced, nicely rounded values spanning the
// range [start, stop]. The spacing is the TickStep for the same
// arguments, chosen so roughly count values are returned. The values
// are ascending if start <= stop and descending otherwise.
//
// A degenerate range produces at most one tick: if start == stop the
// result is just that value, and if count <= 0 the result is empty.
// Non-finite arguments produce an empty result.
func Ticks(start, stop, count float64) []float64 {
	if count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	inc := increment(start, stop, count)
	if inc == 0 || math.IsNaN(inc) || math.IsInf(inc, 0) {
		return nil
	}

	var out []float64
	if inc > 0 {
		// Whole steps. Round the endpoints in to the step grid.
		i0, i1 := math.Ceil(start/inc), math.Floor(stop/inc)
		if n := int(i1 - i0 + 1); n > 0 {
			out = make([]float64, n)
			for i := range out {
				out[i] = (i0 + float64(i)) * inc
			}
		}
	} else {
		// Fractional steps. Scale by the integer divisor and
		// divide back out so every tick is an exact multiple;
		// repeated addition would accumulate rounding error.
		// The endpoints round out to the enclosing multiples.
		d := -inc
		i0, i1 := math.Floor(start*d), math.Ceil(stop*d)
		if n := int(i1 - i0 + 1); n > 0 {
			out = make([]float64, n)
			for i := range out {
				out[i] = (i0 + float64(i)) / d
			}
		}
	}

	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// Nice expands [start, stop] outward to whole multiples of the tick
// spacing for count, so that Ticks over the expanded range includes
// both endpoints. The orientation of the range is preserved, and
// degenerate ranges are returned unchanged.
func Nice(start, stop, count float64) (float64, float64) {
	if start == stop || count <= 0 {
		return start, stop
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	// Expanding the range can change the chosen spacing, so
	// iterate until it settles. The cap guards against the step
	// flapping between two values at a threshold boundary.
	prev := 0.0
	for iter := 0; iter < 10; iter++ {
		inc := increment(start, stop, count)
		if inc == prev || inc == 0 || math.IsNaN(inc) || math.IsInf(inc, 0) {
			break
		}
		if inc > 0 {
			start = math.Floor(start/inc) * inc
			stop = math.Ceil(stop/inc) * inc
		} else {
			d := -inc
			start = math.Floor(start*d) / d
			stop = math.Ceil(stop*d) / d
		}
		prev = inc
	}

	if reverse {
		start, stop = stop, start
	}
	return start, stop
}
