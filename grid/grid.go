// SPDX-License-Identifier: MIT
// Package grid: axis constructors and the row-major two-axis product.
// This file is the whole implementation: Axis (Fixed/Candidates/Range) plus
// Grid. All enumeration is deterministic: candidates are visited exactly as
// constructed, never reordered or deduplicated.

package grid

import (
	"errors"
	"fmt"
	"math"
)

// rangeSlack absorbs accumulated rounding when sizing a stepped range and
// when snapping its final candidate onto the stop bound. It is relative to
// one step, so (1.5, 5.0, 0.01) expands to its intended 351 candidates
// with 5.0 itself as the last one.
const rangeSlack = 1e-9

var (
	// ErrBadStep is returned when a Range step is not a positive finite number.
	ErrBadStep = errors.New("grid: step must be positive and finite")

	// ErrBadBounds is returned when Range bounds are non-finite or stop
	// precedes start.
	ErrBadBounds = errors.New("grid: invalid range bounds")
)

// Axis is an immutable ordered sequence of candidate parameter values.
// Order is meaningful: scans visit candidates exactly as given, and
// position-based tie-breaking depends on it. The zero Axis is empty.
type Axis struct {
	vals []float64
}

// Fixed returns a one-candidate axis pinning the parameter to v.
func Fixed(v float64) Axis {
	return Axis{vals: []float64{v}}
}

// Candidates returns an axis over the given values in the given order.
// The input is copied; duplicates are kept as-is. An empty call yields the
// zero Axis.
func Candidates(vs ...float64) Axis {
	if len(vs) == 0 {
		return Axis{}
	}
	vals := make([]float64, len(vs))
	copy(vals, vs)

	return Axis{vals: vals}
}

// Range returns the inclusive stepped expansion of [start, stop]:
//
//	start, start+step, start+2·step, ..., stop
//
// The candidate count is ⌊(stop−start)/step + rangeSlack⌋ + 1, so a ratio
// that rounds a hair under an integer still produces the full expansion,
// and the final candidate is snapped onto stop when it lands within
// step·rangeSlack of it. start == stop yields a singleton axis. Spans
// asking for more candidates than an int can count are rejected.
//
// Errors: ErrBadStep, ErrBadBounds.
//
// Complexity: O(count) time and space.
func Range(start, stop, step float64) (Axis, error) {
	// 1) Step: positive and finite, otherwise the expansion is ill-posed.
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return Axis{}, fmt.Errorf("%w: step=%v", ErrBadStep, step)
	}
	// 2) Bounds: finite and ordered.
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(stop) || math.IsInf(stop, 0) {
		return Axis{}, fmt.Errorf("%w: [%v, %v]", ErrBadBounds, start, stop)
	}
	if stop < start {
		return Axis{}, fmt.Errorf("%w: stop %v precedes start %v", ErrBadBounds, stop, start)
	}
	// 3) Size: the span/step ratio must land on a representable slice
	// length; an extreme ratio would wrap negative on int conversion.
	ratio := (stop - start) / step
	if ratio > math.MaxInt32 {
		return Axis{}, fmt.Errorf("%w: span/step asks for %v candidates", ErrBadBounds, ratio)
	}

	// 4) Expand: candidate i is start + i·step, never i accumulated additions.
	n := int(math.Floor(ratio+rangeSlack)) + 1
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = start + float64(i)*step
	}
	// Snap the last candidate onto the bound it aims for.
	if last := n - 1; math.Abs(vals[last]-stop) <= step*rangeSlack {
		vals[last] = stop
	}

	return Axis{vals: vals}, nil
}

// Len returns the number of candidates.
func (a Axis) Len() int { return len(a.vals) }

// At returns candidate i in axis order.
func (a Axis) At(i int) float64 { return a.vals[i] }

// Values returns a copy of the candidates in axis order.
func (a Axis) Values() []float64 {
	out := make([]float64, len(a.vals))
	copy(out, a.vals)

	return out
}

// Grid is the Cartesian product of two axes enumerated row-major: Outer
// varies slowest, Inner fastest. Flat index f maps to the pair
//
//	(Outer.At(f / Inner.Len()), Inner.At(f % Inner.Len()))
//
// Both axes must be non-empty before At is called; Len reports 0 for a
// degenerate grid.
type Grid struct {
	Outer Axis
	Inner Axis
}

// Len returns the number of grid points.
func (g Grid) Len() int { return g.Outer.Len() * g.Inner.Len() }

// At returns the grid point at flat index f in enumeration order.
func (g Grid) At(f int) (outer, inner float64) {
	n := g.Inner.Len()

	return g.Outer.At(f / n), g.Inner.At(f % n)
}
