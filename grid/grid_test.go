package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cnfit/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRange_ExactTriple verifies a small friendly expansion including both
// endpoints.
func TestRange_ExactTriple(t *testing.T) {
	ax, err := grid.Range(1, 2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1.5, 2}, ax.Values(), "inclusive expansion")
}

// TestRange_HostileRatios verifies that spans whose span/step ratio rounds
// a hair under an integer still expand to full size with an exact endpoint.
func TestRange_HostileRatios(t *testing.T) {
	ax, err := grid.Range(1.5, 5.0, 0.01)
	require.NoError(t, err)
	assert.Equal(t, 351, ax.Len(), "(5.0−1.5)/0.01 must count 351 candidates")
	assert.Equal(t, 1.5, ax.At(0), "first candidate is start")
	assert.Equal(t, 5.0, ax.At(ax.Len()-1), "last candidate is exactly stop")

	ax, err = grid.Range(0.2, 1.0, 0.01)
	require.NoError(t, err)
	assert.Equal(t, 81, ax.Len(), "(1.0−0.2)/0.01 must count 81 candidates")
	assert.Equal(t, 1.0, ax.At(ax.Len()-1), "last candidate is exactly stop")

	ax, err = grid.Range(0, 1, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 11, ax.Len(), "1/0.1 must count 11 candidates")
	assert.Equal(t, 1.0, ax.At(10), "last candidate is exactly stop")
}

// TestRange_Singleton verifies that start == stop yields exactly one
// candidate.
func TestRange_Singleton(t *testing.T) {
	ax, err := grid.Range(3, 3, 0.1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, ax.Values(), "degenerate span is a singleton")
}

// TestRange_BadStep verifies rejection of zero, negative and non-finite
// steps.
func TestRange_BadStep(t *testing.T) {
	for _, step := range []float64{0, -0.01, math.NaN(), math.Inf(1)} {
		_, err := grid.Range(0, 1, step)
		assert.ErrorIs(t, err, grid.ErrBadStep, "step=%v must error", step)
	}
}

// TestRange_BadBounds verifies rejection of reversed and non-finite bounds.
func TestRange_BadBounds(t *testing.T) {
	_, err := grid.Range(2, 1, 0.1)
	assert.ErrorIs(t, err, grid.ErrBadBounds, "stop before start must error")

	_, err = grid.Range(math.NaN(), 1, 0.1)
	assert.ErrorIs(t, err, grid.ErrBadBounds, "NaN start must error")

	_, err = grid.Range(0, math.Inf(1), 0.1)
	assert.ErrorIs(t, err, grid.ErrBadBounds, "+Inf stop must error")
}

// TestRange_OverflowingSpan verifies that finite bounds with an extreme
// span/step ratio are rejected instead of panicking at allocation.
func TestRange_OverflowingSpan(t *testing.T) {
	_, err := grid.Range(0, 1e300, 1e-300)
	assert.ErrorIs(t, err, grid.ErrBadBounds, "astronomical candidate count must error")

	_, err = grid.Range(-math.MaxFloat64, math.MaxFloat64, 1)
	assert.ErrorIs(t, err, grid.ErrBadBounds, "span overflowing float64 must error")

	_, err = grid.Range(0, 1, 1e-12)
	assert.ErrorIs(t, err, grid.ErrBadBounds, "ratio just past the candidate cap must error")
}

// TestCandidates_OrderPreserved verifies that explicit candidates keep
// their given order, duplicates included.
func TestCandidates_OrderPreserved(t *testing.T) {
	ax := grid.Candidates(4, 2, 3, 2)
	assert.Equal(t, []float64{4, 2, 3, 2}, ax.Values(), "no sorting, no deduplication")
}

// TestCandidates_Empty verifies that no values yield the zero axis.
func TestCandidates_Empty(t *testing.T) {
	ax := grid.Candidates()
	assert.Equal(t, 0, ax.Len(), "empty call yields empty axis")
}

// TestCandidates_Snapshots verifies the axis is independent of the
// caller's backing slice and of the Values() copies it hands out.
func TestCandidates_Snapshots(t *testing.T) {
	in := []float64{1, 2, 3}
	ax := grid.Candidates(in...)
	in[0] = 99
	assert.Equal(t, 1.0, ax.At(0), "axis keeps its own copy of the input")

	out := ax.Values()
	out[1] = 99
	assert.Equal(t, 2.0, ax.At(1), "mutating a Values() copy must not affect the axis")
}

// TestFixed verifies the singleton constructor.
func TestFixed(t *testing.T) {
	ax := grid.Fixed(2.5)
	assert.Equal(t, 1, ax.Len(), "fixed axis has one candidate")
	assert.Equal(t, 2.5, ax.At(0), "fixed axis echoes its value")
}

// TestGrid_RowMajor verifies the flat enumeration order: outer slowest,
// inner fastest.
func TestGrid_RowMajor(t *testing.T) {
	g := grid.Grid{
		Outer: grid.Candidates(1, 2),
		Inner: grid.Candidates(10, 20, 30),
	}
	require.Equal(t, 6, g.Len(), "2×3 grid")

	wantOuter := []float64{1, 1, 1, 2, 2, 2}
	wantInner := []float64{10, 20, 30, 10, 20, 30}
	for f := 0; f < g.Len(); f++ {
		o, in := g.At(f)
		assert.Equal(t, wantOuter[f], o, "outer at flat %d", f)
		assert.Equal(t, wantInner[f], in, "inner at flat %d", f)
	}
}

// TestGrid_Singleton verifies the 1×1 product.
func TestGrid_Singleton(t *testing.T) {
	g := grid.Grid{Outer: grid.Fixed(2), Inner: grid.Fixed(0.5)}
	require.Equal(t, 1, g.Len(), "1×1 grid")
	o, in := g.At(0)
	assert.Equal(t, 2.0, o, "outer value")
	assert.Equal(t, 0.5, in, "inner value")
}

// TestGrid_Degenerate verifies that a grid with an empty axis reports zero
// points.
func TestGrid_Degenerate(t *testing.T) {
	g := grid.Grid{Outer: grid.Fixed(1), Inner: grid.Candidates()}
	assert.Equal(t, 0, g.Len(), "empty inner axis empties the grid")
}
