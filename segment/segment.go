package segment

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for profile construction. Callers match them with
// errors.Is; New wraps each with the offending index/value for context.
var (
	// ErrShapeMismatch is returned when the value and length sequences
	// disagree in size.
	ErrShapeMismatch = errors.New("segment: value/length shape mismatch")

	// ErrEmptyProfile is returned when no segments are supplied, or when a
	// zero Profile reaches an operation that needs at least one segment.
	ErrEmptyProfile = errors.New("segment: empty profile")

	// ErrNonFinite is returned when a value or length is NaN or ±Inf.
	ErrNonFinite = errors.New("segment: non-finite entry")

	// ErrNegativeLength is returned when a segment length is negative.
	ErrNegativeLength = errors.New("segment: negative segment length")

	// ErrZeroTotalLength is returned when all segment lengths are zero, so
	// no length-weighted quantity is defined over the profile.
	ErrZeroTotalLength = errors.New("segment: zero total length")
)

// Profile is an immutable segmented copy-number profile: one relative
// copy-number value and one non-negative length per segment, with a
// positive total length. The zero Profile has no segments and is rejected
// by every consumer; construct through New.
type Profile struct {
	vals  []float64 // relative copy number per segment
	lens  []float64 // segment length (weight) per segment
	total float64   // cached Σ lens, always > 0 for a constructed Profile
}

// New validates values/lengths and snapshots them into a Profile.
// The inputs are copied, so the caller may reuse or mutate its slices
// afterwards without affecting the Profile.
//
// Contracts:
//   - len(values) == len(lengths), both ≥ 1
//   - every entry finite; every length ≥ 0; Σ lengths > 0
//
// Errors: ErrShapeMismatch, ErrEmptyProfile, ErrNonFinite,
// ErrNegativeLength, ErrZeroTotalLength.
//
// Complexity: O(n) time, O(n) space for the snapshot.
func New(values, lengths []float64) (Profile, error) {
	// 1) Shape: the two sequences must pair up one-to-one.
	if len(values) != len(lengths) {
		return Profile{}, fmt.Errorf("%w: %d values vs %d lengths", ErrShapeMismatch, len(values), len(lengths))
	}
	if len(values) == 0 {
		return Profile{}, ErrEmptyProfile
	}

	// 2) Content: finite values, finite non-negative lengths.
	var (
		i int     // segment index under validation
		x float64 // current entry
	)
	for i, x = range values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Profile{}, fmt.Errorf("%w: value[%d]=%v", ErrNonFinite, i, x)
		}
	}
	for i, x = range lengths {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Profile{}, fmt.Errorf("%w: length[%d]=%v", ErrNonFinite, i, x)
		}
		if x < 0 {
			return Profile{}, fmt.Errorf("%w: length[%d]=%v", ErrNegativeLength, i, x)
		}
	}

	// 3) Weight mass: at least one segment must carry positive length.
	total := floats.Sum(lengths)
	if total == 0 {
		return Profile{}, ErrZeroTotalLength
	}

	// 4) Snapshot: keep the Profile independent of the caller's slices.
	vals := make([]float64, len(values))
	copy(vals, values)
	lens := make([]float64, len(lengths))
	copy(lens, lengths)

	return Profile{vals: vals, lens: lens, total: total}, nil
}

// Len returns the number of segments.
func (p Profile) Len() int { return len(p.vals) }

// Value returns the relative copy number of segment i.
func (p Profile) Value(i int) float64 { return p.vals[i] }

// Length returns the length of segment i.
func (p Profile) Length(i int) float64 { return p.lens[i] }

// TotalLength returns the sum of all segment lengths.
func (p Profile) TotalLength() float64 { return p.total }

// Values returns a copy of the relative copy-number sequence.
func (p Profile) Values() []float64 {
	out := make([]float64, len(p.vals))
	copy(out, p.vals)

	return out
}

// Lengths returns a copy of the segment-length sequence.
func (p Profile) Lengths() []float64 {
	out := make([]float64, len(p.lens))
	copy(out, p.lens)

	return out
}
