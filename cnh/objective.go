package cnh

import (
	"math"

	"github.com/katalvlaran/cnfit/segment"
)

// Evaluate scores a single (ploidy, purity) hypothesis against a profile:
// each segment value is mapped to absolute copy number, its distance to
// the nearest integer is taken, and the distances are averaged weighted by
// segment length. The result is the CNH of that hypothesis, in [0, 0.5].
//
// Evaluate shares its accumulation path with the grid scan, so pinning
// both dimensions in Infer returns exactly this value, bit for bit.
//
// Errors: segment.ErrEmptyProfile (zero Profile), ErrPloidyDomain,
// ErrPurityDomain.
//
// Complexity: O(n) time, O(1) extra space.
func Evaluate(p segment.Profile, ploidy, purity float64) (float64, error) {
	if p.Len() == 0 {
		return 0, segment.ErrEmptyProfile
	}
	t, err := NewTransform(ploidy, purity)
	if err != nil {
		return 0, err
	}

	return score(t, p.Values(), p.Lengths(), p.TotalLength()), nil
}

// score computes the length-weighted mean distance of the transformed
// values to the integer grid. total is Σ lens, guaranteed positive by
// Profile construction.
//
// The fractional part uses the floor convention (q − ⌊q⌋ ∈ [0, 1)), which
// keeps the distance well defined for negative q; d = min(frac, 1−frac)
// is then bounded by 0.5 regardless of input.
func score(t Transform, vals, lens []float64, total float64) float64 {
	var (
		sum  float64 // running Σ dᵢ·ℓᵢ
		q    float64 // transformed (absolute) value
		frac float64 // q − ⌊q⌋
		d    float64 // distance to the nearest integer
	)
	for i, v := range vals {
		q = t.A1*v + t.A2
		frac = q - math.Floor(q)
		d = frac
		if frac > 0.5 {
			d = 1 - frac
		}
		sum += d * lens[i]
	}

	return sum / total
}
