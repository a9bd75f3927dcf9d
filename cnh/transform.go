package cnh

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cnfit/segment"
)

// Transform holds the affine coefficients that map a relative segment
// value v onto absolute copy number q under a (ploidy, purity) hypothesis:
//
//	q  = A1·v + A2
//	A1 = (purity·ploidy + 2·(1−purity)) / purity
//	A2 = −2·(1−purity) / purity
//
// The A2 term subtracts the diploid signal contributed by admixed normal
// cells; A1 rescales what remains into tumor copy-number units. At
// purity 1 the transform degenerates to plain scaling by ploidy.
type Transform struct {
	A1 float64
	A2 float64
}

// NewTransform derives the transform for one (ploidy, purity) hypothesis.
//
// Contracts:
//   - ploidy > 0 and finite
//   - purity in (0, 1] and finite
//
// Errors: ErrPloidyDomain, ErrPurityDomain.
func NewTransform(ploidy, purity float64) (Transform, error) {
	if err := checkPloidy(ploidy); err != nil {
		return Transform{}, err
	}
	if err := checkPurity(purity); err != nil {
		return Transform{}, err
	}

	return newTransform(ploidy, purity), nil
}

// newTransform is the validated-input path shared with the scan loop.
func newTransform(ploidy, purity float64) Transform {
	var (
		a1 = (purity*ploidy + 2*(1-purity)) / purity
		a2 = -2 * (1 - purity) / purity
	)

	return Transform{A1: a1, A2: a2}
}

// Apply maps one relative segment value to absolute copy number.
func (t Transform) Apply(v float64) float64 { return t.A1*v + t.A2 }

// AbsoluteProfile maps every segment value of p into absolute copy-number
// space. The returned slice is freshly allocated; a clonal profile under
// the true (ploidy, purity) comes out near integers.
func (t Transform) AbsoluteProfile(p segment.Profile) []float64 {
	out := make([]float64, p.Len())
	for i := range out {
		out[i] = t.Apply(p.Value(i))
	}

	return out
}

// checkPloidy enforces the ploidy domain: positive and finite.
func checkPloidy(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: got %v", ErrPloidyDomain, v)
	}

	return nil
}

// checkPurity enforces the purity domain: finite, in (0, 1].
// NaN fails every comparison, so it is ruled out explicitly.
func checkPurity(v float64) error {
	if math.IsNaN(v) || v <= 0 || v > 1 {
		return fmt.Errorf("%w: got %v", ErrPurityDomain, v)
	}

	return nil
}
