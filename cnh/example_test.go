package cnh_test

import (
	"fmt"

	"github.com/katalvlaran/cnfit/cnh"
	"github.com/katalvlaran/cnfit/segment"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleInferSegments
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two segments of equal length with known ploidy and a fully pure sample.
//	At (ploidy=2, purity=1) the transform is q = 2·v, so values 1 and 3
//	land exactly on copy numbers 2 and 6: a perfectly clonal profile.
//
// Use case:
//
//	Scoring a profile against upstream ploidy/purity calls instead of
//	searching for them.
//
// ExampleInferSegments demonstrates the fully pinned, slice-level flow.
func ExampleInferSegments() {
	res, err := cnh.InferSegments(
		[]float64{1, 3},
		[]float64{100, 100},
		cnh.WithPloidy(2),
		cnh.WithPurity(1),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("CNH=%.4f ploidy=%.2f purity=%.2f\n", res.CNH, res.Ploidy, res.Purity)
	// Output:
	// CNH=0.0000 ploidy=2.00 purity=1.00
}

// ExampleInfer_candidates searches a handful of explicit hypotheses; both
// ploidy 2 and 4 fit the single segment perfectly, and the earlier
// candidate wins the tie.
func ExampleInfer_candidates() {
	res, err := cnh.InferSegments(
		[]float64{0.5}, []float64{1},
		cnh.WithPurity(1),
		cnh.WithPloidyCandidates(2, 4),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("ploidy=%.0f CNH=%.4f\n", res.Ploidy, res.CNH)
	// Output:
	// ploidy=2 CNH=0.0000
}

// ExampleEvaluate scores one hypothesis: the second segment transforms to
// q = 2.5, half a copy away from the integer grid.
func ExampleEvaluate() {
	p, err := segment.New([]float64{1, 1.25}, []float64{1, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	c, err := cnh.Evaluate(p, 2, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("CNH=%.4f\n", c)
	// Output:
	// CNH=0.2500
}

// ExampleNewTransform derives the affine coefficients for a half-pure
// sample and rescales one segment value.
func ExampleNewTransform() {
	tr, err := cnh.NewTransform(2, 0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("a1=%.1f a2=%.1f q(1.0)=%.1f\n", tr.A1, tr.A2, tr.Apply(1))
	// Output:
	// a1=4.0 a2=-2.0 q(1.0)=2.0
}

// ExampleWithWorkers shows that the parallel scan is bit-identical to the
// sequential one over the full default grid.
func ExampleWithWorkers() {
	vals := []float64{0.55, 0.8, 1.0, 1.15, 1.3, 1.45}
	lens := []float64{140, 230, 500, 190, 310, 120}

	seq, err := cnh.InferSegments(vals, lens)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	par, err := cnh.InferSegments(vals, lens, cnh.WithWorkers(8))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(seq == par)
	// Output:
	// true
}
