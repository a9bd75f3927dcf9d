// Package cnh infers copy-number heterogeneity (CNH), tumor ploidy and
// tumor purity from a single segmented relative copy-number profile.
//
// 🚀 What is CNH?
//
//	A clonal tumor, rescaled into absolute copy-number space with the right
//	ploidy and purity, sits on integers: every segment carries a whole
//	number of copies. Intratumor heterogeneity smears segments away from
//	that integer grid. CNH measures the smear: the length-weighted mean
//	distance of transformed segment values to their nearest integer.
//	It is used as:
//	  • a prognostic marker (higher CNH, worse outcome across tumor types)
//	  • a cheap single-sample alternative to multi-region sequencing
//	  • a sanity check on ploidy/purity calls from upstream pipelines
//
// ✨ Key features:
//   - joint grid search over ploidy × purity, or either one pinned
//   - deterministic scan order with documented first-wins tie-breaking
//   - optional multi-goroutine scan (WithWorkers) with bit-identical results
//   - single-point scoring (Evaluate) and profile rescaling (Transform)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cnfit/cnh"
//
//	res, err := cnh.InferSegments(values, lengths) // full default grid
//	if err != nil {
//	  // handle segment.ErrShapeMismatch, cnh.ErrPurityDomain, ...
//	}
//	fmt.Printf("CNH=%.4f ploidy=%.2f purity=%.2f\n", res.CNH, res.Ploidy, res.Purity)
//
// The model behind the search, for a hypothesis (ploidy p, purity u):
//
//	a1 = (u·p + 2·(1−u)) / u
//	a2 = −2·(1−u) / u
//	q  = a1·v + a2            // absolute copy number of a segment value v
//	d  = min(q mod 1, 1−(q mod 1))
//	CNH = Σ dᵢ·ℓᵢ / Σ ℓᵢ      // ℓᵢ = segment lengths
//
// q mod 1 uses the floor convention, so d is well defined for negative q
// and CNH always lands in [0, 0.5].
//
// Performance:
//
//   - Time:   O(G·N) for G grid points (default 351×81) and N segments
//   - Memory: O(N), independent of grid size and worker count
//
// See example_test.go for runnable scenarios and segment for the profile
// type consumed here.
package cnh
