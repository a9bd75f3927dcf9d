// Package segment models segmented copy-number profiles: the per-segment
// relative copy-number values and genomic lengths that CNV callers emit
// for a single tumor sample.
//
// 🚀 What is a segmented profile?
//
//	Read-depth pipelines collapse a genome into contiguous segments, each
//	carrying one relative copy-number value (tumor coverage over normal,
//	scaled so the genome-wide average is ~1) and the length it spans.
//	Profile bundles the two sequences, checks them once at construction,
//	and stays immutable afterwards:
//	  • equal number of values and lengths, at least one segment
//	  • finite entries only (NaN and ±Inf are rejected up front)
//	  • non-negative lengths with a positive total
//
// ✨ Key features:
//   - single validation point: a Profile that exists is a valid Profile
//   - slices are copied on the way in and on the way out
//   - length-weighted summary statistics (Summary) for quick QC
//
// ⚙️ Usage:
//
//	p, err := segment.New(
//	  []float64{0.52, 1.07, 1.48},   // relative copy number per segment
//	  []float64{1.8e7, 6.1e7, 2.4e7}, // segment lengths in bases
//	)
//	if err != nil {
//	  // handle ErrShapeMismatch, ErrNonFinite, ...
//	}
//	fmt.Println(p.Summary())
//
// Downstream packages treat Profile as read-only input; see cnh for the
// inference built on top of it.
package segment
