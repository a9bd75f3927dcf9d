// Package cnh - option set, sentinel errors and result type for the
// ploidy/purity grid search.
//
// Conventions mirrored across the package:
//   - Every sentinel is prefixed "cnh: ..."; callers match with errors.Is.
//   - Invalid functional options are recorded inside Options and surfaced
//     by Infer before any scan work, never panicked on.
//   - The Default* constants are the single source of truth for the
//     search grid; the expanded default axes derive from them once.
package cnh

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cnfit/grid"
)

// Default search grid, matching the published CNH estimation setup:
// ploidy swept over [1.5, 5.0] and purity over (0, 1] from 0.2 up, both at
// hundredth resolution.
const (
	// DefaultPloidyMin is the inclusive lower bound of the default ploidy axis.
	DefaultPloidyMin = 1.5
	// DefaultPloidyMax is the inclusive upper bound of the default ploidy axis.
	DefaultPloidyMax = 5.0
	// DefaultPloidyStep is the default ploidy resolution.
	DefaultPloidyStep = 0.01

	// DefaultPurityMin is the inclusive lower bound of the default purity axis.
	DefaultPurityMin = 0.2
	// DefaultPurityMax is the inclusive upper bound of the default purity axis.
	DefaultPurityMax = 1.0
	// DefaultPurityStep is the default purity resolution.
	DefaultPurityStep = 0.01

	// DefaultWorkers is the default scan parallelism: a single deterministic pass.
	DefaultWorkers = 1
)

// Sentinel errors for option parsing and parameter validation.
var (
	// ErrPloidyDomain is returned when a candidate ploidy is not a positive
	// finite number.
	ErrPloidyDomain = errors.New("cnh: ploidy must be positive and finite")

	// ErrPurityDomain is returned when a candidate purity is not a finite
	// number in (0, 1].
	ErrPurityDomain = errors.New("cnh: purity must lie in (0, 1]")

	// ErrNoCandidates is returned when an axis option is given zero values.
	ErrNoCandidates = errors.New("cnh: empty candidate set")

	// ErrBadWorkers is returned when the requested worker count is below 1.
	ErrBadWorkers = errors.New("cnh: worker count must be at least 1")
)

// Default axes, expanded once from the Default* constants.
var (
	defaultPloidy = mustRange(DefaultPloidyMin, DefaultPloidyMax, DefaultPloidyStep)
	defaultPurity = mustRange(DefaultPurityMin, DefaultPurityMax, DefaultPurityStep)
)

// mustRange expands a constant-driven range; the constants are known-valid,
// so a failure here is a programmer error.
func mustRange(start, stop, step float64) grid.Axis {
	ax, err := grid.Range(start, stop, step)
	if err != nil {
		panic(err)
	}

	return ax
}

// Option configures the grid search via functional arguments. If an Option
// is invalid (empty candidate set, malformed range, bad worker count), the
// violation is recorded internally and surfaced when Infer is invoked.
type Option func(*Options)

// Options holds the search configuration. An empty axis means "dimension
// not configured" and makes Infer substitute the default range for it.
type Options struct {
	// Ploidy is the candidate ploidy axis (outer, slowest-varying).
	Ploidy grid.Axis

	// Purity is the candidate purity axis (inner, fastest-varying).
	Purity grid.Axis

	// Workers bounds the number of goroutines scanning the grid.
	// 1 keeps the plain sequential scan.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the canonical configuration: both axes unset
// (Infer falls back to the default ranges) and a sequential scan.
func DefaultOptions() Options {
	return Options{Workers: DefaultWorkers}
}

// WithPloidy pins tumor ploidy to a single known value.
func WithPloidy(v float64) Option {
	return func(o *Options) { o.Ploidy = grid.Fixed(v) }
}

// WithPloidyCandidates searches ploidy over the given values in the given
// order. Zero values → ErrNoCandidates.
func WithPloidyCandidates(vs ...float64) Option {
	return func(o *Options) {
		if len(vs) == 0 {
			o.err = fmt.Errorf("%w: ploidy", ErrNoCandidates)

			return
		}
		o.Ploidy = grid.Candidates(vs...)
	}
}

// WithPloidyRange searches ploidy over the inclusive stepped range
// [start, stop]. A malformed range (bad step or bounds) is recorded and
// surfaced by Infer.
func WithPloidyRange(start, stop, step float64) Option {
	return func(o *Options) {
		ax, err := grid.Range(start, stop, step)
		if err != nil {
			o.err = fmt.Errorf("cnh: ploidy range: %w", err)

			return
		}
		o.Ploidy = ax
	}
}

// WithPurity pins tumor purity to a single known value.
func WithPurity(v float64) Option {
	return func(o *Options) { o.Purity = grid.Fixed(v) }
}

// WithPurityCandidates searches purity over the given values in the given
// order. Zero values → ErrNoCandidates.
func WithPurityCandidates(vs ...float64) Option {
	return func(o *Options) {
		if len(vs) == 0 {
			o.err = fmt.Errorf("%w: purity", ErrNoCandidates)

			return
		}
		o.Purity = grid.Candidates(vs...)
	}
}

// WithPurityRange searches purity over the inclusive stepped range
// [start, stop]. A malformed range (bad step or bounds) is recorded and
// surfaced by Infer.
func WithPurityRange(start, stop, step float64) Option {
	return func(o *Options) {
		ax, err := grid.Range(start, stop, step)
		if err != nil {
			o.err = fmt.Errorf("cnh: purity range: %w", err)

			return
		}
		o.Purity = ax
	}
}

// WithWorkers lets the scan use up to n goroutines.
//
//	n == 1: sequential scan (default)
//	n  > 1: parallel scan, result bit-identical to the sequential one
//	n  < 1: invalid option → ErrBadWorkers
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, n)

			return
		}
		o.Workers = n
	}
}

// Result carries the winning grid point of one inference run.
//
// Before any point is scored the search holds the sentinel state
// (CNH=1, Ploidy=0, Purity=0). Every finite score is ≤ 0.5 and replaces
// the sentinel no later than the first grid point, so Purity > 0 is the
// sole "a point was accepted" discriminator.
type Result struct {
	// CNH is the winning copy-number heterogeneity score, in [0, 0.5].
	CNH float64

	// Ploidy is the tumor ploidy of the winning grid point (echoes the
	// pinned value when WithPloidy was used).
	Ploidy float64

	// Purity is the tumor purity of the winning grid point (echoes the
	// pinned value when WithPurity was used).
	Purity float64
}

// Found reports whether the search scored at least one grid point.
func (r Result) Found() bool { return r.Purity > 0 }
