// Package cnh - grid-search engine for CNH/ploidy/purity inference.
//
// Infer performs a deterministic exhaustive scan of the ploidy × purity
// product:
//  1. Fold functional options over defaults; surface recorded violations.
//  2. Validate the profile and every axis candidate before any scoring.
//  3. Score all grid points in row-major order (ploidy outer, purity
//     inner) and keep the first point achieving the lowest CNH.
//
// Design:
//   - Strict-improvement acceptance (candidate < best): the earliest
//     minimum in enumeration order wins, and an equal later score never
//     displaces it.
//   - Optional parallel scan over contiguous flat-index chunks. Per-chunk
//     winners are merged in ascending chunk order under the same strict
//     rule, which reproduces the sequential winner exactly.
//   - A scan always runs to completion: there is no randomization and no
//     early cancellation, so repeated runs are reproducible.
package cnh

import (
	"github.com/katalvlaran/cnfit/grid"
	"github.com/katalvlaran/cnfit/segment"
	"golang.org/x/sync/errgroup"
)

// scanChunksPerWorker keeps parallel chunks finer than the worker count,
// so one slow chunk cannot serialize the scan tail.
const scanChunksPerWorker = 4

// Infer searches the configured ploidy × purity grid for the combination
// minimizing the copy-number heterogeneity of p and returns that point.
//
// Dimensions left unconfigured fall back to the default axes derived from
// the Default* constants. The scan order is fixed: ploidy in axis order
// with purity cycling fastest. Ties go to the earliest point in that
// order, for every worker count.
//
// Contracts:
//   - p must come from segment.New (the zero Profile is rejected).
//   - Every ploidy candidate must be positive and finite; every purity
//     candidate finite in (0, 1].
//
// Errors: segment.ErrEmptyProfile, ErrPloidyDomain, ErrPurityDomain, plus
// any recorded option violation (ErrNoCandidates, ErrBadWorkers, wrapped
// grid.ErrBadStep / grid.ErrBadBounds).
//
// Complexity: O(G·N) time for G grid points and N segments; O(N) extra
// space regardless of grid size and worker count.
func Infer(p segment.Profile, opts ...Option) (Result, error) {
	// 1) Fold options over defaults.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Validate everything up front; no partial scans on bad input.
	r, err := newRunner(p, o)
	if err != nil {
		return Result{}, err
	}

	// 3) Scan and report the winner.
	return r.run(), nil
}

// InferSegments is the slice-level convenience wrapper around Infer: it
// validates and snapshots the raw sequences through segment.New first, so
// shape and content violations surface as segment sentinels.
func InferSegments(segVal, segLen []float64, opts ...Option) (Result, error) {
	p, err := segment.New(segVal, segLen)
	if err != nil {
		return Result{}, err
	}

	return Infer(p, opts...)
}

// runner holds the immutable state of one grid scan.
type runner struct {
	vals    []float64 // segment values, snapshot
	lens    []float64 // segment lengths, snapshot
	total   float64   // Σ lens (positive by Profile construction)
	g       grid.Grid // ploidy outer, purity inner
	workers int       // scan parallelism, ≥ 1
}

// newRunner resolves axes and validates the full input set.
//
// Stages: recorded option violations → profile shape → ploidy domain →
// purity domain. The first failing stage aborts; a runner that exists
// scans without further checks.
func newRunner(p segment.Profile, o Options) (*runner, error) {
	// Stage 1: violations recorded while options were applied.
	if o.err != nil {
		return nil, o.err
	}

	// Stage 2: the profile must carry at least one segment.
	if p.Len() == 0 {
		return nil, segment.ErrEmptyProfile
	}

	// Stage 3: resolve axes, substituting defaults for unset dimensions.
	ploidy := o.Ploidy
	if ploidy.Len() == 0 {
		ploidy = defaultPloidy
	}
	purity := o.Purity
	if purity.Len() == 0 {
		purity = defaultPurity
	}

	// Stage 4: every candidate must be inside its domain before scoring.
	var i int
	for i = 0; i < ploidy.Len(); i++ {
		if err := checkPloidy(ploidy.At(i)); err != nil {
			return nil, err
		}
	}
	for i = 0; i < purity.Len(); i++ {
		if err := checkPurity(purity.At(i)); err != nil {
			return nil, err
		}
	}

	return &runner{
		vals:    p.Values(),
		lens:    p.Lengths(),
		total:   p.TotalLength(),
		g:       grid.Grid{Outer: ploidy, Inner: purity},
		workers: o.Workers,
	}, nil
}

// run scans the whole grid and materializes the winning point.
func (r *runner) run() Result {
	var (
		bestCNH  float64
		bestFlat int
	)
	if r.workers > 1 && r.g.Len() > 1 {
		bestCNH, bestFlat = r.scanParallel()
	} else {
		bestCNH, bestFlat = r.scanRange(0, r.g.Len())
	}
	// Overflowing transforms score NaN and never accept; if that voided the
	// whole grid, report the sentinel state instead of indexing nothing.
	if bestFlat < 0 {
		return Result{CNH: 1}
	}

	ploidy, purity := r.g.At(bestFlat)

	return Result{CNH: bestCNH, Ploidy: ploidy, Purity: purity}
}

// scanRange scores flat indices [lo, hi) in enumeration order and returns
// the best score with its index. The initial best is the sentinel state
// (CNH=1, no index); every finite score is ≤ 0.5 and therefore beats it,
// so a non-empty range returns a real index unless every point scored NaN.
func (r *runner) scanRange(lo, hi int) (bestCNH float64, bestFlat int) {
	bestCNH, bestFlat = 1, -1

	// Variables reused across iterations to keep the hot loop tight.
	var (
		t      Transform // coefficients of the current grid point
		c      float64   // CNH of the current grid point
		ploidy float64   // outer coordinate
		purity float64   // inner coordinate
		flat   int       // flat grid index
	)
	for flat = lo; flat < hi; flat++ {
		ploidy, purity = r.g.At(flat)
		t = newTransform(ploidy, purity)
		c = score(t, r.vals, r.lens, r.total)
		// Strict improvement only: ties keep the earlier index.
		if c < bestCNH {
			bestCNH, bestFlat = c, flat
		}
	}

	return bestCNH, bestFlat
}

// scanParallel splits the flat index space into contiguous chunks, scans
// them concurrently (bounded by the worker count) and merges per-chunk
// winners in ascending chunk order. Chunk f-ranges are ascending too, so
// the strict `<` merge reproduces the sequential first-wins tie-break.
func (r *runner) scanParallel() (float64, int) {
	points := r.g.Len()

	// Chunk layout: finer than the worker count, never beyond one point
	// per chunk.
	chunks := r.workers * scanChunksPerWorker
	if chunks > points {
		chunks = points
	}
	size := (points + chunks - 1) / chunks

	var (
		cnhs  = make([]float64, chunks) // per-chunk best score
		flats = make([]int, chunks)     // per-chunk best flat index
		eg    errgroup.Group
	)
	eg.SetLimit(r.workers)

	var lo, hi, c int
	for c = 0; c < chunks; c++ {
		lo = c * size
		hi = lo + size
		if hi > points {
			hi = points
		}
		if lo >= hi { // ceil-sized chunks can leave the tail empty
			cnhs[c], flats[c] = 1, -1

			continue
		}
		chunk, chunkLo, chunkHi := c, lo, hi
		eg.Go(func() error {
			cnhs[chunk], flats[chunk] = r.scanRange(chunkLo, chunkHi)

			return nil
		})
	}
	// Scan closures never return an error; Wait only joins the group.
	_ = eg.Wait()

	// Merge in ascending chunk order; chunks hold ascending flat ranges,
	// so strict `<` alone preserves the earliest winner on exact ties.
	var (
		bestCNH  = 1.0
		bestFlat = -1
	)
	for c = 0; c < chunks; c++ {
		if flats[c] < 0 {
			continue
		}
		if cnhs[c] < bestCNH {
			bestCNH, bestFlat = cnhs[c], flats[c]
		}
	}

	return bestCNH, bestFlat
}
