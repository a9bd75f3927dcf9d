// Package cnfit is your in-memory toolkit for estimating intra-tumor
// heterogeneity from segmented relative copy-number profiles, from profile
// validation to grid-search inference of copy-number heterogeneity (CNH).
//
// 🚀 What is cnfit?
//
//	A small, deterministic library that brings together:
//		• Segmented profiles: validated value/length pairs, weighted QC summaries
//		• Candidate axes: fixed values, explicit candidate lists, inclusive ranges
//		• Transform model: relative-to-absolute rescaling for any (ploidy, purity)
//		• Objective: length-weighted distance to the nearest integer copy number
//		• Search: exhaustive grid scan, sequential or bounded-parallel
//
// ✨ Why choose cnfit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical winners at any worker count
//   - Honest errors – every invalid input maps to a named sentinel
//   - Pure Go – no cgo, no hidden machinery
//
// Under the hood, everything is organized under three subpackages:
//
//	segment/ – validated segmented profiles & weighted summary statistics
//	grid/    – candidate axes (fixed, lists, ranges) & row-major grids
//	cnh/     – transform model, objective & grid-search inference
//
// Quick ASCII example:
//
//	1.2 ┤             ┌─────┐
//	1.0 ┤      ┌──────┘     └──────┐
//	0.8 ┤ ┌────┘                   └────
//	0.6 ┼─┘
//
//	a segmented profile; each plateau is one segment, weighted by its span.
//
// Next up: bootstrap confidence intervals, multi-sample cohorts and beyond.
// Dive into examples/ for an end-to-end walkthrough and each subpackage's
// doc.go for tutorials.
//
//	go get github.com/katalvlaran/cnfit
package cnfit
