// Package grid provides deterministic one-dimensional parameter axes and
// their two-axis Cartesian product for exhaustive searches.
//
// An Axis is an immutable, ordered candidate sequence built by Fixed
// (singleton), Candidates (explicit values) or Range (inclusive stepped
// expansion with floating-point-safe sizing). A Grid pairs an outer and an
// inner axis and enumerates their product row-major under a single flat
// index: the outer axis varies slowest, the inner fastest.
//
// Everything here is order-preserving and allocation-predictable; callers
// that break ties by enumeration position can rely on the flat index being
// stable for a given pair of axes.
package grid
