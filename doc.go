// Package ordstat is a toolkit for stable order statistics of small tuples
// and extrema of ranges, built to spend as few comparisons as known.
//
// 🚀 What is ordstat?
//
//	A generic, allocation-free library plus a verification harness:
//		• Selection networks: every rank of 2..7 values, stable under ties
//		• Medians: 3..7 values, including the 6-comparison median of 5
//		• Dispatch: rank k of a runtime-length slice or argument list
//		• Range layer: first minimum, last maximum, joint min/max in ⌈3n/2⌉-2
//		• Census: exhaustive and sampled checks of every network
//
// ✨ Why choose ordstat?
//
//   - Stable: duplicates resolve exactly as a stable sort would place them
//   - Frugal: each network meets the best known worst-case budget
//   - Generic: any type with a strict weak ordering, pointers included
//   - Verified: the census replays every duplicate pattern of every arity
//
// Packages:
//
//	selection/  - networks, medians, rank dispatch and the range layer
//	instrument/ - comparison counting for any less function
//	census/     - network catalog, exhaustive checks, sampling, range checks
//	cmd/ordstat - CLI: select, minmax, networks, census
//
// Quick example:
//
//	m := selection.MedianOf5(3, 6, 2, 1, 4, cmp.Less[int]) // 3, six comparisons
//
//	go install github.com/katalvlaran/ordstat/cmd/ordstat@latest
package ordstat
