// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 matrix used as the
// value type for distance and affinity tables throughout autograph.
//
// What & Why:
//
//	Every stage of the clustering pipeline exchanges N×N tables indexed by the
//	conformer order: RMSD distances, kernel affinities and their thresholded
//	variants. Dense keeps those tables in one flat slice with bounds-checked
//	accessors, and the validators centralise the shape checks (square,
//	symmetric, zero diagonal, finite, non-negative) so that algorithm packages
//	fail fast with a sentinel error instead of producing garbage.
//
// Immutability:
//
//	Matrices produced by one stage are treated as read-only by the next.
//	Derived tables (Submatrix, Apply, Clone) always allocate a new Dense.
//
// Complexity:
//
//	Rows, Cols, At and Set run in O(1). Clone, Apply and the validators run
//	in O(r*c). Submatrix runs in O(k²) for k selected indices.
package matrix
