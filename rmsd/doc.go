// Package rmsd computes structural distances between conformers.
//
// What & Why:
//
//	Two conformers of the same molecule are compared by the root-mean-square
//	deviation of corresponding atoms after the rigid motion that brings them
//	closest together. Translation is removed by centring both frames on their
//	centroids; the optimal rotation is found with the Kabsch algorithm from
//	the singular value decomposition of the 3×3 cross-covariance matrix.
//
// Algorithm (Kabsch):
//
//  1. X = ref − centroid(ref), Y = mob − centroid(mob).
//  2. H = Yᵀ·X.
//  3. H = U·Σ·Vᵀ (gonum mat.SVD).
//  4. If det(U)·det(V) < 0, negate the last column of U (no reflections).
//  5. R = U·Vᵀ; the aligned mobile frame is Y·R.
//  6. RMSD = sqrt(mean ‖x_k − (Y·R)_k‖²).
//
// Degenerate input (collinear or coplanar atoms) makes the rotation
// non-unique; whatever the SVD returns is accepted.
//
// Complexity:
//
//   - RMSD: O(n) for n atoms (the SVD is on a fixed 3×3 matrix).
//   - Matrix: O(N²·n) for N frames, computing each unordered pair once.
//
// Errors:
//
//   - ErrEmptyFrame         a frame with no atoms.
//   - ErrAtomCountMismatch  frames of different length (malformed input).
//   - ErrNoFrames           Matrix called on an empty set.
//   - ErrSVDFailed          the factorisation did not converge.
package rmsd
