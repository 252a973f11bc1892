// SPDX-License-Identifier: MIT

// Package louvain partitions a weighted similarity graph into communities by
// greedy modularity optimisation in the style of Blondel et al.
//
// What & Why
//
//   - Input is a symmetric, non-negative weight table (typically the filtered
//     affinity table of a conformer ensemble). The diagonal, when non-zero,
//     is a self-loop weight.
//
//   - Output is a canonical Partition (labels 0..k-1 in order of first
//     appearance), the modularity after every level and the level count.
//
// Algorithm
//
//  1. Local phase: every node starts alone. Nodes are visited in index order;
//     each is removed from its community and reinserted into the neighbouring
//     community with the highest insertion gain
//
//     ΔQ(i→C) = 2·k_{i,C}/2m − 2γ·Σtot_C·k_i/(2m)²
//
//     moving only when that gain is strictly larger than the gain of going
//     back to its own community. Candidates are examined in first-seen
//     neighbour order so ties resolve deterministically. Passes repeat until
//     a pass improves Q by no more than Threshold or MaxIter passes ran.
//
//  2. Aggregation: communities become super-nodes. Inter-community weights are
//     summed and the super-node self-loop carries the intra-community weight
//     counted once, so the strength of a super-node equals the total strength
//     of its members and Q is preserved.
//
//  3. The two phases alternate until a level merges nothing, the gain between
//     levels is no more than Threshold, or MaxIter levels ran. Assignments of
//     all levels are composed back onto the input nodes.
//
// Modularity
//
//	Q = Σ_C [ Σin_C/2m − γ·(Σtot_C/2m)² ]
//
//	with k_i = Σ_{j≠i} w_ij + 2·w_ii, 2m = Σ_i k_i, Σin_C the ordered-pair
//	weight inside C (self-loops twice) and Σtot_C = Σ_{i∈C} k_i. On tables
//	with a zero diagonal this is exactly gonum's community.Q.
//
// Errors
//
//   - ErrZeroWeight: the table carries no weight (2m = 0).
//   - ErrBadResolution: γ not positive and finite.
//   - ErrOptionViolation: negative Threshold or non-positive MaxIter.
//   - matrix validation errors for non-square, asymmetric, negative or
//     non-finite tables.
//
// Complexity: one pass is O(N²) on the dense level table; the number of
// passes and levels is capped by MaxIter.
package louvain
