// SPDX-License-Identifier: MIT

// Package treecut clusters an RMSD table by building a Ward dendrogram and
// cutting it with the adaptive "tree" variant of the Dynamic Tree Cut
// (Langfelder, Zhang and Horvath, 2008).
//
// Dendrogram
//
//	Ward(d) runs Lance–Williams Ward agglomeration and stores the result as an
//	arena: nodes 0..N-1 are leaves, node N+k is the k-th merge, and the root
//	is the last node. OptimalOrder flips children so that the sum of
//	distances between adjacent leaves is minimal (Bar-Joseph, Gifford and
//	Jaakkola, 2001). Leaves and Heights walk the arena with explicit stacks.
//
// Cut
//
//	The in-order merge heights are padded with a 0 on both ends. Within a
//	segment the heights are shifted by a level ℓ; a breakpoint is the start
//	of a run of heights above ℓ that is directly followed by one at or below
//	ℓ, kept when the run is longer than the minimum run length τ. ℓ is the
//	segment mean, then (mean+min)/2, then (mean+max)/2, whichever first
//	yields a breakpoint. Segments between consecutive breakpoints are cut
//	again until a round adds nothing. Leaves between two breakpoints form a
//	cluster.
package treecut
