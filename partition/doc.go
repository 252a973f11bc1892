// Package partition holds the clustering result shared by every
// partitioning strategy: a label per conformer index.
//
// Labels are opaque integers. Canonical relabels clusters 0..k-1 in order of
// first appearance, which is the form every strategy in autograph returns.
// BySize orders clusters by descending size with ties broken by ascending
// label; representative sets and reports follow that order.
//
// Stats computes the per-cluster size, diameter and mean intra-cluster
// distance table written to communityStats.csv.
package partition
