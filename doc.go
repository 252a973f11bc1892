// Package autograph clusters ensembles of molecular conformers and picks one
// representative structure per cluster.
//
// Pipeline:
//
//	frames ─► RMSD table ─► (affinity + threshold) ─► partition ─► representatives ─► stats
//
// Subpackages, leaves first:
//
//	matrix/     dense float64 tables and their validators
//	rmsd/       Kabsch superposition and the pairwise RMSD table
//	bfs/        breadth-first traversal over index graphs
//	dijkstra/   shortest paths over dense index graphs
//	affinity/   Gaussian kernel, connectivity threshold, filtered tables
//	partition/  cluster labels and per-cluster statistics
//	louvain/    modularity optimisation on the affinity graph
//	nmrclust/   average linkage with a spread penalty
//	treecut/    Ward dendrogram, optimal leaf order, dynamic tree cut
//	rckmeans/   k-medoids restarts with a between-cluster spread curve
//	centroid/   degree, eccentricity, betweenness, medoid and energy centers
//	subset/     sampling and nearest-representative assignment
//	engine/     strategy dispatch, staged run, observer events
//	conformer/  xyz, pdb and mol readers
//	report/     CSV tables, summary, manifest and cluster copies
//	config/     YAML run configuration
//
// The autograph command in cmd/autograph wires these together.
package autograph
