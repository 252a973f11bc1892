// Package report persists a clustering run: labelled CSV tables, the
// cluster summary, cluster statistics, a YAML manifest and, optionally,
// per-cluster copies of the conformer files.
//
// Layout of an output directory:
//
//	rmsdMatrix.csv                 RMSD table (reused by later runs)
//	affinityMatrix.csv             affinity table, when computed
//	filteredAffinityMatrix.csv     affinity table above the threshold
//	filteredRmsdMatrix.csv         RMSD table below the distance bound
//	cluster_summary.csv            conformer, cluster, center
//	communityStats.csv             per-cluster size, diameter, mean RMSD
//	run.yaml                       manifest
//	cluster0/ ... centers/         copied conformer files
package report
