// Package nmrclust implements the NMRCLUST agglomerative clustering of
// Kelley, Gardner and Sutcliffe (1996): average-linkage merging over an RMSD
// table with a penalty function that picks the number of clusters.
//
// Merging starts from singletons and repeatedly joins the pair of clusters
// with the smallest average inter-cluster RMSD; the merged cluster keeps the
// lower index. The first phase runs until no singleton is left (or two
// clusters remain). From then on the average spread (mean over clusters of
// the mean intra-cluster pairwise RMSD) is recorded after every merge, and
// the step minimising rescaled spread + cluster count is returned.
package nmrclust
