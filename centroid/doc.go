// Package centroid picks one representative conformer per cluster.
//
// All selectors return representatives in cluster order of descending size
// (ties by ascending label) and break ties inside a cluster in favour of the
// lowest member index.
//
//   - Degree: largest in-cluster affinity row sum.
//   - Medoid: smallest in-cluster RMSD row sum.
//   - Eccentricity: smallest worst-case shortest-path distance over the
//     in-cluster graph whose edges are the pairs with RMSD below the bound.
//   - Betweenness: member lying on the most in-cluster shortest paths.
//   - Energy: lowest energy among the members found in an energy table.
package centroid
