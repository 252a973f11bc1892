// Package rckmeans implements representative-conformer k-means (Kim et al.,
// J. Cheminform. 2017): k-medoids over an RMSD table for increasing k, with a
// moving average of the between-medoid spread deciding when to stop.
//
// For every k the k-medoids search is restarted from random medoid sets and
// the restart with the smallest within-cluster spread (MSQw) is kept. Its
// between-medoid spread (MSQb) is appended to a curve that starts with two
// zeros. Once the curve holds a full window, its simple moving average is
// tracked; the first time it decreases the clustering at the k with the
// largest MSQb is returned.
//
// Randomness comes only from the *rand.Rand passed with WithRand, so equal
// seeds give equal results.
package rckmeans
