package engine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/autograph/centroid"
)

// Strategy selects the partitioning algorithm.
type Strategy int

// Supported strategies.
const (
	Louvain Strategy = iota
	NMRClust
	TreeCut
	RCKmeans
)

var strategyNames = [...]string{
	Louvain:  "louvain",
	NMRClust: "nmrclust",
	TreeCut:  "treecut",
	RCKmeans: "rckmeans",
}

// String returns the lowercase name of s.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a case-insensitive name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, v := range strategyNames {
		if v == n {
			return Strategy(s), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedStrategy, name)
}

// DefaultCentroid is the representative rule customary for s: betweenness
// on the similarity graph for Louvain, the medoid otherwise.
func DefaultCentroid(s Strategy) centroid.Kind {
	if s == Louvain {
		return centroid.Betweenness
	}

	return centroid.Medoid
}
