package engine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/autograph/affinity"
	"github.com/katalvlaran/autograph/centroid"
	"github.com/katalvlaran/autograph/louvain"
	"github.com/katalvlaran/autograph/rckmeans"
	"github.com/katalvlaran/autograph/treecut"
)

// LouvainConfig holds the modularity search parameters.
type LouvainConfig struct {
	Resolution float64
	Threshold  float64
	MaxIter    int
}

// TreeCutConfig holds the dendrogram cut parameters.
type TreeCutConfig struct {
	MinRunLength    int
	OptimalOrdering bool
}

// RCKmeansConfig holds the k search parameters.
type RCKmeansConfig struct {
	Restarts int
}

// Config selects and parameterises one pipeline run.
type Config struct {
	Strategy Strategy
	Centroid centroid.Kind
	Epsilon  float64
	Louvain  LouvainConfig
	TreeCut  TreeCutConfig
	RCKmeans RCKmeansConfig

	// Seed drives every random choice; 0 selects a fixed default.
	Seed int64
}

// DefaultConfig returns Louvain with betweenness representatives and the
// package defaults of every algorithm.
func DefaultConfig() Config {
	return Config{
		Strategy: Louvain,
		Centroid: DefaultCentroid(Louvain),
		Epsilon:  affinity.DefaultEpsilon,
		Louvain: LouvainConfig{
			Resolution: louvain.DefaultResolution,
			Threshold:  louvain.DefaultThreshold,
			MaxIter:    louvain.DefaultMaxIter,
		},
		TreeCut: TreeCutConfig{
			MinRunLength:    treecut.DefaultMinRunLength,
			OptimalOrdering: true,
		},
		RCKmeans: RCKmeansConfig{Restarts: rckmeans.DefaultRestarts},
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Strategy < Louvain || c.Strategy > RCKmeans {
		return fmt.Errorf("%w: %v", ErrUnrecognizedStrategy, c.Strategy)
	}
	if c.Centroid < centroid.Degree || c.Centroid > centroid.Energy {
		return fmt.Errorf("%w: %v", centroid.ErrUnrecognizedKind, c.Centroid)
	}
	switch {
	case !(c.Epsilon > 0) || math.IsInf(c.Epsilon, 0):
		return fmt.Errorf("%w: epsilon %v", ErrInvalidConfig, c.Epsilon)
	case !(c.Louvain.Resolution > 0) || math.IsInf(c.Louvain.Resolution, 0):
		return fmt.Errorf("%w: louvain resolution %v", ErrInvalidConfig, c.Louvain.Resolution)
	case c.Louvain.Threshold < 0:
		return fmt.Errorf("%w: louvain threshold %v", ErrInvalidConfig, c.Louvain.Threshold)
	case c.Louvain.MaxIter <= 0:
		return fmt.Errorf("%w: louvain max_iter %d", ErrInvalidConfig, c.Louvain.MaxIter)
	case c.TreeCut.MinRunLength < 0:
		return fmt.Errorf("%w: treecut tau %d", ErrInvalidConfig, c.TreeCut.MinRunLength)
	case c.RCKmeans.Restarts <= 0:
		return fmt.Errorf("%w: rckmeans restarts %d", ErrInvalidConfig, c.RCKmeans.Restarts)
	}

	return nil
}

// needsGraph reports whether the affinity stage must run.
func (c Config) needsGraph() bool {
	if c.Strategy == Louvain {
		return true
	}
	switch c.Centroid {
	case centroid.Degree, centroid.Eccentricity, centroid.Betweenness:
		return true
	}

	return false
}
