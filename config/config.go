// Package config loads the YAML run configuration of the autograph command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/autograph/centroid"
	"github.com/katalvlaran/autograph/engine"
	"github.com/katalvlaran/autograph/report"
)

// ErrInvalid indicates a configuration that cannot drive a run.
var ErrInvalid = errors.New("config: invalid configuration")

// Louvain holds the modularity search settings.
type Louvain struct {
	Resolution float64 `yaml:"resolution"`
	Threshold  float64 `yaml:"threshold"`
	MaxIter    int     `yaml:"max_iter"`
}

// TreeCut holds the dynamic tree cut settings.
type TreeCut struct {
	Tau             int  `yaml:"tau"`
	OptimalOrdering bool `yaml:"optimal_ordering"`
}

// RCKmeans holds the k search settings.
type RCKmeans struct {
	Restarts int `yaml:"restarts"`
}

// Energy points at an energy table used for representative selection.
type Energy struct {
	Path  string `yaml:"path"`
	Label string `yaml:"label"`
}

// Config is the decoded run.yaml or autograph.yaml file.
type Config struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	Strategy string `yaml:"strategy"`

	// Centroid empty selects energy when Energy.Path is set, otherwise the
	// customary rule of the strategy.
	Centroid string  `yaml:"centroid"`
	Epsilon  float64 `yaml:"epsilon"`

	Louvain  Louvain  `yaml:"louvain"`
	TreeCut  TreeCut  `yaml:"treecut"`
	RCKmeans RCKmeans `yaml:"rckmeans"`

	// Subset > 0 clusters that many sampled conformers and assigns the rest.
	Subset    int   `yaml:"subset"`
	Randomize bool  `yaml:"randomize"`
	Seed      int64 `yaml:"seed"`

	KeepHydrogens  bool `yaml:"keep_hydrogens"`
	HETATM         bool `yaml:"hetatm"`
	CopyConformers bool `yaml:"copy_conformers"`

	Energy Energy `yaml:"energy"`
}

// Default mirrors engine.DefaultConfig with HETATM records read.
func Default() Config {
	ec := engine.DefaultConfig()

	return Config{
		Strategy: ec.Strategy.String(),
		Epsilon:  ec.Epsilon,
		Louvain: Louvain{
			Resolution: ec.Louvain.Resolution,
			Threshold:  ec.Louvain.Threshold,
			MaxIter:    ec.Louvain.MaxIter,
		},
		TreeCut: TreeCut{
			Tau:             ec.TreeCut.MinRunLength,
			OptimalOrdering: ec.TreeCut.OptimalOrdering,
		},
		RCKmeans:       RCKmeans{Restarts: ec.RCKmeans.Restarts},
		HETATM:         true,
		CopyConformers: true,
		Energy:         Energy{Label: report.DefaultEnergyLabel},
	}
}

// Decode overlays the YAML document in r onto Default. Unknown keys are
// rejected and an empty document yields Default.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return c, nil
}

// Load reads and decodes path.
func Load(path string) (Config, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer fh.Close()

	c, err := Decode(fh)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Write encodes c as YAML.
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}

	return enc.Close()
}

// CentroidKind resolves the representative rule.
func (c Config) CentroidKind() (centroid.Kind, error) {
	if strings.TrimSpace(c.Centroid) != "" {
		return centroid.ParseKind(c.Centroid)
	}
	if c.Energy.Path != "" {
		return centroid.Energy, nil
	}
	s, err := engine.ParseStrategy(c.Strategy)
	if err != nil {
		return 0, err
	}

	return engine.DefaultCentroid(s), nil
}

// EngineConfig converts c to the engine's configuration.
func (c Config) EngineConfig() (engine.Config, error) {
	s, err := engine.ParseStrategy(c.Strategy)
	if err != nil {
		return engine.Config{}, err
	}
	k, err := c.CentroidKind()
	if err != nil {
		return engine.Config{}, err
	}
	ec := engine.Config{
		Strategy: s,
		Centroid: k,
		Epsilon:  c.Epsilon,
		Louvain: engine.LouvainConfig{
			Resolution: c.Louvain.Resolution,
			Threshold:  c.Louvain.Threshold,
			MaxIter:    c.Louvain.MaxIter,
		},
		TreeCut: engine.TreeCutConfig{
			MinRunLength:    c.TreeCut.Tau,
			OptimalOrdering: c.TreeCut.OptimalOrdering,
		},
		RCKmeans: engine.RCKmeansConfig{Restarts: c.RCKmeans.Restarts},
		Seed:     c.Seed,
	}

	return ec, ec.Validate()
}

// Validate checks paths, the subset size and every engine setting.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input directory is required", ErrInvalid)
	case c.Output == "":
		return fmt.Errorf("%w: output directory is required", ErrInvalid)
	case c.Subset < 0:
		return fmt.Errorf("%w: subset %d", ErrInvalid, c.Subset)
	}
	k, err := c.CentroidKind()
	if err != nil {
		return err
	}
	if k == centroid.Energy && c.Energy.Path == "" {
		return fmt.Errorf("%w: energy centroids need energy.path", ErrInvalid)
	}
	_, err = c.EngineConfig()

	return err
}
