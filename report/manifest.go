package report

import (
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/autograph/engine"
	"github.com/katalvlaran/autograph/partition"
)

// Manifest describes one run in run.yaml.
type Manifest struct {
	RunID      string    `yaml:"run_id"`
	Created    time.Time `yaml:"created"`
	Strategy   string    `yaml:"strategy"`
	Centroid   string    `yaml:"centroid"`
	Conformers int       `yaml:"conformers"`
	Sampled    int       `yaml:"sampled,omitempty"`
	Tau        float64   `yaml:"tau"`

	// Bound is omitted when no graph was built.
	Bound    *float64  `yaml:"distance_bound,omitempty"`
	Clusters []Cluster `yaml:"clusters"`
}

// Cluster is one cluster entry of a Manifest.
type Cluster struct {
	Name   string `yaml:"name"`
	Center string `yaml:"center"`
	Size   int    `yaml:"size"`
}

// NewManifest summarises res.
func NewManifest(res *engine.Result) Manifest {
	m := Manifest{
		RunID:      res.RunID.String(),
		Created:    time.Now().UTC().Truncate(time.Second),
		Strategy:   res.Strategy.String(),
		Centroid:   res.Centroid.String(),
		Conformers: len(res.IDs),
		Sampled:    len(res.Sampled),
		Tau:        res.Tau,
	}
	if !math.IsInf(res.Bound, 0) {
		b := res.Bound
		m.Bound = &b
	}
	sizes := make(map[int]int)
	for _, c := range res.Partition.Clusters() {
		sizes[c.Label] = c.Size()
	}
	for k, r := range res.Representatives {
		m.Clusters = append(m.Clusters, Cluster{
			Name:   partition.ClusterName(k),
			Center: res.IDs[r],
			Size:   sizes[res.Partition.Label(r)],
		})
	}

	return m
}

// WriteManifest encodes m as YAML.
func WriteManifest(w io.Writer, m Manifest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}

	return enc.Close()
}

// ReadManifest decodes a run.yaml file.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	raw, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	err = yaml.Unmarshal(raw, &m)

	return m, err
}
