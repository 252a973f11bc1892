package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/autograph/centroid"
	"github.com/katalvlaran/autograph/config"
	"github.com/katalvlaran/autograph/engine"
)

func valid() config.Config {
	c := config.Default()
	c.Input, c.Output = "in", "out"

	return c
}

func TestDefault_MatchesEngine(t *testing.T) {
	ec, err := valid().EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultConfig(), ec)
}

func TestDecode_Overlay(t *testing.T) {
	c, err := config.Decode(strings.NewReader(`
input: conformers
output: results
strategy: TreeCut
treecut:
  tau: 2
energy:
  path: energies.csv
`))
	require.NoError(t, err)
	assert.Equal(t, "conformers", c.Input)
	assert.Equal(t, 2, c.TreeCut.Tau)
	assert.True(t, c.TreeCut.OptimalOrdering)
	assert.Equal(t, "energy", c.Energy.Label)
	require.NoError(t, c.Validate())

	ec, err := c.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, engine.TreeCut, ec.Strategy)
	assert.Equal(t, centroid.Energy, ec.Centroid)
	assert.Equal(t, 2, ec.TreeCut.MinRunLength)
}

func TestDecode_Empty(t *testing.T) {
	c, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := config.Decode(strings.NewReader("startegy: louvain\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestCentroidKind(t *testing.T) {
	c := valid()
	k, err := c.CentroidKind()
	require.NoError(t, err)
	assert.Equal(t, centroid.Betweenness, k)

	c.Strategy = "nmrclust"
	k, err = c.CentroidKind()
	require.NoError(t, err)
	assert.Equal(t, centroid.Medoid, k)

	c.Centroid = "Eccentricity"
	c.Energy.Path = "e.csv"
	k, err = c.CentroidKind()
	require.NoError(t, err)
	assert.Equal(t, centroid.Eccentricity, k)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"no input":     func(c *config.Config) { c.Input = "" },
		"no output":    func(c *config.Config) { c.Output = "" },
		"subset":       func(c *config.Config) { c.Subset = -1 },
		"energy path":  func(c *config.Config) { c.Centroid = "energy" },
		"epsilon":      func(c *config.Config) { c.Epsilon = 0 },
		"max iter":     func(c *config.Config) { c.Louvain.MaxIter = 0 },
		"bad strategy": func(c *config.Config) { c.Strategy = "kmeans" },
		"bad centroid": func(c *config.Config) { c.Centroid = "closeness" },
		"tau":          func(c *config.Config) { c.TreeCut.Tau = -1 },
		"rck restarts": func(c *config.Config) { c.RCKmeans.Restarts = 0 },
	}
	for name, mut := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mut(&c)
			assert.Error(t, c.Validate())
		})
	}
	assert.NoError(t, valid().Validate())
}

func TestLoad_WriteRoundTrip(t *testing.T) {
	c := valid()
	c.Strategy = "rckmeans"
	c.Seed = 7
	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))

	path := filepath.Join(t.TempDir(), "autograph.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
