package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/autograph/report"
)

// writeXYZ writes a three-atom carbon frame scaled by s and nudged by dx.
func writeXYZ(t *testing.T, dir, name string, s, dx float64) {
	t.Helper()
	body := fmt.Sprintf("3\nframe\nC 0 0 0\nC %g 0 0\nC 0 %g %g\n", s, s, dx)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeXYZ(t, dir, "a.xyz", 1, 0)
	writeXYZ(t, dir, "b.xyz", 1, 0.01)
	writeXYZ(t, dir, "c.xyz", 4, 0)
	writeXYZ(t, dir, "d.xyz", 4, 0.01)

	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "autograph version test\n", out)
}

func TestRun_NMRClust(t *testing.T) {
	in := fixture(t)
	outDir := filepath.Join(t.TempDir(), "results")
	out, err := execute(t, "run", in, outDir, "--strategy", "nmrclust")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, name := range []string{report.RMSDFile, report.SummaryFile, report.StatsFile, report.ManifestFile} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
	assert.DirExists(t, filepath.Join(outDir, report.CentersDir))

	m, err := report.ReadManifest(filepath.Join(outDir, report.ManifestFile))
	require.NoError(t, err)
	assert.Equal(t, "nmrclust", m.Strategy)
	assert.Equal(t, "medoid", m.Centroid)
	assert.Equal(t, 4, m.Conformers)
	require.Len(t, m.Clusters, 2)
	assert.Equal(t, 2, m.Clusters[0].Size)
}

func TestRun_ReusesCachedTable(t *testing.T) {
	in := fixture(t)
	outDir := t.TempDir()
	_, err := execute(t, "run", "-i", in, "-o", outDir, "-s", "treecut", "--tau", "0", "--copy=false")
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(outDir, report.CentersDir))

	// An unreadable conformer proves the second run never parses the files.
	require.NoError(t, os.WriteFile(filepath.Join(in, "a.xyz"), []byte("garbage"), 0o644))
	_, err = execute(t, "run", "-i", in, "-o", outDir, "-s", "treecut", "--tau", "0", "--copy=false")
	require.NoError(t, err)
}

func TestRun_ConfigFile(t *testing.T) {
	in := fixture(t)
	outDir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "autograph.yaml")
	body := fmt.Sprintf("input: %s\noutput: %s\nstrategy: louvain\ncopy_conformers: false\n", in, outDir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	_, err := execute(t, "run", "--config", cfgPath, "--centroid", "medoid")
	require.NoError(t, err)
	m, err := report.ReadManifest(filepath.Join(outDir, report.ManifestFile))
	require.NoError(t, err)
	assert.Equal(t, "louvain", m.Strategy)
	assert.Equal(t, "medoid", m.Centroid)
	assert.FileExists(t, filepath.Join(outDir, report.AffinityFile))
}

func TestRun_Subset(t *testing.T) {
	in := fixture(t)
	outDir := t.TempDir()
	_, err := execute(t, "run", in, outDir, "-s", "nmrclust", "--subset", "3", "--seed", "5", "--copy=false")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(outDir, report.StatsFile))

	fh, err := os.Open(filepath.Join(outDir, report.SummaryFile))
	require.NoError(t, err)
	defer fh.Close()
	rows, err := report.ReadSummary(fh)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)

	_, err = execute(t, "run", t.TempDir(), t.TempDir())
	assert.Error(t, err)

	_, err = execute(t, "run", fixture(t), t.TempDir(), "-s", "kmeans")
	assert.Error(t, err)
}
