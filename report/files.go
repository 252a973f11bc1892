package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/autograph/partition"
)

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// CopyClusters copies conformer files from inDir (named by ids) into
// outDir/clusterK/ for each cluster and the representatives into
// outDir/centers/.
func CopyClusters(inDir, outDir string, ids []string, p partition.Partition, reps []int) error {
	rows, err := Summary(ids, p, reps)
	if err != nil {
		return err
	}
	centers := filepath.Join(outDir, CentersDir)
	if err = os.MkdirAll(centers, 0o755); err != nil {
		return err
	}
	made := make(map[string]bool)
	for _, row := range rows {
		dir := filepath.Join(outDir, row.Cluster)
		if !made[dir] {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			made[dir] = true
		}
		src := filepath.Join(inDir, row.Conformer)
		if err = copyFile(src, filepath.Join(dir, row.Conformer)); err != nil {
			return fmt.Errorf("copy %s: %w", row.Conformer, err)
		}
		if row.Center {
			if err = copyFile(src, filepath.Join(centers, row.Conformer)); err != nil {
				return fmt.Errorf("copy center %s: %w", row.Conformer, err)
			}
		}
	}

	return nil
}
