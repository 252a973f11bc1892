package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/autograph/partition"
)

// SummaryRow is one line of cluster_summary.csv.
type SummaryRow struct {
	Conformer string `csv:"conformer"`
	Cluster   string `csv:"cluster"`
	Center    bool   `csv:"center"`
}

// StatRow is one line of communityStats.csv.
type StatRow struct {
	Name     string  `csv:"cluster"`
	Size     int     `csv:"size"`
	Diameter float64 `csv:"diameter"`
	MeanRMSD float64 `csv:"mean_RMSD"`
}

// Summary lists every conformer grouped by cluster, clusters in
// representative order and members ascending. Cluster k is named
// partition.ClusterName(k).
func Summary(ids []string, p partition.Partition, reps []int) ([]SummaryRow, error) {
	if len(ids) != p.Len() {
		return nil, fmt.Errorf("%w: %d ids, partition %d", partition.ErrLength, len(ids), p.Len())
	}
	members := make(map[int][]int, len(reps))
	for _, c := range p.Clusters() {
		members[c.Label] = c.Members
	}

	rows := make([]SummaryRow, 0, len(ids))
	for k, r := range reps {
		if r < 0 || r >= p.Len() {
			return nil, fmt.Errorf("%w: representative %d", partition.ErrLength, r)
		}
		name := partition.ClusterName(k)
		for _, i := range members[p.Label(r)] {
			rows = append(rows, SummaryRow{Conformer: ids[i], Cluster: name, Center: i == r})
		}
	}
	if len(rows) != len(ids) {
		return nil, fmt.Errorf("%w: %d representatives cover %d of %d conformers",
			partition.ErrLength, len(reps), len(rows), len(ids))
	}

	return rows, nil
}

// WriteSummary writes the Summary rows as CSV with a header.
func WriteSummary(w io.Writer, ids []string, p partition.Partition, reps []int) error {
	rows, err := Summary(ids, p, reps)
	if err != nil {
		return err
	}

	return marshal(w, &rows)
}

// WriteStats writes per-cluster statistics as CSV with a header.
func WriteStats(w io.Writer, stats []partition.Stat) error {
	rows := make([]StatRow, len(stats))
	for k, st := range stats {
		rows[k] = StatRow{Name: st.Name, Size: st.Size, Diameter: st.Diameter, MeanRMSD: st.MeanRMSD}
	}

	return marshal(w, &rows)
}

func marshal(w io.Writer, rows any) error {
	cw := gocsv.NewSafeCSVWriter(csv.NewWriter(w))
	if err := gocsv.MarshalCSV(rows, cw); err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}

// ReadSummary parses a cluster_summary.csv stream.
func ReadSummary(r io.Reader) ([]SummaryRow, error) {
	var rows []SummaryRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}
