package partition

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/autograph/matrix"
)

// Stat is one row of the cluster statistics table.
type Stat struct {
	Name     string
	Size     int
	Diameter float64
	MeanRMSD float64
}

// Names returned for the two summary rows.
const (
	GlobalRow  = "global"
	CentersRow = "centers"
)

// ClusterName returns the report name of the k-th cluster in representative order.
func ClusterName(k int) string {
	return fmt.Sprintf("cluster%d", k)
}

// block summarises the submatrix of d over idx: size, max entry and
// sum/(s(s-1)). A singleton has mean 0.
func block(d *matrix.Dense, idx []int) (Stat, error) {
	sub, err := matrix.Submatrix(d, idx)
	if err != nil {
		return Stat{}, err
	}
	var diameter, sum float64
	for i := 0; i < sub.Rows(); i++ {
		row := sub.RawRowView(i)
		if m := floats.Max(row); m > diameter {
			diameter = m
		}
		sum += floats.Sum(row)
	}
	s := len(idx)
	st := Stat{Size: s, Diameter: diameter}
	if s > 1 {
		st.MeanRMSD = sum / float64(s*(s-1))
	}

	return st, nil
}

// Stats returns one row per representative (in the given order, named
// cluster0, cluster1, ...), followed by a global row over all of d and a
// centers row over the representatives.
func Stats(d *matrix.Dense, p Partition, reps []int) ([]Stat, error) {
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, err
	}
	if d.Rows() != p.Len() {
		return nil, fmt.Errorf("%w: table %d, partition %d", ErrLength, d.Rows(), p.Len())
	}

	clusters := make(map[int][]int)
	for _, c := range p.Clusters() {
		clusters[c.Label] = c.Members
	}

	out := make([]Stat, 0, len(reps)+2)
	for k, r := range reps {
		if r < 0 || r >= p.Len() {
			return nil, fmt.Errorf("%w: representative %d", ErrLength, r)
		}
		st, err := block(d, clusters[p.Label(r)])
		if err != nil {
			return nil, err
		}
		st.Name = ClusterName(k)
		out = append(out, st)
	}

	all := make([]int, p.Len())
	for i := range all {
		all[i] = i
	}
	st, err := block(d, all)
	if err != nil {
		return nil, err
	}
	st.Name = GlobalRow
	out = append(out, st)

	if len(reps) > 0 {
		if st, err = block(d, reps); err != nil {
			return nil, err
		}
		st.Name = CentersRow
		out = append(out, st)
	}

	return out, nil
}
