package centroid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/autograph/dijkstra"
	"github.com/katalvlaran/autograph/matrix"
	"github.com/katalvlaran/autograph/partition"
)

// scorer rates the members of one cluster; lower wins.
type scorer func(members []int) ([]float64, error)

// pick returns the first member with the lowest score of every cluster.
func pick(p partition.Partition, score scorer) ([]int, error) {
	clusters := p.BySize()
	out := make([]int, 0, len(clusters))
	for _, c := range clusters {
		s, err := score(c.Members)
		if err != nil {
			return nil, fmt.Errorf("cluster %d: %w", c.Label, err)
		}
		best := 0
		for k := 1; k < len(s); k++ {
			if s[k] < s[best] {
				best = k
			}
		}
		out = append(out, c.Members[best])
	}

	return out, nil
}

func checkTable(m *matrix.Dense, p partition.Partition, name string) error {
	if m == nil {
		return fmt.Errorf("%w: %s", ErrMissingTable, name)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return err
	}
	if m.Rows() != p.Len() {
		return fmt.Errorf("%w: %s has %d rows, partition %d", partition.ErrLength, name, m.Rows(), p.Len())
	}

	return nil
}

// Select dispatches to the selector named by kind.
func Select(kind Kind, p partition.Partition, t Tables) ([]int, error) {
	switch kind {
	case Degree:
		return DegreeCentroids(t.A, p)
	case Medoid:
		return Medoids(t.D, p)
	case Eccentricity:
		return EccentricityCentroids(t.D, t.Bound, p)
	case Betweenness:
		return BetweennessCentroids(t.D, t.Bound, p)
	case Energy:
		return EnergyCentroids(t.IDs, t.Energies, p)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedKind, kind)
	}
}

// DegreeCentroids picks the member with the largest in-cluster row sum of a.
func DegreeCentroids(a *matrix.Dense, p partition.Partition) ([]int, error) {
	if err := checkTable(a, p, "affinity"); err != nil {
		return nil, err
	}

	return pick(p, func(members []int) ([]float64, error) {
		s := make([]float64, len(members))
		for k, i := range members {
			s[k] = -matrix.RowSum(a, i, members)
		}
		return s, nil
	})
}

// Medoids picks the member with the smallest in-cluster row sum of d.
func Medoids(d *matrix.Dense, p partition.Partition) ([]int, error) {
	if err := checkTable(d, p, "distance"); err != nil {
		return nil, err
	}

	return pick(p, func(members []int) ([]float64, error) {
		s := make([]float64, len(members))
		for k, i := range members {
			s[k] = matrix.RowSum(d, i, members)
		}
		return s, nil
	})
}

// paths runs Dijkstra from every member over the in-cluster graph with
// edges d < bound. dist[k] and prev[k] are indexed by member position.
func paths(d *matrix.Dense, bound float64, members []int) ([][]float64, [][]int, error) {
	sub, err := matrix.Submatrix(d, members)
	if err != nil {
		return nil, nil, err
	}
	g := dijkstra.DenseGraph{M: sub, Edge: func(_, _ int, w float64) bool { return w < bound }}
	dist := make([][]float64, len(members))
	prev := make([][]int, len(members))
	for k := range members {
		if dist[k], prev[k], err = dijkstra.Dijkstra(g, dijkstra.Source(k), dijkstra.WithReturnPath()); err != nil {
			return nil, nil, err
		}
	}

	return dist, prev, nil
}

// EccentricityCentroids picks the member whose farthest in-cluster member is
// nearest along the thresholded graph. Unreachable members make the
// eccentricity +Inf.
func EccentricityCentroids(d *matrix.Dense, bound float64, p partition.Partition) ([]int, error) {
	if err := checkTable(d, p, "distance"); err != nil {
		return nil, err
	}

	return pick(p, func(members []int) ([]float64, error) {
		dist, _, err := paths(d, bound, members)
		if err != nil {
			return nil, err
		}
		s := make([]float64, len(members))
		for k, row := range dist {
			for _, v := range row {
				s[k] = math.Max(s[k], v)
			}
		}
		return s, nil
	})
}

// BetweennessCentroids picks the member that is an interior vertex of the
// most shortest paths between ordered pairs of other members.
func BetweennessCentroids(d *matrix.Dense, bound float64, p partition.Partition) ([]int, error) {
	if err := checkTable(d, p, "distance"); err != nil {
		return nil, err
	}

	return pick(p, func(members []int) ([]float64, error) {
		dist, prev, err := paths(d, bound, members)
		if err != nil {
			return nil, err
		}
		count := make([]float64, len(members))
		for s := range members {
			for t := range members {
				if t == s || math.IsInf(dist[s][t], 1) {
					continue
				}
				for cur := prev[s][t]; cur >= 0 && cur != s; cur = prev[s][cur] {
					count[cur]++
				}
			}
		}
		for k := range count {
			count[k] = -count[k]
		}
		return count, nil
	})
}

// EnergyCentroids picks the member with the lowest energy. Members absent
// from energies are skipped.
func EnergyCentroids(ids []string, energies map[string]float64, p partition.Partition) ([]int, error) {
	if len(ids) != p.Len() {
		return nil, fmt.Errorf("%w: %d ids, partition %d", partition.ErrLength, len(ids), p.Len())
	}

	return pick(p, func(members []int) ([]float64, error) {
		s := make([]float64, len(members))
		found := false
		for k, i := range members {
			e, ok := energies[ids[i]]
			if !ok {
				s[k] = math.Inf(1)
				continue
			}
			s[k] = e
			found = true
		}
		if !found {
			return nil, ErrMissingEnergy
		}
		return s, nil
	})
}
