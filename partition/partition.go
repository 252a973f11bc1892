package partition

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors.
var (
	// ErrEmpty indicates a partition over zero conformers.
	ErrEmpty = errors.New("partition: empty")

	// ErrCoverage indicates that cluster member lists miss an index or list
	// one twice.
	ErrCoverage = errors.New("partition: every index must appear exactly once")

	// ErrLength indicates a partition whose size differs from the table it is
	// used with.
	ErrLength = errors.New("partition: length mismatch")
)

// Partition maps conformer index → cluster label. The zero value is empty.
type Partition struct {
	labels []int
}

// Cluster is one label with its member indices in ascending order.
type Cluster struct {
	Label   int
	Members []int
}

// Size returns the member count.
func (c Cluster) Size() int { return len(c.Members) }

// New copies labels into a Partition.
func New(labels []int) (Partition, error) {
	if len(labels) == 0 {
		return Partition{}, ErrEmpty
	}

	return Partition{labels: append([]int(nil), labels...)}, nil
}

// FromClusters builds a Partition over n indices where cluster k gets label k.
// Every index in 0..n-1 must appear in exactly one member list.
func FromClusters(n int, clusters [][]int) (Partition, error) {
	if n <= 0 {
		return Partition{}, ErrEmpty
	}
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	for k, members := range clusters {
		for _, i := range members {
			if i < 0 || i >= n {
				return Partition{}, fmt.Errorf("%w: index %d out of [0,%d)", ErrCoverage, i, n)
			}
			if labels[i] != -1 {
				return Partition{}, fmt.Errorf("%w: index %d in clusters %d and %d", ErrCoverage, i, labels[i], k)
			}
			labels[i] = k
		}
	}
	for i, l := range labels {
		if l == -1 {
			return Partition{}, fmt.Errorf("%w: index %d unassigned", ErrCoverage, i)
		}
	}

	return Partition{labels: labels}, nil
}

// Len returns the number of conformers.
func (p Partition) Len() int { return len(p.labels) }

// Label returns the label of index i.
func (p Partition) Label(i int) int { return p.labels[i] }

// Labels returns a copy of the label slice.
func (p Partition) Labels() []int { return append([]int(nil), p.labels...) }

// Clusters returns the clusters in order of first appearance.
func (p Partition) Clusters() []Cluster {
	pos := make(map[int]int)
	var out []Cluster
	for i, l := range p.labels {
		k, ok := pos[l]
		if !ok {
			k = len(out)
			pos[l] = k
			out = append(out, Cluster{Label: l})
		}
		out[k].Members = append(out[k].Members, i)
	}

	return out
}

// NumClusters returns the number of distinct labels.
func (p Partition) NumClusters() int {
	seen := make(map[int]struct{})
	for _, l := range p.labels {
		seen[l] = struct{}{}
	}

	return len(seen)
}

// Canonical returns an equivalent partition with labels 0..k-1 assigned in
// order of first appearance.
func (p Partition) Canonical() Partition {
	next := 0
	remap := make(map[int]int)
	out := make([]int, len(p.labels))
	for i, l := range p.labels {
		c, ok := remap[l]
		if !ok {
			c = next
			remap[l] = c
			next++
		}
		out[i] = c
	}

	return Partition{labels: out}
}

// BySize returns the clusters ordered by descending size; clusters of equal
// size keep ascending label order.
func (p Partition) BySize() []Cluster {
	cs := p.Clusters()
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Label < cs[j].Label })
	sort.SliceStable(cs, func(i, j int) bool { return len(cs[i].Members) > len(cs[j].Members) })

	return cs
}

// Same reports whether p and q group the indices identically, ignoring label
// values.
func Same(p, q Partition) bool {
	if p.Len() != q.Len() {
		return false
	}
	a, b := p.Canonical(), q.Canonical()
	for i := range a.labels {
		if a.labels[i] != b.labels[i] {
			return false
		}
	}

	return true
}
