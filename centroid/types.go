package centroid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/autograph/matrix"
)

// Sentinel errors.
var (
	// ErrUnrecognizedKind indicates an unknown selector name.
	ErrUnrecognizedKind = errors.New("centroid: unrecognized kind")

	// ErrMissingEnergy indicates a cluster none of whose members has an energy.
	ErrMissingEnergy = errors.New("centroid: cluster has no energy entries")

	// ErrMissingTable indicates that the table a selector needs was not supplied.
	ErrMissingTable = errors.New("centroid: required table not supplied")
)

// Kind names a selection rule.
type Kind int

// Supported kinds.
const (
	Degree Kind = iota
	Eccentricity
	Betweenness
	Medoid
	Energy
)

var kindNames = [...]string{
	Degree:       "degree",
	Eccentricity: "eccentricity",
	Betweenness:  "betweenness",
	Medoid:       "medoid",
	Energy:       "energy",
}

// String returns the lowercase name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a case-insensitive name to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedKind, s)
}

// Tables bundles what the selectors read. Only the fields a kind needs must
// be set: Degree reads A; Medoid reads D; Eccentricity and Betweenness read
// D and Bound; Energy reads IDs and Energies.
type Tables struct {
	D        *matrix.Dense
	A        *matrix.Dense
	Bound    float64
	IDs      []string
	Energies map[string]float64
}
