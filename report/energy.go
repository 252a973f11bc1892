package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultEnergyLabel is the column read when no label is given.
const DefaultEnergyLabel = "energy"

// ReadEnergies parses a CSV table whose first column holds conformer ids and
// whose header names an energy column. Empty cells are skipped.
func ReadEnergies(r io.Reader, label string) (map[string]float64, error) {
	if label == "" {
		label = DefaultEnergyLabel
	}
	recs, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrBadTable)
	}
	col := -1
	for j, h := range recs[0] {
		if j > 0 && strings.TrimSpace(h) == label {
			col = j
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoEnergyColumn, label)
	}

	out := make(map[string]float64, len(recs)-1)
	for i, rec := range recs[1:] {
		if col >= len(rec) || strings.TrimSpace(rec[col]) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadTable, i+1, err)
		}
		out[strings.TrimSpace(rec[0])] = v
	}

	return out, nil
}

// LoadEnergies opens path and calls ReadEnergies.
func LoadEnergies(path, label string) (map[string]float64, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return ReadEnergies(fh, label)
}
