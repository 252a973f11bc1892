package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/autograph/matrix"
)

// WriteMatrix writes m as a CSV table whose header is an empty cell followed
// by ids and whose rows start with the id.
func WriteMatrix(w io.Writer, ids []string, m *matrix.Dense) error {
	if err := matrix.ValidateSquare(m); err != nil {
		return err
	}
	if len(ids) != m.Rows() {
		return fmt.Errorf("%w: %d ids for %d rows", ErrBadTable, len(ids), m.Rows())
	}
	cw := gocsv.NewSafeCSVWriter(csv.NewWriter(w))
	if err := cw.Write(append([]string{""}, ids...)); err != nil {
		return err
	}
	rec := make([]string, len(ids)+1)
	for i, id := range ids {
		rec[0] = id
		for j, v := range m.RawRowView(i) {
			rec[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadMatrix parses a table written by WriteMatrix.
func ReadMatrix(r io.Reader) ([]string, *matrix.Dense, error) {
	recs, err := readAll(r)
	if err != nil {
		return nil, nil, err
	}
	if len(recs) < 2 {
		return nil, nil, fmt.Errorf("%w: no rows", ErrBadTable)
	}
	ids := recs[0][1:]
	n := len(ids)
	if len(recs)-1 != n {
		return nil, nil, fmt.Errorf("%w: %d columns, %d rows", ErrBadTable, n, len(recs)-1)
	}
	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, nil, err
	}
	for i, rec := range recs[1:] {
		if len(rec) != n+1 || rec[0] != ids[i] {
			return nil, nil, fmt.Errorf("%w: row %d", ErrBadTable, i)
		}
		for j, cell := range rec[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: row %d column %d: %v", ErrBadTable, i, j, err)
			}
			_ = m.Set(i, j, v)
		}
	}

	return ids, m, nil
}

// readAll reads every record through gocsv's lenient reader.
func readAll(r io.Reader) ([][]string, error) {
	cr := gocsv.LazyCSVReader(r)
	var recs [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}

// Reorder returns the rows and columns of m (labelled by have) in the order
// of want.
func Reorder(have []string, m *matrix.Dense, want []string) (*matrix.Dense, error) {
	pos := make(map[string]int, len(have))
	for i, id := range have {
		pos[id] = i
	}
	idx := make([]int, len(want))
	for k, id := range want {
		i, ok := pos[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrStaleMatrix, id)
		}
		idx[k] = i
	}

	return matrix.Submatrix(m, idx)
}

// LoadCachedRMSD reads dir/rmsdMatrix.csv reordered to ids. It reports false
// without error when the file does not exist.
func LoadCachedRMSD(dir string, ids []string) (*matrix.Dense, bool, error) {
	fh, err := os.Open(filepath.Join(dir, RMSDFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer fh.Close()

	have, m, err := ReadMatrix(fh)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", RMSDFile, err)
	}
	d, err := Reorder(have, m, ids)
	if err != nil {
		return nil, false, err
	}

	return d, true, nil
}
