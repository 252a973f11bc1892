package conformer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/autograph/rmsd"
)

func parsePoint(fields []string) (rmsd.Point, error) {
	var p rmsd.Point
	for k := 0; k < 3; k++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[k]), 64)
		if err != nil {
			return p, fmt.Errorf("%w: %q", ErrBadRecord, fields[k])
		}
		p[k] = v
	}

	return p, nil
}

func finish(f rmsd.Frame, err error) (rmsd.Frame, error) {
	if err != nil {
		return nil, err
	}
	if len(f) == 0 {
		return nil, ErrNoAtoms
	}

	return f, nil
}

// ParseXYZ reads an XYZ stream.
func ParseXYZ(r io.Reader, opts ...Option) (rmsd.Frame, error) {
	cfg := buildOptions(opts)
	var f rmsd.Frame
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 4 {
			continue
		}
		if !cfg.KeepHydrogens && fields[0] == "H" {
			continue
		}
		p, err := parsePoint(fields[1:4])
		if err != nil {
			return nil, err
		}
		f = append(f, p)
	}

	return finish(f, sc.Err())
}

// ParsePDB reads ATOM and, when enabled, HETATM records of a PDB stream.
func ParsePDB(r io.Reader, opts ...Option) (rmsd.Frame, error) {
	cfg := buildOptions(opts)
	var f rmsd.Frame
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if len(line) <= 4 {
			continue
		}
		switch rec := line[:4]; {
		case rec == "ATOM":
		case rec == "HETA" && cfg.HETATM:
		default:
			continue
		}
		if len(line) < 54 {
			return nil, fmt.Errorf("%w: short record %q", ErrBadRecord, line)
		}
		if !cfg.KeepHydrogens && line[13] == 'H' {
			continue
		}
		p, err := parsePoint([]string{line[30:38], line[38:46], line[46:54]})
		if err != nil {
			return nil, err
		}
		f = append(f, p)
	}

	return finish(f, sc.Err())
}

// ParseMOL reads the atom block of a MOL stream.
func ParseMOL(r io.Reader, opts ...Option) (rmsd.Frame, error) {
	cfg := buildOptions(opts)
	var f rmsd.Frame
	sc := bufio.NewScanner(r)
	for line := 0; sc.Scan(); line++ {
		if line < 4 {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) <= 10 {
			continue
		}
		if !cfg.KeepHydrogens && fields[3] == "H" {
			continue
		}
		p, err := parsePoint(fields[:3])
		if err != nil {
			return nil, err
		}
		f = append(f, p)
	}

	return finish(f, sc.Err())
}

// FormatOf returns the format named by the extension of path.
func FormatOf(path string) (Format, error) {
	switch ext := Format(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case XYZ, PDB, MOL:
		return ext, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadFile reads one conformer, choosing the parser by extension.
func ReadFile(path string, opts ...Option) (rmsd.Frame, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var f rmsd.Frame
	switch format {
	case XYZ:
		f, err = ParseXYZ(fh, opts...)
	case PDB:
		f, err = ParsePDB(fh, opts...)
	case MOL:
		f, err = ParseMOL(fh, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// ScanDir lists the supported files of dir, sorted by name.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatOf(e.Name()); err == nil {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, dir)
	}
	sort.Strings(names)

	return names, nil
}

// LoadSet reads names from dir and checks that every frame has the atom
// count of the first.
func LoadSet(dir string, names []string, opts ...Option) ([]rmsd.Frame, error) {
	frames := make([]rmsd.Frame, len(names))
	for i, name := range names {
		f, err := ReadFile(filepath.Join(dir, name), opts...)
		if err != nil {
			return nil, err
		}
		if i > 0 && len(f) != len(frames[0]) {
			return nil, fmt.Errorf("%w: %s has %d atoms, %s has %d",
				ErrAtomCountMismatch, name, len(f), names[0], len(frames[0]))
		}
		frames[i] = f
	}

	return frames, nil
}
