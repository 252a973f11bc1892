package conformer

import "errors"

// Sentinel errors.
var (
	// ErrUnsupportedFormat indicates a file extension other than xyz, pdb or mol.
	ErrUnsupportedFormat = errors.New("conformer: unsupported file format")

	// ErrNoAtoms indicates a file without any atom record left after filtering.
	ErrNoAtoms = errors.New("conformer: no atoms read")

	// ErrBadRecord indicates an atom record whose coordinates do not parse.
	ErrBadRecord = errors.New("conformer: malformed atom record")

	// ErrAtomCountMismatch indicates files of one set with different atom counts.
	ErrAtomCountMismatch = errors.New("conformer: atom count differs between files")

	// ErrNoFiles indicates a directory without supported files.
	ErrNoFiles = errors.New("conformer: no xyz, pdb or mol files found")
)

// Format is a supported file type.
type Format string

// Supported formats, named by file extension.
const (
	XYZ Format = "xyz"
	PDB Format = "pdb"
	MOL Format = "mol"
)

// Option configures the readers.
type Option func(*Options)

// Options holds reader filters.
type Options struct {
	// KeepHydrogens keeps hydrogen atoms.
	KeepHydrogens bool

	// HETATM includes PDB HETATM records.
	HETATM bool
}

// DefaultOptions drops hydrogens and reads HETATM records.
func DefaultOptions() Options {
	return Options{HETATM: true}
}

// WithHydrogens toggles hydrogen atoms.
func WithHydrogens(keep bool) Option {
	return func(o *Options) { o.KeepHydrogens = keep }
}

// WithHETATM toggles PDB HETATM records.
func WithHETATM(on bool) Option {
	return func(o *Options) { o.HETATM = on }
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
