package report

import "errors"

// Sentinel errors.
var (
	// ErrBadTable indicates a CSV table that is not a labelled square matrix.
	ErrBadTable = errors.New("report: malformed table")

	// ErrStaleMatrix indicates a cached table missing some conformer.
	ErrStaleMatrix = errors.New("report: cached table does not cover every conformer")

	// ErrNoEnergyColumn indicates an energy table without the requested column.
	ErrNoEnergyColumn = errors.New("report: energy column not found")
)

// File names inside an output directory.
const (
	RMSDFile             = "rmsdMatrix.csv"
	AffinityFile         = "affinityMatrix.csv"
	FilteredAffinityFile = "filteredAffinityMatrix.csv"
	FilteredRMSDFile     = "filteredRmsdMatrix.csv"
	SummaryFile          = "cluster_summary.csv"
	StatsFile            = "communityStats.csv"
	ManifestFile         = "run.yaml"
	CentersDir           = "centers"
)
