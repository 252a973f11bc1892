// Package engine runs the conformer clustering pipeline end to end:
//
//	frames ─► RMSD table ─► affinity + threshold ─► partition ─► representatives ─► stats
//
// The clustering strategy and representative rule are picked from small
// closed enums and dispatched with a switch. Every stage reports start and
// completion, plus algorithm progress, to an Observer; LogObserver forwards
// those events to logrus. Stage failures come back as *StageError, which
// matches the taxonomy sentinels ErrMalformedInput and ErrInsufficientData
// through errors.Is.
//
// RunSubset clusters a random sample and attaches every other conformer to
// the nearest representative by RMSD, which avoids the full N×N table.
package engine
