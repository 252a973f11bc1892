package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/autograph/engine"
	"github.com/katalvlaran/autograph/matrix"
)

// Options controls Save.
type Options struct {
	// InputDir, when set with CopyConformers, is where conformer files live.
	InputDir       string
	CopyConformers bool
	Logger         logrus.FieldLogger
}

// Option mutates Options.
type Option func(*Options)

// WithConformerCopies copies the files under dir into cluster directories.
func WithConformerCopies(dir string) Option {
	return func(o *Options) {
		o.InputDir = dir
		o.CopyConformers = true
	}
}

// WithLogger logs each written file at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// MatrixIDs returns the ids labelling the tables of res: the sampled ids for
// a subset run, all ids otherwise.
func MatrixIDs(res *engine.Result) []string {
	if len(res.Sampled) == 0 {
		return res.IDs
	}
	ids := make([]string, len(res.Sampled))
	for s, i := range res.Sampled {
		ids[s] = res.IDs[i]
	}

	return ids
}

type writer struct {
	dir string
	log logrus.FieldLogger
}

func (w writer) file(name string, fn func(f *os.File) error) error {
	path := filepath.Join(w.dir, name)
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = fn(fh); err != nil {
		fh.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	if err = fh.Close(); err != nil {
		return err
	}
	w.log.WithField("path", path).Debug("wrote")

	return nil
}

func (w writer) matrix(name string, ids []string, m *matrix.Dense) error {
	if m == nil {
		return nil
	}
	return w.file(name, func(f *os.File) error { return WriteMatrix(f, ids, m) })
}

// Save writes every artefact of res under dir, creating it if needed.
func Save(dir string, res *engine.Result, opts ...Option) error {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	w := writer{dir: dir, log: o.Logger}

	ids := MatrixIDs(res)
	if err := w.matrix(RMSDFile, ids, res.D); err != nil {
		return err
	}
	if err := w.matrix(AffinityFile, ids, res.A); err != nil {
		return err
	}
	if err := w.matrix(FilteredAffinityFile, ids, res.FilteredA); err != nil {
		return err
	}
	if err := w.matrix(FilteredRMSDFile, ids, res.FilteredD); err != nil {
		return err
	}
	if err := w.file(SummaryFile, func(f *os.File) error {
		return WriteSummary(f, res.IDs, res.Partition, res.Representatives)
	}); err != nil {
		return err
	}
	if res.Stats != nil {
		if err := w.file(StatsFile, func(f *os.File) error { return WriteStats(f, res.Stats) }); err != nil {
			return err
		}
	}
	if err := w.file(ManifestFile, func(f *os.File) error { return WriteManifest(f, NewManifest(res)) }); err != nil {
		return err
	}

	if o.CopyConformers {
		if err := CopyClusters(o.InputDir, dir, res.IDs, res.Partition, res.Representatives); err != nil {
			return err
		}
		o.Logger.WithField("dir", dir).Debug("copied conformers")
	}

	return nil
}
