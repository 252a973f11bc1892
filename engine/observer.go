package engine

import (
	"time"

	"github.com/sirupsen/logrus"
)

// EventKind classifies an Event.
type EventKind string

// Event kinds.
const (
	StageStart EventKind = "start"
	StageDone  EventKind = "done"
	Progress   EventKind = "progress"
)

// Stage names.
const (
	StageInput           = "input"
	StageDistance        = "distance"
	StageAffinity        = "affinity"
	StagePartition       = "partition"
	StageRepresentatives = "representatives"
	StageStats           = "stats"
	StageAssign          = "assign"
)

// Event is one structured status report from the pipeline.
type Event struct {
	Stage   string
	Kind    EventKind
	Message string
	Fields  map[string]any
	Elapsed time.Duration
}

// Observer receives pipeline events. Implementations must not retain Fields.
type Observer interface {
	Observe(Event)
}

// NopObserver discards every event.
type NopObserver struct{}

// Observe implements Observer.
func (NopObserver) Observe(Event) {}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe implements Observer.
func (f ObserverFunc) Observe(e Event) { f(e) }

// LogObserver writes events to a logrus entry: stage boundaries at info
// level and progress at debug level.
type LogObserver struct {
	Entry *logrus.Entry
}

// NewLogObserver wraps logger; a nil logger selects the standard logger.
func NewLogObserver(logger *logrus.Logger) LogObserver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return LogObserver{Entry: logrus.NewEntry(logger)}
}

// Observe implements Observer.
func (o LogObserver) Observe(e Event) {
	entry := o.Entry.WithField("stage", e.Stage)
	if len(e.Fields) > 0 {
		entry = entry.WithFields(logrus.Fields(e.Fields))
	}
	if e.Kind == StageDone {
		entry = entry.WithField("elapsed", e.Elapsed.Round(time.Millisecond).String())
	}
	switch e.Kind {
	case Progress:
		entry.Debug(e.Message)
	default:
		entry.Info(e.Message)
	}
}
