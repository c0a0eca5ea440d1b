package storage

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Op names the store operation a Failure came from.
type Op string

const (
	OpLoad      Op = "load"
	OpRemove    Op = "remove"
	OpRemoveAll Op = "remove_all"
)

// Failure describes an error that a store operation swallowed instead of
// returning to its caller.
type Failure struct {
	Op   Op
	ID   string // trimmed identifier; empty for RemoveAll
	Path string // file involved, if resolved
	Err  error
}

func (f Failure) Error() string {
	if f.Path != "" {
		return fmt.Sprintf("storage: %s %s: %v", f.Op, f.Path, f.Err)
	}
	return fmt.Sprintf("storage: %s %q: %v", f.Op, f.ID, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Reporter receives failures of loads, removals and clears. Those
// operations have no error channel of their own: a failed load completes
// with an empty result and a failed removal completes silently.
// Report is called from store goroutines and may run concurrently.
type Reporter interface {
	Report(f Failure)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(f Failure)

// Report calls fn(f).
func (fn ReporterFunc) Report(f Failure) { fn(f) }

// LogReporter writes failures to a zerolog logger at error level.
type LogReporter struct {
	Logger zerolog.Logger
}

// NewLogReporter returns a LogReporter writing to l.
func NewLogReporter(l zerolog.Logger) *LogReporter {
	return &LogReporter{Logger: l}
}

// Report logs f.
func (r *LogReporter) Report(f Failure) {
	ev := r.Logger.Error().Err(f.Err).Str("op", string(f.Op))
	if f.ID != "" {
		ev = ev.Str("id", f.ID)
	}
	if f.Path != "" {
		ev = ev.Str("path", f.Path)
	}
	ev.Msg("store operation failed")
}
