package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Remove deletes the record for id. A missing record is a no-op. The
// returned channel is closed when the removal has run; failures go to
// the store's Reporter only.
func (s *Store) Remove(id string) <-chan struct{} {
	id = TrimIdentifier(id)
	done := make(chan struct{})
	submitted := s.q.submit(writeTask, func() {
		defer close(done)
		s.removeOne(id)
	})
	if !submitted {
		s.report(Failure{Op: OpRemove, ID: id, Err: ErrClosed})
		close(done)
	}
	return done
}

// RemoveAll deletes every entry in the store directory, keeping the
// directory itself. Every entry is attempted even if some fail; each
// failure goes to the store's Reporter. The returned channel is closed
// when the clear has run.
func (s *Store) RemoveAll() <-chan struct{} {
	done := make(chan struct{})
	submitted := s.q.submit(writeTask, func() {
		defer close(done)
		s.removeEntries()
	})
	if !submitted {
		s.report(Failure{Op: OpRemoveAll, Path: s.root, Err: ErrClosed})
		close(done)
	}
	return done
}

func (s *Store) removeOne(id string) {
	path, err := s.path(id)
	if err != nil {
		s.report(Failure{Op: OpRemove, ID: id, Err: err})
		return
	}
	if err := removeRecord(path); err != nil {
		s.report(Failure{Op: OpRemove, ID: id, Path: path, Err: fmt.Errorf("%w: %w", ErrIOFailure, err)})
		return
	}
	s.logger.Debug().Str("id", id).Msg("record removed")
}

func (s *Store) removeEntries() {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		s.report(Failure{Op: OpRemoveAll, Path: s.root, Err: fmt.Errorf("%w: %w", ErrIOFailure, err)})
		return
	}

	removed := 0
	for _, entry := range entries {
		path := filepath.Join(s.root, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			s.report(Failure{Op: OpRemoveAll, ID: entry.Name(), Path: path, Err: fmt.Errorf("%w: %w", ErrIOFailure, err)})
			continue
		}
		removed++
	}
	s.logger.Debug().Int("removed", removed).Int("entries", len(entries)).Msg("store cleared")
}
