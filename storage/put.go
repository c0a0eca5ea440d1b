package storage

import (
	"fmt"

	"github.com/google/uuid"
)

// DataProvider produces the bytes to store. It is called on a store
// goroutine while the write holds the store exclusively.
type DataProvider func() []byte

// BytesProvider returns a DataProvider yielding b.
func BytesProvider(b []byte) DataProvider {
	return func() []byte { return b }
}

// PutResult is the outcome of a put. On success ID is the trimmed
// identifier the record was written under and Err is nil.
type PutResult struct {
	ID  string
	Err error
}

// NewIdentifier returns a fresh random identifier.
func NewIdentifier() string {
	return TrimIdentifier(uuid.NewString())
}

// Put writes the provider's bytes under id, replacing any previous
// record atomically. The returned channel receives exactly one PutResult.
// An empty provider result fails with ErrNoDataProvided and leaves the
// directory untouched.
func (s *Store) Put(provider DataProvider, id string) <-chan PutResult {
	return s.put(provider, TrimIdentifier(id))
}

// PutNew is Put under a freshly generated identifier.
func (s *Store) PutNew(provider DataProvider) <-chan PutResult {
	return s.put(provider, NewIdentifier())
}

// PutData is Put with fixed bytes.
func (s *Store) PutData(data []byte, id string) <-chan PutResult {
	return s.Put(BytesProvider(data), id)
}

func (s *Store) put(provider DataProvider, id string) <-chan PutResult {
	out := make(chan PutResult, 1)
	submitted := s.q.submit(writeTask, func() {
		out <- s.putRecord(provider, id)
	})
	if !submitted {
		out <- PutResult{Err: ErrClosed}
	}
	return out
}

func (s *Store) putRecord(provider DataProvider, id string) PutResult {
	path, err := s.path(id)
	if err != nil {
		return PutResult{Err: err}
	}

	var data []byte
	if provider != nil {
		data = provider()
	}
	if len(data) == 0 {
		return PutResult{Err: ErrNoDataProvided}
	}

	if err := writeRecord(path, data); err != nil {
		return PutResult{Err: fmt.Errorf("%w: %w", ErrIOFailure, err)}
	}

	s.logger.Debug().Str("id", id).Int("size", len(data)).Msg("record stored")
	return PutResult{ID: id}
}
