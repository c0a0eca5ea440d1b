package storage

import "fmt"

// Result is the outcome of a load. OK is false when there is no record,
// when the record could not be read, or when the transform rejected it.
type Result[T any] struct {
	Value T
	OK    bool
}

// Load reads the record for id and converts it with transform. The
// returned channel receives exactly one Result once the read has run.
//
// A missing record is not an error. A record that cannot be read yields
// an empty Result too; the error goes to the store's Reporter only.
func Load[T any](s *Store, id string, transform func([]byte) (T, bool)) <-chan Result[T] {
	out := make(chan Result[T], 1)
	submitted := s.q.submit(readTask, func() {
		out <- loadRecord(s, id, transform)
	})
	if !submitted {
		s.report(Failure{Op: OpLoad, ID: TrimIdentifier(id), Err: ErrClosed})
		out <- Result[T]{}
	}
	return out
}

// LoadData reads the raw bytes stored under id.
func (s *Store) LoadData(id string) <-chan Result[[]byte] {
	return Load(s, id, func(b []byte) ([]byte, bool) { return b, true })
}

func loadRecord[T any](s *Store, id string, transform func([]byte) (T, bool)) Result[T] {
	id = TrimIdentifier(id)
	path, err := s.path(id)
	if err != nil {
		s.report(Failure{Op: OpLoad, ID: id, Err: err})
		return Result[T]{}
	}

	data, err := readRecord(path)
	if err != nil {
		s.report(Failure{Op: OpLoad, ID: id, Path: path, Err: fmt.Errorf("%w: %w", ErrIOFailure, err)})
		return Result[T]{}
	}
	if data == nil {
		return Result[T]{}
	}

	v, ok := transform(data)
	return Result[T]{Value: v, OK: ok}
}
