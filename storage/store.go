package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bitfsorg/idstore-go/config"
)

// Store maps identifiers to files in a single directory. Loads run
// concurrently with each other; puts and removals run one at a time and
// exclude every load. All operations are asynchronous and start in the
// order they were submitted.
//
// Coordination is per Store value: two Stores opened on the same directory
// do not see each other's operations and may race.
//
// Each Store runs a goroutine until Close is called. A load transform or
// data provider that waits on another operation of the same Store
// deadlocks.
type Store struct {
	name     string
	root     string
	q        *queue
	reporter Reporter
	logger   zerolog.Logger

	closeOnce sync.Once
}

// Option configures a Store.
type Option func(*options)

type options struct {
	cfg       config.Config
	cfgSet    bool
	workers   int
	reporter  Reporter
	logger    zerolog.Logger
	loggerSet bool
}

// WithConfig applies cfg. Its BaseDir is used by Open, its Workers bound
// concurrent loads, and unless WithLogger is also given its LogLevel
// configures the store logger. Open rejects a cfg that fails
// config.ValidateConfig.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.cfg = cfg
		o.cfgSet = true
	}
}

// WithWorkers bounds how many loads run at once. It overrides the
// config's Workers.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithReporter sets the sink for failures that are not returned to
// callers. The default logs them through the store logger.
func WithReporter(r Reporter) Option {
	return func(o *options) { o.reporter = r }
}

// WithLogger sets the store logger. The default is the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
		o.loggerSet = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.loggerSet {
		if o.cfgSet {
			o.logger = config.NewLogger(o.cfg, nil)
		} else {
			o.logger = log.Logger
		}
	}
	if o.workers < 1 {
		o.workers = o.cfg.Workers
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// validateName checks that name is usable as a single directory name.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Open opens the store called name under the configured base directory,
// or the platform user data directory when none is configured. The store
// directory is created if it does not exist.
func Open(name string, opts ...Option) (*Store, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	if o.cfgSet {
		if err := config.ValidateConfig(o.cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
		}
	}

	base := o.cfg.BaseDir
	if base == "" {
		var err error
		base, err = config.DefaultBaseDir()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
		}
	}

	return newStore(name, filepath.Join(base, name), o)
}

// OpenDir opens a store rooted at dir. The store is named after the last
// element of dir.
func OpenDir(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrDirectoryUnavailable)
	}
	dir = filepath.Clean(dir)
	return newStore(filepath.Base(dir), dir, buildOptions(opts))
}

func newStore(name, root string, o options) (*Store, error) {
	if err := os.MkdirAll(root, 0700); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	logger := o.logger.With().Str("store", name).Logger()
	reporter := o.reporter
	if reporter == nil {
		reporter = NewLogReporter(logger)
	}

	s := &Store{
		name:     name,
		root:     root,
		q:        newQueue(o.workers),
		reporter: reporter,
		logger:   logger,
	}
	logger.Debug().Str("root", root).Int("workers", o.workers).Msg("store opened")
	return s, nil
}

// Name returns the store name.
func (s *Store) Name() string { return s.name }

// Root returns the store directory.
func (s *Store) Root() string { return s.root }

// Close waits for every submitted operation to finish. Operations
// submitted afterwards complete immediately without touching the
// directory. Close must not be called from a load transform or data
// provider.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.q.close()
		s.logger.Debug().Msg("store closed")
	})
	return nil
}

func (s *Store) report(f Failure) {
	s.reporter.Report(f)
}
