package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// DefaultBusyTimeout is how long a statement waits on a locked database file
const DefaultBusyTimeout = 5 * time.Second

// Options configures a Store
type Options struct {
	// Path is the writable database file, created from the template if absent
	Path string
	// Template holds the bundled database, TemplateName is its name inside it
	Template     fs.FS
	TemplateName string
	BusyTimeout  time.Duration
	Logger       zerolog.Logger
}

// Store owns the database file. It keeps no connection open between calls:
// every operation seeds, opens, reconciles, runs and closes.
type Store struct {
	path        string
	seeder      *Seeder
	busyTimeout time.Duration
	log         zerolog.Logger
	now         func() time.Time
}

// NewStore validates opts and returns a store. No file is touched until the
// first operation.
func NewStore(opts Options) (*Store, error) {
	if opts.Path == "" {
		return nil, errors.New("database path is required")
	}
	if opts.Template == nil || opts.TemplateName == "" {
		return nil, errors.New("database template is required")
	}

	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	timeout := opts.BusyTimeout
	if timeout <= 0 {
		timeout = DefaultBusyTimeout
	}

	log := opts.Logger.With().Str("component", "store").Logger()
	return &Store{
		path:        path,
		seeder:      NewSeeder(opts.Template, opts.TemplateName, path, log),
		busyTimeout: timeout,
		log:         log,
		now:         time.Now,
	}, nil
}

// Path returns the absolute path of the database file
func (s *Store) Path() string {
	return s.path
}

// Tasks returns the task repository backed by this store
func (s *Store) Tasks() *TaskService {
	return &TaskService{store: s}
}

// Students returns the student repository backed by this store
func (s *Store) Students() *StudentService {
	return &StudentService{store: s}
}

// acquire seeds the file if needed, opens it and reconciles the todos
// schema. A seed failure aborts; a reconcile failure is logged only.
func (s *Store) acquire(ctx context.Context) (*gorm.DB, func(), error) {
	if _, err := s.seeder.EnsurePresent(ctx); err != nil {
		return nil, nil, err
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", s.path, s.busyTimeout.Milliseconds())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 newGormLogger(s.log),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to connect to database: %w", ErrIO, err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	sqlDB.SetMaxOpenConns(1)

	release := func() {
		if err := sqlDB.Close(); err != nil {
			s.log.Warn().Err(err).Msg("error closing database")
		}
	}

	if err := Reconcile(ctx, conn, s.log); err != nil {
		s.log.Warn().Err(err).Msg("schema reconciliation incomplete, continuing")
	}

	return conn.WithContext(ctx), release, nil
}

// with runs fn on a freshly acquired handle. Errors are classified, logged
// once and wrapped with the operation name.
func (s *Store) with(ctx context.Context, op string, fn func(*gorm.DB) error) error {
	conn, release, err := s.acquire(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("error opening database")
		return fmt.Errorf("%s: %w", op, err)
	}
	defer release()

	if err := classify(fn(conn)); err != nil {
		ev := s.log.Error()
		if errors.Is(err, ErrNotFound) {
			ev = s.log.Debug()
		}
		ev.Err(err).Str("op", op).Msg("database operation failed")
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Check seeds, opens and reconciles the database without touching any rows.
// It returns the reconcile error, which normal operations only log.
func (s *Store) Check(ctx context.Context) ([]ColumnInfo, error) {
	var cols []ColumnInfo
	var schemaErr error
	err := s.with(ctx, "check", func(tx *gorm.DB) error {
		schemaErr = Reconcile(ctx, tx, s.log)
		var err error
		cols, err = Columns(ctx, tx, todosTable)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cols, schemaErr
}

// Export copies the database file into dir under a timestamped name and
// returns the path written. The live file is left untouched.
func (s *Store) Export(ctx context.Context, dir string) (string, error) {
	if _, err := s.seeder.EnsurePresent(ctx); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	in, err := os.Open(s.path)
	if err != nil {
		return "", fmt.Errorf("export: %w: %w", ErrIO, err)
	}
	defer in.Close()

	name := fmt.Sprintf("datenbank-%s.db", s.now().Format("20060102-150405"))
	dest := filepath.Join(dir, name)
	if err := writeFileAtomic(dest, in); err != nil {
		s.log.Error().Err(err).Str("dest", dest).Msg("error exporting database")
		return "", fmt.Errorf("export: %w: %w", ErrIO, err)
	}

	s.log.Info().Str("dest", dest).Msg("database exported")
	return dest, nil
}
