package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Seeder copies the bundled template database into the writable data
// directory the first time it is needed
type Seeder struct {
	template fs.FS
	name     string
	dest     string
	log      zerolog.Logger
}

// NewSeeder returns a seeder copying name from template to dest
func NewSeeder(template fs.FS, name, dest string, log zerolog.Logger) *Seeder {
	return &Seeder{
		template: template,
		name:     name,
		dest:     dest,
		log:      log,
	}
}

// EnsurePresent copies the template to the destination if no file exists
// there yet. It reports whether a copy happened; an existing destination is
// never touched.
func (s *Seeder) EnsurePresent(ctx context.Context) (bool, error) {
	if _, err := os.Stat(s.dest); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: stat %s: %w", ErrIO, s.dest, err)
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	in, err := s.template.Open(s.name)
	if err != nil {
		s.log.Error().Err(err).Str("template", s.name).Msg("bundled database missing")
		return false, fmt.Errorf("%w: open template %s: %w", ErrIO, s.name, err)
	}
	defer in.Close()

	created, err := writeFileExclusive(s.dest, in)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.dest).Msg("error copying database")
		return false, fmt.Errorf("%w: copy template: %w", ErrIO, err)
	}
	if created {
		s.log.Info().Str("path", s.dest).Msg("database copied from bundled template")
	}
	return created, nil
}

// writeFileExclusive streams r into a temp file next to dest and links it
// into place. It returns false without error when dest appeared meanwhile,
// so a concurrent seeder never overwrites a database already in use.
func writeFileExclusive(dest string, r io.Reader) (bool, error) {
	tmp, err := writeTemp(dest, r)
	if err != nil {
		return false, err
	}
	defer os.Remove(tmp)

	err = os.Link(tmp, dest)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrExist):
		return false, nil
	}

	// Filesystems without hard links fall back to a plain rename
	if _, statErr := os.Stat(dest); statErr == nil {
		return false, nil
	}
	if err := os.Rename(tmp, dest); err != nil {
		return false, err
	}
	return true, nil
}

// writeFileAtomic streams r into dest, replacing any existing file only once
// the full content has been written
func writeFileAtomic(dest string, r io.Reader) error {
	tmp, err := writeTemp(dest, r)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func writeTemp(dest string, r io.Reader) (string, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(dest)+"-*.tmp")
	if err != nil {
		return "", err
	}
	name := f.Name()

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", err
	}
	if err := os.Chmod(name, 0644); err != nil {
		os.Remove(name)
		return "", err
	}
	return name, nil
}
