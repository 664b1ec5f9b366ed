package db

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/studentcard/assets"
)

const legacyTodosDDL = `CREATE TABLE todos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    priority INTEGER NOT NULL,
    endDate INTEGER NOT NULL
)`

const studentDDL = `CREATE TABLE Student (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    firstname TEXT,
    lastname TEXT,
    matrikelnummer TEXT,
    email TEXT
)`

// newTestStore returns a store seeded from the bundled template in a fresh
// temp dir
func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(Options{
		Path:         filepath.Join(t.TempDir(), "data", assets.SeedName),
		Template:     assets.FS,
		TemplateName: assets.SeedName,
		Logger:       zerolog.Nop(),
	})
	require.NoError(t, err)
	return store
}

// openRaw opens path directly, bypassing seeding and reconciliation
func openRaw(t *testing.T, path string) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return conn
}

// buildTemplate creates a database from the given statements and returns it
// as a single-file template named "template.db"
func buildTemplate(t *testing.T, statements ...string) fstest.MapFS {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.db")

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	for _, stmt := range statements {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return fstest.MapFS{"template.db": &fstest.MapFile{Data: data, Mode: 0644}}
}

func columnNames(cols []ColumnInfo) []string {
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		names = append(names, c.Name)
	}
	return names
}
