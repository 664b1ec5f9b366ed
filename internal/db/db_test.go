package db

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/studentcard/assets"
	"github.com/balkashynov/studentcard/internal/models"
)

func TestNewStore_Validation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"missing path", Options{Template: assets.FS, TemplateName: assets.SeedName}},
		{"missing template", Options{Path: "x.db", TemplateName: assets.SeedName}},
		{"missing template name", Options{Path: "x.db", Template: assets.FS}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestNewStore_DefaultsAndAbsolutePath(t *testing.T) {
	store, err := NewStore(Options{Path: "rel.db", Template: assets.FS, TemplateName: assets.SeedName, Logger: zerolog.Nop()})
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(store.Path()))
	assert.Equal(t, DefaultBusyTimeout, store.busyTimeout)
}

func TestStore_FirstOperationSeedsFile(t *testing.T) {
	store := newTestStore(t)
	assert.NoFileExists(t, store.Path())

	_, err := store.Tasks().ListActive(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, store.Path())
}

func TestStore_SeedFailureAbortsOperation(t *testing.T) {
	store, err := NewStore(Options{
		Path:         filepath.Join(t.TempDir(), "app.db"),
		Template:     fstest.MapFS{},
		TemplateName: "missing.db",
		Logger:       zerolog.Nop(),
	})
	require.NoError(t, err)

	_, err = store.Tasks().ListActive(context.Background())
	require.ErrorIs(t, err, ErrIO)

	_, err = store.Students().Create(context.Background(), ada())
	require.ErrorIs(t, err, ErrIO)
}

func TestStore_TemplateWithoutTodosTable(t *testing.T) {
	tmpl := buildTemplate(t, studentDDL)
	store, err := NewStore(Options{
		Path:         filepath.Join(t.TempDir(), "app.db"),
		Template:     tmpl,
		TemplateName: "template.db",
		Logger:       zerolog.Nop(),
	})
	require.NoError(t, err)

	ctx := context.Background()
	created, err := store.Tasks().Create(ctx, models.Task{Name: "first", Priority: models.PriorityLow})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestStore_Check(t *testing.T) {
	store := newTestStore(t)

	cols, err := store.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, canonicalTodoColumns, columnNames(cols))
}

func TestStore_Export(t *testing.T) {
	store := newTestStore(t)
	store.now = func() time.Time {
		return time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)
	}
	ctx := context.Background()

	_, err := store.Tasks().Create(ctx, models.Task{Name: "exported", Priority: models.PriorityMedium})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "exports")
	dest, err := store.Export(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "datenbank-20250102-030405.db"), dest)

	want, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(want, got))

	// The export is a usable database on its own
	conn := openRaw(t, dest)
	var count int64
	require.NoError(t, conn.Model(&models.Task{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStore_ExportUnwritableDir(t *testing.T) {
	store := newTestStore(t)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, err := store.Export(context.Background(), blocker)
	require.ErrorIs(t, err, ErrIO)
}
