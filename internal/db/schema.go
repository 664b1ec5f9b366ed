package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const todosTable = "todos"

// createTodosTable is the canonical todos schema
const createTodosTable = `CREATE TABLE IF NOT EXISTS todos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    priority INTEGER NOT NULL,
    endDate INTEGER NOT NULL,
    description TEXT,
    isCompleted INTEGER NOT NULL
);`

type requiredColumn struct {
	name string
	ddl  string
}

// requiredTodoColumns were added after the first seed template shipped.
// Older files are upgraded in place, never rewritten.
var requiredTodoColumns = []requiredColumn{
	{name: "description", ddl: "description TEXT"},
	{name: "isCompleted", ddl: "isCompleted INTEGER NOT NULL DEFAULT 0"},
}

// ColumnInfo is one row of PRAGMA table_info
type ColumnInfo struct {
	CID        int     `gorm:"column:cid" json:"cid"`
	Name       string  `gorm:"column:name" json:"name"`
	Type       string  `gorm:"column:type" json:"type"`
	NotNull    bool    `gorm:"column:notnull" json:"not_null"`
	Default    *string `gorm:"column:dflt_value" json:"default"`
	PrimaryKey int     `gorm:"column:pk" json:"primary_key"`
}

// Columns returns the live columns of table, or none if it does not exist
func Columns(ctx context.Context, db *gorm.DB, table string) ([]ColumnInfo, error) {
	var cols []ColumnInfo
	err := db.WithContext(ctx).Raw(fmt.Sprintf("PRAGMA table_info(%q)", table)).Scan(&cols).Error
	if err != nil {
		return nil, err
	}
	return cols, nil
}

// Reconcile adds missing todos columns and creates the table when absent.
// Every statement is attempted even if an earlier one failed; the failures
// are logged and returned together wrapped in ErrSchema.
func Reconcile(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	db = db.WithContext(ctx)
	var errs []error

	cols, err := Columns(ctx, db, todosTable)
	if err != nil {
		log.Error().Err(err).Msg("error reading todos columns")
		errs = append(errs, fmt.Errorf("inspect %s: %w", todosTable, err))
	}

	if len(cols) > 0 {
		present := make(map[string]bool, len(cols))
		for _, c := range cols {
			present[strings.ToLower(c.Name)] = true
		}

		for _, col := range requiredTodoColumns {
			if present[strings.ToLower(col.name)] {
				continue
			}
			if err := db.Exec("ALTER TABLE " + todosTable + " ADD COLUMN " + col.ddl).Error; err != nil {
				log.Error().Err(err).Str("column", col.name).Msg("error adding column")
				errs = append(errs, fmt.Errorf("add column %s: %w", col.name, err))
				continue
			}
			log.Info().Str("table", todosTable).Str("column", col.name).Msg("added missing column")
		}
	}

	if err := db.Exec(createTodosTable).Error; err != nil {
		log.Error().Err(err).Msg("error checking/creating table todos")
		errs = append(errs, fmt.Errorf("create %s: %w", todosTable, err))
	} else if len(cols) == 0 {
		log.Info().Str("table", todosTable).Msg("created table")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrSchema, errors.Join(errs...))
	}
	return nil
}
