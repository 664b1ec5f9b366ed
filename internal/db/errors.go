package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Error kinds returned by the store. Callers match them with errors.Is.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConstraint = errors.New("constraint violation")
	ErrIO         = errors.New("database file unavailable")
	ErrSchema     = errors.New("schema reconciliation failed")
)

// sqliteConstraint is the SQLITE_CONSTRAINT primary result code
const sqliteConstraint = 19

// coder is implemented by the sqlite driver's error type
type coder interface {
	Code() int
}

// classify maps driver and gorm errors onto the store's error kinds
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConstraint) || errors.Is(err, ErrIO) || errors.Is(err, ErrSchema) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errors.Join(ErrConstraint, err)
	}

	var c coder
	if errors.As(err, &c) && c.Code()&0xff == sqliteConstraint {
		return errors.Join(ErrConstraint, err)
	}
	if strings.Contains(err.Error(), "constraint failed") {
		return errors.Join(ErrConstraint, err)
	}
	return err
}
