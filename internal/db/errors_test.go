package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type codeErr int

func (e codeErr) Error() string { return fmt.Sprintf("sqlite error %d", int(e)) }
func (e codeErr) Code() int     { return int(e) }

func TestClassify(t *testing.T) {
	plain := errors.New("disk I/O error")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "record not found", in: gorm.ErrRecordNotFound, want: ErrNotFound},
		{name: "wrapped record not found", in: fmt.Errorf("first: %w", gorm.ErrRecordNotFound), want: ErrNotFound},
		{name: "duplicated key", in: gorm.ErrDuplicatedKey, want: ErrConstraint},
		{name: "constraint result code", in: codeErr(19), want: ErrConstraint},
		{name: "extended constraint code", in: codeErr(1299), want: ErrConstraint},
		{name: "constraint message", in: errors.New("NOT NULL constraint failed: todos.name"), want: ErrConstraint},
		{name: "already classified", in: fmt.Errorf("%w: copy", ErrIO), want: ErrIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		got := classify(plain)
		assert.Same(t, plain, got)
		assert.NotErrorIs(t, got, ErrConstraint)
	})

	t.Run("busy is not a constraint", func(t *testing.T) {
		assert.NotErrorIs(t, classify(codeErr(5)), ErrConstraint)
	})
}
