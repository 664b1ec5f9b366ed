package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTask(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantMsg string
	}{
		{name: "valid", task: Task{Name: "write report", Priority: PriorityHigh}},
		{name: "empty name", task: Task{Priority: PriorityLow}, wantMsg: "name must not be empty"},
		{name: "blank name", task: Task{Name: "   ", Priority: PriorityLow}, wantMsg: "name must not be empty"},
		{name: "priority too low", task: Task{Name: "x", Priority: 0}, wantMsg: "priority must be 1, 2 or 3"},
		{name: "priority too high", task: Task{Name: "x", Priority: 4}, wantMsg: "priority must be 1, 2 or 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTask(tt.task)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateStudent(t *testing.T) {
	valid := Student{Firstname: "Ada", Lastname: "Lovelace", Matnumber: "S123", Email: "a@x.io"}
	require.NoError(t, ValidateStudent(valid))

	bad := valid
	bad.Email = "not-an-email"
	err := ValidateStudent(bad)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "email must be a valid email address")

	empty := Student{}
	err = ValidateStudent(empty)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "firstname must not be empty")
	assert.Contains(t, err.Error(), "matnumber must not be empty")
}
