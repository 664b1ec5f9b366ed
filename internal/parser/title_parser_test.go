package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/studentcard/internal/models"
)

func TestParseTitle(t *testing.T) {
	fixNow(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))

	tests := []struct {
		name     string
		input    string
		wantName string
		wantPrio models.Priority
		wantDue  *time.Time
	}{
		{
			name:     "plain",
			input:    "Buy milk",
			wantName: "Buy milk",
		},
		{
			name:     "priority",
			input:    "Submit thesis +high",
			wantName: "Submit thesis",
			wantPrio: models.PriorityHigh,
		},
		{
			name:     "german priority and absolute date",
			input:    "Klausur lernen +mittel due:20.03.2025",
			wantName: "Klausur lernen",
			wantPrio: models.PriorityMedium,
			wantDue:  ptr(time.Date(2025, 3, 20, 0, 0, 0, 0, time.Local)),
		},
		{
			name:     "relative date in the middle",
			input:    "Call due:2days the office",
			wantName: "Call the office",
			wantDue:  ptr(time.Date(2025, 3, 12, 23, 59, 59, 0, time.Local)),
		},
		{
			name:     "plus inside a word is kept",
			input:    "Learn C++ basics",
			wantName: "Learn C++ basics",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTitle(tt.input)
			assert.Empty(t, got.Errors)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantPrio, got.Priority)
			if tt.wantDue == nil {
				assert.Nil(t, got.DueDate)
				return
			}
			require.NotNil(t, got.DueDate)
			assert.True(t, tt.wantDue.Equal(*got.DueDate))
		})
	}
}

func TestParseTitle_Errors(t *testing.T) {
	got := ParseTitle("Something +urgent due:someday")
	assert.Equal(t, "Something", got.Name)
	assert.Zero(t, got.Priority)
	assert.Nil(t, got.DueDate)
	assert.Len(t, got.Errors, 2)
}

func ptr[T any](v T) *T {
	return &v
}
