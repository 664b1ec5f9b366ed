package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/studentcard/internal/models"
)

func TestTaskForm_EditKeepsIdentityAndEndDate(t *testing.T) {
	due := time.Date(2025, 5, 6, 17, 45, 0, 0, time.Local)
	existing := models.Task{ID: 9, Name: "Essay", Priority: models.PriorityMedium, IsCompleted: true}.WithDue(due)

	task, err := NewTaskForm(&existing, TaskDraft{}).Task()
	require.NoError(t, err)
	assert.Equal(t, existing, task)
}

func TestTaskForm_DraftOverridesExisting(t *testing.T) {
	existing := models.Task{ID: 2, Name: "Old", Priority: models.PriorityLow}
	task, err := NewTaskForm(&existing, TaskDraft{Name: "New", Priority: "hoch", EndDate: "01.06.2025"}).Task()
	require.NoError(t, err)

	assert.Equal(t, int64(2), task.ID)
	assert.Equal(t, "New", task.Name)
	assert.Equal(t, models.PriorityHigh, task.Priority)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local).UnixMilli(), task.EndDate)
}

func TestTaskForm_Defaults(t *testing.T) {
	before := time.Now().UnixMilli()
	task, err := NewTaskForm(nil, TaskDraft{Name: "Quick"}).Task()
	require.NoError(t, err)

	assert.Zero(t, task.ID)
	assert.Equal(t, models.PriorityLow, task.Priority)
	assert.Nil(t, task.Description)
	assert.GreaterOrEqual(t, task.EndDate, before)
}

func TestTaskForm_Errors(t *testing.T) {
	tests := []struct {
		name  string
		draft TaskDraft
		want  string
	}{
		{"blank name", TaskDraft{Name: "   "}, "name must not be empty"},
		{"bad priority", TaskDraft{Name: "x", Priority: "urgent"}, "invalid priority"},
		{"bad date", TaskDraft{Name: "x", EndDate: "someday"}, "end date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTaskForm(nil, tt.draft).Task()
			require.Error(t, err)
			assert.Contains(t, validationMessage(err), tt.want)
		})
	}
}

func TestTaskForm_BlankNameIsInvalidInput(t *testing.T) {
	_, err := NewTaskForm(nil, TaskDraft{}).Task()
	assert.True(t, errors.Is(err, models.ErrInvalid))
	assert.Equal(t, "name must not be empty", validationMessage(err))
}

func TestTaskForm_SubmitOnLastField(t *testing.T) {
	f := NewTaskForm(nil, TaskDraft{Name: "Ship it"})
	var result formResult
	for _, k := range []string{"tab", "tab", "tab"} {
		f, _, result = f.Update(key(k))
		require.Equal(t, formEditing, result)
	}
	_, _, result = f.Update(key("enter"))
	assert.Equal(t, formSubmitted, result)
}

func TestTaskForm_Cancel(t *testing.T) {
	_, _, result := NewTaskForm(nil, TaskDraft{}).Update(key("esc"))
	assert.Equal(t, formCancelled, result)
}
