package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskDue(t *testing.T) {
	due := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	task := Task{Name: "pay rent"}.WithDue(due)

	assert.Equal(t, due.UnixMilli(), task.EndDate)
	assert.True(t, task.Due().Equal(due))
}

func TestTaskDescription(t *testing.T) {
	assert.Equal(t, "", Task{}.DescriptionOrEmpty())
	assert.Nil(t, StringPtr(""))

	task := Task{Description: StringPtr("bring slides")}
	assert.Equal(t, "bring slides", task.DescriptionOrEmpty())
}

func TestTaskStatusLabel(t *testing.T) {
	assert.Equal(t, "active", Task{}.StatusLabel())
	assert.Equal(t, "done", Task{IsCompleted: true}.StatusLabel())
}

func TestStudentFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", Student{Firstname: "Ada", Lastname: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", Student{Firstname: "Ada"}.FullName())
	assert.Equal(t, "Lovelace", Student{Lastname: "Lovelace"}.FullName())
}
