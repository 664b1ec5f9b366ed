package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/studentcard/internal/models"
)

func newRoster(t *testing.T, store *fakeStudentStore) StudentsModel {
	t.Helper()
	m := NewStudentsModel(context.Background(), store)
	return roster(t, settle(t, m, m.Init()))
}

func roster(t *testing.T, m tea.Model) StudentsModel {
	t.Helper()
	r, ok := m.(StudentsModel)
	require.True(t, ok)
	return r
}

func TestStudents_ListAndExpand(t *testing.T) {
	store := newFakeStudentStore(models.Student{Firstname: "Ada", Lastname: "Lovelace", Matnumber: "123456", Email: "ada@example.org"})
	m := newRoster(t, store)

	require.Len(t, m.students, 1)
	assert.Contains(t, m.View(), "Ada Lovelace")
	assert.NotContains(t, m.View(), "ada@example.org")

	m = roster(t, press(t, m, "enter"))
	assert.Contains(t, m.View(), "ada@example.org")
}

func TestStudents_AddNormalizesMatnumber(t *testing.T) {
	store := newFakeStudentStore()
	m := newRoster(t, store)

	m = roster(t, press(t, m, "a", "Grace", "tab", "Hopper", "tab", "s 123 456", "tab", "grace@example.org", "enter"))

	require.Len(t, store.students, 1)
	assert.Equal(t, "S123456", store.students[1].Matnumber)
	assert.Len(t, m.students, 1)
	assert.Equal(t, modeList, m.mode)
}

func TestStudents_AddRejectsBadEmail(t *testing.T) {
	store := newFakeStudentStore()
	m := newRoster(t, store)

	m = roster(t, press(t, m, "a", "Grace", "tab", "Hopper", "tab", "123456", "tab", "not-an-email", "enter"))

	assert.Equal(t, modeForm, m.mode)
	assert.Contains(t, m.form.validationErr, "email must be a valid email address")
	assert.Empty(t, store.students)
}

func TestStudents_EditAndDelete(t *testing.T) {
	store := newFakeStudentStore(models.Student{Firstname: "Ada", Lastname: "Lovelace", Matnumber: "123456", Email: "ada@example.org"})
	m := newRoster(t, store)

	m = roster(t, press(t, m, "e"))
	require.Equal(t, modeForm, m.mode)
	require.True(t, m.form.Editing())

	m = roster(t, press(t, m, "tab", "tab", "tab", "enter"))
	assert.Equal(t, modeList, m.mode)
	assert.Contains(t, m.status, "Updated #1 Ada Lovelace")

	m = roster(t, press(t, m, "x", "y"))
	assert.Empty(t, store.students)
	assert.Empty(t, m.students)
	assert.Contains(t, m.View(), "No students yet")
}

func TestStudents_StoreErrorSurvivesReload(t *testing.T) {
	store := newFakeStudentStore(models.Student{Firstname: "Ada", Lastname: "Lovelace", Matnumber: "123456", Email: "ada@example.org"})
	m := newRoster(t, store)
	store.failNext = errors.New("disk full")
	calls := store.listCalls

	m = roster(t, press(t, m, "x", "y"))

	require.Error(t, m.err)
	assert.NoError(t, m.loadErr)
	assert.Contains(t, m.View(), "disk full")
	assert.Equal(t, calls+1, store.listCalls)
	assert.Len(t, m.students, 1)

	m = roster(t, press(t, m, "x", "y"))
	assert.NoError(t, m.err)
	assert.NotContains(t, m.View(), "disk full")
	assert.Empty(t, m.students)
}

func TestStudents_AddAcceptsShortMatnumber(t *testing.T) {
	store := newFakeStudentStore()
	m := newRoster(t, store)

	m = roster(t, press(t, m, "a", "Ada", "tab", "Lovelace", "tab", "s123", "tab", "a@x.io", "enter"))

	require.Len(t, store.students, 1)
	assert.Equal(t, "S123", store.students[1].Matnumber)
	assert.Equal(t, modeList, m.mode)
}

func TestStudents_EditKeepsStoredMatnumber(t *testing.T) {
	store := newFakeStudentStore(models.Student{Firstname: "Ada", Lastname: "Lovelace", Matnumber: "ab 12", Email: "ada@example.org"})
	m := newRoster(t, store)

	m = roster(t, press(t, m, "e", "tab", "tab", "tab", "enter"))

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "ab 12", store.students[1].Matnumber)
}
