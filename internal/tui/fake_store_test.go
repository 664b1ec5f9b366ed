package tui

import (
	"context"
	"errors"
	"sort"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/studentcard/internal/models"
)

var errNotFound = errors.New("not found")

type fakeTaskStore struct {
	tasks     map[int64]models.Task
	nextID    int64
	listCalls int
	failNext  error
}

func newFakeTaskStore(tasks ...models.Task) *fakeTaskStore {
	s := &fakeTaskStore{tasks: map[int64]models.Task{}, nextID: 1}
	for _, t := range tasks {
		t.ID = s.nextID
		s.nextID++
		s.tasks[t.ID] = t
	}
	return s
}

func (s *fakeTaskStore) list(completed bool) []models.Task {
	out := []models.Task{}
	for _, t := range s.tasks {
		if t.IsCompleted == completed {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *fakeTaskStore) takeErr() error {
	err := s.failNext
	s.failNext = nil
	return err
}

func (s *fakeTaskStore) ListActive(context.Context) ([]models.Task, error) {
	s.listCalls++
	return s.list(false), nil
}

func (s *fakeTaskStore) ListCompleted(context.Context) ([]models.Task, error) {
	return s.list(true), nil
}

func (s *fakeTaskStore) Create(_ context.Context, t models.Task) (models.Task, error) {
	if err := s.takeErr(); err != nil {
		return models.Task{}, err
	}
	t.ID = s.nextID
	s.nextID++
	s.tasks[t.ID] = t
	return t, nil
}

func (s *fakeTaskStore) Update(_ context.Context, t models.Task) (models.Task, error) {
	if err := s.takeErr(); err != nil {
		return models.Task{}, err
	}
	if _, ok := s.tasks[t.ID]; !ok {
		return models.Task{}, errNotFound
	}
	s.tasks[t.ID] = t
	return t, nil
}

func (s *fakeTaskStore) SetCompleted(ctx context.Context, id int64, completed bool) (models.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return models.Task{}, errNotFound
	}
	t.IsCompleted = completed
	return s.Update(ctx, t)
}

func (s *fakeTaskStore) Delete(_ context.Context, id int64) error {
	if err := s.takeErr(); err != nil {
		return err
	}
	if _, ok := s.tasks[id]; !ok {
		return errNotFound
	}
	delete(s.tasks, id)
	return nil
}

type fakeStudentStore struct {
	students  map[int64]models.Student
	nextID    int64
	listCalls int
	failNext  error
}

func (s *fakeStudentStore) takeErr() error {
	err := s.failNext
	s.failNext = nil
	return err
}

func newFakeStudentStore(students ...models.Student) *fakeStudentStore {
	s := &fakeStudentStore{students: map[int64]models.Student{}, nextID: 1}
	for _, st := range students {
		st.ID = s.nextID
		s.nextID++
		s.students[st.ID] = st
	}
	return s
}

func (s *fakeStudentStore) ListAll(context.Context) ([]models.Student, error) {
	s.listCalls++
	out := []models.Student{}
	for _, st := range s.students {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStudentStore) Create(_ context.Context, st models.Student) (models.Student, error) {
	if err := s.takeErr(); err != nil {
		return models.Student{}, err
	}
	st.ID = s.nextID
	s.nextID++
	s.students[st.ID] = st
	return st, nil
}

func (s *fakeStudentStore) Update(_ context.Context, st models.Student) (models.Student, error) {
	if err := s.takeErr(); err != nil {
		return models.Student{}, err
	}
	if _, ok := s.students[st.ID]; !ok {
		return models.Student{}, errNotFound
	}
	s.students[st.ID] = st
	return st, nil
}

func (s *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if err := s.takeErr(); err != nil {
		return err
	}
	if _, ok := s.students[id]; !ok {
		return errNotFound
	}
	delete(s.students, id)
	return nil
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// settle runs store commands until the model is idle. Only commands that
// produce load or mutation messages are executed.
func settle(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		switch msg.(type) {
		case tasksLoadedMsg, taskMutatedMsg, studentsLoadedMsg, studentMutatedMsg:
		default:
			return m
		}
		m, cmd = m.Update(msg)
	}
	require.Nil(t, cmd, "model did not settle")
	return m
}

// press sends keys one by one and settles after each
func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(key(k))
		if isStoreCmd(k) {
			m = settle(t, m, cmd)
		}
	}
	return m
}

// isStoreCmd reports keys whose command talks to the store rather than
// starting a cursor blink
func isStoreCmd(k string) bool {
	switch k {
	case "space", " ", "y", "r", "enter":
		return true
	}
	return false
}
