package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/studentcard/internal/models"
)

// ErrCancelled is returned when the user leaves a form without saving
var ErrCancelled = errors.New("cancelled")

// RunDashboard starts the interactive task dashboard
func RunDashboard(ctx context.Context, store TaskStore) error {
	p := tea.NewProgram(NewDashboardModel(ctx, store), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// RunStudents starts the interactive student roster
func RunStudents(ctx context.Context, store StudentStore) error {
	p := tea.NewProgram(NewStudentsModel(ctx, store), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// RunTaskForm shows the task form on its own and saves the result. existing
// selects edit mode. It returns ErrCancelled if the form was left unsaved.
func RunTaskForm(ctx context.Context, store TaskStore, existing *models.Task, draft TaskDraft) (models.Task, error) {
	p := tea.NewProgram(taskFormProgram{form: NewTaskForm(existing, draft)}, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return models.Task{}, err
	}

	m, ok := final.(taskFormProgram)
	if !ok || !m.submitted {
		return models.Task{}, ErrCancelled
	}

	task, err := m.form.Task()
	if err != nil {
		return models.Task{}, err
	}
	if m.form.Editing() {
		return store.Update(ctx, task)
	}
	return store.Create(ctx, task)
}

// taskFormProgram runs a TaskForm as a standalone program
type taskFormProgram struct {
	form      TaskForm
	submitted bool
}

func (m taskFormProgram) Init() tea.Cmd {
	return nil
}

func (m taskFormProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		result formResult
	)
	m.form, cmd, result = m.form.Update(msg)
	switch result {
	case formSubmitted:
		m.submitted = true
		return m, tea.Quit
	case formCancelled:
		return m, tea.Quit
	}
	return m, cmd
}

func (m taskFormProgram) View() string {
	if m.submitted {
		return ""
	}
	return m.form.View()
}
