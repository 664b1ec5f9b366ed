package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/studentcard/internal/models"
	"github.com/balkashynov/studentcard/internal/parser"
)

const (
	taskFieldName = iota
	taskFieldPriority
	taskFieldDescription
	taskFieldEndDate
)

const errNameRequired = "name must not be empty"

// TaskDraft pre-fills the task form, e.g. from quick-add parsing
type TaskDraft struct {
	Name        string
	Priority    string
	Description string
	EndDate     string
}

// TaskForm collects the editable fields of a task
type TaskForm struct {
	fields        fieldSet
	base          models.Task // ID and completion state are carried over on edit
	editing       bool
	validationErr string
}

// NewTaskForm returns a form for a new task, or for existing when it is set.
// Non-empty draft values override the existing ones.
func NewTaskForm(existing *models.Task, draft TaskDraft) TaskForm {
	f := TaskForm{
		fields: newFieldSet(
			field{label: "Name", input: newInput("What needs doing? (required)", 200)},
			field{label: "Priority", input: newInput("low/medium/high or 1/2/3 (default low)", 10)},
			field{label: "Description", input: newInput("Optional details", 500)},
			field{label: "End date", input: newInput("dd.mm.yyyy, 3 days, 2 weeks (default today)", 30)},
		),
	}

	if existing != nil {
		f.base = *existing
		f.editing = true
		f.set(taskFieldName, existing.Name)
		f.set(taskFieldPriority, existing.Priority.Label())
		f.set(taskFieldDescription, existing.DescriptionOrEmpty())
		f.set(taskFieldEndDate, parser.FormatDate(existing.EndDate))
	}

	f.set(taskFieldName, draft.Name)
	f.set(taskFieldPriority, draft.Priority)
	f.set(taskFieldDescription, draft.Description)
	f.set(taskFieldEndDate, draft.EndDate)
	return f
}

func (f *TaskForm) set(i int, v string) {
	if v != "" {
		f.fields.fields[i].input.SetValue(v)
	}
}

// Editing reports whether the form edits an existing task
func (f TaskForm) Editing() bool {
	return f.editing
}

// Update handles a message and reports whether the form was submitted or
// cancelled. A submitted form always yields a valid Task().
func (f TaskForm) Update(msg tea.Msg) (TaskForm, tea.Cmd, formResult) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 10
		if w > 80 {
			w = 80
		}
		if w < 20 {
			w = 20
		}
		f.fields.setWidth(w)
		return f, nil, formEditing

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return f, nil, formCancelled

		case "enter":
			if f.fields.last() {
				if _, err := f.Task(); err != nil {
					f.validationErr = validationMessage(err)
					return f, nil, formEditing
				}
				f.validationErr = ""
				return f, nil, formSubmitted
			}
			return f.next()

		case "tab", "down":
			return f.next()

		case "shift+tab", "up":
			f.validationErr = ""
			return f, f.fields.move(-1), formEditing
		}
	}

	cmd := f.fields.update(msg)
	if f.fields.focus == taskFieldName && f.fields.value(taskFieldName) != "" {
		f.validationErr = ""
	}
	return f, cmd, formEditing
}

func (f TaskForm) next() (TaskForm, tea.Cmd, formResult) {
	if f.fields.focus == taskFieldName && f.fields.value(taskFieldName) == "" {
		f.validationErr = errNameRequired
		return f, nil, formEditing
	}
	f.validationErr = ""
	return f, f.fields.move(1), formEditing
}

// Task builds and validates the task described by the form
func (f TaskForm) Task() (models.Task, error) {
	task := f.base
	task.Name = f.fields.value(taskFieldName)
	task.Description = models.StringPtr(f.fields.value(taskFieldDescription))

	task.Priority = models.PriorityLow
	if raw := f.fields.value(taskFieldPriority); raw != "" {
		p, err := models.ParsePriority(raw)
		if err != nil {
			return models.Task{}, err
		}
		task.Priority = p
	}

	raw := f.fields.value(taskFieldEndDate)
	switch {
	case f.editing && raw == parser.FormatDate(f.base.EndDate):
		// Unchanged, keep the stored time of day
	case raw != "":
		due, err := parser.ParseDueDate(raw)
		if err != nil {
			return models.Task{}, fmt.Errorf("end date: %w", err)
		}
		task = task.WithDue(due)
	case !f.editing:
		task = task.WithDue(time.Now())
	}

	if err := models.ValidateTask(task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// View renders the form
func (f TaskForm) View() string {
	title := "New task"
	if f.editing {
		title = fmt.Sprintf("Edit task #%d", f.base.ID)
	}
	return f.fields.view(title, f.validationErr, "tab/↓ next · shift+tab/↑ back · enter on last field saves · esc cancel")
}
