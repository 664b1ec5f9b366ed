package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/studentcard/internal/models"
)

type studentsLoadedMsg struct {
	students []models.Student
	err      error
}

type studentMutatedMsg struct {
	verb    string
	student models.Student
	err     error
}

// StudentsModel lists the roster with expandable rows and an add/edit form
type StudentsModel struct {
	ctx   context.Context
	store StudentStore

	width int

	students []models.Student
	cursor   int
	expanded map[int64]bool

	mode    mode
	form    StudentForm
	loading bool
	status  string
	err     error // last failed mutation, kept until the next one
	loadErr error
}

// NewStudentsModel creates a roster screen backed by store
func NewStudentsModel(ctx context.Context, store StudentStore) StudentsModel {
	return StudentsModel{
		ctx:      ctx,
		store:    store,
		expanded: map[int64]bool{},
		loading:  true,
	}
}

// Init loads the roster
func (m StudentsModel) Init() tea.Cmd {
	return m.load()
}

func (m StudentsModel) load() tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		students, err := store.ListAll(ctx)
		return studentsLoadedMsg{students: students, err: err}
	}
}

func (m StudentsModel) mutate(verb string, fn func() (models.Student, error)) tea.Cmd {
	return func() tea.Msg {
		s, err := fn()
		return studentMutatedMsg{verb: verb, student: s, err: err}
	}
}

func (m StudentsModel) selected() (models.Student, bool) {
	if len(m.students) == 0 {
		return models.Student{}, false
	}
	return m.students[m.cursor], true
}

// Update handles messages
func (m StudentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case studentsLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.students = msg.students
		if m.cursor >= len(m.students) {
			m.cursor = len(m.students) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case studentMutatedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
		} else {
			m.err = nil
			m.status = fmt.Sprintf("%s #%d %s", msg.verb, msg.student.ID, msg.student.FullName())
		}
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		}
		return m.updateList(msg)
	}

	if m.mode == modeForm {
		var cmd tea.Cmd
		m.form, cmd, _ = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m StudentsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.students)-1 {
			m.cursor++
		}
	case "enter", " ", "space":
		if s, ok := m.selected(); ok {
			m.expanded[s.ID] = !m.expanded[s.ID]
		}
	case "r":
		m.loading = true
		return m, m.load()
	case "a":
		m.form = NewStudentForm(nil)
		m.mode = modeForm
	case "e":
		if s, ok := m.selected(); ok {
			m.form = NewStudentForm(&s)
			m.mode = modeForm
		}
	case "x", "delete":
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
		}
	}
	return m, nil
}

func (m StudentsModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		result formResult
	)
	m.form, cmd, result = m.form.Update(msg)

	switch result {
	case formCancelled:
		m.mode = modeList
		return m, nil
	case formSubmitted:
		student, err := m.form.Student()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.mode = modeList
		ctx, store := m.ctx, m.store
		if m.form.Editing() {
			return m, m.mutate("Updated", func() (models.Student, error) {
				return store.Update(ctx, student)
			})
		}
		return m, m.mutate("Added", func() (models.Student, error) {
			return store.Create(ctx, student)
		})
	}
	return m, cmd
}

func (m StudentsModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		s, ok := m.selected()
		m.mode = modeList
		if !ok {
			return m, nil
		}
		ctx, store := m.ctx, m.store
		return m, m.mutate("Deleted", func() (models.Student, error) {
			return s, store.Delete(ctx, s.ID)
		})
	case "n", "N", "esc":
		m.mode = modeList
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// View renders the TUI
func (m StudentsModel) View() string {
	if m.mode == modeForm {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("studentcard · students (%d)", len(m.students))))
	if m.loading {
		b.WriteString(mutedStyle.Render("  loading..."))
	}
	b.WriteString("\n\n")

	if len(m.students) == 0 && !m.loading {
		b.WriteString(mutedStyle.Italic(true).Render("No students yet. Press a to add one."))
		b.WriteString("\n")
	}

	for i, s := range m.students {
		pointer := "  "
		style := textStyle
		if i == m.cursor {
			pointer = "▶ "
			style = headerStyle
		}
		b.WriteString(pointer + style.Render(fmt.Sprintf("#%-3d %s", s.ID, s.FullName())))
		b.WriteString("\n")
		if m.expanded[s.ID] {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("      Matrikelnummer: %s\n      Email:          %s", s.Matnumber, s.Email)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.mode == modeConfirmDelete:
		s, _ := m.selected()
		b.WriteString(errorStyle.Render(fmt.Sprintf("Delete student #%d %s? (y/n)", s.ID, s.FullName())))
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	case m.loadErr != nil:
		b.WriteString(errorStyle.Render("Error: " + m.loadErr.Error()))
	case m.status != "":
		b.WriteString(successStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ nav · enter expand · a add · e edit · x delete · q quit"))
	return panelStyle.Render(b.String())
}
