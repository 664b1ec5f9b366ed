package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/studentcard/internal/models"
	"github.com/balkashynov/studentcard/internal/parser"
)

// section is one of the two task lists on the dashboard
type section int

const (
	sectionActive section = iota
	sectionCompleted
)

func (s section) title() string {
	if s == sectionCompleted {
		return "Completed"
	}
	return "Active"
}

// mode is what the dashboard is currently showing
type mode int

const (
	modeList mode = iota
	modeDetails
	modeForm
	modeConfirmDelete
)

// tasksLoadedMsg carries a fresh copy of both lists
type tasksLoadedMsg struct {
	active    []models.Task
	completed []models.Task
	err       error
}

// taskMutatedMsg reports the outcome of a create, update, toggle or delete
type taskMutatedMsg struct {
	verb string
	task models.Task
	err  error
}

// DashboardModel shows active and completed tasks in two collapsible
// sections. Lists are only ever replaced by a reload from the store.
type DashboardModel struct {
	ctx   context.Context
	store TaskStore

	width  int
	height int

	lists     [2][]models.Task
	cursor    [2]int
	collapsed [2]bool
	section   section

	mode    mode
	form    TaskForm
	loading bool
	status  string
	err     error // last failed mutation, kept until the next one
	loadErr error
}

// NewDashboardModel creates a dashboard backed by store
func NewDashboardModel(ctx context.Context, store TaskStore) DashboardModel {
	return DashboardModel{
		ctx:     ctx,
		store:   store,
		loading: true,
	}
}

// Init loads both task lists
func (m DashboardModel) Init() tea.Cmd {
	return m.load()
}

func (m DashboardModel) load() tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		active, err := store.ListActive(ctx)
		if err != nil {
			return tasksLoadedMsg{err: err}
		}
		completed, err := store.ListCompleted(ctx)
		if err != nil {
			return tasksLoadedMsg{err: err}
		}
		return tasksLoadedMsg{active: active, completed: completed}
	}
}

func (m DashboardModel) mutate(verb string, fn func() (models.Task, error)) tea.Cmd {
	return func() tea.Msg {
		task, err := fn()
		return taskMutatedMsg{verb: verb, task: task, err: err}
	}
}

// selected returns the task under the cursor in the current section
func (m DashboardModel) selected() (models.Task, bool) {
	list := m.lists[m.section]
	if m.collapsed[m.section] || len(list) == 0 {
		return models.Task{}, false
	}
	return list[m.cursor[m.section]], true
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.mode == modeForm {
			m.form, _, _ = m.form.Update(msg)
		}
		return m, nil

	case tasksLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.lists[sectionActive] = msg.active
		m.lists[sectionCompleted] = msg.completed
		m.clampCursors()
		return m, nil

	case taskMutatedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
		} else {
			m.err = nil
			m.status = fmt.Sprintf("%s #%d %s", msg.verb, msg.task.ID, msg.task.Name)
		}
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		case modeDetails:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "esc", "enter", "backspace":
				m.mode = modeList
			}
			return m, nil
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

func (m DashboardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor[m.section] > 0 {
			m.cursor[m.section]--
		}

	case "down", "j":
		if m.cursor[m.section] < len(m.lists[m.section])-1 {
			m.cursor[m.section]++
		}

	case "tab":
		m.section = 1 - m.section

	case "c":
		m.collapsed[sectionActive] = !m.collapsed[sectionActive]

	case "v":
		m.collapsed[sectionCompleted] = !m.collapsed[sectionCompleted]

	case "r":
		m.loading = true
		return m, m.load()

	case "a":
		m.form = NewTaskForm(nil, TaskDraft{})
		m.form, _, _ = m.form.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.mode = modeForm
		return m, nil

	case " ", "space":
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		verb := "Completed"
		if task.IsCompleted {
			verb = "Reopened"
		}
		ctx, store := m.ctx, m.store
		return m, m.mutate(verb, func() (models.Task, error) {
			return store.SetCompleted(ctx, task.ID, !task.IsCompleted)
		})

	case "e":
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.form = NewTaskForm(&task, TaskDraft{})
		m.form, _, _ = m.form.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.mode = modeForm
		return m, nil

	case "x", "delete":
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
		}

	case "enter":
		if _, ok := m.selected(); ok {
			m.mode = modeDetails
		}
	}
	return m, nil
}

func (m DashboardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		task, err := m.form.Task()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.mode = modeList
		ctx, store := m.ctx, m.store
		if m.form.Editing() {
			return m, m.mutate("Updated", func() (models.Task, error) {
				return store.Update(ctx, task)
			})
		}
		return m, m.mutate("Added", func() (models.Task, error) {
			return store.Create(ctx, task)
		})
	}
	return m, cmd
}

func (m DashboardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		task, ok := m.selected()
		m.mode = modeList
		if !ok {
			return m, nil
		}
		ctx, store := m.ctx, m.store
		return m, m.mutate("Deleted", func() (models.Task, error) {
			return task, store.Delete(ctx, task.ID)
		})
	case "n", "N", "esc":
		m.mode = modeList
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *DashboardModel) clampCursors() {
	for s := range m.lists {
		if m.cursor[s] >= len(m.lists[s]) {
			m.cursor[s] = len(m.lists[s]) - 1
		}
		if m.cursor[s] < 0 {
			m.cursor[s] = 0
		}
	}
}

// View renders the TUI
func (m DashboardModel) View() string {
	if m.mode == modeForm {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("studentcard · tasks"))
	if m.loading {
		b.WriteString(mutedStyle.Render("  loading..."))
	}
	b.WriteString("\n\n")

	if m.mode == modeDetails {
		if task, ok := m.selected(); ok {
			b.WriteString(renderTaskDetails(task, m.width))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back · q quit"))
		return b.String()
	}

	for _, s := range []section{sectionActive, sectionCompleted} {
		b.WriteString(m.renderSection(s))
		b.WriteString("\n")
	}

	switch {
	case m.mode == modeConfirmDelete:
		task, _ := m.selected()
		b.WriteString(errorStyle.Render(fmt.Sprintf("Delete task #%d %q? (y/n)", task.ID, task.Name)))
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	case m.loadErr != nil:
		b.WriteString(errorStyle.Render("Error: " + m.loadErr.Error()))
	case m.status != "":
		b.WriteString(successStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ nav · tab section · space done · a add · e edit · x delete · enter details · c/v collapse · q quit"))
	return b.String()
}

func (m DashboardModel) renderSection(s section) string {
	list := m.lists[s]
	marker := "▾"
	if m.collapsed[s] {
		marker = "▸"
	}
	title := fmt.Sprintf("%s %s (%d)", marker, s.title(), len(list))

	style := panelStyle
	if s == m.section {
		style = selectedPanelStyle
		title = headerStyle.Render(title)
	} else {
		title = mutedStyle.Render(title)
	}

	var b strings.Builder
	b.WriteString(title)

	if !m.collapsed[s] {
		if len(list) == 0 {
			b.WriteString("\n")
			b.WriteString(mutedStyle.Italic(true).Render("  nothing here"))
		}
		for i, task := range list {
			b.WriteString("\n")
			b.WriteString(m.renderRow(task, s == m.section && i == m.cursor[s]))
		}
	}

	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(b.String())
}

func (m DashboardModel) renderRow(task models.Task, selected bool) string {
	check := "○"
	if task.IsCompleted {
		check = "✓"
	}
	pointer := "  "
	if selected {
		pointer = "▶ "
	}

	row := fmt.Sprintf(" %s #%-3d %-32s %-6s %s ",
		check, task.ID, truncate(task.Name, 32), task.Priority.Label(),
		parser.FormatDueDate(task.EndDate, task.IsCompleted))

	style := priorityStyle(task.Priority)
	if selected {
		style = style.Bold(true)
	}
	return pointer + style.Render(row)
}

func renderTaskDetails(task models.Task, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("#%d %s", task.ID, task.Name)))
	b.WriteString("\n\n")
	b.WriteString("Status:   " + task.StatusLabel() + "\n")
	b.WriteString("Priority: " + priorityStyle(task.Priority).Render(" "+task.Priority.Label()+" ") + "\n")
	b.WriteString("End date: " + parser.FormatDate(task.EndDate) + "\n")
	if desc := task.DescriptionOrEmpty(); desc != "" {
		b.WriteString("\n")
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true)
		if width > 8 {
			style = style.Width(width - 8)
		}
		b.WriteString(style.Render(desc))
	}
	return selectedPanelStyle.Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-3]) + "..."
}
