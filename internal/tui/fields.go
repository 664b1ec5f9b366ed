package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/studentcard/internal/models"
)

// formResult tells the owner of a form what the last key did
type formResult int

const (
	formEditing formResult = iota
	formSubmitted
	formCancelled
)

type field struct {
	label string
	input textinput.Model
}

// fieldSet is an ordered list of text inputs with one focused at a time
type fieldSet struct {
	fields []field
	focus  int
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 50
	in.Prompt = "> "
	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	return in
}

func newFieldSet(fields ...field) fieldSet {
	fs := fieldSet{fields: fields}
	if len(fs.fields) > 0 {
		fs.fields[0].input.Focus()
	}
	return fs
}

func (fs fieldSet) value(i int) string {
	return strings.TrimSpace(fs.fields[i].input.Value())
}

func (fs fieldSet) last() bool {
	return fs.focus == len(fs.fields)-1
}

// move shifts focus by delta, clamped to the field range
func (fs *fieldSet) move(delta int) tea.Cmd {
	next := fs.focus + delta
	if next < 0 || next >= len(fs.fields) {
		return nil
	}
	fs.fields[fs.focus].input.Blur()
	fs.focus = next
	return fs.fields[fs.focus].input.Focus()
}

func (fs *fieldSet) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	fs.fields[fs.focus].input, cmd = fs.fields[fs.focus].input.Update(msg)
	return cmd
}

func (fs *fieldSet) setWidth(w int) {
	for i := range fs.fields {
		fs.fields[i].input.Width = w
	}
}

func (fs fieldSet) view(title, validationErr, help string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")

	for i, f := range fs.fields {
		label := f.label
		if i == fs.focus {
			label = headerStyle.Render("▶ " + label)
		} else {
			label = mutedStyle.Render("  " + label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n\n")
	}

	if validationErr != "" {
		b.WriteString(errorStyle.Render("✗ " + validationErr))
		b.WriteString("\n\n")
	}
	b.WriteString(helpStyle.Render(help))
	return panelStyle.Render(b.String())
}

// validationMessage strips the generic prefix from validation errors
func validationMessage(err error) string {
	msg := err.Error()
	if errors.Is(err, models.ErrInvalid) {
		msg = strings.TrimPrefix(msg, models.ErrInvalid.Error()+": ")
	}
	return msg
}
