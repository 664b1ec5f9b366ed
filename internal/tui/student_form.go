package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/studentcard/internal/models"
	"github.com/balkashynov/studentcard/internal/parser"
)

const (
	studentFieldFirstname = iota
	studentFieldLastname
	studentFieldMatnumber
	studentFieldEmail
)

// StudentForm collects the fields of a roster entry
type StudentForm struct {
	fields        fieldSet
	id            int64
	storedMat     string
	validationErr string
}

// NewStudentForm returns a form for a new student, or for existing when set
func NewStudentForm(existing *models.Student) StudentForm {
	f := StudentForm{
		fields: newFieldSet(
			field{label: "First name", input: newInput("Ada", 100)},
			field{label: "Last name", input: newInput("Lovelace", 100)},
			field{label: "Matriculation number", input: newInput("123456", 20)},
			field{label: "Email", input: newInput("ada@example.org", 200)},
		),
	}
	if existing != nil {
		f.id = existing.ID
		f.storedMat = existing.Matnumber
		f.fields.fields[studentFieldFirstname].input.SetValue(existing.Firstname)
		f.fields.fields[studentFieldLastname].input.SetValue(existing.Lastname)
		f.fields.fields[studentFieldMatnumber].input.SetValue(existing.Matnumber)
		f.fields.fields[studentFieldEmail].input.SetValue(existing.Email)
	}
	return f
}

// Editing reports whether the form edits an existing student
func (f StudentForm) Editing() bool {
	return f.id != 0
}

// Update handles a message and reports whether the form was submitted or
// cancelled
func (f StudentForm) Update(msg tea.Msg) (StudentForm, tea.Cmd, formResult) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			return f, nil, formCancelled
		case "enter":
			if !f.fields.last() {
				return f, f.fields.move(1), formEditing
			}
			if _, err := f.Student(); err != nil {
				f.validationErr = validationMessage(err)
				return f, nil, formEditing
			}
			f.validationErr = ""
			return f, nil, formSubmitted
		case "tab", "down":
			return f, f.fields.move(1), formEditing
		case "shift+tab", "up":
			return f, f.fields.move(-1), formEditing
		}
	}
	return f, f.fields.update(msg), formEditing
}

// Student builds and validates the student described by the form
func (f StudentForm) Student() (models.Student, error) {
	s := models.Student{
		ID:        f.id,
		Firstname: f.fields.value(studentFieldFirstname),
		Lastname:  f.fields.value(studentFieldLastname),
		Email:     f.fields.value(studentFieldEmail),
	}
	// Blank numbers are left to the validator for a uniform message
	raw := f.fields.value(studentFieldMatnumber)
	switch {
	case f.Editing() && raw == strings.TrimSpace(f.storedMat):
		s.Matnumber = f.storedMat
	case raw != "":
		mat, err := parser.NormalizeMatnumber(raw)
		if err != nil {
			return models.Student{}, fmt.Errorf("%w: %s", models.ErrInvalid, err)
		}
		s.Matnumber = mat
	}

	if err := models.ValidateStudent(s); err != nil {
		return models.Student{}, err
	}
	return s, nil
}

// View renders the form
func (f StudentForm) View() string {
	title := "New student"
	if f.Editing() {
		title = fmt.Sprintf("Edit student #%d", f.id)
	}
	return f.fields.view(title, f.validationErr, "tab/↓ next · shift+tab/↑ back · enter on last field saves · esc cancel")
}
