package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studentcard/internal/models"
	"github.com/balkashynov/studentcard/internal/parser"
)

var studentCmd = &cobra.Command{
	Use:     "student",
	Aliases: []string{"s", "students"},
	Short:   "Manage the student roster",
	Long: `Manage entries of the Student table.

Use 'studentcard ui --students' for the interactive roster.`,
}

var studentListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List all students",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		students, err := store.Students().ListAll(cmdContext(cmd))
		if err != nil {
			return fmt.Errorf("error fetching students: %w", err)
		}

		w := cmd.OutOrStdout()
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			if students == nil {
				students = []models.Student{}
			}
			return printJSON(w, students)
		}

		if len(students) == 0 {
			fmt.Fprintln(w, "No students found. Use 'studentcard student add' to add one.")
			return nil
		}
		renderStudentTable(w, students)
		return nil
	},
}

var studentShowCmd = &cobra.Command{
	Use:   "show <student-id>",
	Short: "Show a single student",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("student", args[0])
		if err != nil {
			return err
		}

		student, err := store.Students().Get(cmdContext(cmd), id)
		if err != nil {
			return notFound(err, "student", id)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Student #%d: %s\n", student.ID, student.FullName())
		fmt.Fprintf(w, "  Matrikelnummer: %s\n", student.Matnumber)
		fmt.Fprintf(w, "  Email:          %s\n", student.Email)
		return nil
	},
}

var studentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a student",
	Long: `Add a student.

Example:
  studentcard student add --first Ada --last Lovelace --mat s1234567 --email ada@example.org`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var student models.Student
		student.Firstname, _ = cmd.Flags().GetString("first")
		student.Lastname, _ = cmd.Flags().GetString("last")
		student.Matnumber, _ = cmd.Flags().GetString("mat")
		student.Email, _ = cmd.Flags().GetString("email")

		student, err := cleanStudent(student, true)
		if err != nil {
			return err
		}
		warnUnusualMatnumber(cmd, student.Matnumber)

		created, err := store.Students().Create(cmdContext(cmd), student)
		if err != nil {
			return fmt.Errorf("error creating student: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added student #%d: %s (%s)\n", created.ID, created.FullName(), created.Matnumber)
		return nil
	},
}

var studentEditCmd = &cobra.Command{
	Use:   "edit <student-id>",
	Short: "Edit a student",
	Long:  "Edit a student. Only the given fields change; the whole row is written back.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("student", args[0])
		if err != nil {
			return err
		}
		if !anyChanged(cmd, "first", "last", "mat", "email") {
			return fmt.Errorf("nothing to change: pass --first, --last, --mat or --email")
		}

		student, err := store.Students().Get(cmdContext(cmd), id)
		if err != nil {
			return notFound(err, "student", id)
		}

		if cmd.Flags().Changed("first") {
			student.Firstname, _ = cmd.Flags().GetString("first")
		}
		if cmd.Flags().Changed("last") {
			student.Lastname, _ = cmd.Flags().GetString("last")
		}
		if cmd.Flags().Changed("mat") {
			student.Matnumber, _ = cmd.Flags().GetString("mat")
		}
		if cmd.Flags().Changed("email") {
			student.Email, _ = cmd.Flags().GetString("email")
		}

		// A stored number is written back as is unless --mat replaces it
		matChanged := cmd.Flags().Changed("mat")
		student, err = cleanStudent(student, matChanged)
		if err != nil {
			return err
		}
		if matChanged {
			warnUnusualMatnumber(cmd, student.Matnumber)
		}

		updated, err := store.Students().Update(cmdContext(cmd), student)
		if err != nil {
			return notFound(err, "student", id)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated student #%d: %s\n", updated.ID, updated.FullName())
		return nil
	},
}

var studentRemoveCmd = &cobra.Command{
	Use:     "rm <student-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a student",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("student", args[0])
		if err != nil {
			return err
		}

		if err := store.Students().Delete(cmdContext(cmd), id); err != nil {
			return notFound(err, "student", id)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted student #%d\n", id)
		return nil
	},
}

// cleanStudent trims input, optionally normalizes the matriculation number
// and validates
func cleanStudent(s models.Student, normalizeMat bool) (models.Student, error) {
	s.Firstname = strings.TrimSpace(s.Firstname)
	s.Lastname = strings.TrimSpace(s.Lastname)
	s.Email = strings.TrimSpace(s.Email)
	if normalizeMat && strings.TrimSpace(s.Matnumber) != "" {
		mat, err := parser.NormalizeMatnumber(s.Matnumber)
		if err != nil {
			return s, fmt.Errorf("%w: %w", models.ErrInvalid, err)
		}
		s.Matnumber = mat
	}
	return s, models.ValidateStudent(s)
}

// warnUnusualMatnumber prints a hint for numbers outside the common format.
// They are saved anyway.
func warnUnusualMatnumber(cmd *cobra.Command, mat string) {
	if !parser.IsTypicalMatnumber(mat) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Note: matriculation number %q does not look like 4-10 digits with an optional letter prefix\n", mat)
	}
}

func renderStudentTable(w io.Writer, students []models.Student) {
	fmt.Fprintf(w, "%-4s %-30s %-14s %s\n", "ID", "NAME", "MATNR", "EMAIL")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, s := range students {
		fmt.Fprintf(w, "%-4d %-30s %-14s %s\n",
			s.ID,
			truncate(s.FullName(), 28),
			s.Matnumber,
			truncate(s.Email, 28))
	}
}

func init() {
	studentListCmd.Flags().Bool("json", false, "Output as JSON")

	for _, c := range []*cobra.Command{studentAddCmd, studentEditCmd} {
		c.Flags().String("first", "", "First name")
		c.Flags().String("last", "", "Last name")
		c.Flags().String("mat", "", "Matriculation number")
		c.Flags().String("email", "", "Email address")
	}

	studentCmd.AddCommand(studentListCmd)
	studentCmd.AddCommand(studentShowCmd)
	studentCmd.AddCommand(studentAddCmd)
	studentCmd.AddCommand(studentEditCmd)
	studentCmd.AddCommand(studentRemoveCmd)
}
