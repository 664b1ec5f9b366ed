package tui

import (
	"context"

	"github.com/balkashynov/studentcard/internal/models"
)

// TaskStore is the subset of the task repository the dashboard needs
type TaskStore interface {
	ListActive(ctx context.Context) ([]models.Task, error)
	ListCompleted(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, task models.Task) (models.Task, error)
	Update(ctx context.Context, task models.Task) (models.Task, error)
	SetCompleted(ctx context.Context, id int64, completed bool) (models.Task, error)
	Delete(ctx context.Context, id int64) error
}

// StudentStore is the subset of the student repository the roster screen needs
type StudentStore interface {
	ListAll(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, student models.Student) (models.Student, error)
	Update(ctx context.Context, student models.Student) (models.Student, error)
	Delete(ctx context.Context, id int64) error
}
