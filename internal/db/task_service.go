package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/balkashynov/studentcard/internal/models"
)

// TaskService reads and writes rows of the todos table
type TaskService struct {
	store *Store
}

// ListActive returns tasks that are not completed, in storage order
func (s *TaskService) ListActive(ctx context.Context) ([]models.Task, error) {
	return s.listByCompletion(ctx, "list active tasks", false)
}

// ListCompleted returns completed tasks, in storage order
func (s *TaskService) ListCompleted(ctx context.Context) ([]models.Task, error) {
	return s.listByCompletion(ctx, "list completed tasks", true)
}

func (s *TaskService) listByCompletion(ctx context.Context, op string, completed bool) ([]models.Task, error) {
	tasks := []models.Task{}
	err := s.store.with(ctx, op, func(tx *gorm.DB) error {
		return tx.Where("isCompleted = ?", completed).Find(&tasks).Error
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Get retrieves a task by ID
func (s *TaskService) Get(ctx context.Context, id int64) (models.Task, error) {
	var task models.Task
	err := s.store.with(ctx, "get task", func(tx *gorm.DB) error {
		return tx.First(&task, id).Error
	})
	return task, err
}

// Create inserts a new task and returns it with its assigned ID
func (s *TaskService) Create(ctx context.Context, task models.Task) (models.Task, error) {
	task.ID = 0
	err := s.store.with(ctx, "create task", func(tx *gorm.DB) error {
		return tx.Create(&task).Error
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Update replaces every mutable column of the task with the given ID and
// returns the stored row
func (s *TaskService) Update(ctx context.Context, task models.Task) (models.Task, error) {
	var updated models.Task
	err := s.store.with(ctx, "update task", func(tx *gorm.DB) error {
		res := tx.Model(&models.Task{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
			"name":        task.Name,
			"priority":    task.Priority,
			"endDate":     task.EndDate,
			"description": task.Description,
			"isCompleted": task.IsCompleted,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&updated, task.ID).Error
	})
	if err != nil {
		return models.Task{}, err
	}
	return updated, nil
}

// SetCompleted marks a task completed or active again
func (s *TaskService) SetCompleted(ctx context.Context, id int64, completed bool) (models.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	task.IsCompleted = completed
	return s.Update(ctx, task)
}

// Delete removes the task with the given ID
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.store.with(ctx, "delete task", func(tx *gorm.DB) error {
		res := tx.Delete(&models.Task{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
