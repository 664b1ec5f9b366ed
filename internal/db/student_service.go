package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/balkashynov/studentcard/internal/models"
)

// StudentService reads and writes rows of the Student table
type StudentService struct {
	store *Store
}

// ListAll returns every student in storage order
func (s *StudentService) ListAll(ctx context.Context) ([]models.Student, error) {
	students := []models.Student{}
	err := s.store.with(ctx, "list students", func(tx *gorm.DB) error {
		return tx.Find(&students).Error
	})
	if err != nil {
		return nil, err
	}
	return students, nil
}

// Get retrieves a student by ID
func (s *StudentService) Get(ctx context.Context, id int64) (models.Student, error) {
	var student models.Student
	err := s.store.with(ctx, "get student", func(tx *gorm.DB) error {
		return tx.First(&student, id).Error
	})
	return student, err
}

// Create inserts a student and returns it with its assigned ID
func (s *StudentService) Create(ctx context.Context, student models.Student) (models.Student, error) {
	student.ID = 0
	err := s.store.with(ctx, "create student", func(tx *gorm.DB) error {
		return tx.Create(&student).Error
	})
	if err != nil {
		return models.Student{}, err
	}
	return student, nil
}

// Update overwrites all four fields of the student with the given ID
func (s *StudentService) Update(ctx context.Context, student models.Student) (models.Student, error) {
	var updated models.Student
	err := s.store.with(ctx, "update student", func(tx *gorm.DB) error {
		res := tx.Model(&models.Student{}).Where("id = ?", student.ID).Updates(map[string]interface{}{
			"firstname":      student.Firstname,
			"lastname":       student.Lastname,
			"matrikelnummer": student.Matnumber,
			"email":          student.Email,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&updated, student.ID).Error
	})
	if err != nil {
		return models.Student{}, err
	}
	return updated, nil
}

// Delete removes the student with the given ID
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.store.with(ctx, "delete student", func(tx *gorm.DB) error {
		res := tx.Delete(&models.Student{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
