package models

import "time"

// Task represents a todo item in the todos table
type Task struct {
	ID          int64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string   `gorm:"column:name;not null" json:"name" validate:"required,notblank,max=200"`
	Priority    Priority `gorm:"column:priority;not null" json:"priority" validate:"min=1,max=3"`
	EndDate     int64    `gorm:"column:endDate;not null" json:"end_date"` // epoch milliseconds
	Description *string  `gorm:"column:description" json:"description"`
	IsCompleted bool     `gorm:"column:isCompleted;not null" json:"is_completed"`
}

// TableName pins the table name used by the bundled database
func (Task) TableName() string {
	return "todos"
}

// Due returns EndDate as a local time
func (t Task) Due() time.Time {
	return time.UnixMilli(t.EndDate)
}

// WithDue returns a copy of t with EndDate set from d
func (t Task) WithDue(d time.Time) Task {
	t.EndDate = d.UnixMilli()
	return t
}

// DescriptionOrEmpty returns the description, or "" when it is NULL
func (t Task) DescriptionOrEmpty() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}

// StatusLabel returns "done" or "active"
func (t Task) StatusLabel() string {
	if t.IsCompleted {
		return "done"
	}
	return "active"
}

// StringPtr returns nil for an empty string so blank descriptions stay NULL
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
