package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RecurrenceDays   = "days"
	RecurrenceWeeks  = "weeks"
	RecurrenceMonths = "months"
	RecurrenceYears  = "years"

	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

type Task struct {
	ID                 string    `json:"id" gorm:"primaryKey;size:36"`
	UserID             string    `json:"user_id" gorm:"size:36;not null;index"`
	Title              string    `json:"title" gorm:"size:255;not null"`
	Description        string    `json:"description" gorm:"type:text"`
	DueDate            time.Time `json:"due_date" gorm:"not null"`
	RecurrencePattern  *string   `json:"recurrence_pattern" gorm:"size:10"`
	RecurrenceInterval *int      `json:"recurrence_interval"`
	Priority           string    `json:"priority" gorm:"size:10;not null"`
	Status             string    `json:"status" gorm:"size:10;not null;default:pending"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	User  User   `json:"-" gorm:"foreignKey:UserID"`
	Tags  []Tag  `json:"tags,omitempty" gorm:"many2many:task_tags;"`
	Notes []Note `json:"notes,omitempty" gorm:"many2many:task_notes;"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TaskRequest is shared by create and update; both resolve the due date the
// same way before touching the database.
type TaskRequest struct {
	Title              string     `json:"title" validate:"required,min=3,max=255"`
	Description        string     `json:"description"`
	DueDate            *time.Time `json:"dueDate"`
	RecurrencePattern  *string    `json:"recurrencePattern" validate:"omitempty,oneof=days weeks months years"`
	RecurrenceInterval *int       `json:"recurrenceInterval" validate:"omitempty,min=1"`
	Priority           string     `json:"priority" validate:"required,oneof=low normal high"`
	Status             string     `json:"status" validate:"required,oneof=pending completed"`
	Tags               []string   `json:"tags" validate:"omitempty,dive,required,max=50"`
	NoteIDs            []string   `json:"noteIds" validate:"omitempty,dive,uuid"`
}

type TaskListRequest struct {
	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"pageSize" validate:"omitempty,min=1,max=100"`
}
