package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Note struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	UserID       string    `json:"user_id" gorm:"size:36;not null;index"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Content      string    `json:"content" gorm:"type:text;not null"`
	LinkedNoteID *string   `json:"linked_note_id" gorm:"size:36"`
	CreatedAt    time.Time `json:"created_at"`

	User User  `json:"-" gorm:"foreignKey:UserID"`
	Tags []Tag `json:"tags,omitempty" gorm:"many2many:note_tags;"`
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

type NoteCreateRequest struct {
	Title   string   `json:"title" validate:"required,min=3,max=255"`
	Content string   `json:"content" validate:"required,min=3"`
	Tags    []string `json:"tags" validate:"omitempty,dive,required,max=50"`
}

type NoteLinkRequest struct {
	FromNoteID string `json:"fromNoteId" validate:"required,uuid"`
}

type NoteListRequest struct {
	Page  int `form:"page" validate:"omitempty,min=1"`
	Limit int `form:"limit" validate:"omitempty,min=1,max=100"`
}
