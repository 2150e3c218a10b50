package models

import "time"

// Tag is a shared vocabulary entity keyed by name. It has no owner: the same
// tag name attached by two users resolves to one row.
type Tag struct {
	Name      string    `json:"name" gorm:"primaryKey;size:50"`
	Color     string    `json:"color" gorm:"size:20;default:default"`
	CreatedAt time.Time `json:"created_at"`
}

const DefaultTagColor = "default"
