package models

import "time"

// BaseModel is shared by every table. IDs are numeric and auto-incremented,
// matching what the existing mobile client sends back in references.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
