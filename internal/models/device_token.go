package models

import "time"

// DeviceToken is a push registration. The old backend held these in a
// process-local map that vanished on restart; persisting them makes the
// lifecycle explicit.
type DeviceToken struct {
	BaseModel
	UserID     uint      `gorm:"not null;index" json:"usuarioId"`
	Token      string    `gorm:"uniqueIndex;not null" json:"token"`
	Platform   string    `gorm:"type:varchar(20)" json:"plataforma"`
	LastSeenAt time.Time `json:"ultimoUso"`
}

func (DeviceToken) TableName() string { return "device_tokens" }
