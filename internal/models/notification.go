package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification types emitted by the appointment status workflow.
const (
	NotificationTypeApproval  = "aprovacao"
	NotificationTypeRejection = "reprovacao"
	NotificationTypeStatus    = "status"
)

type Notification struct {
	BaseModel
	UserID  uint           `gorm:"not null;index" json:"usuarioId"`
	Type    string         `gorm:"column:tipo;not null" json:"tipo"`
	Title   string         `gorm:"column:titulo;not null" json:"titulo"`
	Message string         `gorm:"column:mensagem;type:text;not null" json:"mensagem"`
	Data    datatypes.JSON `gorm:"column:data" json:"data,omitempty"` // e.g. {"agendamentoId": 12}
	Read    bool           `gorm:"column:lida;default:false" json:"lida"`
	ReadAt  *time.Time     `gorm:"column:lida_em" json:"lidaEm,omitempty"`
}

func (Notification) TableName() string { return "notificacoes" }
