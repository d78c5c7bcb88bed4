package models

// Service is a bookable offering ("servico"), e.g. a bath.
type Service struct {
	BaseModel
	Type string `gorm:"column:tipo;not null" json:"tipo"`
}

func (Service) TableName() string { return "servicos" }

// GroomingType is a grooming variant ("tosa"), optionally attached to an
// appointment.
type GroomingType struct {
	BaseModel
	Type string `gorm:"column:tipo;not null" json:"tipo"`
}

func (GroomingType) TableName() string { return "tosas" }

// AdditionalService is a named add-on, many-to-many with appointments.
type AdditionalService struct {
	BaseModel
	Description string `gorm:"column:descricao;not null" json:"descricao"`
}

func (AdditionalService) TableName() string { return "servicos_adicionais" }
