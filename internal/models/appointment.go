package models

// Appointment is the central schedulable entity. Date and Time are kept as
// the client-facing strings (YYYY-MM-DD / HH:MM) so the (date, time) slot
// pair can be matched exactly; the schedule package owns parsing them.
type Appointment struct {
	BaseModel
	PetID          uint              `gorm:"not null;index" json:"petId"`
	ServiceID      uint              `gorm:"not null" json:"servicoId"`
	GroomingTypeID *uint             `json:"tosaId"`
	Date           string            `gorm:"column:data;type:varchar(10);not null;index:idx_agendamento_slot" json:"data"`
	Time           string            `gorm:"column:horario;type:varchar(5);not null;index:idx_agendamento_slot" json:"horario"`
	TaxiDog        bool              `gorm:"column:taxi_dog;default:false" json:"taxiDog"`
	Note           string            `gorm:"column:observacao" json:"observacao"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Pet                *Pet                `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Service            *Service            `gorm:"foreignKey:ServiceID" json:"servico,omitempty"`
	GroomingType       *GroomingType       `gorm:"foreignKey:GroomingTypeID" json:"tosa,omitempty"`
	Products           []Product           `gorm:"many2many:agendamento_produtos;" json:"produtos"`
	AdditionalServices []AdditionalService `gorm:"many2many:agendamento_servicos_adicionais;" json:"servicosAdicionais"`
}

func (Appointment) TableName() string { return "agendamentos" }
