package dto

import "pettime_backend/internal/models"

// CreateAppointmentRequest books a slot. Date and time formats are checked by
// the scheduling chain, not by struct tags, so malformed values map to their
// specific error codes instead of a generic validation failure.
type CreateAppointmentRequest struct {
	PetID              uint   `json:"petId" validate:"required"`
	ServiceID          uint   `json:"servicoId" validate:"required"`
	GroomingTypeID     *uint  `json:"tosaId"`
	Date               string `json:"data" validate:"required"`
	Time               string `json:"horario" validate:"required"`
	TaxiDog            bool   `json:"taxiDog"`
	Note               string `json:"observacao"`
	Products           []uint `json:"produtos"`
	AdditionalServices []uint `json:"servicosAdicionais"`
}

// UpdateAppointmentRequest reschedules or amends an existing booking. Nil
// pointers leave the stored value untouched. A changed date or time reruns
// the full slot validation chain.
type UpdateAppointmentRequest struct {
	PetID              *uint   `json:"petId"`
	ServiceID          *uint   `json:"servicoId"`
	GroomingTypeID     *uint   `json:"tosaId"`
	Date               *string `json:"data"`
	Time               *string `json:"horario"`
	TaxiDog            *bool   `json:"taxiDog"`
	Note               *string `json:"observacao"`
	Products           *[]uint `json:"produtos"`
	AdditionalServices *[]uint `json:"servicosAdicionais"`
}

type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" validate:"required"`
}

// AppointmentListQuery filters listings. The custom datefield rule keeps a
// malformed filter from silently matching nothing.
type AppointmentListQuery struct {
	PetID  *uint   `form:"petId" json:"petId"`
	Date   *string `form:"data" json:"data" validate:"omitempty,datefield"`
	Status *string `form:"status" json:"status"`
}

// AvailabilityQuery asks which slots remain open on a date. When both
// servicoId and petId are present the response also carries the price and
// duration estimates for that combination.
type AvailabilityQuery struct {
	Date      string  `form:"data" json:"data" validate:"required,datefield"`
	Time      *string `form:"horario" json:"horario" validate:"omitempty,timeslot"`
	ServiceID *uint   `form:"servicoId" json:"servicoId"`
	PetID     *uint   `form:"petId" json:"petId"`
}

// AvailabilityResponse lists free and taken times for a date.
type AvailabilityResponse struct {
	Date              string   `json:"data"`
	Available         []string `json:"disponiveis"`
	Occupied          []string `json:"ocupados"`
	EstimatedDuration *int     `json:"duracaoEstimada,omitempty"` // minutes
	EstimatedPrice    *float64 `json:"precoEstimado,omitempty"`
}
