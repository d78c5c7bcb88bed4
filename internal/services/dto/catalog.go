package dto

type ServiceRequest struct {
	Type string `json:"tipo" validate:"required"`
}

type GroomingTypeRequest struct {
	Type string `json:"tipo" validate:"required"`
}

type AdditionalServiceRequest struct {
	Description string `json:"descricao" validate:"required"`
}
