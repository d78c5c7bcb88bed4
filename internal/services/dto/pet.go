package dto

import "pettime_backend/internal/models"

// Pet create/update arrive as multipart forms because of the photo upload,
// so the fields carry form tags alongside json.
type CreatePetRequest struct {
	Name  string         `form:"nome" json:"nome" validate:"required"`
	Breed string         `form:"raca" json:"raca"`
	Age   int            `form:"idade" json:"idade" validate:"omitempty,min=0,max=40"`
	Size  models.PetSize `form:"porte" json:"porte" validate:"required,oneof=pequeno medio grande gigante"`
}

type UpdatePetRequest struct {
	Name  *string         `form:"nome" json:"nome" validate:"omitempty,min=1"`
	Breed *string         `form:"raca" json:"raca"`
	Age   *int            `form:"idade" json:"idade" validate:"omitempty,min=0,max=40"`
	Size  *models.PetSize `form:"porte" json:"porte" validate:"omitempty,oneof=pequeno medio grande gigante"`
}

// PetListQuery narrows the listing to one owner. Admins only; for everyone
// else the listing is always their own pets.
type PetListQuery struct {
	OwnerID *uint `form:"usuarioId" json:"usuarioId"`
}
