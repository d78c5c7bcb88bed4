package dto

// Product create/update arrive as multipart forms because of the image
// upload.
type CreateProductRequest struct {
	Description string `form:"descricao" json:"descricao" validate:"required"`
	Note        string `form:"observacao" json:"observacao"`
	Type        int    `form:"tipo" json:"tipo"`
}

type UpdateProductRequest struct {
	Description *string `form:"descricao" json:"descricao" validate:"omitempty,min=1"`
	Note        *string `form:"observacao" json:"observacao"`
	Type        *int    `form:"tipo" json:"tipo"`
}

// ProductListQuery filters the product listing by type.
type ProductListQuery struct {
	Type *int `form:"tipo" json:"tipo"`
}
