package dto

// UpdateUserRequest updates profile fields. Nil pointers leave the stored
// value untouched.
type UpdateUserRequest struct {
	Name     *string `json:"nome" validate:"omitempty,min=1"`
	Phone    *string `json:"telefone"`
	Address  *string `json:"endereco"`
	Password *string `json:"senha" validate:"omitempty,min=6"`
}
