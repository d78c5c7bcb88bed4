package dto

type RegisterDeviceTokenRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"plataforma" validate:"omitempty,oneof=android ios web"`
}

type UnregisterDeviceTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// SendPushRequest is the admin payload for a manual push to one user.
type SendPushRequest struct {
	UserID  uint   `json:"usuarioId" validate:"required"`
	Title   string `json:"titulo" validate:"required"`
	Message string `json:"mensagem" validate:"required"`
}
