package dto

// UnreadCountResponse is the badge counter payload.
type UnreadCountResponse struct {
	Unread int64 `json:"naoLidas"`
}
