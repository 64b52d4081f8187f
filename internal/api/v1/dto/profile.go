package dto

import "time"

// ProfileUpsertDTO is used for incoming profile create/update requests
type ProfileUpsertDTO struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
}

// ProfileResponseDTO is returned in API responses for profiles
type ProfileResponseDTO struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
