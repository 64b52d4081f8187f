package model

import "time"

// Course represents a user-owned catalog entry. Optional fields are
// pointers so that absent and empty values stay distinguishable all the
// way down to the database.
type Course struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	Title           string    `db:"title" json:"title"`
	Description     *string   `db:"description" json:"description,omitempty"`
	DurationMinutes *int      `db:"duration_minutes" json:"duration_minutes,omitempty"`
	Language        *string   `db:"language" json:"language,omitempty"`
	Level           *string   `db:"level" json:"level,omitempty"`
	Category        *string   `db:"category" json:"category,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
