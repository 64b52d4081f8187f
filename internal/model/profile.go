package model

import "time"

// Profile holds the public display name for an identity. The row is
// keyed by the auth provider's user id; it may be absent for users who
// never completed profile setup.
type Profile struct {
	UserID    string    `db:"id" json:"user_id"`
	Username  string    `db:"username" json:"username"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
