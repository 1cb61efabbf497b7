package model

import "time"

// Session is the zero-or-one record of who is currently logged in. Only the
// user id is stored; the user directory remains the source of truth for the
// profile itself.
type Session struct {
	UserID     string    `json:"user_id"`
	Role       string    `json:"role"`
	LoggedInAt time.Time `json:"logged_in_at"`
}
