package model

import "bengkel/shared/model"

const (
	EntityName = "user"
)

// User is a registered account. The password is kept as the plain credential
// the account was registered with; the store never leaves the local machine
// and hardening it is out of scope here.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullname"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role"`
	model.Metadata
}

// DisplayName is the name bookings carry for their owner.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}

	return u.Username
}
