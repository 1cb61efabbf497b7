package dto

import (
	"bengkel/internal/domains/auth/model"
	userDto "bengkel/internal/domains/user/model/dto"
	"bengkel/shared/constant"
	"bengkel/shared/timezone"
)

// SessionResponse describes a successful login: the authenticated user plus
// the session bookkeeping around it.
type SessionResponse struct {
	User       userDto.UserResponse `json:"user"`
	LoggedInAt string               `json:"logged_in_at"`
	Remembered bool                 `json:"remembered"`
}

func (r *SessionResponse) FromModel(session model.Session, user userDto.UserResponse, remembered bool) {
	r.User = user
	r.LoggedInAt = timezone.Format(session.LoggedInAt, constant.DateFormat)
	r.Remembered = remembered
}
