package dto

import (
	"bengkel/internal/domains/user/model"
	"bengkel/shared"
	"bengkel/shared/constant"
	gDto "bengkel/shared/dto"
	gModel "bengkel/shared/model"
	"bengkel/shared/timezone"
)

type RegisterRequest struct {
	FullName        string `json:"fullname"         validate:"required"`
	Username        string `json:"username"         validate:"required"`
	Password        string `json:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Email           string `json:"email"            validate:"required"`
	Phone           string `json:"phone"            validate:"required"`
	Address         string `json:"address"          validate:"required"`
}

func (r *RegisterRequest) ToModel() model.User {
	return model.User{
		ID:       shared.NewTimeID(constant.UserIDPrefix),
		FullName: r.FullName,
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		Role:     constant.RoleUser,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type LoginRequest struct {
	// Identity matches either the username or the email, exactly.
	Identity string `json:"identity" validate:"required"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

type UserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Username = model.Username
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.Role = model.Role
	r.Metadata.FromModel(model.Metadata)
}
