package request

import (
	"festivo/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Credentials struct {
	Email    user.Email
	Password user.Password
}

func (r LoginRequest) ToDomain() (Credentials, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return Credentials{}, err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Email: email, Password: pw}, nil
}

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
