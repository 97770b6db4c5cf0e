package auth

import "musicschool/internal/domain/user"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	User        user.UserPublic `json:"user"`
}
