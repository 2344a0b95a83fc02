package dto

import "github.com/baechuer/leads-api/internal/domain"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func NewUserView(u domain.User) UserView {
	return UserView{ID: u.ID, Email: u.Email}
}

type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
