package dto

import "devconnector-backend/pkg/validation"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
}

var RegisterMessages = validation.Messages{
	"name":     "Your name is required",
	"email":    "Please to enter a valid email",
	"password": "Password must be at least 5 characters",
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

var LoginMessages = validation.Messages{
	"email":    "Please to enter a valid email",
	"password": "Password required",
}

type TokenResponse struct {
	Token string `json:"token"`
}
