package rest

import "github.com/dmitrijs2005/koach/internal/server/models"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Jane Doe"`
	Email    string `json:"email" validate:"required" example:"jane@example.com"`
	Password string `json:"password" validate:"required" example:"correct horse battery staple"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"jane@example.com"`
	Password string `json:"password" validate:"required" example:"correct horse battery staple"`
}

// UpdateProfileRequest carries the new display name. It is stored as given;
// an absent name leaves the current one in place.
type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty" example:"Jane D."`
}

type MessageResponse struct {
	Message string `json:"message" example:"User not found"`
}

type RegisterResponse struct {
	Message string       `json:"message" example:"User registered successfully"`
	User    *models.User `json:"user"`
	Token   string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type LoginResponse struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type ProfileResponse struct {
	User *models.User `json:"user"`
}

type UpdateProfileResponse struct {
	Message string       `json:"message" example:"Profile updated successfully"`
	User    *models.User `json:"user"`
}
