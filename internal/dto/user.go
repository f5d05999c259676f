package dto

import (
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
)

// UpdateProfileRequest is the multipart form of /alterar-perfil.
// Empty name or email keep the current value; an empty last name clears it.
// The password is only changed when provided.
type UpdateProfileRequest struct {
	Name     string `form:"name"`
	LastName string `form:"lastName"`
	Email    string `form:"email" binding:"omitempty,email"`
	Password string `form:"password" binding:"omitempty,min=6"`
}

// UserResponse is the public view of a user returned by /me and /alterar-perfil.
type UserResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	LastName *string        `json:"lastName"`
	Email    string         `json:"email"`
	Image    *ImageResponse `json:"image"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.UserID,
		Name:     u.Name,
		LastName: u.LastName,
		Email:    u.Email,
		Image:    ToImageResponse(u.Image),
	}
}

// ProfileResponse adds the linked Google account to UserResponse.
type ProfileResponse struct {
	UserResponse
	GoogleID *string `json:"googleId"`
}

func ToProfileResponse(u *domain.User) ProfileResponse {
	return ProfileResponse{UserResponse: ToUserResponse(u), GoogleID: u.GoogleID}
}

// ProfileImageResponse answers /carregar-imagem-perfil.
type ProfileImageResponse struct {
	Name  string         `json:"name"`
	Image *ImageResponse `json:"image"`
}
