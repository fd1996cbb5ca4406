package response

import (
	"contacts-api/internal/data/entity"
)

// UserResponse exposes the public fields of an account; the password hash
// never leaves the usecase layer.
type UserResponse struct {
	Email        string              `json:"email"`
	Subscription entity.Subscription `json:"subscription"`
	AvatarURL    string              `json:"avatar_url"`
	Verify       bool                `json:"verify"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		Email:        user.Email,
		Subscription: user.Subscription,
		AvatarURL:    user.AvatarURL,
		Verify:       user.Verify,
	}
}
