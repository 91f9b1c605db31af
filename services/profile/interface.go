package profile

import (
	"context"
	"io"

	profileRepo "tutorlink/database/repository/profile"
	"tutorlink/models"
)

// RegistrationRequest carries the fields needed to create an account.
type RegistrationRequest struct {
	UserType  string `json:"user_type"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	UserType  string `json:"user_type"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ProfileService owns accounts: registration, sign-in, the editable profile
// and avatar uploads.
type ProfileService interface {
	Register(req RegistrationRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeToken(profileID string) error
	GetProfile(profileID string) (*models.Profile, error)
	UpdateProfile(profileID string, req models.ProfileUpdateRequest) (*models.Profile, error)
	UploadAvatar(ctx context.Context, profileID string, file io.Reader) (string, error)
	DeleteProfile(profileID string) error
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo profileRepo.ProfileRepository
}
