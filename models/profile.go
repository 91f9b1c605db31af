package models

import "time"

// User types stored in the profile discriminator field.
const (
	UserTypeLearner = "learner"
	UserTypeTutor   = "tutor"
)

// Profile represents a marketplace participant, either a learner or a tutor.
type Profile struct {
	ID           string    `bson:"id" json:"id"`
	UserType     string    `bson:"user_type" json:"user_type"` // "learner" or "tutor"
	FirstName    string    `bson:"first_name" json:"first_name"`
	LastName     string    `bson:"last_name" json:"last_name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	AvatarURL    string    `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName joins first and last name for display and notifications.
func (p *Profile) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// ProfileUpdateRequest carries the editable subset of a profile.
type ProfileUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatar_url"`
	FCMToken  string `json:"fcm_token"`
}

// TutorListing is a tutor profile joined with its skill offerings, as served
// to the search endpoint.
type TutorListing struct {
	Profile
	Skills []TutorSkillListing `json:"skills"`
}

// TutorSkillListing flattens a tutor skill offering with its catalog entry.
type TutorSkillListing struct {
	ID          string  `json:"id"`
	SkillID     string  `json:"skill_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	HourlyRate  float64 `json:"hourly_rate"`
	Description string  `json:"description,omitempty"`
}
