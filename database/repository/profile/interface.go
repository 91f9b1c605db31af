package profileRepo

import (
	"tutorlink/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProfileRepository defines persistence operations for profiles.
// Lookup methods return (nil, nil) when no document matches so callers can
// distinguish not-found from infrastructure failures.
type ProfileRepository interface {
	Create(profile *models.Profile) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Profile, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	GetByEmailWithProjection(email string, projection bson.M) (*models.Profile, error)
	GetTutors() ([]models.Profile, error)
}
