package search

import (
	profileRepo "tutorlink/database/repository/profile"
	skillRepo "tutorlink/database/repository/skill"
	"tutorlink/models"
)

// SearchService serves the tutor directory: the full listing join and the
// filtered view.
type SearchService interface {
	ListTutors() ([]models.TutorListing, error)
	SearchTutors(filter Filter) ([]models.TutorListing, error)
}

// DefaultSearchService is the production implementation.
type DefaultSearchService struct {
	Profiles profileRepo.ProfileRepository
	Skills   skillRepo.SkillRepository
}
