package skill

import (
	profileRepo "tutorlink/database/repository/profile"
	skillRepo "tutorlink/database/repository/skill"
	"tutorlink/models"
)

// OfferingRequest carries the fields for a new tutor skill offering.
type OfferingRequest struct {
	SkillID     string  `json:"skill_id"`
	HourlyRate  float64 `json:"hourly_rate"`
	Description string  `json:"description"`
}

// SkillService owns the subject catalog and tutor skill offerings.
type SkillService interface {
	ListCatalog() ([]models.Skill, error)
	ListOfferings(tutorID string) ([]models.TutorSkill, error)
	AddOffering(tutorID string, req OfferingRequest) (*models.TutorSkill, error)
	RemoveOffering(tutorID, offeringID string) error
}

// DefaultSkillService is the production implementation.
type DefaultSkillService struct {
	Repo     skillRepo.SkillRepository
	Profiles profileRepo.ProfileRepository
}
