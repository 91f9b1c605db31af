package skillRepo

import "tutorlink/models"

// SkillRepository defines persistence operations for the global skill catalog
// and per-tutor skill offerings.
type SkillRepository interface {
	// Catalog.
	ListSkills() ([]models.Skill, error)
	GetSkillByID(id string) (*models.Skill, error)

	// Tutor offerings. A (tutor_id, skill_id) pair is unique.
	CreateTutorSkill(ts *models.TutorSkill) error
	DeleteTutorSkill(id, tutorID string) error
	GetTutorSkillByID(id string) (*models.TutorSkill, error)
	ListByTutor(tutorID string) ([]models.TutorSkill, error)
	ListByTutorIDs(tutorIDs []string) ([]models.TutorSkill, error)
}
