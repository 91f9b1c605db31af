package skill

import (
	"fmt"
	"strings"

	"tutorlink/models"
	"tutorlink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minHourlyRate        = 1
	maxHourlyRate        = 10000
	maxDescriptionLength = 200
)

// ValidationError reports a rejected offering field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NotFoundError reports an offering the tutor does not have.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("offering %s not found", e.ID)
}

// ListCatalog returns the global subject catalog.
func (s *DefaultSkillService) ListCatalog() ([]models.Skill, error) {
	skills, err := s.Repo.ListSkills()
	if err != nil {
		return nil, fmt.Errorf("failed to load skill catalog: %w", err)
	}
	return skills, nil
}

// ListOfferings returns a tutor's skill offerings.
func (s *DefaultSkillService) ListOfferings(tutorID string) ([]models.TutorSkill, error) {
	offerings, err := s.Repo.ListByTutor(tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offerings: %w", err)
	}
	return offerings, nil
}

// AddOffering binds a catalog subject to a tutor at a declared hourly rate.
// A subject the tutor already offers is rejected.
func (s *DefaultSkillService) AddOffering(tutorID string, req OfferingRequest) (*models.TutorSkill, error) {
	if strings.TrimSpace(req.SkillID) == "" {
		return nil, &ValidationError{Field: "skill_id", Message: "subject is required"}
	}
	if req.HourlyRate < minHourlyRate || req.HourlyRate > maxHourlyRate {
		return nil, &ValidationError{Field: "hourly_rate", Message: fmt.Sprintf("hourly rate must be between %d and %d", minHourlyRate, maxHourlyRate)}
	}
	if len(req.Description) > maxDescriptionLength {
		return nil, &ValidationError{Field: "description", Message: fmt.Sprintf("description cannot exceed %d characters", maxDescriptionLength)}
	}

	tutor, err := s.Profiles.GetByID(tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor profile: %w", err)
	}
	if tutor == nil || tutor.UserType != models.UserTypeTutor {
		return nil, &ValidationError{Field: "tutor_id", Message: "only tutors can offer subjects"}
	}

	catalogEntry, err := s.Repo.GetSkillByID(req.SkillID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up subject: %w", err)
	}
	if catalogEntry == nil {
		return nil, &ValidationError{Field: "skill_id", Message: "subject is not in the catalog"}
	}

	existing, err := s.Repo.ListByTutor(tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing offerings: %w", err)
	}
	for _, o := range existing {
		if o.SkillID == req.SkillID {
			return nil, &ValidationError{Field: "skill_id", Message: "subject is already offered"}
		}
	}

	ts := &models.TutorSkill{
		ID:          uuid.New().String(),
		TutorID:     tutorID,
		SkillID:     req.SkillID,
		HourlyRate:  req.HourlyRate,
		Description: strings.TrimSpace(req.Description),
	}
	// The unique (tutor_id, skill_id) index closes the race the list check
	// above leaves open.
	if err := s.Repo.CreateTutorSkill(ts); err != nil {
		return nil, err
	}

	utils.TrackEvent(utils.AnalyticsEvent{Event: "offering_added", UserID: tutorID, Properties: map[string]any{
		"skill_id": req.SkillID,
	}})
	utils.GetLogger().Info("offering added",
		zap.String("tutorID", tutorID),
		zap.String("skillID", req.SkillID))
	return ts, nil
}

// RemoveOffering deletes one of the tutor's own offerings. An offering that
// does not exist or belongs to another tutor reads as not found either way.
func (s *DefaultSkillService) RemoveOffering(tutorID, offeringID string) error {
	existing, err := s.Repo.GetTutorSkillByID(offeringID)
	if err != nil {
		return fmt.Errorf("failed to look up offering: %w", err)
	}
	if existing == nil || existing.TutorID != tutorID {
		return &NotFoundError{ID: offeringID}
	}
	if err := s.Repo.DeleteTutorSkill(offeringID, tutorID); err != nil {
		return err
	}
	utils.TrackEvent(utils.AnalyticsEvent{Event: "offering_removed", UserID: tutorID, Properties: map[string]any{
		"offering_id": offeringID,
	}})
	return nil
}
