package search

import (
	"fmt"

	"tutorlink/models"
)

// ListTutors assembles the tutor directory: every tutor profile joined with
// its skill offerings and the catalog names for them.
func (s *DefaultSearchService) ListTutors() ([]models.TutorListing, error) {
	tutors, err := s.Profiles.GetTutors()
	if err != nil {
		return nil, fmt.Errorf("failed to list tutors: %w", err)
	}
	if len(tutors) == 0 {
		return []models.TutorListing{}, nil
	}

	ids := make([]string, len(tutors))
	for i, t := range tutors {
		ids[i] = t.ID
	}
	offerings, err := s.Skills.ListByTutorIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list tutor offerings: %w", err)
	}

	catalog, err := s.Skills.ListSkills()
	if err != nil {
		return nil, fmt.Errorf("failed to load skill catalog: %w", err)
	}
	skillsByID := make(map[string]models.Skill, len(catalog))
	for _, sk := range catalog {
		skillsByID[sk.ID] = sk
	}

	byTutor := make(map[string][]models.TutorSkillListing)
	for _, o := range offerings {
		entry := models.TutorSkillListing{
			ID:          o.ID,
			SkillID:     o.SkillID,
			HourlyRate:  o.HourlyRate,
			Description: o.Description,
		}
		if sk, ok := skillsByID[o.SkillID]; ok {
			entry.Name = sk.Name
			entry.Category = sk.Category
		}
		byTutor[o.TutorID] = append(byTutor[o.TutorID], entry)
	}

	listings := make([]models.TutorListing, 0, len(tutors))
	for _, t := range tutors {
		skills := byTutor[t.ID]
		if skills == nil {
			skills = []models.TutorSkillListing{}
		}
		listings = append(listings, models.TutorListing{Profile: t, Skills: skills})
	}
	return listings, nil
}

// SearchTutors applies the conjunctive filter over the assembled directory.
func (s *DefaultSearchService) SearchTutors(filter Filter) ([]models.TutorListing, error) {
	listings, err := s.ListTutors()
	if err != nil {
		return nil, err
	}
	return FilterTutors(listings, filter), nil
}
