package search

import (
	"strings"

	"tutorlink/models"
)

// Price bracket filter values. Bracket bounds compare against the tutor's
// minimum offered hourly rate, both ends inclusive for the bounded brackets.
const (
	FilterAll     = "all"
	PriceUnder50  = "under-50"
	Price50To100  = "50-100"
	Price100To200 = "100-200"
	PriceOver200  = "over-200"
)

// Filter holds the tutor search inputs. Zero values and "all" mean the
// dimension is unconstrained.
type Filter struct {
	Term         string
	Subject      string
	Location     string
	PriceBracket string
}

// FilterTutors returns the listings matching every constraint of the filter.
func FilterTutors(tutors []models.TutorListing, f Filter) []models.TutorListing {
	out := make([]models.TutorListing, 0, len(tutors))
	for _, t := range tutors {
		if Matches(t, f) {
			out = append(out, t)
		}
	}
	return out
}

// Matches reports whether a single listing satisfies all filter dimensions.
func Matches(t models.TutorListing, f Filter) bool {
	return matchesTerm(t, f.Term) &&
		matchesSubject(t, f.Subject) &&
		matchesLocation(t, f.Location) &&
		matchesPrice(t, f.PriceBracket)
}

func matchesTerm(t models.TutorListing, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.FirstName), term) ||
		strings.Contains(strings.ToLower(t.LastName), term) ||
		strings.Contains(strings.ToLower(t.Bio), term) {
		return true
	}
	for _, s := range t.Skills {
		if strings.Contains(strings.ToLower(s.Name), term) {
			return true
		}
	}
	return false
}

func matchesSubject(t models.TutorListing, subject string) bool {
	if subject == "" || subject == FilterAll {
		return true
	}
	for _, s := range t.Skills {
		if s.SkillID == subject || strings.EqualFold(s.Name, subject) {
			return true
		}
	}
	return false
}

func matchesLocation(t models.TutorListing, location string) bool {
	location = strings.ToLower(strings.TrimSpace(location))
	if location == "" || location == FilterAll {
		return true
	}
	return strings.Contains(strings.ToLower(t.Location), location)
}

// matchesPrice compares the bracket against the tutor's minimum offered rate.
// A tutor with no offerings has no rate, so it never matches a bounded
// bracket.
func matchesPrice(t models.TutorListing, bracket string) bool {
	if bracket == "" || bracket == FilterAll {
		return true
	}
	min, ok := minRate(t)
	if !ok {
		return false
	}
	switch bracket {
	case PriceUnder50:
		return min < 50
	case Price50To100:
		return min >= 50 && min <= 100
	case Price100To200:
		return min >= 100 && min <= 200
	case PriceOver200:
		return min > 200
	default:
		return false
	}
}

func minRate(t models.TutorListing) (float64, bool) {
	if len(t.Skills) == 0 {
		return 0, false
	}
	min := t.Skills[0].HourlyRate
	for _, s := range t.Skills[1:] {
		if s.HourlyRate < min {
			min = s.HourlyRate
		}
	}
	return min, true
}
