package booking

import (
	"strings"
	"time"

	"tutorlink/models"
)

const maxNotesLength = 500

// ValidateDraft checks a booking submission before any store call is made.
// It is a pure function over the draft, so a failed attempt can be corrected
// and resubmitted without resetting unrelated fields.
func ValidateDraft(draft models.BookingDraft, now time.Time) error {
	if draft.TutorID == "" {
		return newValidationError("tutor_id", "tutor is required")
	}
	if draft.SkillID == "" {
		return newValidationError("skill_id", "subject is required")
	}
	if draft.LessonDate == "" {
		return newValidationError("lesson_date", "lesson date is required")
	}
	if draft.StartTime == "" {
		return newValidationError("start_time", "start time is required")
	}
	if draft.LessonType == "" {
		return newValidationError("lesson_type", "lesson type is required")
	}

	switch draft.LessonType {
	case models.LessonTypeOnline:
		// Location optional.
	case models.LessonTypeInPerson:
		if strings.TrimSpace(draft.Location) == "" {
			return newValidationError("location", "location is required for in-person lessons")
		}
	default:
		return newValidationError("lesson_type", "must be online or in-person")
	}

	date, err := time.ParseInLocation("2006-01-02", draft.LessonDate, time.Local)
	if err != nil {
		return newValidationError("lesson_date", "must be a valid YYYY-MM-DD date")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return newValidationError("lesson_date", "must not be in the past")
	}

	if !IsStartSlot(draft.StartTime) {
		return newValidationError("start_time", "must be one of the offered start slots")
	}
	if !IsAllowedDuration(draft.DurationHours) {
		return newValidationError("duration_hours", "must be one of the offered lesson lengths")
	}
	if _, err := ComputeEndTime(draft.StartTime, draft.DurationHours); err != nil {
		return newValidationError("duration_hours", err.Error())
	}

	if len(draft.Notes) > maxNotesLength {
		return newValidationError("notes", "must be at most 500 characters")
	}
	return nil
}
