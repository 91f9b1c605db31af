package booking

import (
	"strings"
	"testing"
	"time"

	"tutorlink/models"
)

func validDraft() models.BookingDraft {
	return models.BookingDraft{
		TutorID:       "tutor-1",
		SkillID:       "skill-1",
		LessonDate:    "2030-05-20",
		StartTime:     "14:00",
		DurationHours: 1.5,
		LessonType:    models.LessonTypeOnline,
	}
}

func testNow() time.Time {
	return time.Date(2030, 5, 1, 10, 0, 0, 0, time.Local)
}

func TestValidateDraftAcceptsValid(t *testing.T) {
	if err := ValidateDraft(validDraft(), testNow()); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}
}

func TestValidateDraftRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.BookingDraft)
		field  string
	}{
		{"missing subject", func(d *models.BookingDraft) { d.SkillID = "" }, "skill_id"},
		{"missing date", func(d *models.BookingDraft) { d.LessonDate = "" }, "lesson_date"},
		{"missing start time", func(d *models.BookingDraft) { d.StartTime = "" }, "start_time"},
		{"missing lesson type", func(d *models.BookingDraft) { d.LessonType = "" }, "lesson_type"},
		{"missing tutor", func(d *models.BookingDraft) { d.TutorID = "" }, "tutor_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)
			err := ValidateDraft(draft, testNow())
			if err == nil {
				t.Fatal("expected rejection")
			}
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Field != tc.field {
				t.Errorf("expected failure on %q, got %q", tc.field, ve.Field)
			}
		})
	}
}

func TestValidateDraftLocationRule(t *testing.T) {
	draft := validDraft()
	draft.LessonType = models.LessonTypeInPerson
	draft.Location = ""
	if err := ValidateDraft(draft, testNow()); err == nil {
		t.Error("in-person draft without location should be rejected")
	}

	draft.Location = "Zeerust Library"
	if err := ValidateDraft(draft, testNow()); err != nil {
		t.Errorf("in-person draft with location rejected: %v", err)
	}

	online := validDraft()
	online.Location = ""
	if err := ValidateDraft(online, testNow()); err != nil {
		t.Errorf("online draft without location rejected: %v", err)
	}
}

func TestValidateDraftTemporalRules(t *testing.T) {
	past := validDraft()
	past.LessonDate = "2030-04-30"
	if err := ValidateDraft(past, testNow()); err == nil {
		t.Error("past lesson date should be rejected")
	}

	sameDay := validDraft()
	sameDay.LessonDate = "2030-05-01"
	if err := ValidateDraft(sameDay, testNow()); err != nil {
		t.Errorf("same-day lesson rejected: %v", err)
	}

	badDate := validDraft()
	badDate.LessonDate = "20-05-2030"
	if err := ValidateDraft(badDate, testNow()); err == nil {
		t.Error("malformed date should be rejected")
	}

	offSlot := validDraft()
	offSlot.StartTime = "14:30"
	if err := ValidateDraft(offSlot, testNow()); err == nil {
		t.Error("start time outside the slot set should be rejected")
	}

	badDuration := validDraft()
	badDuration.DurationHours = 2.5
	if err := ValidateDraft(badDuration, testNow()); err == nil {
		t.Error("duration outside the offered set should be rejected")
	}
}

func TestValidateDraftNotesLength(t *testing.T) {
	draft := validDraft()
	draft.Notes = strings.Repeat("x", 501)
	if err := ValidateDraft(draft, testNow()); err == nil {
		t.Error("notes over 500 characters should be rejected")
	}

	draft.Notes = strings.Repeat("x", 500)
	if err := ValidateDraft(draft, testNow()); err != nil {
		t.Errorf("notes of exactly 500 characters rejected: %v", err)
	}
}
