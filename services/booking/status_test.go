package booking

import (
	"testing"
	"time"

	"tutorlink/models"
)

func sampleBooking(status string) *models.Booking {
	return &models.Booking{
		ID:         "bk-1",
		TutorID:    "tutor-1",
		LearnerID:  "learner-1",
		LessonDate: "2030-05-20",
		StartTime:  "14:00",
		EndTime:    "15:30",
		Status:     status,
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusCompleted, true},
		// pending never jumps straight to completed
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusConfirmed, models.BookingStatusPending, false},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, false},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed, false},
		{models.BookingStatusCancelled, models.BookingStatusPending, false},
		{models.BookingStatusCompleted, models.BookingStatusConfirmed, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestAuthorizeTransitionTutorOnlyForPending(t *testing.T) {
	now := time.Date(2030, 5, 1, 10, 0, 0, 0, time.Local)

	b := sampleBooking(models.BookingStatusPending)
	if err := AuthorizeTransition(b, "tutor-1", models.BookingStatusConfirmed, now); err != nil {
		t.Errorf("tutor confirm rejected: %v", err)
	}
	if err := AuthorizeTransition(b, "tutor-1", models.BookingStatusCancelled, now); err != nil {
		t.Errorf("tutor decline rejected: %v", err)
	}
	if err := AuthorizeTransition(b, "learner-1", models.BookingStatusConfirmed, now); err == nil {
		t.Error("learner should not confirm a pending booking")
	}
	if err := AuthorizeTransition(b, "stranger", models.BookingStatusConfirmed, now); err == nil {
		t.Error("non-participant should never transition a booking")
	}
}

func TestAuthorizeTransitionCompletionGate(t *testing.T) {
	b := sampleBooking(models.BookingStatusConfirmed)

	before := time.Date(2030, 5, 20, 15, 0, 0, 0, time.Local)
	if err := AuthorizeTransition(b, "learner-1", models.BookingStatusCompleted, before); err == nil {
		t.Error("completion before the lesson ends should be rejected")
	}

	after := time.Date(2030, 5, 20, 16, 0, 0, 0, time.Local)
	if err := AuthorizeTransition(b, "learner-1", models.BookingStatusCompleted, after); err != nil {
		t.Errorf("learner completion after lesson end rejected: %v", err)
	}
	if err := AuthorizeTransition(b, "tutor-1", models.BookingStatusCompleted, after); err != nil {
		t.Errorf("tutor completion after lesson end rejected: %v", err)
	}
}

func TestAuthorizeTransitionTerminalStates(t *testing.T) {
	now := time.Date(2030, 6, 1, 10, 0, 0, 0, time.Local)
	for _, status := range []string{models.BookingStatusCancelled, models.BookingStatusCompleted} {
		b := sampleBooking(status)
		for _, to := range []string{models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCompleted} {
			if err := AuthorizeTransition(b, "tutor-1", to, now); err == nil {
				t.Errorf("transition %s -> %s should be rejected", status, to)
			}
		}
	}
}

func TestBucketBookings(t *testing.T) {
	now := time.Date(2030, 5, 10, 12, 0, 0, 0, time.Local)
	bookings := []models.Booking{
		{ID: "p1", Status: models.BookingStatusPending, LessonDate: "2030-05-15"},
		{ID: "c1", Status: models.BookingStatusConfirmed, LessonDate: "2030-05-12"},
		{ID: "done", Status: models.BookingStatusCompleted, LessonDate: "2030-05-01"},
		{ID: "gone", Status: models.BookingStatusCancelled, LessonDate: "2030-05-18"},
		{ID: "stale", Status: models.BookingStatusConfirmed, LessonDate: "2030-05-02"},
	}

	buckets := BucketBookings(bookings, now)

	if len(buckets.Pending) != 1 || buckets.Pending[0].ID != "p1" {
		t.Errorf("pending bucket = %v", buckets.Pending)
	}
	if len(buckets.Confirmed) != 1 || buckets.Confirmed[0].ID != "c1" {
		t.Errorf("confirmed bucket = %v", buckets.Confirmed)
	}
	if len(buckets.Past) != 3 {
		t.Errorf("past bucket should hold completed, cancelled and stale bookings, got %v", buckets.Past)
	}
}
