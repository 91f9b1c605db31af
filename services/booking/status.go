package booking

import (
	"time"

	"tutorlink/models"
)

// legalTransitions is the booking status state machine. Cancelled and
// completed are terminal: nothing transitions out of them.
var legalTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted},
}

// CanTransition reports whether from -> to is a legal move, ignoring actor
// and timing constraints.
func CanTransition(from, to string) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AuthorizeTransition enforces the full transition contract server-side:
// legality of the move, the actor's relationship to the booking, and the
// lesson-elapsed gate for completion. Returns nil when the actor may apply
// the transition.
func AuthorizeTransition(b *models.Booking, actorID, to string, now time.Time) error {
	if !CanTransition(b.Status, to) {
		return &TransitionError{From: b.Status, To: to, Message: "transition not defined"}
	}

	isTutor := actorID == b.TutorID
	isLearner := actorID == b.LearnerID
	if !isTutor && !isLearner {
		return &TransitionError{From: b.Status, To: to, Message: "actor is not a participant of this booking"}
	}

	switch to {
	case models.BookingStatusConfirmed, models.BookingStatusCancelled:
		// Only the tutor decides on a pending request.
		if !isTutor {
			return &TransitionError{From: b.Status, To: to, Message: "only the tutor may respond to a booking request"}
		}
	case models.BookingStatusCompleted:
		// Either participant, but only once the scheduled lesson has ended.
		end, err := b.LessonEnd()
		if err != nil {
			return &TransitionError{From: b.Status, To: to, Message: "booking has an unreadable lesson time"}
		}
		if now.Before(end) {
			return &TransitionError{From: b.Status, To: to, Message: "lesson has not finished yet"}
		}
	}
	return nil
}

// BucketBookings splits a participant's bookings into the pending, confirmed
// and past views. Past collects completed and cancelled lessons plus anything
// whose lesson date is already behind us.
func BucketBookings(bookings []models.Booking, now time.Time) models.BookingBuckets {
	var buckets models.BookingBuckets
	today := now.Format("2006-01-02")

	for _, b := range bookings {
		switch {
		case b.Status == models.BookingStatusCompleted || b.Status == models.BookingStatusCancelled:
			buckets.Past = append(buckets.Past, b)
		case b.LessonDate < today:
			buckets.Past = append(buckets.Past, b)
		case b.Status == models.BookingStatusPending:
			buckets.Pending = append(buckets.Pending, b)
		case b.Status == models.BookingStatusConfirmed:
			buckets.Confirmed = append(buckets.Confirmed, b)
		}
	}
	return buckets
}
