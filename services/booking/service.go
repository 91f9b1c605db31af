package booking

import (
	"context"
	"fmt"
	"time"

	"tutorlink/models"
	"tutorlink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates a learner's draft, captures the tutor's current
// hourly rate for the requested subject, derives the end time and total
// amount, and persists the booking as pending.
func (s *DefaultBookingService) CreateBooking(learnerID string, draft models.BookingDraft) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := ValidateDraft(draft, time.Now()); err != nil {
		return nil, err
	}

	learner, err := s.Profiles.GetByID(learnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load learner profile: %w", err)
	}
	if learner == nil {
		return nil, &NotFoundError{Resource: "profile", ID: learnerID}
	}

	tutor, err := s.Profiles.GetByID(draft.TutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor profile: %w", err)
	}
	if tutor == nil || tutor.UserType != models.UserTypeTutor {
		return nil, &NotFoundError{Resource: "tutor", ID: draft.TutorID}
	}
	if tutor.ID == learner.ID {
		return nil, newValidationError("tutor_id", "cannot book a lesson with yourself")
	}

	// Capture the rate from the tutor's offering for this subject. The rate
	// and the derived total stay on the booking even if the offering changes.
	offerings, err := s.Skills.ListByTutor(tutor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor offerings: %w", err)
	}
	var offering *models.TutorSkill
	for i := range offerings {
		if offerings[i].SkillID == draft.SkillID {
			offering = &offerings[i]
			break
		}
	}
	if offering == nil {
		return nil, newValidationError("skill_id", "tutor does not offer this subject")
	}

	endTime, err := ComputeEndTime(draft.StartTime, draft.DurationHours)
	if err != nil {
		return nil, newValidationError("start_time", err.Error())
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		TutorID:       tutor.ID,
		LearnerID:     learner.ID,
		SkillID:       draft.SkillID,
		LessonDate:    draft.LessonDate,
		StartTime:     draft.StartTime,
		EndTime:       endTime,
		DurationHours: draft.DurationHours,
		LessonType:    draft.LessonType,
		Location:      draft.Location,
		HourlyRate:    offering.HourlyRate,
		TotalAmount:   TotalAmount(offering.HourlyRate, draft.DurationHours),
		Notes:         draft.Notes,
		Status:        models.BookingStatusPending,
	}

	if err := s.Repo.Create(b); err != nil {
		logger.Error("CreateBooking: persist failed", zap.String("learnerID", learnerID), zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.Notifier != nil {
		if err := s.Notifier.NotifyBookingRequested(context.Background(), *b, learner.FullName()); err != nil {
			logger.Warn("CreateBooking: tutor notification failed", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	utils.TrackEvent(utils.AnalyticsEvent{
		Event:  "booking_created",
		UserID: learnerID,
		Properties: map[string]any{
			"booking_id":  b.ID,
			"lesson_type": b.LessonType,
		},
	})

	logger.Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("tutorID", b.TutorID),
		zap.String("learnerID", b.LearnerID))
	return b, nil
}

// GetBooking fetches one booking, visible only to its participants.
func (s *DefaultBookingService) GetBooking(requesterID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil || (b.TutorID != requesterID && b.LearnerID != requesterID) {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	return b, nil
}

// ListBookings returns a participant's bookings bucketed into the pending,
// confirmed and past views.
func (s *DefaultBookingService) ListBookings(profileID string) (models.BookingBuckets, error) {
	bookings, err := s.Repo.ListByParticipant(profileID)
	if err != nil {
		return models.BookingBuckets{}, fmt.Errorf("failed to list bookings: %w", err)
	}
	return BucketBookings(bookings, time.Now()), nil
}

// Transition applies a status change on behalf of an actor. Legality, actor
// role and the completion time gate are checked here; the repository update
// additionally matches on the current status so a raced transition surfaces
// as a conflict instead of silently overwriting.
func (s *DefaultBookingService) Transition(actorID, bookingID, to string) (*models.Booking, error) {
	logger := utils.GetLogger()

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil || (b.TutorID != actorID && b.LearnerID != actorID) {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}

	if err := AuthorizeTransition(b, actorID, to, time.Now()); err != nil {
		return nil, err
	}

	matched, err := s.Repo.UpdateStatus(b.ID, b.Status, to)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if !matched {
		return nil, &ConflictError{BookingID: b.ID}
	}
	b.Status = to
	b.UpdatedAt = time.Now()

	// The other participant learns about the change; the actor already knows.
	recipientID := b.TutorID
	if actorID == b.TutorID {
		recipientID = b.LearnerID
	}
	if s.Notifier != nil {
		if err := s.Notifier.NotifyBookingStatus(context.Background(), *b, recipientID); err != nil {
			logger.Warn("Transition: notification failed", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	if to == models.BookingStatusConfirmed && s.Reminders != nil {
		if err := s.Reminders.ScheduleLessonReminder(*b); err != nil {
			logger.Warn("Transition: reminder scheduling failed", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	utils.TrackEvent(utils.AnalyticsEvent{
		Event:  "booking_" + to,
		UserID: actorID,
		Properties: map[string]any{
			"booking_id": b.ID,
		},
	})

	logger.Info("booking status updated",
		zap.String("bookingID", b.ID),
		zap.String("status", to),
		zap.String("actorID", actorID))
	return b, nil
}
