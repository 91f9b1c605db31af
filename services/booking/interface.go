package booking

import (
	bookingRepo "tutorlink/database/repository/booking"
	profileRepo "tutorlink/database/repository/profile"
	skillRepo "tutorlink/database/repository/skill"
	"tutorlink/models"
	"tutorlink/services/notification"
)

// BookingService owns the booking lifecycle: creation from a validated draft
// with rate capture, the status state machine, and the derived list views.
type BookingService interface {
	CreateBooking(learnerID string, draft models.BookingDraft) (*models.Booking, error)
	GetBooking(requesterID, bookingID string) (*models.Booking, error)
	ListBookings(profileID string) (models.BookingBuckets, error)
	Transition(actorID, bookingID, to string) (*models.Booking, error)
}

// ReminderScheduler enqueues a lesson reminder once a booking is confirmed.
type ReminderScheduler interface {
	ScheduleLessonReminder(b models.Booking) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Profiles  profileRepo.ProfileRepository
	Skills    skillRepo.SkillRepository
	Notifier  notification.NotificationService
	Reminders ReminderScheduler
}
