package bookingRepo

import "tutorlink/models"

// BookingRepository defines persistence operations for bookings.
// Bookings are never physically deleted; lifecycle changes go through
// UpdateStatus, which enforces transition legality at the persistence
// boundary by matching on the expected current status.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	// ListByParticipant returns bookings where the profile is the tutor or
	// the learner, ordered by lesson date ascending.
	ListByParticipant(profileID string) ([]models.Booking, error)
	// UpdateStatus moves a booking from one status to another. It returns
	// false when no document matched the (id, from) pair, i.e. the booking
	// does not exist, is in a different state, or a concurrent transition won.
	UpdateStatus(id, from, to string) (bool, error)
}
