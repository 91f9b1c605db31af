package messageRepo

import "tutorlink/models"

// MessageRepository defines persistence operations for booking-scoped
// messages. Messages are append-only.
type MessageRepository interface {
	// Create inserts a message, assigning it the next per-booking sequence
	// number. The sequence is the ordering tie-break for messages created at
	// the same timestamp.
	Create(message *models.Message) error
	// ListByBooking returns all messages of a booking ordered by creation
	// time ascending, sequence ascending.
	ListByBooking(bookingID string) ([]models.Message, error)
	// LatestByBooking returns the most recent message of a booking, or
	// (nil, nil) when the thread is empty.
	LatestByBooking(bookingID string) (*models.Message, error)
}
