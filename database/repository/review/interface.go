package reviewRepo

import "tutorlink/models"

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(review *models.Review) error
	// ListByReviewee returns reviews left for a profile, newest first.
	ListByReviewee(revieweeID string) ([]models.Review, error)
	// ExistsForBookingReviewer reports whether the reviewer already reviewed
	// the booking.
	ExistsForBookingReviewer(bookingID, reviewerID string) (bool, error)
}
