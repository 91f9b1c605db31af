package review

import (
	bookingRepo "tutorlink/database/repository/booking"
	reviewRepo "tutorlink/database/repository/review"
	"tutorlink/models"
)

// ReviewRequest carries the fields for a new review.
type ReviewRequest struct {
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// ReviewService owns post-lesson feedback.
type ReviewService interface {
	CreateReview(reviewerID string, req ReviewRequest) (*models.Review, error)
	ListForProfile(profileID string) (models.ReviewSummary, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository
}
