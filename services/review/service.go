package review

import (
	"fmt"
	"math"
	"time"

	"tutorlink/models"
	"tutorlink/services/booking"
	"tutorlink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxCommentLength = 1000

// CreateReview records feedback for a completed lesson. Either participant
// may review the other, once per booking.
func (s *DefaultReviewService) CreateReview(reviewerID string, req ReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, &booking.ValidationError{Field: "rating", Message: "rating must be between 1 and 5"}
	}
	if len(req.Comment) > maxCommentLength {
		return nil, &booking.ValidationError{Field: "comment", Message: fmt.Sprintf("comment cannot exceed %d characters", maxCommentLength)}
	}

	b, err := s.Bookings.GetByID(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil || (b.TutorID != reviewerID && b.LearnerID != reviewerID) {
		return nil, &booking.NotFoundError{Resource: "booking", ID: req.BookingID}
	}
	if b.Status != models.BookingStatusCompleted {
		return nil, &booking.ValidationError{Field: "booking_id", Message: "only completed lessons can be reviewed"}
	}

	already, err := s.Repo.ExistsForBookingReviewer(req.BookingID, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if already {
		return nil, &booking.ValidationError{Field: "booking_id", Message: "this lesson has already been reviewed"}
	}

	revieweeID := b.TutorID
	if reviewerID == b.TutorID {
		revieweeID = b.LearnerID
	}

	r := &models.Review{
		ID:         uuid.New().String(),
		BookingID:  req.BookingID,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(r); err != nil {
		return nil, err
	}

	utils.TrackEvent(utils.AnalyticsEvent{Event: "review_created", UserID: reviewerID, Properties: map[string]any{
		"booking_id": req.BookingID,
		"rating":     req.Rating,
	}})
	utils.GetLogger().Info("review created",
		zap.String("bookingID", req.BookingID),
		zap.String("revieweeID", revieweeID))
	return r, nil
}

// ListForProfile returns a profile's reviews with their average rating,
// rounded to one decimal place.
func (s *DefaultReviewService) ListForProfile(profileID string) (models.ReviewSummary, error) {
	reviews, err := s.Repo.ListByReviewee(profileID)
	if err != nil {
		return models.ReviewSummary{}, fmt.Errorf("failed to list reviews: %w", err)
	}
	return models.ReviewSummary{
		Reviews:       reviews,
		AverageRating: AverageRating(reviews),
	}, nil
}

// AverageRating computes the mean rating, 0 when there are no reviews.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var total int
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))
	return math.Round(avg*10) / 10
}
