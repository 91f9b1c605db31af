package models

import "time"

// Review is feedback left for a tutor after a completed lesson.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"booking_id" json:"booking_id"`
	ReviewerID string    `bson:"reviewer_id" json:"reviewer_id"`
	RevieweeID string    `bson:"reviewee_id" json:"reviewee_id"`
	Rating     int       `bson:"rating" json:"rating"` // 1-5
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// ReviewSummary pairs a reviewee's reviews with their average rating.
type ReviewSummary struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"average_rating"`
}
