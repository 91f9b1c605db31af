package models

import "time"

// Message is a single chat message scoped to one booking's conversation.
// Messages are append-only; they are never edited or deleted.
type Message struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"booking_id" json:"booking_id"`
	SenderID  string    `bson:"sender_id" json:"sender_id"`
	Content   string    `bson:"content" json:"content"` // 1-1000 characters
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Seq       int64     `bson:"seq" json:"seq"` // insertion order, tie-break for equal timestamps
}

// Conversation summarizes a booking's message thread for the conversation list.
type Conversation struct {
	Booking       Booking  `json:"booking"`
	LatestMessage *Message `json:"latest_message,omitempty"`
}
