package models

import "time"

// Booking statuses. A booking starts pending and moves through the status
// state machine; cancelled and completed are terminal.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Lesson types.
const (
	LessonTypeOnline   = "online"
	LessonTypeInPerson = "in-person"
)

// Booking represents a scheduled lesson between a learner and a tutor.
// HourlyRate and TotalAmount are captured at creation and never recomputed,
// even if the tutor's offering rate changes later.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	TutorID       string    `bson:"tutor_id" json:"tutor_id"`
	LearnerID     string    `bson:"learner_id" json:"learner_id"`
	SkillID       string    `bson:"skill_id" json:"skill_id"`
	LessonDate    string    `bson:"lesson_date" json:"lesson_date"` // "YYYY-MM-DD"
	StartTime     string    `bson:"start_time" json:"start_time"`   // "HH:MM"
	EndTime       string    `bson:"end_time" json:"end_time"`       // "HH:MM", derived once at creation
	DurationHours float64   `bson:"duration_hours" json:"duration_hours"`
	LessonType    string    `bson:"lesson_type" json:"lesson_type"` // "online" or "in-person"
	Location      string    `bson:"location,omitempty" json:"location,omitempty"`
	HourlyRate    float64   `bson:"hourly_rate" json:"hourly_rate"`
	TotalAmount   float64   `bson:"total_amount" json:"total_amount"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// LessonEnd resolves the booking's scheduled end moment in local wall-clock
// time. Used to gate the completed transition.
func (b *Booking) LessonEnd() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.LessonDate+" "+b.EndTime, time.Local)
}

// BookingDraft is a learner's booking submission before validation.
type BookingDraft struct {
	TutorID       string  `json:"tutor_id"`
	SkillID       string  `json:"skill_id"`
	LessonDate    string  `json:"lesson_date"`
	StartTime     string  `json:"start_time"`
	DurationHours float64 `json:"duration_hours"`
	LessonType    string  `json:"lesson_type"`
	Location      string  `json:"location"`
	Notes         string  `json:"notes"`
}

// BookingBuckets groups a participant's bookings into the three views the
// client renders: pending, confirmed, past.
type BookingBuckets struct {
	Pending   []Booking `json:"pending"`
	Confirmed []Booking `json:"confirmed"`
	Past      []Booking `json:"past"`
}
