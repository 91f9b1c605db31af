package models

// ReminderPayload is the asynq task payload for a lesson reminder.
type ReminderPayload struct {
	BookingID  string `json:"booking_id"`
	TutorID    string `json:"tutor_id"`
	LearnerID  string `json:"learner_id"`
	LessonDate string `json:"lesson_date"`
	StartTime  string `json:"start_time"`
}
