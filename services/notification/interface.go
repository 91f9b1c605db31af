package notification

import (
	"context"
	"fmt"
	"unicode/utf8"

	profileRepo "tutorlink/database/repository/profile"
	"tutorlink/models"
	"tutorlink/utils"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/bson"
)

// NotificationService defines methods for sending FCM pushes to participants.
type NotificationService interface {
	SendPush(ctx context.Context, profileID, title, body string, data map[string]string) error
	NotifyBookingRequested(ctx context.Context, b models.Booking, learnerName string) error
	NotifyBookingStatus(ctx context.Context, b models.Booking, recipientID string) error
	NotifyNewMessage(ctx context.Context, m models.Message, recipientID, senderName string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Profiles profileRepo.ProfileRepository
}

// SendPush looks up a profile's FCM token and sends a push. A profile with no
// registered token is not an error worth surfacing to the caller's flow.
func (s *DefaultNotificationService) SendPush(ctx context.Context, profileID, title, body string, data map[string]string) error {
	p, err := s.Profiles.GetByIDWithProjection(profileID, bson.M{"id": 1, "fcm_token": 1})
	if err != nil {
		return fmt.Errorf("SendPush: could not find profile %s: %w", profileID, err)
	}
	if p == nil || p.FCMToken == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: p.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPush: failed to send FCM message: %w", err)
	}
	return nil
}

// NotifyBookingRequested informs the tutor of a new pending booking.
func (s *DefaultNotificationService) NotifyBookingRequested(ctx context.Context, b models.Booking, learnerName string) error {
	body := fmt.Sprintf("%s requested a lesson on %s at %s", learnerName, b.LessonDate, b.StartTime)
	return s.SendPush(ctx, b.TutorID, "New booking request", body, map[string]string{
		"booking_id": b.ID,
		"type":       "booking_requested",
	})
}

// NotifyBookingStatus informs the other participant of a status change.
func (s *DefaultNotificationService) NotifyBookingStatus(ctx context.Context, b models.Booking, recipientID string) error {
	body := fmt.Sprintf("Your lesson on %s at %s is now %s", b.LessonDate, b.StartTime, b.Status)
	return s.SendPush(ctx, recipientID, "Booking "+b.Status, body, map[string]string{
		"booking_id": b.ID,
		"type":       "booking_status",
		"status":     b.Status,
	})
}

const previewRuneLimit = 120

// truncateRunes shortens s to at most n runes, never splitting a multi-byte
// character.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// NotifyNewMessage informs the other participant of a new chat message.
func (s *DefaultNotificationService) NotifyNewMessage(ctx context.Context, m models.Message, recipientID, senderName string) error {
	body := truncateRunes(m.Content, previewRuneLimit)
	return s.SendPush(ctx, recipientID, "Message from "+senderName, body, map[string]string{
		"booking_id": m.BookingID,
		"type":       "new_message",
	})
}
