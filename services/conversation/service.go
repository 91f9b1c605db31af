package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"tutorlink/models"
	"tutorlink/services/booking"
	"tutorlink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxMessageLength = 1000

func channelFor(bookingID string) string {
	return "conversation:" + bookingID
}

// loadParticipantBooking fetches a booking and verifies the requester is one
// of its participants. Non-participants get a not-found, never a hint that the
// booking exists.
func (s *DefaultConversationService) loadParticipantBooking(requesterID, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil || (b.TutorID != requesterID && b.LearnerID != requesterID) {
		return nil, &booking.NotFoundError{Resource: "booking", ID: bookingID}
	}
	return b, nil
}

// ListConversations returns one conversation per booking the profile
// participates in, most recently active first.
func (s *DefaultConversationService) ListConversations(profileID string) ([]models.Conversation, error) {
	bookings, err := s.Bookings.ListByParticipant(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	conversations := make([]models.Conversation, 0, len(bookings))
	for _, b := range bookings {
		latest, err := s.Messages.LatestByBooking(b.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load latest message for booking %s: %w", b.ID, err)
		}
		conversations = append(conversations, models.Conversation{Booking: b, LatestMessage: latest})
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return lastActivity(conversations[i]).After(lastActivity(conversations[j]))
	})
	return conversations, nil
}

func lastActivity(c models.Conversation) time.Time {
	if c.LatestMessage != nil {
		return c.LatestMessage.CreatedAt
	}
	return c.Booking.CreatedAt
}

// GetThread returns the full ordered message history of a booking.
func (s *DefaultConversationService) GetThread(requesterID, bookingID string) ([]models.Message, error) {
	if _, err := s.loadParticipantBooking(requesterID, bookingID); err != nil {
		return nil, err
	}
	messages, err := s.Messages.ListByBooking(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	SortThread(messages)
	return messages, nil
}

// SendMessage appends a message to a booking's thread and fans it out to live
// subscribers and the other participant's device.
func (s *DefaultConversationService) SendMessage(senderID, bookingID, content string) (*models.Message, error) {
	logger := utils.GetLogger()

	length := utf8.RuneCountInString(content)
	if length == 0 {
		return nil, &booking.ValidationError{Field: "content", Message: "message cannot be empty"}
	}
	if length > maxMessageLength {
		return nil, &booking.ValidationError{Field: "content", Message: fmt.Sprintf("message cannot exceed %d characters", maxMessageLength)}
	}

	b, err := s.loadParticipantBooking(senderID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
		return nil, &booking.ValidationError{Field: "booking_id", Message: "conversation is closed for " + b.Status + " bookings"}
	}

	lock := s.sendLock(bookingID)
	lock.Lock()
	defer lock.Unlock()

	m := &models.Message{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		SenderID:  senderID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.Messages.Create(m); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if s.Redis != nil {
		payload, err := json.Marshal(m)
		if err == nil {
			err = s.Redis.Publish(context.Background(), channelFor(bookingID), payload).Err()
		}
		if err != nil {
			logger.Warn("SendMessage: publish failed", zap.String("bookingID", bookingID), zap.Error(err))
		}
	}

	if s.Notifier != nil {
		recipientID := b.TutorID
		if senderID == b.TutorID {
			recipientID = b.LearnerID
		}
		senderName := senderID
		if sender, err := s.Profiles.GetByID(senderID); err == nil && sender != nil {
			senderName = sender.FullName()
		}
		if err := s.Notifier.NotifyNewMessage(context.Background(), *m, recipientID, senderName); err != nil {
			logger.Warn("SendMessage: notification failed", zap.String("bookingID", bookingID), zap.Error(err))
		}
	}

	utils.TrackEvent(utils.AnalyticsEvent{
		Event:  "message_sent",
		UserID: senderID,
		Properties: map[string]any{
			"booking_id": bookingID,
		},
	})
	return m, nil
}

// Subscribe opens a live feed of a booking's messages. Messages already seen
// on this feed are dropped, so a reconnecting consumer can merge the stream
// with a fresh GetThread fetch without duplicates.
func (s *DefaultConversationService) Subscribe(ctx context.Context, requesterID, bookingID string) (<-chan models.Message, error) {
	logger := utils.GetLogger()

	if _, err := s.loadParticipantBooking(requesterID, bookingID); err != nil {
		return nil, err
	}

	sub := s.Redis.Subscribe(ctx, channelFor(bookingID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to conversation: %w", err)
	}

	out := make(chan models.Message, 16)
	go func() {
		defer close(out)
		defer sub.Close()
		seen := make(map[string]bool)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var m models.Message
				if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
					logger.Warn("Subscribe: bad payload", zap.String("bookingID", bookingID), zap.Error(err))
					continue
				}
				if seen[m.ID] {
					continue
				}
				seen[m.ID] = true
				select {
				case out <- m:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
