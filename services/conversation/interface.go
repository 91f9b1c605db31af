package conversation

import (
	"context"
	"sync"

	bookingRepo "tutorlink/database/repository/booking"
	messageRepo "tutorlink/database/repository/message"
	profileRepo "tutorlink/database/repository/profile"
	"tutorlink/models"
	"tutorlink/services/notification"

	"github.com/go-redis/redis/v8"
)

// ConversationService owns booking-scoped messaging: the conversation list,
// the ordered thread, sending, and the live subscription feed.
type ConversationService interface {
	ListConversations(profileID string) ([]models.Conversation, error)
	GetThread(requesterID, bookingID string) ([]models.Message, error)
	SendMessage(senderID, bookingID, content string) (*models.Message, error)
	// Subscribe streams new messages of a booking until ctx is cancelled.
	// Only participants may subscribe.
	Subscribe(ctx context.Context, requesterID, bookingID string) (<-chan models.Message, error)
}

// DefaultConversationService is the production implementation. Live delivery
// rides on a per-booking Redis pub/sub channel.
type DefaultConversationService struct {
	Bookings bookingRepo.BookingRepository
	Messages messageRepo.MessageRepository
	Profiles profileRepo.ProfileRepository
	Notifier notification.NotificationService
	Redis    *redis.Client

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// sendLock serializes sends per booking so sequence assignment and publish
// happen in the same order.
func (s *DefaultConversationService) sendLock(bookingID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	l, ok := s.locks[bookingID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[bookingID] = l
	}
	return l
}
