package conversation

import (
	"strings"
	"testing"
	"time"

	"tutorlink/models"
	"tutorlink/services/booking"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func (r *fakeBookingRepo) Create(b *models.Booking) error { return nil }
func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, nil
}
func (r *fakeBookingRepo) ListByParticipant(profileID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.TutorID == profileID || b.LearnerID == profileID {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (r *fakeBookingRepo) UpdateStatus(id, from, to string) (bool, error) { return false, nil }

type fakeMessageRepo struct {
	messages []models.Message
	nextSeq  int64
}

func (r *fakeMessageRepo) Create(m *models.Message) error {
	r.nextSeq++
	m.Seq = r.nextSeq
	r.messages = append(r.messages, *m)
	return nil
}
func (r *fakeMessageRepo) ListByBooking(bookingID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range r.messages {
		if m.BookingID == bookingID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeMessageRepo) LatestByBooking(bookingID string) (*models.Message, error) {
	var latest *models.Message
	for i := range r.messages {
		if r.messages[i].BookingID == bookingID {
			latest = &r.messages[i]
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func newTestService(status string) (*DefaultConversationService, *fakeMessageRepo) {
	messages := &fakeMessageRepo{}
	svc := &DefaultConversationService{
		Bookings: &fakeBookingRepo{bookings: map[string]*models.Booking{
			"bk-1": {ID: "bk-1", TutorID: "tutor-1", LearnerID: "learner-1", Status: status, CreatedAt: time.Now()},
		}},
		Messages: messages,
	}
	return svc, messages
}

func TestSendMessageAppendsToThread(t *testing.T) {
	svc, messages := newTestService(models.BookingStatusConfirmed)

	m, err := svc.SendMessage("learner-1", "bk-1", "see you tomorrow at two")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if m.ID == "" {
		t.Error("message should get an id")
	}
	if m.Seq == 0 {
		t.Error("message should get a sequence number")
	}
	if m.SenderID != "learner-1" || m.BookingID != "bk-1" {
		t.Errorf("message addressed wrong: sender %q booking %q", m.SenderID, m.BookingID)
	}
	if len(messages.messages) != 1 {
		t.Errorf("stored messages = %d, want 1", len(messages.messages))
	}

	// Tutors can reply on the same thread.
	if _, err := svc.SendMessage("tutor-1", "bk-1", "confirmed, see you then"); err != nil {
		t.Errorf("tutor reply failed: %v", err)
	}
}

func TestSendMessageContentBounds(t *testing.T) {
	svc, messages := newTestService(models.BookingStatusConfirmed)

	if _, err := svc.SendMessage("learner-1", "bk-1", ""); err == nil {
		t.Error("empty message should be rejected")
	}
	// The bound counts runes, not bytes.
	if _, err := svc.SendMessage("learner-1", "bk-1", strings.Repeat("é", 1001)); err == nil {
		t.Error("1001-rune message should be rejected")
	}
	if len(messages.messages) != 0 {
		t.Error("no store call should be attempted for invalid content")
	}
	if _, err := svc.SendMessage("learner-1", "bk-1", strings.Repeat("é", 1000)); err != nil {
		t.Errorf("1000-rune message rejected: %v", err)
	}
}

func TestSendMessageParticipantsOnly(t *testing.T) {
	svc, _ := newTestService(models.BookingStatusPending)

	_, err := svc.SendMessage("stranger", "bk-1", "hello")
	if err == nil {
		t.Fatal("non-participant should not send into the thread")
	}
	if _, ok := err.(*booking.NotFoundError); !ok {
		t.Errorf("expected *booking.NotFoundError, got %T", err)
	}

	_, err = svc.SendMessage("learner-1", "missing", "hello")
	if _, ok := err.(*booking.NotFoundError); !ok {
		t.Errorf("unknown booking: expected *booking.NotFoundError, got %T", err)
	}
}

func TestSendMessageClosedConversations(t *testing.T) {
	for _, status := range []string{models.BookingStatusCancelled, models.BookingStatusCompleted} {
		svc, messages := newTestService(status)
		_, err := svc.SendMessage("learner-1", "bk-1", "hello?")
		if err == nil {
			t.Errorf("messaging on a %s booking should be rejected", status)
			continue
		}
		if _, ok := err.(*booking.ValidationError); !ok {
			t.Errorf("%s booking: expected *booking.ValidationError, got %T", status, err)
		}
		if len(messages.messages) != 0 {
			t.Errorf("%s booking: no message should be stored", status)
		}
	}
}

func TestSendMessageOpenStatuses(t *testing.T) {
	for _, status := range []string{models.BookingStatusPending, models.BookingStatusConfirmed} {
		svc, _ := newTestService(status)
		if _, err := svc.SendMessage("learner-1", "bk-1", "hello"); err != nil {
			t.Errorf("messaging on a %s booking failed: %v", status, err)
		}
	}
}
