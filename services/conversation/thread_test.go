package conversation

import (
	"testing"
	"time"

	"tutorlink/models"
)

func msg(id string, at time.Time, seq int64) models.Message {
	return models.Message{ID: id, BookingID: "bk-1", Content: "hi", CreatedAt: at, Seq: seq}
}

func TestSortThreadOrdersByTimeThenSeq(t *testing.T) {
	base := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)
	thread := []models.Message{
		msg("c", base.Add(2*time.Minute), 3),
		msg("a", base, 1),
		msg("b", base.Add(time.Minute), 2),
	}

	SortThread(thread)

	for i, want := range []string{"a", "b", "c"} {
		if thread[i].ID != want {
			t.Errorf("thread[%d] = %q, want %q", i, thread[i].ID, want)
		}
	}
}

func TestSortThreadTieBreaksBySeq(t *testing.T) {
	at := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)
	thread := []models.Message{
		msg("second", at, 8),
		msg("first", at, 7),
		msg("third", at, 9),
	}

	SortThread(thread)

	for i, want := range []string{"first", "second", "third"} {
		if thread[i].ID != want {
			t.Errorf("equal-timestamp ordering: thread[%d] = %q, want %q", i, thread[i].ID, want)
		}
	}
}

func TestMergeThreadDropsDuplicates(t *testing.T) {
	base := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)
	existing := []models.Message{
		msg("a", base, 1),
		msg("b", base.Add(time.Minute), 2),
	}
	incoming := []models.Message{
		msg("b", base.Add(time.Minute), 2), // already fetched
		msg("c", base.Add(2*time.Minute), 3),
	}

	merged := MergeThread(existing, incoming)

	if len(merged) != 3 {
		t.Fatalf("merged thread length = %d, want 3", len(merged))
	}
	for i, want := range []string{"a", "b", "c"} {
		if merged[i].ID != want {
			t.Errorf("merged[%d] = %q, want %q", i, merged[i].ID, want)
		}
	}
}

func TestMergeThreadOrdersLateArrivals(t *testing.T) {
	base := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)
	existing := []models.Message{
		msg("a", base, 1),
		msg("c", base.Add(2*time.Minute), 3),
	}
	// delivered late over the live feed but created in between
	incoming := []models.Message{msg("b", base.Add(time.Minute), 2)}

	merged := MergeThread(existing, incoming)

	for i, want := range []string{"a", "b", "c"} {
		if merged[i].ID != want {
			t.Errorf("merged[%d] = %q, want %q", i, merged[i].ID, want)
		}
	}
}
