package conversation

import (
	"sort"

	"tutorlink/models"
)

// SortThread orders messages by creation time ascending, using the insertion
// sequence as the tie-break for equal timestamps.
func SortThread(messages []models.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].Seq < messages[j].Seq
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}

// MergeThread folds incoming messages into an existing thread, dropping any
// message whose ID is already present, and returns the re-sorted result. A
// live feed can deliver a message the initial fetch already contained.
func MergeThread(existing, incoming []models.Message) []models.Message {
	seen := make(map[string]bool, len(existing))
	for _, m := range existing {
		seen[m.ID] = true
	}
	merged := existing
	for _, m := range incoming {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		merged = append(merged, m)
	}
	SortThread(merged)
	return merged
}
