package booking

import "testing"

func TestComputeEndTime(t *testing.T) {
	cases := []struct {
		start    string
		duration float64
		want     string
	}{
		{"08:00", 0.5, "08:30"},
		{"08:00", 1, "09:00"},
		{"14:00", 1.5, "15:30"},
		{"17:00", 2, "19:00"},
		{"20:00", 3, "23:00"},
		{"12:00", 0.5, "12:30"},
		{"19:00", 1.5, "20:30"},
	}

	for _, tc := range cases {
		got, err := ComputeEndTime(tc.start, tc.duration)
		if err != nil {
			t.Errorf("ComputeEndTime(%q, %v) returned error: %v", tc.start, tc.duration, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ComputeEndTime(%q, %v) = %q, want %q", tc.start, tc.duration, got, tc.want)
		}
	}
}

func TestComputeEndTimeRejectsMidnightRollover(t *testing.T) {
	cases := []struct {
		start    string
		duration float64
	}{
		{"23:00", 1.5},
		{"22:00", 3},
		{"23:30", 0.5}, // ends exactly at midnight
	}

	for _, tc := range cases {
		if _, err := ComputeEndTime(tc.start, tc.duration); err == nil {
			t.Errorf("ComputeEndTime(%q, %v) should reject a lesson crossing midnight", tc.start, tc.duration)
		}
	}
}

func TestComputeEndTimeRejectsMalformedStart(t *testing.T) {
	for _, start := range []string{"", "8", "25:00", "12:61", "ab:cd"} {
		if _, err := ComputeEndTime(start, 1); err == nil {
			t.Errorf("ComputeEndTime(%q, 1) should fail", start)
		}
	}
}

func TestTotalAmount(t *testing.T) {
	cases := []struct {
		rate     float64
		duration float64
		want     float64
	}{
		{120, 2, 240},
		{150, 0.5, 75},
		{85, 1.5, 127.5},
		{99.99, 3, 299.97},
	}

	for _, tc := range cases {
		if got := TotalAmount(tc.rate, tc.duration); got != tc.want {
			t.Errorf("TotalAmount(%v, %v) = %v, want %v", tc.rate, tc.duration, got, tc.want)
		}
	}
}

func TestStartSlotAndDurationSets(t *testing.T) {
	if !IsStartSlot("08:00") || !IsStartSlot("20:00") {
		t.Error("boundary start slots should be accepted")
	}
	if IsStartSlot("07:00") || IsStartSlot("21:00") || IsStartSlot("08:30") {
		t.Error("times outside the fixed slot set should be rejected")
	}
	if !IsAllowedDuration(0.5) || !IsAllowedDuration(3) {
		t.Error("boundary durations should be accepted")
	}
	if IsAllowedDuration(2.5) || IsAllowedDuration(4) {
		t.Error("durations outside the offered set should be rejected")
	}
}
