package booking

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// StartSlots is the fixed set of bookable lesson start times.
var StartSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

// AllowedDurations are the lesson lengths offered, in hours.
var AllowedDurations = []float64{0.5, 1, 1.5, 2, 3}

const minutesPerDay = 24 * 60

// parseClock converts an "HH:MM" string to minutes from midnight.
func parseClock(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in time %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in time %q", value)
	}
	return hours*60 + minutes, nil
}

// formatClock converts minutes from midnight back to "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IsStartSlot reports whether the value is one of the bookable start times.
func IsStartSlot(startTime string) bool {
	for _, s := range StartSlots {
		if s == startTime {
			return true
		}
	}
	return false
}

// IsAllowedDuration reports whether the value is one of the offered lesson lengths.
func IsAllowedDuration(hours float64) bool {
	for _, d := range AllowedDurations {
		if d == hours {
			return true
		}
	}
	return false
}

// ComputeEndTime derives a lesson's end time by adding the duration to the
// start time in wall-clock minutes from midnight. Lessons must finish within
// the same calendar day: a pair that would cross midnight is rejected rather
// than rolled over.
func ComputeEndTime(startTime string, durationHours float64) (string, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return "", err
	}

	end := start + int(durationHours*60)
	if end >= minutesPerDay {
		return "", fmt.Errorf("lesson starting at %s with duration %.1fh would run into the next day", startTime, durationHours)
	}
	return formatClock(end), nil
}

// TotalAmount captures the booking price: hourly rate times duration, rounded
// to cents. Never recomputed after creation.
func TotalAmount(hourlyRate, durationHours float64) float64 {
	return math.Round(hourlyRate*durationHours*100) / 100
}
