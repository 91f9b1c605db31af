package notification

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short ascii untouched", "hello", 120, "hello"},
		{"exactly at limit", strings.Repeat("a", 120), 120, strings.Repeat("a", 120)},
		{"ascii over limit", strings.Repeat("a", 121), 120, strings.Repeat("a", 120)},
		{"multi-byte over limit", strings.Repeat("é", 121), 120, strings.Repeat("é", 120)},
		{"empty", "", 120, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateRunes(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("got %d runes, want %d", utf8.RuneCountInString(got), utf8.RuneCountInString(tt.want))
			}
			if !utf8.ValidString(got) {
				t.Error("result is not valid UTF-8")
			}
		})
	}
}

func TestTruncateRunesNeverSplitsACharacter(t *testing.T) {
	// 40 four-byte runes is 160 bytes; a byte-indexed cut at 120 would land
	// inside the 31st rune.
	in := strings.Repeat("\U0001F600", 40)
	got := truncateRunes(in, 30)
	if !utf8.ValidString(got) {
		t.Fatal("truncation produced invalid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != 30 {
		t.Errorf("got %d runes, want 30", n)
	}
}
