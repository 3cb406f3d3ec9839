package extract

import "testing"

func TestParseChapterNumber(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  float64
	}{
		{"whole number", "Chapter 42", 42},
		{"fractional number", "Chapter 3.5", 3.5},
		{"bare number", "108", 108},
		{"number with prefix and suffix", "Ch. 12 - The Fall", 12},
		{"first number wins", "Vol 2 Chapter 15", 2},
		{"empty string", "", 0},
		{"no digits", "Prologue", 0},
		{"leading zeros", "Chapter 007", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseChapterNumber(tt.label)
			if got != tt.want {
				t.Errorf("ParseChapterNumber(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}
