// ABOUTME: Chapter-number parsing shared by all site extractors
// ABOUTME: Takes the first decimal number found in a label, 0 when none

package extract

import (
	"regexp"
	"strconv"
)

var chapterNumberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseChapterNumber extracts the numeric progress marker from a
// human-readable chapter label. The first decimal number (optionally with
// a fractional part) wins: "Chapter 42" -> 42, "Chapter 3.5" -> 3.5.
// A label without digits yields 0.
func ParseChapterNumber(label string) float64 {
	match := chapterNumberPattern.FindString(label)
	if match == "" {
		return 0
	}

	num, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return num
}
