// Package words holds the text metrics the UI derives locally: word and
// character counts, reading-time estimates, and the word-count status line
// shown under the book editor.
package words

import (
	"fmt"
	"strings"
	"unicode"
)

// readingSpeed is the assumed reading pace in words per minute.
const readingSpeed = 200

// Count returns the number of maximal non-whitespace runs in text.
func Count(text string) int {
	return len(strings.Fields(text))
}

// Chars returns the number of non-whitespace runes in text.
func Chars(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// ReadingMinutes estimates reading time in whole minutes, rounding up.
// Any non-empty text takes at least one minute.
func ReadingMinutes(text string) int {
	words := Count(text)
	if words == 0 {
		return 0
	}
	return (words + readingSpeed - 1) / readingSpeed
}

// Status renders the word-count line for a soft target. The target is
// advisory only; exceeding it changes the message, never blocks input.
func Status(count, target int) string {
	switch {
	case count == 0:
		return "Start writing..."
	case count < target:
		return fmt.Sprintf("%d / %d", count, target)
	case count == target:
		return fmt.Sprintf("Perfect! %d words", count)
	default:
		return fmt.Sprintf("%d / %d (%d over)", count, target, count-target)
	}
}

// Ellipsis shortens text to at most max runes, appending "..." when cut.
func Ellipsis(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 0 {
		return "..."
	}
	return string(runes[:max]) + "..."
}
