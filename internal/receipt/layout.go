// internal/receipt/layout.go
package receipt

import (
	"strings"
	"unicode/utf8"
)

// Paper geometry of the target thermal printer.
const (
	// PaperWidth is the number of character columns per printed line.
	PaperWidth = 48
	// LabelWidth is the label column of key:value lines.
	LabelWidth = 12
)

// PadRight pads text with spaces on the right up to width. Text already at
// or beyond the width is returned unchanged: this primitive does not
// truncate, so an over-long value overflows the paper line. Center is the
// only primitive that truncates; the asymmetry matches the deployed
// receipt layout.
func PadRight(text string, width int) string {
	length := utf8.RuneCountInString(text)
	if length >= width {
		return text
	}
	return text + strings.Repeat(" ", width-length)
}

// PadLeft pads text with spaces on the left up to width, with the same
// no-truncation behavior as PadRight.
func PadLeft(text string, width int) string {
	length := utf8.RuneCountInString(text)
	if length >= width {
		return text
	}
	return strings.Repeat(" ", width-length) + text
}

// Center centers text within width. Text at or beyond the width is cut to
// exactly the first width characters. Shorter text gets the floor of the
// remaining space on the left and the rest on the right.
func Center(text string, width int) string {
	length := utf8.RuneCountInString(text)
	if length >= width {
		return string([]rune(text)[:width])
	}
	left := (width - length) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-length-left)
}

// Rule returns char repeated width times, used as a visual separator.
func Rule(char rune, width int) string {
	return strings.Repeat(string(char), width)
}

// truncate cuts text to at most width characters.
func truncate(text string, width int) string {
	if utf8.RuneCountInString(text) <= width {
		return text
	}
	return string([]rune(text)[:width])
}
