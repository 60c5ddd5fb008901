// internal/receipt/layout_test.go
package receipt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCenterShortText(t *testing.T) {
	cases := []string{"", "A", "FIXIT", "TANDA TERIMA"}

	for _, text := range cases {
		centered := Center(text, PaperWidth)
		assert.Equal(t, PaperWidth, utf8.RuneCountInString(centered))
		assert.Equal(t, text, strings.TrimSpace(centered))
	}
}

func TestCenterDistributesFloorLeft(t *testing.T) {
	// width 10, text 5 -> 2 spaces left, 3 right
	assert.Equal(t, "  abcde   ", Center("abcde", 10))
}

func TestCenterTruncatesLongText(t *testing.T) {
	long := strings.Repeat("x", PaperWidth+10)
	assert.Equal(t, long[:PaperWidth], Center(long, PaperWidth))
}

func TestPadNeverShrinks(t *testing.T) {
	long := strings.Repeat("y", PaperWidth+5)

	assert.Equal(t, long, PadRight(long, PaperWidth))
	assert.Equal(t, long, PadLeft(long, PaperWidth))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc   ", PadRight("abc", 6))
	assert.Equal(t, "abc", PadRight("abc", 3))
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "   abc", PadLeft("abc", 6))
	assert.Equal(t, "abc", PadLeft("abc", 2))
}

func TestRule(t *testing.T) {
	assert.Equal(t, strings.Repeat("=", PaperWidth), Rule('=', PaperWidth))
	assert.Equal(t, "---", Rule('-', 3))
}
