// internal/receipt/format_test.go
package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 150.000", FormatRupiah(150000))
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	assert.Equal(t, "Rp 1.234.567", FormatRupiah(1234567))
}

func TestFormatRupiahNegativeKeepsSign(t *testing.T) {
	assert.Equal(t, "Rp -80.000", FormatRupiah(-80000))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "230.000", FormatNumber(230000))
	assert.Equal(t, "7", FormatNumber(7))
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2025, time.September, 1, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "01/09/2025 14:05", FormatDateTime(ts))
	assert.Equal(t, "01/09/2025", FormatDate(ts))
}
