// internal/receipt/format.go
package receipt

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatNumber renders an integer with id-ID thousands grouping
// ("1.234.567"). Used for plain numeric values inside reports.
func FormatNumber(n int64) string {
	return idPrinter.Sprintf("%d", n)
}

// FormatRupiah renders a whole-Rupiah amount with the "Rp " prefix used on
// receipts ("Rp 150.000"). Negative amounts keep their sign.
func FormatRupiah(n int64) string {
	return "Rp " + FormatNumber(n)
}

// FormatDateTime renders a timestamp in the short id-ID form printed on
// slips and receipts.
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// FormatDate renders a calendar date in the short id-ID form used for
// report period ranges.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
