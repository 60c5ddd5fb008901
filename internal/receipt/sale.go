// internal/receipt/sale.go
package receipt

import (
	"unicode/utf8"

	"github.com/arifrahmanandika/kangserpis/internal/model"
)

// ComposeSaleReceipt renders the receipt for a completed sale: one line
// per service with the price right-aligned, the notes text, and the
// grand total.
func ComposeSaleReceipt(sale *model.SaleRecord, profile *model.StoreProfile) string {
	profile = orEmptyProfile(profile)
	b := newBuilder()

	writeHeader(b, profile)
	b.rule('=')
	b.line(Center("NOTA PENJUALAN", PaperWidth))
	b.rule('=')

	b.labeled("No Nota", truncate(sale.ID, 8))
	b.labeled("Tanggal", FormatDateTime(sale.CreatedAt))
	b.labeled("Pelanggan", sale.CustomerName)
	b.rule('-')

	b.line("#  " + sale.DeviceType)
	for _, service := range sale.Services {
		price := "= " + FormatRupiah(service.SellPrice)
		name := "- " + service.Name
		// The price segment is sized first; the name is padded into what
		// remains, and the finished line is clamped to the paper width.
		text := PadRight(name, PaperWidth-utf8.RuneCountInString(price)-3) + price
		b.line(truncate(text, PaperWidth))
	}

	b.text("\n  " + sale.Notes + "\n")
	b.rule('-')

	amount := FormatRupiah(sale.TotalSell())
	b.line(PadRight("TOTAL =", PaperWidth-utf8.RuneCountInString(amount)-6) + amount)
	b.rule('=')

	writeFooter(b, profile)
	b.text("\n\n\n")

	return b.String()
}
