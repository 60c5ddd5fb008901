// internal/receipt/report.go
package receipt

import (
	"strconv"
	"unicode/utf8"

	"github.com/arifrahmanandika/kangserpis/internal/model"
)

// ComposePeriodReport renders the period sales report: aggregate rows with
// right-aligned values, then a per-transaction detail section when the
// period holds at least one record.
func ComposePeriodReport(result *model.ReportResult, query model.ReportQuery, profile *model.StoreProfile) string {
	profile = orEmptyProfile(profile)
	b := newBuilder()

	b.text("\n")
	b.line(Center("LAPORAN PENJUALAN", PaperWidth))
	if profile.StoreName != "" {
		b.line(Center(profile.StoreName, PaperWidth))
	}
	b.rule('=')

	start, end := query.Range()
	b.line("Periode: " + FormatDate(start) + " s/d " + FormatDate(end))
	b.rule('-')

	row := func(label, value string) {
		b.line(PadRight(label, PaperWidth-utf8.RuneCountInString(value)) + value)
	}

	row("Total Modal:", FormatRupiah(result.TotalModal))
	row("Total Penjualan:", FormatRupiah(result.TotalSell))
	row("Total Laba:", FormatRupiah(result.TotalProfit))
	row("Total Transaksi:", strconv.Itoa(result.TotalTransactions))
	b.rule('-')

	if len(result.Transactions) > 0 {
		b.line(Center("Detail Transaksi", PaperWidth))
		b.rule('-')
		for _, sale := range result.Transactions {
			row(truncate(sale.CustomerName, 24), FormatRupiah(sale.TotalSell()))
		}
	}

	b.rule('=')
	b.text("\n\n")

	return b.String()
}
