// internal/receipt/compose_test.go
package receipt

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifrahmanandika/kangserpis/internal/model"
)

var (
	emphasizeSeq = "\x1b\x40\x1d\x21\x11"
	normalizeSeq = "\x1d\x21\x00"
)

func testIntakeSlip() *model.IntakeSlip {
	return &model.IntakeSlip{
		SlipNumber:   "0901123",
		CustomerName: "Ari",
		PhoneNumber:  "0811",
		DeviceType:   "X1",
		IssuedAt:     time.Date(2025, time.September, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestIntakeSlipWithProfileName(t *testing.T) {
	doc := ComposeIntakeSlip(testIntakeSlip(), &model.StoreProfile{StoreName: "FIXIT"})

	// Emphasized store name padded to the full paper width.
	assert.Contains(t, doc, emphasizeSeq+PadRight("FIXIT", PaperWidth)+"\n"+normalizeSeq)

	// Empty optional fields are omitted, not rendered blank.
	assert.NotContains(t, doc, "PIN/Pass")
	assert.NotContains(t, doc, "Kerusakan")

	assert.Contains(t, doc, "TANDA TERIMA")
	assert.Contains(t, doc, PadRight("No Slip", LabelWidth)+": 0901123")
	assert.Contains(t, doc, PadRight("Nama", LabelWidth)+": Ari")
	assert.Contains(t, doc, PadRight("No. HP", LabelWidth)+": 0811")
	assert.Contains(t, doc, PadRight("Tipe HP", LabelWidth)+": X1")
}

func TestIntakeSlipOptionalLines(t *testing.T) {
	slip := testIntakeSlip()
	slip.DevicePin = "1234"
	slip.Description = "LCD pecah"

	doc := ComposeIntakeSlip(slip, nil)

	assert.Contains(t, doc, PadRight("PIN/Pass", LabelWidth)+": 1234")
	assert.Contains(t, doc, PadRight("Kerusakan", LabelWidth)+": LCD pecah")
}

func TestIntakeSlipEmptyProfileRendersNoHeader(t *testing.T) {
	doc := ComposeIntakeSlip(testIntakeSlip(), &model.StoreProfile{})

	// The slip number line is the only emphasized block.
	assert.Equal(t, 1, strings.Count(doc, emphasizeSeq))
}

func TestEmphasizeIsNormalizedBeforeDocumentEnds(t *testing.T) {
	docs := map[string]string{
		"intake": ComposeIntakeSlip(testIntakeSlip(), &model.StoreProfile{StoreName: "FIXIT"}),
		"sale":   ComposeSaleReceipt(testSaleRecord(), &model.StoreProfile{StoreName: "FIXIT"}),
	}

	for name, doc := range docs {
		last := strings.LastIndex(doc, emphasizeSeq)
		require.GreaterOrEqual(t, last, 0, name)

		rest := doc[last+len(emphasizeSeq):]
		norm := strings.Index(rest, normalizeSeq)
		require.GreaterOrEqual(t, norm, 0, name)

		// Normalize lands before the trailing feed lines.
		assert.Less(t, last+len(emphasizeSeq)+norm, len(doc)-3, name)
		assert.True(t, strings.HasSuffix(doc, "\n\n\n"), name)
	}
}

func testSaleRecord() *model.SaleRecord {
	return &model.SaleRecord{
		ID:           "9c1f3b7a-4471-45a2-a6f9-1f20b2b1a001",
		CustomerName: "Jupri",
		DeviceType:   "Oppo A3s",
		Services: []model.ServiceLine{
			{Name: "LCD", ModalPrice: 100000, SellPrice: 150000},
			{Name: "Battery", ModalPrice: 50000, SellPrice: 80000},
		},
		Notes:     "Garansi 3 Bulan",
		CreatedAt: time.Date(2025, time.September, 1, 13, 45, 0, 0, time.UTC),
	}
}

func TestSaleReceiptTotals(t *testing.T) {
	sale := testSaleRecord()

	assert.Equal(t, int64(230000), sale.TotalSell())
	assert.Equal(t, int64(150000), sale.TotalModal())

	doc := ComposeSaleReceipt(sale, nil)

	assert.Contains(t, doc, "NOTA PENJUALAN")
	assert.Contains(t, doc, PadRight("No Nota", LabelWidth)+": 9c1f3b7a")
	assert.Contains(t, doc, "#  Oppo A3s")
	assert.Contains(t, doc, "TOTAL =")
	assert.Contains(t, doc, "Rp 230.000")
	assert.Contains(t, doc, "\n  Garansi 3 Bulan\n")
}

func TestSaleReceiptServiceLineGeometry(t *testing.T) {
	doc := ComposeSaleReceipt(testSaleRecord(), nil)

	var serviceLine string
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "- LCD") {
			serviceLine = line
			break
		}
	}
	require.NotEmpty(t, serviceLine)

	// Name padded into the space left of the price segment, price at the end.
	assert.True(t, strings.HasSuffix(serviceLine, "= Rp 150.000"))
	assert.LessOrEqual(t, utf8.RuneCountInString(serviceLine), PaperWidth)
}

func TestSaleReceiptTotalLineGeometry(t *testing.T) {
	doc := ComposeSaleReceipt(testSaleRecord(), nil)

	var totalLine string
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "TOTAL =") {
			totalLine = line
			break
		}
	}
	require.NotEmpty(t, totalLine)

	amount := "Rp 230.000"
	assert.True(t, strings.HasSuffix(totalLine, amount))
	assert.Equal(t, PaperWidth-6, utf8.RuneCountInString(totalLine))
}

func TestPeriodReportWithRecords(t *testing.T) {
	query := model.ReportQuery{
		StartDate: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC),
	}
	result := &model.ReportResult{
		TotalModal:        150000,
		TotalSell:         230000,
		TotalProfit:       80000,
		TotalTransactions: 1,
		Transactions:      []*model.SaleRecord{testSaleRecord()},
	}

	doc := ComposePeriodReport(result, query, &model.StoreProfile{StoreName: "FIXIT"})

	assert.Contains(t, doc, "LAPORAN PENJUALAN")
	assert.Contains(t, doc, "Periode: 01/09/2025 s/d 30/09/2025")
	assert.Contains(t, doc, "Total Laba:")
	assert.Contains(t, doc, "Rp 80.000")
	assert.Contains(t, doc, "Detail Transaksi")
	assert.Contains(t, doc, "Jupri")

	// Aggregate rows fill the paper width exactly.
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "Total Modal:") {
			assert.Equal(t, PaperWidth, utf8.RuneCountInString(line))
		}
	}
}

func TestPeriodReportEmptyRangeOmitsDetail(t *testing.T) {
	query := model.ReportQuery{
		StartDate: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
	}
	result := &model.ReportResult{}

	doc := ComposePeriodReport(result, query, nil)

	assert.NotContains(t, doc, "Detail Transaksi")
	assert.Contains(t, doc, "Rp 0")
	assert.NotContains(t, doc, emphasizeSeq)
}

func TestPeriodReportTruncatesLongCustomerNames(t *testing.T) {
	sale := testSaleRecord()
	sale.CustomerName = strings.Repeat("A", 40)

	result := &model.ReportResult{
		TotalTransactions: 1,
		Transactions:      []*model.SaleRecord{sale},
	}
	doc := ComposePeriodReport(result, model.ReportQuery{
		StartDate: sale.CreatedAt,
		EndDate:   sale.CreatedAt,
	}, nil)

	assert.Contains(t, doc, strings.Repeat("A", 24))
	assert.NotContains(t, doc, strings.Repeat("A", 25))
}
