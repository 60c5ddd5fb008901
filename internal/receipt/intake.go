// internal/receipt/intake.go
package receipt

import "github.com/arifrahmanandika/kangserpis/internal/model"

// ComposeIntakeSlip renders the walk-in intake slip. The slip number line
// is emphasized; the PIN and damage description lines appear only when
// their fields are set.
func ComposeIntakeSlip(slip *model.IntakeSlip, profile *model.StoreProfile) string {
	profile = orEmptyProfile(profile)
	b := newBuilder()

	writeHeader(b, profile)
	b.rule('=')
	b.line(Center("TANDA TERIMA", PaperWidth))
	b.rule('=')

	b.control(b.codec.Emphasize())
	b.labeled("No Slip", slip.SlipNumber)
	b.control(b.codec.Normalize())

	b.rule('-')
	b.labeled("Tanggal", FormatDateTime(slip.IssuedAt))
	b.labeled("Nama", slip.CustomerName)
	b.labeled("No. HP", slip.PhoneNumber)
	b.labeled("Tipe HP", slip.DeviceType)
	if slip.DevicePin != "" {
		b.labeled("PIN/Pass", slip.DevicePin)
	}
	if slip.Description != "" {
		b.labeled("Kerusakan", slip.Description)
	}
	b.rule('=')

	writeFooter(b, profile)
	b.text("\n\n\n")

	return b.String()
}
