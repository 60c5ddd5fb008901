// internal/model/profile.go
package model

// StoreProfile holds the store identity printed on receipt headers and
// footers. Every field is optional; empty fields are omitted from the
// rendered document rather than replaced with placeholders.
type StoreProfile struct {
	StoreName    string `json:"store_name"`
	StoreAddress string `json:"store_address"`
	StorePhone   string `json:"store_phone"`
	HeaderNote   string `json:"header_note"`
	FooterNote   string `json:"footer_note"` // may contain embedded line breaks
}

// IsEmpty reports whether no profile field is set.
func (p *StoreProfile) IsEmpty() bool {
	return p.StoreName == "" && p.StoreAddress == "" && p.StorePhone == "" &&
		p.HeaderNote == "" && p.FooterNote == ""
}
