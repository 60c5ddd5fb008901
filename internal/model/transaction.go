// internal/model/transaction.go
package model

import "time"

// ServiceLine is a single repair service on a sale. Prices are whole
// Rupiah, no fractional component. JSON keys match the legacy jsonb
// layout of the transactions table.
type ServiceLine struct {
	Name       string `json:"name"`
	ModalPrice int64  `json:"modalPrice"`
	SellPrice  int64  `json:"sellPrice"`
}

// SaleRecord is a completed sale as stored by the external ledger.
// Services keep their stored order; it is display order, not sorted.
type SaleRecord struct {
	ID           string        `json:"id"`
	CustomerName string        `json:"customer_name"`
	DeviceType   string        `json:"device_type"`
	Services     []ServiceLine `json:"services"`
	Notes        string        `json:"notes"`
	CreatedAt    time.Time     `json:"created_at"`
}

// TotalSell sums the sale price of every service line.
func (s *SaleRecord) TotalSell() int64 {
	var total int64
	for _, line := range s.Services {
		total += line.SellPrice
	}
	return total
}

// TotalModal sums the cost price of every service line.
func (s *SaleRecord) TotalModal() int64 {
	var total int64
	for _, line := range s.Services {
		total += line.ModalPrice
	}
	return total
}
