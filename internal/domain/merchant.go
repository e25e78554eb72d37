// internal/domain/merchant.go
package domain

// Merchant represents a counterparty appearing in ledger entries.
// Location fields are nullable; they are populated by an out-of-band
// enrichment flow, not by this service.
type Merchant struct {
	MerchantID string   `db:"merchant_id" json:"merchantId"`
	Name       string   `db:"name" json:"name"`
	Latitude   *float64 `db:"latitude" json:"latitude"`
	Longitude  *float64 `db:"longitude" json:"longitude"`
	Address    *string  `db:"address" json:"address"`
}
