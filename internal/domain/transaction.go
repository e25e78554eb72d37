// internal/domain/transaction.go
package domain

import "time"

// AuthorizationDecision is the outcome of a spend-authorization check.
type AuthorizationDecision string

const (
	DecisionApproved AuthorizationDecision = "approved"
	DecisionDeclined AuthorizationDecision = "declined"
)

// Transaction is an immutable ledger entry. Debits are negative and credits
// are positive by convention.
type Transaction struct {
	TransactionID string    `db:"transaction_id" json:"transactionId"`
	UserID        string    `db:"user_id" json:"userId"`
	MerchantID    string    `db:"merchant_id" json:"merchantId"`
	AmountInCents int64     `db:"amount_in_cents" json:"amountInCents"`
	Timestamp     time.Time `db:"timestamp" json:"timestamp"`
}

// OwnerBalance is one row of the ledger aggregate: the signed sum of all
// entry amounts for a single user.
type OwnerBalance struct {
	UserID       string
	TotalInCents int64
}

// MerchantSummary maps merchant name to the amount spent there, rendered
// from the merchant's perspective (user debits appear positive).
type MerchantSummary map[string]int64
