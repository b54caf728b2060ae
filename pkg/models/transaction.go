package models

import (
	"time"

	"github.com/rechargehub/rechargehub-backend/pkg/enums"
)

// Transaction is an immutable record of one accepted settlement. It is
// created exactly once, owned by the ledger, and never mutated.
type Transaction struct {
	ID          string                  `json:"transaction_id"`
	ServiceType enums.ServiceType       `json:"service_type"`
	Account     string                  `json:"account_number"`
	Operator    string                  `json:"operator"`
	Descriptor  string                  `json:"plan"`
	Amount      int64                   `json:"amount"`
	Status      enums.TransactionStatus `json:"status"`
	CreatedAt   time.Time               `json:"created_at"`
}
