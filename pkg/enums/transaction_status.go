package enums

import "fmt"

// TransactionStatus is the terminal state of a recorded settlement.
// Rejected requests are never persisted, so success is the only state.
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "success"
)

var validTransactionStatuses = []TransactionStatus{
	TransactionStatusSuccess,
}

// String implements fmt.Stringer.
func (t TransactionStatus) String() string {
	return string(t)
}

// IsValid reports whether the status is recognized.
func (t TransactionStatus) IsValid() bool {
	for _, candidate := range validTransactionStatuses {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTransactionStatus converts a raw string into a TransactionStatus.
func ParseTransactionStatus(value string) (TransactionStatus, error) {
	for _, candidate := range validTransactionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transaction status %q", value)
}
