package models

import "github.com/rechargehub/rechargehub-backend/pkg/enums"

// Plan is a priced offering under an operator. Amounts are whole rupees.
// The category-specific feature fields are populated per service type:
// Data/Calls for mobile, Channels/Tier for DTH, Speed/DataCap/Bundled for
// broadband.
type Plan struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Validity string `json:"validity"`
	Data     string `json:"data,omitempty"`
	Calls    string `json:"calls,omitempty"`
	Channels int    `json:"channels,omitempty"`
	Tier     string `json:"tier,omitempty"`
	Speed    string `json:"speed,omitempty"`
	DataCap  string `json:"data_cap,omitempty"`
	Bundled  string `json:"bundled,omitempty"`
}

// Operator is a provider within a service type. Plan-based categories carry
// an ordered plan list; bill-payment categories list the provider only.
type Operator struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Plans []Plan `json:"plans,omitempty"`
}

// ServiceEntry groups the operators of one service type under its display
// name. Operator keys are scoped to the service type.
type ServiceEntry struct {
	Name      string
	Operators []Operator
}

// Dataset is the immutable catalog configuration injected at startup.
type Dataset map[enums.ServiceType]ServiceEntry
