package domain

import "time"

type AccountType string

const (
	AccountTypeSavings   AccountType = "SAVINGS"
	AccountTypeChecking  AccountType = "CHECKING"
	AccountTypeFixedTerm AccountType = "FIXED_TERM"
)

type Account struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customerId"`
	AccountType AccountType `json:"accountType"`
	Balance     float64     `json:"balance"`
	CreatedAt   time.Time   `json:"createdAt"`
	ModifiedAt  *time.Time  `json:"modifiedAt,omitempty"`
}
