package domain

import "time"

// DebitCard referencia uma conta principal pelo ID; o cartão não tem saldo
// próprio, o saldo é sempre resolvido na conta referenciada.
type DebitCard struct {
	ID               string     `json:"id"`
	CustomerID       string     `json:"customerId"`
	PrimaryAccountID string     `json:"primaryAccountId"`
	CreatedAt        time.Time  `json:"createdAt"`
	ModifiedAt       *time.Time `json:"modifiedAt,omitempty"`
}
