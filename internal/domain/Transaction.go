package domain

import "time"

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypePayment    TransactionType = "PAYMENT"
	TransactionTypeCharge     TransactionType = "CHARGE"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
)

type Transaction struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	ProductID       string          `json:"productId"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          float64         `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	ProductCategory ProductCategory `json:"productCategory"`
	ProductSubType  ProductSubType  `json:"productSubType,omitempty"`

	// Comissão cobrada na transação, quando houver.
	Commissions *float64 `json:"commissions,omitempty"`
}
