package domain

import "time"

type CreditCardType string

const (
	CreditCardTypePersonal CreditCardType = "PERSONAL_CREDIT_CARD"
	CreditCardTypeBusiness CreditCardType = "BUSINESS_CREDIT_CARD"
)

type CreditCard struct {
	ID               string         `json:"id"`
	CustomerID       string         `json:"customerId"`
	CardType         CreditCardType `json:"cardType"`
	CreditLimit      float64        `json:"creditLimit"`
	AvailableBalance float64        `json:"availableBalance"`
	CreatedAt        time.Time      `json:"createdAt"`
	ModifiedAt       *time.Time     `json:"modifiedAt,omitempty"`
	PaymentStatus    PaymentStatus  `json:"paymentStatus"`
}
