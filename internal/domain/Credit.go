package domain

import "time"

type CreditType string

const (
	CreditTypePersonal CreditType = "PERSONAL"
	CreditTypeBusiness CreditType = "BUSINESS"
)

type CreditStatus string

const (
	CreditStatusActive  CreditStatus = "ACTIVE"
	CreditStatusPaid    CreditStatus = "PAID"
	CreditStatusOverdue CreditStatus = "OVERDUE"
)

type PaymentStatus string

const (
	PaymentStatusUpToDate PaymentStatus = "UP_TO_DATE"
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusLate     PaymentStatus = "LATE"
)

type Credit struct {
	ID               string        `json:"id"`
	CustomerID       string        `json:"customerId"`
	CreditType       CreditType    `json:"creditType"`
	Amount           float64       `json:"amount"`
	RemainingBalance float64       `json:"remainingBalance"`
	InterestRate     float64       `json:"interestRate"`
	CreatedAt        time.Time     `json:"createdAt"`
	ModifiedAt       *time.Time    `json:"modifiedAt,omitempty"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	CreditStatus     CreditStatus  `json:"creditStatus"`
	NextPaymentDate  *time.Time    `json:"nextPaymentDate,omitempty"`
	MinimumPayment   float64       `json:"minimumPayment"`
}
