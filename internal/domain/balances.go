package domain

import "time"

// ProductBalance é a visão normalizada de qualquer variante de produto.
// É montada a cada consulta e nunca persistida.
type ProductBalance struct {
	ProductID        string          `json:"productId"`
	Type             ProductCategory `json:"type"`
	SubType          ProductSubType  `json:"subType,omitempty"`
	AvailableBalance float64         `json:"availableBalance"`
	CreatedAt        time.Time       `json:"createdAt"`
}

type CustomerBalances struct {
	CustomerID string           `json:"customerId"`
	Products   []ProductBalance `json:"products"`
}

type ProductMovement struct {
	TransactionID   string          `json:"transactionId"`
	Date            time.Time       `json:"date"`
	Amount          float64         `json:"amount"`
	Type            TransactionType `json:"type"`
	ProductCategory ProductCategory `json:"productCategory"`
	ProductSubType  ProductSubType  `json:"productSubType,omitempty"`
}
