package domain

import "time"

// DailyBalance é um registro de saldo por produto, cliente e dia. Linhas são
// imutáveis depois de gravadas; o job diário só insere, nunca atualiza.
type DailyBalance struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	ProductID   string          `json:"productId"`
	ProductType ProductCategory `json:"productType"`
	SubType     ProductSubType  `json:"subType,omitempty"`
	Balance     float64         `json:"balance"`
	Date        time.Time       `json:"date"`
}

// DailyBalanceSummary é a média de saldo de um produto na janela consultada.
type DailyBalanceSummary struct {
	ProductID      string          `json:"productId"`
	ProductType    ProductCategory `json:"productType"`
	SubType        ProductSubType  `json:"subType,omitempty"`
	AverageBalance float64         `json:"averageBalance"`
}

type CategorySummary struct {
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Commissions float64 `json:"commissions"`
}
