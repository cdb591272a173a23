package domain

import "time"

type CustomerType string

const (
	CustomerTypePersonal CustomerType = "PERSONAL"
	CustomerTypeBusiness CustomerType = "BUSINESS"
)

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "ACTIVE"
	CustomerStatusInactive CustomerStatus = "INACTIVE"
)

// Customer é propriedade do serviço de clientes; aqui é somente leitura.
type Customer struct {
	ID             string         `json:"id"`
	FullName       string         `json:"fullName"`
	DocumentNumber string         `json:"documentNumber"`
	CustomerType   CustomerType   `json:"customerType"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	CreatedAt      *time.Time     `json:"createdAt,omitempty"`
	ModifiedAt     *time.Time     `json:"modifiedAt,omitempty"`
	Status         CustomerStatus `json:"status"`

	// Somente para perfis especiais
	IsVIP bool `json:"isVip"`
	IsPYM bool `json:"isPym"`
}
