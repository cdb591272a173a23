package domain

import "fmt"

type ProductCategory string

const (
	CategoryAccount    ProductCategory = "ACCOUNT"
	CategoryCredit     ProductCategory = "CREDIT"
	CategoryCreditCard ProductCategory = "CREDIT_CARD"
	CategoryDebitCard  ProductCategory = "DEBIT_CARD"
)

// ProductCategories é o conjunto fechado de categorias conhecidas. Resumos por
// categoria devem cobrir todas elas, mesmo as sem movimento.
func ProductCategories() []ProductCategory {
	return []ProductCategory{
		CategoryAccount,
		CategoryCredit,
		CategoryCreditCard,
		CategoryDebitCard,
	}
}

type ProductSubType string

const (
	SubTypeSavings            ProductSubType = "SAVINGS"
	SubTypeChecking           ProductSubType = "CHECKING"
	SubTypeFixedTerm          ProductSubType = "FIXED_TERM"
	SubTypePersonalCredit     ProductSubType = "PERSONAL_CREDIT"
	SubTypeBusinessCredit     ProductSubType = "BUSINESS_CREDIT"
	SubTypePersonalCreditCard ProductSubType = "PERSONAL_CREDIT_CARD"
	SubTypeBusinessCreditCard ProductSubType = "BUSINESS_CREDIT_CARD"
)

// UnsupportedVariantError indica um valor de enum sem entrada na tabela de
// mapeamento. Nunca assumir um valor padrão silenciosamente.
type UnsupportedVariantError struct {
	Kind  string
	Value string
}

func (e *UnsupportedVariantError) Error() string {
	return fmt.Sprintf("unsupported %s: %q", e.Kind, e.Value)
}

// SubTypeForAccount mapeia o tipo de conta para o subtipo de produto.
func SubTypeForAccount(t AccountType) (ProductSubType, error) {
	switch t {
	case AccountTypeSavings:
		return SubTypeSavings, nil
	case AccountTypeChecking:
		return SubTypeChecking, nil
	case AccountTypeFixedTerm:
		return SubTypeFixedTerm, nil
	default:
		return "", &UnsupportedVariantError{Kind: "account type", Value: string(t)}
	}
}

// SubTypeForCredit mapeia o tipo de crédito para o subtipo de produto.
func SubTypeForCredit(t CreditType) (ProductSubType, error) {
	switch t {
	case CreditTypePersonal:
		return SubTypePersonalCredit, nil
	case CreditTypeBusiness:
		return SubTypeBusinessCredit, nil
	default:
		return "", &UnsupportedVariantError{Kind: "credit type", Value: string(t)}
	}
}

// SubTypeForCreditCard mapeia o tipo de cartão de crédito para o subtipo.
func SubTypeForCreditCard(t CreditCardType) (ProductSubType, error) {
	switch t {
	case CreditCardTypePersonal:
		return SubTypePersonalCreditCard, nil
	case CreditCardTypeBusiness:
		return SubTypeBusinessCreditCard, nil
	default:
		return "", &UnsupportedVariantError{Kind: "credit card type", Value: string(t)}
	}
}
