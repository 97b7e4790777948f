package domain

import "time"

// TransactionType indica se o lançamento é uma entrada ou uma saída.
// O sinal do valor é sempre carregado pelo tipo, nunca pelo campo Amount.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// TransactionCategory é uma enumeração fechada de categorias do livro-caixa
type TransactionCategory string

const (
	CategorySales     TransactionCategory = "SALES"
	CategoryMarketing TransactionCategory = "MARKETING"
	CategorySupplies  TransactionCategory = "SUPPLIES"
	CategorySalary    TransactionCategory = "SALARY"
	CategoryRent      TransactionCategory = "RENT"
	CategoryUtilities TransactionCategory = "UTILITIES"
	CategoryShipping  TransactionCategory = "SHIPPING"
	CategoryTaxes     TransactionCategory = "TAXES"
	CategoryOther     TransactionCategory = "OTHER"
)

var transactionCategories = map[TransactionCategory]struct{}{
	CategorySales:     {},
	CategoryMarketing: {},
	CategorySupplies:  {},
	CategorySalary:    {},
	CategoryRent:      {},
	CategoryUtilities: {},
	CategoryShipping:  {},
	CategoryTaxes:     {},
	CategoryOther:     {},
}

func (c TransactionCategory) Valid() bool {
	_, ok := transactionCategories[c]
	return ok
}

// FinancialTransaction é um lançamento do livro-caixa de uma loja.
// Todo lançamento pertence a exatamente uma loja (StoreID).
type FinancialTransaction struct {
	ID              int                 `json:"id"`
	Reference       string              `json:"reference"`
	StoreID         string              `json:"store_id"`
	Type            TransactionType     `json:"type"`
	Category        TransactionCategory `json:"category"`
	Amount          float64             `json:"amount"`
	Description     string              `json:"description"`
	ExternalRef     *string             `json:"external_ref"`
	Tags            []string            `json:"tags"`
	TransactionDate time.Time           `json:"transaction_date"`
	Recurring       bool                `json:"recurring"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type NewTransactionRequest struct {
	Type            TransactionType     `json:"type"`
	Category        TransactionCategory `json:"category"`
	Amount          float64             `json:"amount"`
	Description     string              `json:"description"`
	ExternalRef     *string             `json:"external_ref"`
	Tags            []string            `json:"tags"`
	TransactionDate *time.Time          `json:"transaction_date"`
	Recurring       bool                `json:"recurring"`
}

type UpdateTransactionRequest struct {
	Type            *TransactionType     `json:"type"`
	Category        *TransactionCategory `json:"category"`
	Amount          *float64             `json:"amount"`
	Description     *string              `json:"description"`
	ExternalRef     *string              `json:"external_ref"`
	Tags            []string             `json:"tags"`
	TransactionDate *time.Time           `json:"transaction_date"`
	Recurring       *bool                `json:"recurring"`
}

// TransactionFilters são os filtros aceitos pela listagem do livro-caixa.
// Datas são inclusivas nas duas pontas.
type TransactionFilters struct {
	Type      *TransactionType
	Category  *TransactionCategory
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
	Tags      []string
}

type Pagination struct {
	Page  int
	Limit int
}

// Normalize garante valores mínimos de paginação
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

type TransactionPage struct {
	Items []*FinancialTransaction `json:"items"`
	Total int                     `json:"total"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
}
