package domain

import "time"

// Store é a unidade de isolamento de dados da plataforma: uma loja e seu
// dono. Toda linha financeira carrega exatamente um StoreID.
type Store struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OwnerUserID int       `json:"owner_user_id"`
	Active      bool      `json:"active"`
	Verified    bool      `json:"verified"`
	Suspended   bool      `json:"suspended"`
	// Contadores denormalizados, recalculados pelo agendador a partir dos
	// pedidos pagos. Nunca incrementados de forma parcial.
	TotalRevenue float64   `json:"total_revenue"`
	TotalSales   int       `json:"total_sales"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type StoreFilters struct {
	Active    *bool
	Suspended *bool
	Verified  *bool
	Search    string
}

type StorePage struct {
	Items []*Store `json:"items"`
	Total int      `json:"total"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
}

// StoreCounters é o resultado da recomputação dos contadores de uma loja
type StoreCounters struct {
	StoreID      string
	TotalRevenue float64
	TotalSales   int
}
