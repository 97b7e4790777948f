package domain

import "time"

// PageView é um evento bruto de visita. A ingestão é fire-and-forget:
// perder eventos é aceitável, duplicar snapshot não é.
type PageView struct {
	ID        int64     `json:"id"`
	StoreID   string    `json:"store_id"`
	VisitorID string    `json:"visitor_id"`
	Page      string    `json:"page"`
	CreatedAt time.Time `json:"created_at"`
}

// TrafficAggregate é o agregado de eventos brutos de um intervalo
type TrafficAggregate struct {
	PageViews      int
	UniqueVisitors int
}

// AnalyticsSnapshot materializa os contadores de tráfego de um bucket.
// Existe no máximo uma linha por (loja, tipo de período, início do bucket);
// a escrita é sempre um upsert recalculado a partir dos eventos brutos.
type AnalyticsSnapshot struct {
	ID             int        `json:"id"`
	StoreID        string     `json:"store_id"`
	PeriodType     PeriodType `json:"period_type"`
	PeriodStart    time.Time  `json:"period_start"`
	PageViews      int        `json:"page_views"`
	UniqueVisitors int        `json:"unique_visitors"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
