package domain

import "time"

// ReportFilters delimita o intervalo (inclusivo) de um relatório
type ReportFilters struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// CategoryTotal é o agregado bruto de uma categoria vindo do repositório
type CategoryTotal struct {
	Type     TransactionType
	Category TransactionCategory
	Total    float64
}

// CategoryBreakdownItem é a participação de uma categoria dentro do total do
// seu próprio tipo: categorias de entrada somam 100% das entradas e
// categorias de saída somam 100% das saídas.
type CategoryBreakdownItem struct {
	Category   TransactionCategory `json:"category"`
	Type       TransactionType     `json:"type"`
	Total      float64             `json:"total"`
	Percentage float64             `json:"percentage"`
}

// FinanceSummary é o resumo financeiro de uma loja em um intervalo
type FinanceSummary struct {
	Income    float64                  `json:"income"`
	Expense   float64                  `json:"expense"`
	Net       float64                  `json:"net"`
	Breakdown []*CategoryBreakdownItem `json:"breakdown"`
	Filters   *ReportFilters           `json:"filters"`
}

// BuildCategoryBreakdown calcula a participação percentual de cada categoria
// sobre o total do seu tipo. Tipos com total zero reportam 0% em todas as
// categorias, nunca NaN.
func BuildCategoryBreakdown(totals []*CategoryTotal) []*CategoryBreakdownItem {
	typeTotals := make(map[TransactionType]float64)
	for _, t := range totals {
		typeTotals[t.Type] += t.Total
	}

	items := make([]*CategoryBreakdownItem, 0, len(totals))
	for _, t := range totals {
		items = append(items, &CategoryBreakdownItem{
			Category:   t.Category,
			Type:       t.Type,
			Total:      t.Total,
			Percentage: PercentageShare(t.Total, typeTotals[t.Type]),
		})
	}

	return items
}

// TrendBucket é um ponto da série temporal de uma loja. As quatro séries de
// receita ficam separadas e nomeadas: lançamentos manuais de entrada e
// receita derivada de pedidos podem se sobrepor (nada impede o lojista de
// lançar no caixa um pedido que também conta em OrderRevenue), então o
// motor nunca mescla nem deduplica as fontes.
type TrendBucket struct {
	PeriodStart         time.Time `json:"period_start"`
	Label               string    `json:"label"`
	LedgerIncome        float64   `json:"ledger_income"`
	LedgerExpense       float64   `json:"ledger_expense"`
	OrderRevenue        float64   `json:"order_revenue"`
	SubscriptionRevenue float64   `json:"subscription_revenue"`
	Net                 float64   `json:"net"`
}

// RevenueTrend é a série densa de buckets de uma loja, em ordem cronológica
type RevenueTrend struct {
	PeriodType PeriodType     `json:"period_type"`
	Buckets    []*TrendBucket `json:"buckets"`
	// Growth compara o último bucket fechado com o anterior, pela política
	// de GrowthRate
	Growth float64 `json:"growth"`
}

// PlatformTrendBucket é um ponto da série de receita da plataforma:
// pedidos pagos das lojas + assinaturas ativas. Fluxos disjuntos, somados.
type PlatformTrendBucket struct {
	PeriodStart         time.Time `json:"period_start"`
	Label               string    `json:"label"`
	OrderRevenue        float64   `json:"order_revenue"`
	SubscriptionRevenue float64   `json:"subscription_revenue"`
	Total               float64   `json:"total"`
}

// PlatformDashboard é a visão administrativa agregada entre todos os
// tenants. Nenhum campo expõe linhas brutas do livro-caixa de uma loja.
type PlatformDashboard struct {
	Subscriptions  *SubscriptionStatusCount `json:"subscriptions"`
	ConversionRate float64                  `json:"conversion_rate"`
	Plans          []*PlanDistributionItem  `json:"plans"`
	TotalRevenue   float64                  `json:"total_revenue"`
	RevenueGrowth  float64                  `json:"revenue_growth"`
	RevenueTrend   []*PlatformTrendBucket   `json:"revenue_trend"`
	RecentPayments []*RecentPayment         `json:"recent_payments"`
	RecentActivity []*AdminActivity         `json:"recent_activity"`
}
