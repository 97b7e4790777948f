package domain

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionTrial     SubscriptionStatus = "TRIAL"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

type BillingCycle string

const (
	BillingMonthly BillingCycle = "MONTHLY"
	BillingYearly  BillingCycle = "YEARLY"
)

// Subscription é a assinatura de plano de uma loja na plataforma.
// Colaborador externo: apenas leitura neste serviço.
type Subscription struct {
	ID           int                `json:"id"`
	StoreID      string             `json:"store_id"`
	UserID       int                `json:"user_id"`
	Plan         string             `json:"plan"`
	Price        float64            `json:"price"`
	BillingCycle BillingCycle       `json:"billing_cycle"`
	Status       SubscriptionStatus `json:"status"`
	StartDate    time.Time          `json:"start_date"`
}

// SubscriptionStatusCount agrega a quantidade de assinaturas por status
type SubscriptionStatusCount struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Trial     int `json:"trial"`
	Expired   int `json:"expired"`
	Cancelled int `json:"cancelled"`
}

// PlanTotal é o agregado bruto de um plano vindo do repositório
type PlanTotal struct {
	Plan          string
	Subscriptions int
	Revenue       float64
}

// PlanDistributionItem é a participação de um plano na distribuição da
// plataforma, em quantidade e em receita
type PlanDistributionItem struct {
	Plan          string  `json:"plan"`
	Subscriptions int     `json:"subscriptions"`
	CountShare    float64 `json:"count_share"`
	Revenue       float64 `json:"revenue"`
	RevenueShare  float64 `json:"revenue_share"`
}

// BuildPlanDistribution calcula as participações percentuais de cada plano.
// Com total zero, todas as participações são reportadas como zero.
func BuildPlanDistribution(totals []*PlanTotal) []*PlanDistributionItem {
	var countTotal int
	var revenueTotal float64
	for _, t := range totals {
		countTotal += t.Subscriptions
		revenueTotal += t.Revenue
	}

	items := make([]*PlanDistributionItem, 0, len(totals))
	for _, t := range totals {
		items = append(items, &PlanDistributionItem{
			Plan:          t.Plan,
			Subscriptions: t.Subscriptions,
			CountShare:    PercentageShare(float64(t.Subscriptions), float64(countTotal)),
			Revenue:       t.Revenue,
			RevenueShare:  PercentageShare(t.Revenue, revenueTotal),
		})
	}

	return items
}

// RecentPayment é a projeção de uma assinatura segura para exibição
// administrativa: apenas campos já públicos para a operação, nunca o
// conteúdo do livro-caixa de uma loja.
type RecentPayment struct {
	UserName  string             `json:"user_name"`
	UserEmail string             `json:"user_email"`
	Plan      string             `json:"plan"`
	Amount    float64            `json:"amount"`
	Status    SubscriptionStatus `json:"status"`
	Date      time.Time          `json:"date"`
}
