package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{
			name:     "Crescimento normal",
			current:  150,
			previous: 100,
			expected: 50,
		},
		{
			name:     "Queda",
			current:  80,
			previous: 100,
			expected: -20,
		},
		{
			name:     "Saiu do zero - reporta 100%",
			current:  42.5,
			previous: 0,
			expected: 100,
		},
		{
			name:     "Ambos zero - reporta 0%",
			current:  0,
			previous: 0,
			expected: 0,
		},
		{
			name:     "Caiu para zero",
			current:  0,
			previous: 200,
			expected: -100,
		},
		{
			name:     "Arredonda para duas casas",
			current:  100,
			previous: 300,
			expected: -66.67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GrowthRate(tt.current, tt.previous))
		})
	}
}

func TestConversionRate(t *testing.T) {
	tests := []struct {
		name     string
		active   int
		trialing int
		expected float64
	}{
		{
			name:     "Funil vazio reporta zero",
			active:   0,
			trialing: 0,
			expected: 0,
		},
		{
			name:     "Todos convertidos",
			active:   10,
			trialing: 0,
			expected: 100,
		},
		{
			name:     "Conversão parcial",
			active:   3,
			trialing: 1,
			expected: 75,
		},
		{
			name:     "Arredonda para duas casas",
			active:   1,
			trialing: 2,
			expected: 33.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConversionRate(tt.active, tt.trialing))
		})
	}
}

func TestPercentageShare(t *testing.T) {
	t.Run("Total zero reporta zero, nunca NaN", func(t *testing.T) {
		assert.Equal(t, float64(0), PercentageShare(50, 0))
	})

	t.Run("Participação normal", func(t *testing.T) {
		assert.Equal(t, float64(25), PercentageShare(25, 100))
	})
}

func TestBuildPlanDistribution(t *testing.T) {
	t.Run("Participações por quantidade e receita somam 100%", func(t *testing.T) {
		totals := []*PlanTotal{
			{Plan: "basic", Subscriptions: 5, Revenue: 99000},
			{Plan: "pro", Subscriptions: 3, Revenue: 299000},
			{Plan: "enterprise", Subscriptions: 2, Revenue: 999000},
		}

		items := BuildPlanDistribution(totals)
		assert.Len(t, items, 3)

		var countShare, revenueShare float64
		for _, item := range items {
			countShare += item.CountShare
			revenueShare += item.RevenueShare
		}

		assert.InDelta(t, 100, countShare, 0.05)
		assert.InDelta(t, 100, revenueShare, 0.05)
	})

	t.Run("Plataforma sem assinaturas reporta participações zeradas", func(t *testing.T) {
		items := BuildPlanDistribution([]*PlanTotal{{Plan: "basic", Subscriptions: 0, Revenue: 0}})

		assert.Len(t, items, 1)
		assert.Equal(t, float64(0), items[0].CountShare)
		assert.Equal(t, float64(0), items[0].RevenueShare)
	})
}

func TestBuildCategoryBreakdown(t *testing.T) {
	t.Run("Percentuais calculados dentro do próprio tipo", func(t *testing.T) {
		totals := []*CategoryTotal{
			{Type: TransactionIncome, Category: CategorySales, Total: 750},
			{Type: TransactionIncome, Category: CategoryOther, Total: 250},
			{Type: TransactionExpense, Category: CategoryRent, Total: 400},
		}

		items := BuildCategoryBreakdown(totals)
		assert.Len(t, items, 3)

		assert.Equal(t, float64(75), items[0].Percentage)
		assert.Equal(t, float64(25), items[1].Percentage)
		// Única categoria de saída, 100% das saídas
		assert.Equal(t, float64(100), items[2].Percentage)
	})

	t.Run("Sem lançamentos retorna lista vazia", func(t *testing.T) {
		items := BuildCategoryBreakdown(nil)
		assert.Empty(t, items)
	})
}
