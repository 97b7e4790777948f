package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodType_BucketStart(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name       string
		periodType PeriodType
		input      time.Time
		expected   time.Time
	}{
		{
			name:       "Diário - trunca o horário para meia-noite",
			periodType: PeriodDaily,
			input:      time.Date(2025, 3, 15, 14, 30, 45, 0, loc),
			expected:   time.Date(2025, 3, 15, 0, 0, 0, 0, loc),
		},
		{
			name:       "Semanal - quarta-feira volta para a segunda-feira da mesma semana",
			periodType: PeriodWeekly,
			input:      time.Date(2025, 3, 12, 10, 0, 0, 0, loc), // quarta
			expected:   time.Date(2025, 3, 10, 0, 0, 0, 0, loc),  // segunda
		},
		{
			name:       "Semanal - domingo volta para a segunda-feira anterior",
			periodType: PeriodWeekly,
			input:      time.Date(2025, 3, 16, 23, 59, 0, 0, loc), // domingo
			expected:   time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		},
		{
			name:       "Semanal - segunda-feira permanece na própria segunda",
			periodType: PeriodWeekly,
			input:      time.Date(2025, 3, 10, 8, 0, 0, 0, loc),
			expected:   time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		},
		{
			name:       "Mensal - qualquer dia volta para o primeiro dia do mês",
			periodType: PeriodMonthly,
			input:      time.Date(2025, 3, 28, 18, 0, 0, 0, loc),
			expected:   time.Date(2025, 3, 1, 0, 0, 0, 0, loc),
		},
		{
			name:       "Trimestral - maio pertence ao trimestre iniciado em abril",
			periodType: PeriodQuarterly,
			input:      time.Date(2025, 5, 20, 0, 0, 0, 0, loc),
			expected:   time.Date(2025, 4, 1, 0, 0, 0, 0, loc),
		},
		{
			name:       "Trimestral - dezembro pertence ao trimestre iniciado em outubro",
			periodType: PeriodQuarterly,
			input:      time.Date(2025, 12, 31, 23, 59, 59, 0, loc),
			expected:   time.Date(2025, 10, 1, 0, 0, 0, 0, loc),
		},
		{
			name:       "Anual - qualquer data volta para o primeiro de janeiro",
			periodType: PeriodYearly,
			input:      time.Date(2025, 8, 15, 12, 0, 0, 0, loc),
			expected:   time.Date(2025, 1, 1, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.periodType.BucketStart(tt.input)
			assert.Equal(t, tt.expected, result)

			// A normalização precisa ser idempotente
			assert.Equal(t, result, tt.periodType.BucketStart(result))
		})
	}
}

func TestPeriodType_LastBuckets(t *testing.T) {
	loc := time.UTC
	ref := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	t.Run("Mensal - doze buckets densos em ordem cronológica", func(t *testing.T) {
		buckets := PeriodMonthly.LastBuckets(ref, 12)

		assert.Len(t, buckets, 12)
		assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, loc), buckets[0])
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, loc), buckets[11])

		// Cada bucket é exatamente o sucessor do anterior, sem lacunas
		for i := 1; i < len(buckets); i++ {
			assert.Equal(t, PeriodMonthly.Next(buckets[i-1]), buckets[i])
		}
	})

	t.Run("Trimestral - quatro buckets cobrem um ano", func(t *testing.T) {
		buckets := PeriodQuarterly.LastBuckets(ref, 4)

		assert.Len(t, buckets, 4)
		assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, loc), buckets[0])
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, loc), buckets[3])
	})

	t.Run("Quantidade menor que um retorna nil", func(t *testing.T) {
		assert.Nil(t, PeriodMonthly.LastBuckets(ref, 0))
		assert.Nil(t, PeriodMonthly.LastBuckets(ref, -3))
	})
}

func TestPeriodType_Label(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name       string
		periodType PeriodType
		start      time.Time
		expected   string
	}{
		{
			name:       "Mensal usa mês abreviado em português",
			periodType: PeriodMonthly,
			start:      time.Date(2025, 2, 1, 0, 0, 0, 0, loc),
			expected:   "fev/2025",
		},
		{
			name:       "Trimestral usa o número do trimestre",
			periodType: PeriodQuarterly,
			start:      time.Date(2025, 10, 1, 0, 0, 0, 0, loc),
			expected:   "T4/2025",
		},
		{
			name:       "Anual usa apenas o ano",
			periodType: PeriodYearly,
			start:      time.Date(2025, 1, 1, 0, 0, 0, 0, loc),
			expected:   "2025",
		},
		{
			name:       "Diário usa data completa",
			periodType: PeriodDaily,
			start:      time.Date(2025, 3, 5, 0, 0, 0, 0, loc),
			expected:   "05/03/2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.periodType.Label(tt.start))
		})
	}
}

func TestParsePeriodType(t *testing.T) {
	t.Run("Aceita minúsculas e espaços", func(t *testing.T) {
		p, err := ParsePeriodType(" monthly ")
		assert.NoError(t, err)
		assert.Equal(t, PeriodMonthly, p)
	})

	t.Run("Rejeita valor desconhecido", func(t *testing.T) {
		_, err := ParsePeriodType("biweekly")
		assert.Error(t, err)
	})
}
