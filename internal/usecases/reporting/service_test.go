package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/storefront-saas-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func newServiceWithMocks(t *testing.T) (ReportingService, *mocks.MockLedgerRepository, *mocks.MockOrderRepository, *mocks.MockSubscriptionRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	orderRepo := mocks.NewMockOrderRepository(ctrl)
	subscriptionRepo := mocks.NewMockSubscriptionRepository(ctrl)

	return NewService(ledgerRepo, orderRepo, subscriptionRepo), ledgerRepo, orderRepo, subscriptionRepo
}

func TestService_Summary(t *testing.T) {
	const storeID = "LJ0001"

	t.Run("Resumo com entradas, saídas e breakdown por categoria", func(t *testing.T) {
		service, ledgerRepo, _, _ := newServiceWithMocks(t)

		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

		ledgerRepo.EXPECT().
			SumByType(storeID, domain.TransactionIncome, gomock.Any(), gomock.Any()).
			Return(10000.0, nil)
		ledgerRepo.EXPECT().
			SumByType(storeID, domain.TransactionExpense, gomock.Any(), gomock.Any()).
			Return(4000.0, nil)
		ledgerRepo.EXPECT().
			CategoryTotals(storeID, gomock.Any(), gomock.Any()).
			Return([]*domain.CategoryTotal{
				{Type: domain.TransactionIncome, Category: domain.CategorySales, Total: 10000},
				{Type: domain.TransactionExpense, Category: domain.CategoryRent, Total: 2500},
				{Type: domain.TransactionExpense, Category: domain.CategoryMarketing, Total: 1500},
			}, nil)

		summary, err := service.Summary(storeID, &domain.ReportFilters{
			StartDate: timePtr(start),
			EndDate:   timePtr(end),
		})

		assert.NoError(t, err)
		assert.Equal(t, 10000.0, summary.Income)
		assert.Equal(t, 4000.0, summary.Expense)
		assert.Equal(t, 6000.0, summary.Net)
		assert.Len(t, summary.Breakdown, 3)

		// Saídas dividem 100% entre si, independente das entradas
		assert.Equal(t, 62.5, summary.Breakdown[1].Percentage)
		assert.Equal(t, 37.5, summary.Breakdown[2].Percentage)
	})

	t.Run("Loja sem movimento reporta zeros, nunca NaN", func(t *testing.T) {
		service, ledgerRepo, _, _ := newServiceWithMocks(t)

		ledgerRepo.EXPECT().
			SumByType(storeID, domain.TransactionIncome, gomock.Any(), gomock.Any()).
			Return(0.0, nil)
		ledgerRepo.EXPECT().
			SumByType(storeID, domain.TransactionExpense, gomock.Any(), gomock.Any()).
			Return(0.0, nil)
		ledgerRepo.EXPECT().
			CategoryTotals(storeID, gomock.Any(), gomock.Any()).
			Return([]*domain.CategoryTotal{}, nil)

		summary, err := service.Summary(storeID, nil)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, summary.Income)
		assert.Equal(t, 0.0, summary.Net)
		assert.Empty(t, summary.Breakdown)
	})

	t.Run("Intervalo invertido é rejeitado sem consultar o banco", func(t *testing.T) {
		service, _, _, _ := newServiceWithMocks(t)

		_, err := service.Summary(storeID, &domain.ReportFilters{
			StartDate: timePtr(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)),
			EndDate:   timePtr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		})

		assert.True(t, errors.Is(err, ErrInvalidDateRange))
	})

	t.Run("Falha em uma das consultas aborta o resumo inteiro", func(t *testing.T) {
		service, ledgerRepo, _, _ := newServiceWithMocks(t)

		dbErr := errors.New("connection reset")

		ledgerRepo.EXPECT().
			SumByType(storeID, domain.TransactionIncome, gomock.Any(), gomock.Any()).
			Return(0.0, dbErr)
		ledgerRepo.EXPECT().
			SumByType(storeID, domain.TransactionExpense, gomock.Any(), gomock.Any()).
			Return(100.0, nil)
		ledgerRepo.EXPECT().
			CategoryTotals(storeID, gomock.Any(), gomock.Any()).
			Return(nil, nil)

		summary, err := service.Summary(storeID, nil)

		assert.Nil(t, summary)
		assert.Error(t, err)
	})
}

func TestService_Trend(t *testing.T) {
	const storeID = "LJ0001"

	t.Run("Loja sem movimento produz série densa e cronológica", func(t *testing.T) {
		service, ledgerRepo, orderRepo, subscriptionRepo := newServiceWithMocks(t)

		// Todos os buckets zerados: a série precisa existir mesmo assim
		ledgerRepo.EXPECT().
			SumByType(storeID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0.0, nil).
			AnyTimes()
		orderRepo.EXPECT().
			SumPaidByStore(storeID, gomock.Any(), gomock.Any()).
			Return(0.0, nil).
			AnyTimes()
		subscriptionRepo.EXPECT().
			SumActivePriceByStore(storeID, gomock.Any(), gomock.Any()).
			Return(0.0, nil).
			AnyTimes()

		trend, err := service.Trend(storeID, 12, domain.PeriodMonthly)

		assert.NoError(t, err)
		assert.Len(t, trend.Buckets, 12)
		assert.Equal(t, 0.0, trend.Growth)

		for i, bucket := range trend.Buckets {
			assert.Equal(t, 0.0, bucket.Net)
			assert.NotEmpty(t, bucket.Label)

			if i > 0 {
				assert.Equal(t,
					domain.PeriodMonthly.Next(trend.Buckets[i-1].PeriodStart),
					bucket.PeriodStart,
					"buckets devem ser consecutivos e em ordem cronológica",
				)
			}
		}
	})

	t.Run("Crescimento compara os dois últimos buckets", func(t *testing.T) {
		service, ledgerRepo, orderRepo, subscriptionRepo := newServiceWithMocks(t)

		lastStart := domain.PeriodMonthly.BucketStart(time.Now())
		previousStart := domain.PeriodMonthly.Previous(lastStart)

		ledgerRepo.EXPECT().
			SumByType(storeID, domain.TransactionIncome, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, _ domain.TransactionType, start, _ time.Time) (float64, error) {
				switch {
				case start.Equal(lastStart):
					return 300.0, nil
				case start.Equal(previousStart):
					return 200.0, nil
				default:
					return 0.0, nil
				}
			}).
			AnyTimes()
		ledgerRepo.EXPECT().
			SumByType(storeID, domain.TransactionExpense, gomock.Any(), gomock.Any()).
			Return(0.0, nil).
			AnyTimes()
		orderRepo.EXPECT().
			SumPaidByStore(storeID, gomock.Any(), gomock.Any()).
			Return(0.0, nil).
			AnyTimes()
		subscriptionRepo.EXPECT().
			SumActivePriceByStore(storeID, gomock.Any(), gomock.Any()).
			Return(0.0, nil).
			AnyTimes()

		trend, err := service.Trend(storeID, 3, domain.PeriodMonthly)

		assert.NoError(t, err)
		assert.Len(t, trend.Buckets, 3)
		// 200 -> 300 = +50%
		assert.Equal(t, 50.0, trend.Growth)
	})

	t.Run("Quantidade de períodos fora do limite é rejeitada", func(t *testing.T) {
		service, _, _, _ := newServiceWithMocks(t)

		_, err := service.Trend(storeID, 0, domain.PeriodMonthly)
		assert.True(t, errors.Is(err, ErrInvalidBucketCount))

		_, err = service.Trend(storeID, 100, domain.PeriodMonthly)
		assert.True(t, errors.Is(err, ErrInvalidBucketCount))
	})

	t.Run("Granularidade diária não é suportada em tendências", func(t *testing.T) {
		service, _, _, _ := newServiceWithMocks(t)

		_, err := service.Trend(storeID, 12, domain.PeriodDaily)
		assert.True(t, errors.Is(err, ErrInvalidPeriodType))
	})
}
