package platform

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/storefront-saas-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newServiceWithMocks(t *testing.T) (PlatformService, *mocks.MockSubscriptionRepository, *mocks.MockOrderRepository, *mocks.MockAdminActivityRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	subscriptionRepo := mocks.NewMockSubscriptionRepository(ctrl)
	orderRepo := mocks.NewMockOrderRepository(ctrl)
	activityRepo := mocks.NewMockAdminActivityRepository(ctrl)

	return NewService(subscriptionRepo, orderRepo, activityRepo), subscriptionRepo, orderRepo, activityRepo
}

func TestService_DashboardStats(t *testing.T) {
	t.Run("Dashboard agrega todos os painéis", func(t *testing.T) {
		service, subscriptionRepo, orderRepo, activityRepo := newServiceWithMocks(t)

		subscriptionRepo.EXPECT().
			CountByStatus().
			Return(&domain.SubscriptionStatusCount{Total: 100, Active: 60, Trial: 30, Expired: 5, Cancelled: 5}, nil)
		subscriptionRepo.EXPECT().
			PlanTotals().
			Return([]*domain.PlanTotal{
				{Plan: "basic", Subscriptions: 40, Revenue: 3960.0},
				{Plan: "pro", Subscriptions: 20, Revenue: 5980.0},
			}, nil)
		subscriptionRepo.EXPECT().
			SumActivePrices().
			Return(9940.0, nil)
		subscriptionRepo.EXPECT().
			RecentPayments(recentPaymentsLimit).
			Return([]*domain.RecentPayment{
				{UserName: "Maria", Plan: "pro", Amount: 299.0, Date: time.Now()},
			}, nil)
		activityRepo.EXPECT().
			ListRecent(recentActivityLimit).
			Return([]*domain.AdminActivity{
				{Action: "store.suspend", TargetType: "store", TargetID: "LJ0002"},
			}, nil)

		// Receita total (desde sempre) mais os 12 buckets da série mensal
		orderRepo.EXPECT().
			SumPaidAllStores(gomock.Any(), gomock.Any()).
			Return(1000.0, nil).
			Times(trendMonths + 1)
		subscriptionRepo.EXPECT().
			SumActivePriceStartedInRange(gomock.Any(), gomock.Any()).
			Return(500.0, nil).
			Times(trendMonths)

		dashboard, err := service.DashboardStats()

		assert.NoError(t, err)
		assert.Equal(t, 100, dashboard.Subscriptions.Total)

		// 60 ativas sobre 90 convertíveis (ativas + trial)
		assert.InDelta(t, 66.67, dashboard.ConversionRate, 0.01)

		assert.Len(t, dashboard.Plans, 2)
		assert.Equal(t, 10940.0, dashboard.TotalRevenue)

		assert.Len(t, dashboard.RevenueTrend, trendMonths)
		for _, bucket := range dashboard.RevenueTrend {
			assert.Equal(t, 1500.0, bucket.Total)
		}

		// Buckets uniformes: crescimento zero entre os dois últimos
		assert.Equal(t, 0.0, dashboard.RevenueGrowth)

		assert.Len(t, dashboard.RecentPayments, 1)
		assert.Len(t, dashboard.RecentActivity, 1)
	})

	t.Run("Plataforma vazia reporta zeros, nunca NaN", func(t *testing.T) {
		service, subscriptionRepo, orderRepo, activityRepo := newServiceWithMocks(t)

		subscriptionRepo.EXPECT().
			CountByStatus().
			Return(&domain.SubscriptionStatusCount{}, nil)
		subscriptionRepo.EXPECT().
			PlanTotals().
			Return([]*domain.PlanTotal{}, nil)
		subscriptionRepo.EXPECT().
			SumActivePrices().
			Return(0.0, nil)
		subscriptionRepo.EXPECT().
			RecentPayments(recentPaymentsLimit).
			Return([]*domain.RecentPayment{}, nil)
		subscriptionRepo.EXPECT().
			SumActivePriceStartedInRange(gomock.Any(), gomock.Any()).
			Return(0.0, nil).
			Times(trendMonths)
		orderRepo.EXPECT().
			SumPaidAllStores(gomock.Any(), gomock.Any()).
			Return(0.0, nil).
			Times(trendMonths + 1)
		activityRepo.EXPECT().
			ListRecent(recentActivityLimit).
			Return([]*domain.AdminActivity{}, nil)

		dashboard, err := service.DashboardStats()

		assert.NoError(t, err)
		assert.Equal(t, 0.0, dashboard.ConversionRate)
		assert.Equal(t, 0.0, dashboard.TotalRevenue)
		assert.Equal(t, 0.0, dashboard.RevenueGrowth)
		assert.Len(t, dashboard.RevenueTrend, trendMonths)
	})

	t.Run("Falha em qualquer painel aborta o dashboard inteiro", func(t *testing.T) {
		service, subscriptionRepo, orderRepo, activityRepo := newServiceWithMocks(t)

		dbErr := errors.New("connection reset")

		subscriptionRepo.EXPECT().CountByStatus().Return(nil, dbErr)
		subscriptionRepo.EXPECT().PlanTotals().Return(nil, nil).AnyTimes()
		subscriptionRepo.EXPECT().SumActivePrices().Return(0.0, nil).AnyTimes()
		subscriptionRepo.EXPECT().RecentPayments(gomock.Any()).Return(nil, nil).AnyTimes()
		subscriptionRepo.EXPECT().SumActivePriceStartedInRange(gomock.Any(), gomock.Any()).Return(0.0, nil).AnyTimes()
		orderRepo.EXPECT().SumPaidAllStores(gomock.Any(), gomock.Any()).Return(0.0, nil).AnyTimes()
		activityRepo.EXPECT().ListRecent(gomock.Any()).Return(nil, nil).AnyTimes()

		dashboard, err := service.DashboardStats()

		assert.Nil(t, dashboard)
		assert.Error(t, err)
	})
}

func TestService_RecentActivity(t *testing.T) {
	t.Run("Limite informado é respeitado", func(t *testing.T) {
		service, _, _, activityRepo := newServiceWithMocks(t)

		activityRepo.EXPECT().
			ListRecent(5).
			Return([]*domain.AdminActivity{{Action: "store.verify"}}, nil)

		activity, err := service.RecentActivity(5)

		assert.NoError(t, err)
		assert.Len(t, activity, 1)
	})

	t.Run("Limite fora da faixa cai no padrão", func(t *testing.T) {
		service, _, _, activityRepo := newServiceWithMocks(t)

		activityRepo.EXPECT().
			ListRecent(recentActivityLimit).
			Return([]*domain.AdminActivity{}, nil).
			Times(2)

		_, err := service.RecentActivity(0)
		assert.NoError(t, err)

		_, err = service.RecentActivity(500)
		assert.NoError(t, err)
	})
}
