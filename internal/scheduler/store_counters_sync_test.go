package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/storefront-saas-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestStoreCountersSyncService_syncAllCounters(t *testing.T) {
	tests := []struct {
		name  string
		setup func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository)
	}{
		{
			name: "Contadores de cada loja são regravados por inteiro",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository) {
				orderRepo.EXPECT().
					CountersByStore().
					Return([]*domain.StoreCounters{
						{StoreID: "LJ0001", TotalRevenue: 15000.50, TotalSales: 42},
						{StoreID: "LJ0002", TotalRevenue: 980.0, TotalSales: 3},
					}, nil)

				storeRepo.EXPECT().
					UpdateCounters(&domain.StoreCounters{StoreID: "LJ0001", TotalRevenue: 15000.50, TotalSales: 42}).
					Return(nil)
				storeRepo.EXPECT().
					UpdateCounters(&domain.StoreCounters{StoreID: "LJ0002", TotalRevenue: 980.0, TotalSales: 3}).
					Return(nil)
			},
		},
		{
			name: "Falha em uma loja não interrompe as demais",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository) {
				orderRepo.EXPECT().
					CountersByStore().
					Return([]*domain.StoreCounters{
						{StoreID: "LJ0001"},
						{StoreID: "LJ0002"},
					}, nil)

				storeRepo.EXPECT().
					UpdateCounters(&domain.StoreCounters{StoreID: "LJ0001"}).
					Return(errors.New("connection reset"))
				storeRepo.EXPECT().
					UpdateCounters(&domain.StoreCounters{StoreID: "LJ0002"}).
					Return(nil)
			},
		},
		{
			name: "Falha na agregação aborta o ciclo sem escrever nada",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository) {
				orderRepo.EXPECT().
					CountersByStore().
					Return(nil, errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeRepo := mocks.NewMockStoreRepository(ctrl)
			orderRepo := mocks.NewMockOrderRepository(ctrl)

			service := &StoreCountersSyncService{
				config: StoreCountersSyncConfig{
					CronSchedule: "0 3 * * *",
					SyncEnabled:  true,
				},
				storeRepo: storeRepo,
				orderRepo: orderRepo,
			}

			tt.setup(storeRepo, orderRepo)

			service.syncAllCounters()

			assert.False(t, service.syncRunning)
		})
	}
}
