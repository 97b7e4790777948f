package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/storefront-saas-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	trafficmocks "github.com/vfg2006/storefront-saas-api/internal/usecases/traffic/mocks"
	"go.uber.org/mock/gomock"
)

func TestTrafficSnapshotSyncService_syncAllSnapshots(t *testing.T) {
	tests := []struct {
		name  string
		setup func(storeRepo *mocks.MockStoreRepository, trafficService *trafficmocks.MockTrafficService)
	}{
		{
			name: "Materializa todas as granularidades de cada loja ativa",
			setup: func(storeRepo *mocks.MockStoreRepository, trafficService *trafficmocks.MockTrafficService) {
				storeRepo.EXPECT().
					ListActive().
					Return([]*domain.Store{
						{ID: "LJ0001"},
						{ID: "LJ0002"},
					}, nil)

				// 2 lojas x 1 dia de lookback x 4 granularidades
				trafficService.EXPECT().
					RecordSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.AnalyticsSnapshot{}, nil).
					Times(2 * len(syncPeriodTypes))
			},
		},
		{
			name: "Falha em uma loja não interrompe as demais",
			setup: func(storeRepo *mocks.MockStoreRepository, trafficService *trafficmocks.MockTrafficService) {
				storeRepo.EXPECT().
					ListActive().
					Return([]*domain.Store{
						{ID: "LJ0001"},
						{ID: "LJ0002"},
					}, nil)

				trafficService.EXPECT().
					RecordSnapshot("LJ0001", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection reset"))
				trafficService.EXPECT().
					RecordSnapshot("LJ0002", gomock.Any(), gomock.Any()).
					Return(&domain.AnalyticsSnapshot{}, nil).
					Times(len(syncPeriodTypes))
			},
		},
		{
			name: "Sem lojas ativas nenhum snapshot é materializado",
			setup: func(storeRepo *mocks.MockStoreRepository, trafficService *trafficmocks.MockTrafficService) {
				storeRepo.EXPECT().
					ListActive().
					Return([]*domain.Store{}, nil)
			},
		},
		{
			name: "Falha ao listar lojas aborta o ciclo",
			setup: func(storeRepo *mocks.MockStoreRepository, trafficService *trafficmocks.MockTrafficService) {
				storeRepo.EXPECT().
					ListActive().
					Return(nil, errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeRepo := mocks.NewMockStoreRepository(ctrl)
			trafficService := trafficmocks.NewMockTrafficService(ctrl)

			service := &TrafficSnapshotSyncService{
				config: TrafficSnapshotSyncConfig{
					LookbackDays:      1,
					MaxConcurrentJobs: 2,
					SyncEnabled:       true,
				},
				storeRepo:      storeRepo,
				trafficService: trafficService,
			}

			tt.setup(storeRepo, trafficService)

			service.syncAllSnapshots()

			assert.False(t, service.syncRunning)
		})
	}
}

func TestTrafficSnapshotSyncService_getDatesToProcess(t *testing.T) {
	t.Run("Janela de lookback vem da mais recente para a mais antiga", func(t *testing.T) {
		service := &TrafficSnapshotSyncService{
			config: TrafficSnapshotSyncConfig{LookbackDays: 3},
		}

		dates := service.getDatesToProcess()

		assert.Len(t, dates, 3)
		for i := 1; i < len(dates); i++ {
			assert.True(t, dates[i].Before(dates[i-1]))
		}
	})

	t.Run("Lookback inválido processa ao menos o dia corrente", func(t *testing.T) {
		service := &TrafficSnapshotSyncService{
			config: TrafficSnapshotSyncConfig{LookbackDays: 0},
		}

		dates := service.getDatesToProcess()

		assert.Len(t, dates, 1)
		assert.Equal(t, time.Now().Truncate(24*time.Hour), dates[0].Truncate(24*time.Hour))
	})
}

func TestTrafficSnapshotSyncService_GetStatus(t *testing.T) {
	service := &TrafficSnapshotSyncService{
		config: TrafficSnapshotSyncConfig{
			CronSchedule:      "*/15 * * * *",
			LookbackDays:      2,
			MaxConcurrentJobs: 3,
			SyncEnabled:       true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "*/15 * * * *", status["sync_cron"])
	assert.Equal(t, 2, status["sync_lookback_days"])
}
