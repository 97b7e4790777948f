package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-saas-api/infrastructure/repository"
	"github.com/vfg2006/storefront-saas-api/internal/config"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/traffic"
)

// Granularidades materializadas a cada ciclo do agendador
var syncPeriodTypes = []domain.PeriodType{
	domain.PeriodDaily,
	domain.PeriodWeekly,
	domain.PeriodMonthly,
	domain.PeriodYearly,
}

// TrafficSnapshotSyncConfig representa a configuração do agendador de snapshots de tráfego
type TrafficSnapshotSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// TrafficSnapshotSyncService gerencia o agendamento e execução da materialização de snapshots
type TrafficSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              TrafficSnapshotSyncConfig
	storeRepo           repository.StoreRepository
	trafficService      traffic.TrafficService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewTrafficSnapshotSyncService cria uma nova instância do serviço de sincronização de snapshots
func NewTrafficSnapshotSyncService(
	storeRepo repository.StoreRepository,
	trafficService traffic.TrafficService,
	appConfig *config.Config,
) *TrafficSnapshotSyncService {
	syncConfig := TrafficSnapshotSyncConfig{
		CronSchedule:      appConfig.TrafficSnapshotSync.CronSchedule,
		LookbackDays:      appConfig.TrafficSnapshotSync.LookbackDays,
		MaxConcurrentJobs: appConfig.TrafficSnapshotSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.TrafficSnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"lookback_days":       syncConfig.LookbackDays,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de tráfego carregada")

	return &TrafficSnapshotSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		storeRepo:      storeRepo,
		trafficService: trafficService,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *TrafficSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots de tráfego desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de tráfego")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de tráfego: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de tráfego")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSnapshots rematerializa os snapshots de todas as lojas ativas.
// Cada bucket é recalculado a partir dos eventos brutos, então rodar o
// ciclo duas vezes produz exatamente os mesmos contadores.
func (s *TrafficSnapshotSyncService) syncAllSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando materialização de snapshots de tráfego para todas as lojas ativas")

	stores, err := s.storeRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de lojas para materialização de snapshots")
		return
	}

	if len(stores) == 0 {
		logrus.Info("Nenhuma loja ativa encontrada para materialização de snapshots")
		return
	}

	dates := s.getDatesToProcess()

	// Limita o paralelismo entre lojas para não saturar o banco
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	var processed, failed int
	var countMutex sync.Mutex

	for _, store := range stores {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(store *domain.Store) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := s.syncStoreSnapshots(store.ID, dates); err != nil {
				countMutex.Lock()
				failed++
				countMutex.Unlock()

				logrus.WithError(err).WithField("store_id", store.ID).
					Error("Erro ao materializar snapshots da loja")
				return
			}

			countMutex.Lock()
			processed++
			countMutex.Unlock()
		}(store)
	}

	wg.Wait()

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"stores_processed": processed,
		"stores_failed":    failed,
		"duration":         time.Since(startTime).String(),
	}).Info("Materialização de snapshots de tráfego concluída")
}

// syncStoreSnapshots materializa todos os buckets de uma loja para as datas
// do lookback. Buckets repetidos entre datas (semana, mês, ano) convergem
// para o mesmo upsert, o custo extra é só a query duplicada.
func (s *TrafficSnapshotSyncService) syncStoreSnapshots(storeID string, dates []time.Time) error {
	for _, date := range dates {
		for _, periodType := range syncPeriodTypes {
			if _, err := s.trafficService.RecordSnapshot(storeID, date, periodType); err != nil {
				return fmt.Errorf("erro ao materializar snapshot %s de %s: %w",
					periodType, date.Format(time.DateOnly), err)
			}
		}
	}

	return nil
}

// getDatesToProcess retorna as datas da janela de lookback, da mais recente
// para a mais antiga
func (s *TrafficSnapshotSyncService) getDatesToProcess() []time.Time {
	lookback := s.config.LookbackDays
	if lookback < 1 {
		lookback = 1
	}

	dates := make([]time.Time, 0, lookback)
	now := time.Now()
	for i := 0; i < lookback; i++ {
		dates = append(dates, now.AddDate(0, 0, -i))
	}

	return dates
}

// TriggerManualSync inicia manualmente uma materialização de snapshots
func (s *TrafficSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando materialização manual de snapshots de tráfego")
	go s.syncAllSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *TrafficSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
