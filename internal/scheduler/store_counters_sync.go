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
)

// StoreCountersSyncConfig representa a configuração do agendador de contadores de lojas
type StoreCountersSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// StoreCountersSyncService recomputa os contadores denormalizados das lojas
// (receita e vendas totais) a partir dos pedidos pagos. Recomputação total,
// nunca incremento: o ciclo é idempotente por construção.
type StoreCountersSyncService struct {
	scheduler           *gocron.Scheduler
	config              StoreCountersSyncConfig
	storeRepo           repository.StoreRepository
	orderRepo           repository.OrderRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewStoreCountersSyncService cria uma nova instância do serviço de sincronização de contadores
func NewStoreCountersSyncService(
	storeRepo repository.StoreRepository,
	orderRepo repository.OrderRepository,
	appConfig *config.Config,
) *StoreCountersSyncService {
	syncConfig := StoreCountersSyncConfig{
		CronSchedule: appConfig.StoreCountersSync.CronSchedule,
		SyncEnabled:  appConfig.StoreCountersSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de contadores de lojas carregada")

	return &StoreCountersSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		storeRepo:   storeRepo,
		orderRepo:   orderRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *StoreCountersSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de contadores de lojas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de contadores de lojas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCounters()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de contadores de lojas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de contadores de lojas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCounters recomputa os contadores de todas as lojas com pedidos pagos
func (s *StoreCountersSyncService) syncAllCounters() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de contadores já em andamento, ignorando")
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

	logrus.Info("Iniciando recomputação de contadores de lojas")

	counters, err := s.orderRepo.CountersByStore()
	if err != nil {
		logrus.WithError(err).Error("Erro ao agregar pedidos pagos por loja")
		return
	}

	var updated, failed int
	for _, c := range counters {
		if err := s.storeRepo.UpdateCounters(c); err != nil {
			failed++
			logrus.WithError(err).WithField("store_id", c.StoreID).
				Error("Erro ao atualizar contadores da loja")
			continue
		}
		updated++
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"stores_updated": updated,
		"stores_failed":  failed,
		"duration":       time.Since(startTime).String(),
	}).Info("Recomputação de contadores de lojas concluída")
}

// TriggerManualSync inicia manualmente uma recomputação de contadores
func (s *StoreCountersSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de contadores já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recomputação manual de contadores de lojas")
	go s.syncAllCounters()
}

// GetStatus retorna o status atual do agendador
func (s *StoreCountersSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
