package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-saas-api/internal/scheduler"
	"github.com/vfg2006/storefront-saas-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeTrafficSnapshots = "traffic-snapshots"
	CronJobTypeStoreCounters    = "store-counters"
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	TrafficSnapshotSyncService *scheduler.TrafficSnapshotSyncService
	StoreCountersSyncService   *scheduler.StoreCountersSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeTrafficSnapshots:
			if services.TrafficSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshots de tráfego não disponível", nil)
				return
			}
			services.TrafficSnapshotSyncService.TriggerManualSync()

		case CronJobTypeStoreCounters:
			if services.StoreCountersSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de contadores de lojas não disponível", nil)
				return
			}
			services.StoreCountersSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.TrafficSnapshotSyncService != nil {
				services.TrafficSnapshotSyncService.TriggerManualSync()
			}
			if services.StoreCountersSyncService != nil {
				services.StoreCountersSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: traffic-snapshots, store-counters, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"traffic-snapshots": services.TrafficSnapshotSyncService.GetStatus(),
			"store-counters":    services.StoreCountersSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
