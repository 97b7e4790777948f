package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/platform"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/stores"
	"github.com/vfg2006/storefront-saas-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-saas-api/pkg/log"
	"github.com/vfg2006/storefront-saas-api/pkg/middleware"
)

// GetDashboard retorna a visão agregada da plataforma para administradores
func GetDashboard(service platform.PlatformService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("admin: fetching platform dashboard")

		dashboard, err := service.DashboardStats()
		if err != nil {
			logger.WithError(err).Error("admin: failed to build platform dashboard")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithError(err).Error("admin: failed to encode dashboard response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ListStores lista as lojas da plataforma com filtros de moderação
func ListStores(service stores.StoreService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := parseStoreFilters(r)
		page := parsePagination(r)

		logger.Info("admin: listing stores")

		result, err := service.ListStores(filters, page)
		if err != nil {
			handleStoreError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})
}

// SuspendStore suspende uma loja, cortando o acesso da vitrine
func SuspendStore(service stores.StoreService) http.Handler {
	return storeModerationHandler("admin: suspending store",
		func(s stores.StoreService, storeID string, actorID int) (*domain.Store, error) {
			return s.SuspendStore(storeID, actorID)
		})(service)
}

// ReactivateStore reativa uma loja suspensa
func ReactivateStore(service stores.StoreService) http.Handler {
	return storeModerationHandler("admin: reactivating store",
		func(s stores.StoreService, storeID string, actorID int) (*domain.Store, error) {
			return s.ReactivateStore(storeID, actorID)
		})(service)
}

// VerifyStore marca uma loja como verificada
func VerifyStore(service stores.StoreService) http.Handler {
	return storeModerationHandler("admin: verifying store",
		func(s stores.StoreService, storeID string, actorID int) (*domain.Store, error) {
			return s.VerifyStore(storeID, actorID)
		})(service)
}

// GetRecentActivity retorna a trilha de auditoria administrativa
func GetRecentActivity(service platform.PlatformService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		activity, err := service.RecentActivity(limit)
		if err != nil {
			logger.WithError(err).Error("admin: failed to list recent activity")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar atividade", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(activity)
	})
}

// storeModerationHandler fatora o esqueleto comum das ações de moderação:
// resolver o administrador do token, o ID da loja da URL e traduzir erros
func storeModerationHandler(
	logMessage string,
	action func(stores.StoreService, string, int) (*domain.Store, error),
) func(stores.StoreService) http.Handler {
	return func(service stores.StoreService) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context())

			userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
				return
			}

			storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
			if storeID == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
				return
			}

			logger.WithFields(log.Fields{
				"store_id": storeID,
				"actor_id": userClaims.UserID,
			}).Info(logMessage)

			store, err := action(service, storeID, userClaims.UserID)
			if err != nil {
				handleStoreError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(store)
		})
	}
}

func parseStoreFilters(r *http.Request) *domain.StoreFilters {
	filters := &domain.StoreFilters{
		Search: r.URL.Query().Get("search"),
	}

	if v := r.URL.Query().Get("active"); v != "" {
		active := v == "true"
		filters.Active = &active
	}

	if v := r.URL.Query().Get("suspended"); v != "" {
		suspended := v == "true"
		filters.Suspended = &suspended
	}

	if v := r.URL.Query().Get("verified"); v != "" {
		verified := v == "true"
		filters.Verified = &verified
	}

	return filters
}

func handleStoreError(w http.ResponseWriter, err error) {
	var storeErr *stores.StoreError
	if errors.As(err, &storeErr) {
		apiErrors.WriteError(w, storeErr.Code, storeErr.Error(), map[string]any{
			"store_id": storeErr.StoreID,
		})
		return
	}

	switch {
	case errors.Is(err, stores.ErrStoreNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, stores.ErrAlreadyInState):
		apiErrors.WriteError(w, apiErrors.ErrResourceConflict, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar loja", nil)
	}
}
