package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/traffic"
	"github.com/vfg2006/storefront-saas-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-saas-api/pkg/log"
	"github.com/vfg2006/storefront-saas-api/pkg/middleware"
	"github.com/vfg2006/storefront-saas-api/pkg/utils"
)

// TrackRequest é o evento de visita enviado pelo pixel das vitrines.
// Rota pública: o store_id vem do corpo porque o visitante não tem token.
type TrackRequest struct {
	StoreID   string `json:"store_id"`
	VisitorID string `json:"visitor_id"`
	Page      string `json:"page"`
}

type RecordSnapshotRequest struct {
	Date   string `json:"date"`
	Period string `json:"period"`
}

// TrackPageView ingere um evento de visita e responde imediatamente.
// A gravação é melhor esforço, o pixel nunca espera o banco.
func TrackPageView(service traffic.TrafficService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req TrackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.StoreID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "store_id é obrigatório", nil)
			return
		}

		// Pixel sem cookie ainda conta como visita: o visitante ganha um
		// identificador novo e vale como único nesse evento
		if req.VisitorID == "" {
			visitorID, err := utils.GenerateID()
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar evento", nil)
				return
			}
			req.VisitorID = visitorID
		}

		go service.RecordPageView(req.StoreID, req.VisitorID, req.Page)

		w.WriteHeader(http.StatusAccepted)
	})
}

// ListSnapshots lista os snapshots materializados da loja do token
func ListSnapshots(service traffic.TrafficService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID, ok := middleware.TenantFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoTenantBound, "Usuário sem loja vinculada", nil)
			return
		}

		periodType := domain.PeriodDaily
		if v := r.URL.Query().Get("period"); v != "" {
			parsed, err := domain.ParsePeriodType(v)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de período inválido", nil)
				return
			}
			periodType = parsed
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de início inválida", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de fim inválida", nil)
			return
		}

		// Sem intervalo informado, o padrão são os últimos 30 dias
		start := *startDate
		end := *endDate
		if end.IsZero() {
			end = time.Now()
		}
		if start.IsZero() {
			start = end.AddDate(0, 0, -30)
		}

		logger.WithFields(log.Fields{
			"store_id":    storeID,
			"period_type": periodType,
		}).Info("traffic: listing snapshots")

		snapshots, err := service.ListSnapshots(storeID, periodType, start, end)
		if err != nil {
			handleTrafficError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshots)
	})
}

// RecordSnapshot força a materialização de um bucket da loja do token
func RecordSnapshot(service traffic.TrafficService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID, ok := middleware.TenantFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoTenantBound, "Usuário sem loja vinculada", nil)
			return
		}

		var req RecordSnapshotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		date := time.Now()
		if req.Date != "" {
			parsed, err := utils.ParseDate(req.Date)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida", nil)
				return
			}
			date = *parsed
		}

		periodType := domain.PeriodDaily
		if req.Period != "" {
			parsed, err := domain.ParsePeriodType(req.Period)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de período inválido", nil)
				return
			}
			periodType = parsed
		}

		logger.WithFields(log.Fields{
			"store_id":    storeID,
			"period_type": periodType,
		}).Info("traffic: recording snapshot")

		snapshot, err := service.RecordSnapshot(storeID, date, periodType)
		if err != nil {
			handleTrafficError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshot)
	})
}

func handleTrafficError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, traffic.ErrMissingStore),
		errors.Is(err, traffic.ErrInvalidPeriodType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar snapshots", nil)
	}
}
