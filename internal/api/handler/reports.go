package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/reporting"
	"github.com/vfg2006/storefront-saas-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-saas-api/pkg/log"
	"github.com/vfg2006/storefront-saas-api/pkg/middleware"
	"github.com/vfg2006/storefront-saas-api/pkg/utils"
)

const defaultTrendBuckets = 12

// GetFinanceSummary retorna o resumo financeiro da loja do token
func GetFinanceSummary(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID, ok := middleware.TenantFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoTenantBound, "Usuário sem loja vinculada", nil)
			return
		}

		logger.WithField("store_id", storeID).Info("reports: fetching finance summary")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"store_id":   storeID,
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("reports: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de início inválida", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"store_id": storeID,
				"end_date": r.URL.Query().Get("end_date"),
				"error":    err.Error(),
			}).Warn("reports: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de fim inválida", nil)
			return
		}

		filters := &domain.ReportFilters{
			StartDate: startDate,
			EndDate:   endDate,
		}

		summary, err := service.Summary(storeID, filters)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithFields(log.Fields{
				"store_id": storeID,
				"error":    err.Error(),
			}).Error("reports: failed to encode summary response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetRevenueTrend retorna a série temporal de receita da loja do token.
// Parâmetros: periods (quantidade de buckets) e period (granularidade).
func GetRevenueTrend(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID, ok := middleware.TenantFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoTenantBound, "Usuário sem loja vinculada", nil)
			return
		}

		bucketCount := defaultTrendBuckets
		if v := r.URL.Query().Get("periods"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Quantidade de períodos inválida", nil)
				return
			}
			bucketCount = parsed
		}

		periodType := domain.PeriodMonthly
		if v := r.URL.Query().Get("period"); v != "" {
			parsed, err := domain.ParsePeriodType(v)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de período inválido", nil)
				return
			}
			periodType = parsed
		}

		logger.WithFields(log.Fields{
			"store_id":    storeID,
			"periods":     bucketCount,
			"period_type": periodType,
		}).Info("reports: fetching revenue trend")

		trend, err := service.Trend(storeID, bucketCount, periodType)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(trend); err != nil {
			logger.WithFields(log.Fields{
				"store_id": storeID,
				"error":    err.Error(),
			}).Error("reports: failed to encode trend response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

func handleReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporting.ErrInvalidDateRange),
		errors.Is(err, reporting.ErrInvalidBucketCount),
		errors.Is(err, reporting.ErrInvalidPeriodType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao montar relatório", nil)
	}
}
