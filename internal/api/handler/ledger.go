package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/ledger"
	"github.com/vfg2006/storefront-saas-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-saas-api/pkg/log"
	"github.com/vfg2006/storefront-saas-api/pkg/middleware"
	"github.com/vfg2006/storefront-saas-api/pkg/utils"
)

// CreateTransaction registra um lançamento no livro-caixa da loja do token.
// O store_id nunca vem do corpo da requisição.
func CreateTransaction(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID, ok := middleware.TenantFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoTenantBound, "Usuário sem loja vinculada", nil)
			return
		}

		var req domain.NewTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		logger.WithField("store_id", storeID).Info("ledger: creating transaction")

		entry, err := service.Create(storeID, &req)
		if err != nil {
			handleLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entry)
	})
}

// ListTransactions lista o livro-caixa da loja do token com filtros e paginação
func ListTransactions(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID, ok := middleware.TenantFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoTenantBound, "Usuário sem loja vinculada", nil)
			return
		}

		filters, err := parseTransactionFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"store_id": storeID,
				"error":    err.Error(),
			}).Warn("ledger: invalid list filters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		page := parsePagination(r)

		result, err := service.List(storeID, filters, page)
		if err != nil {
			handleLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})
}

// UpdateTransaction altera um lançamento da loja do token
func UpdateTransaction(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := middleware.TenantFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoTenantBound, "Usuário sem loja vinculada", nil)
			return
		}

		entryID, err := transactionIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do lançamento inválido", nil)
			return
		}

		var req domain.UpdateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		entry, err := service.Update(storeID, entryID, &req)
		if err != nil {
			handleLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entry)
	})
}

// DeleteTransaction remove um lançamento da loja do token
func DeleteTransaction(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := middleware.TenantFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoTenantBound, "Usuário sem loja vinculada", nil)
			return
		}

		entryID, err := transactionIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do lançamento inválido", nil)
			return
		}

		if err := service.Delete(storeID, entryID); err != nil {
			handleLedgerError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func transactionIDFromRequest(r *http.Request) (int, error) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return strconv.Atoi(idStr)
}

// parseTransactionFilters monta os filtros de listagem a partir da query string
func parseTransactionFilters(r *http.Request) (*domain.TransactionFilters, error) {
	filters := &domain.TransactionFilters{
		Search: r.URL.Query().Get("search"),
	}

	if v := r.URL.Query().Get("type"); v != "" {
		txType := domain.TransactionType(strings.ToUpper(v))
		filters.Type = &txType
	}

	if v := r.URL.Query().Get("category"); v != "" {
		category := domain.TransactionCategory(strings.ToUpper(v))
		filters.Category = &category
	}

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, err
	}
	if !startDate.IsZero() {
		filters.StartDate = startDate
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, err
	}
	if !endDate.IsZero() {
		filters.EndDate = endDate
	}

	if v := r.URL.Query().Get("tags"); v != "" {
		filters.Tags = strings.Split(v, ",")
	}

	return filters, nil
}

func parsePagination(r *http.Request) domain.Pagination {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	return domain.Pagination{
		Page:  page,
		Limit: limit,
	}
}

// handleLedgerError converte erros do livro-caixa em respostas HTTP padronizadas
func handleLedgerError(w http.ResponseWriter, err error) {
	var ledgerErr *ledger.LedgerError
	if errors.As(err, &ledgerErr) {
		apiErrors.WriteError(w, ledgerErr.Code, ledgerErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidType),
		errors.Is(err, ledger.ErrInvalidCategory),
		errors.Is(err, ledger.ErrMissingDescription):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, ledger.ErrEntryNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar lançamento", nil)
	}
}
