package ledger

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-saas-api/infrastructure/repository"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"github.com/vfg2006/storefront-saas-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-saas-api/pkg/utils"
)

// LedgerService gerencia os lançamentos do livro-caixa de uma loja. O
// storeID de cada operação vem do contexto de tenant resolvido pelo
// middleware, nunca do corpo da requisição.
type LedgerService interface {
	Create(storeID string, req *domain.NewTransactionRequest) (*domain.FinancialTransaction, error)
	Update(storeID string, entryID int, req *domain.UpdateTransactionRequest) (*domain.FinancialTransaction, error)
	Delete(storeID string, entryID int) error
	List(storeID string, filters *domain.TransactionFilters, page domain.Pagination) (*domain.TransactionPage, error)
}

type Service struct {
	ledgerRepo repository.LedgerRepository
}

func NewService(ledgerRepo repository.LedgerRepository) LedgerService {
	return &Service{
		ledgerRepo: ledgerRepo,
	}
}

func (s *Service) Create(storeID string, req *domain.NewTransactionRequest) (*domain.FinancialTransaction, error) {
	if err := validateNewTransaction(req); err != nil {
		return nil, err
	}

	// Data do lançamento: valor informado ou o momento atual. A data de
	// negócio é independente do created_at.
	transactionDate := time.Now()
	if req.TransactionDate != nil && !req.TransactionDate.IsZero() {
		transactionDate = *req.TransactionDate
	}

	reference, err := utils.GenerateReference()
	if err != nil {
		return nil, NewLedgerError(err, apiErrors.ErrInternalServer, "Erro ao gerar referência do lançamento")
	}

	entry := &domain.FinancialTransaction{
		Reference:       reference,
		StoreID:         storeID,
		Type:            req.Type,
		Category:        req.Category,
		Amount:          req.Amount,
		Description:     req.Description,
		ExternalRef:     req.ExternalRef,
		Tags:            req.Tags,
		TransactionDate: transactionDate,
		Recurring:       req.Recurring,
	}

	stored, err := s.ledgerRepo.Insert(entry)
	if err != nil {
		logrus.WithError(err).Error("Erro ao inserir lançamento no livro-caixa")
		return nil, NewLedgerError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar lançamento")
	}

	return stored, nil
}

func (s *Service) Update(storeID string, entryID int, req *domain.UpdateTransactionRequest) (*domain.FinancialTransaction, error) {
	// Reverifica a posse antes de qualquer mutação: lançamento de outra
	// loja responde NotFound, nunca Forbidden
	entry, err := s.ledgerRepo.GetByIDAndStore(entryID, storeID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lançamento para atualização")
		return nil, NewLedgerError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar lançamento")
	}

	if entry == nil {
		return nil, NewLedgerError(ErrEntryNotFound, apiErrors.ErrResourceNotFound, "Lançamento não encontrado")
	}

	if err := applyTransactionPatch(entry, req); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.Update(entry); err != nil {
		logrus.WithError(err).Error("Erro ao atualizar lançamento no livro-caixa")
		return nil, NewLedgerError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao atualizar lançamento")
	}

	return entry, nil
}

func (s *Service) Delete(storeID string, entryID int) error {
	deleted, err := s.ledgerRepo.Delete(entryID, storeID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao excluir lançamento do livro-caixa")
		return NewLedgerError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao excluir lançamento")
	}

	if !deleted {
		return NewLedgerError(ErrEntryNotFound, apiErrors.ErrResourceNotFound, "Lançamento não encontrado")
	}

	// A exclusão não reprocessa nada: resumos e tendências são derivados
	// sob demanda e refletem a remoção na próxima leitura

	return nil
}

func (s *Service) List(storeID string, filters *domain.TransactionFilters, page domain.Pagination) (*domain.TransactionPage, error) {
	page.Normalize()

	if filters != nil {
		if filters.Type != nil && !filters.Type.Valid() {
			return nil, NewLedgerError(ErrInvalidType, apiErrors.ErrInvalidFormat, "Tipo de lançamento inválido no filtro")
		}
		if filters.Category != nil && !filters.Category.Valid() {
			return nil, NewLedgerError(ErrInvalidCategory, apiErrors.ErrInvalidFormat, "Categoria inválida no filtro")
		}
	}

	result, err := s.ledgerRepo.List(storeID, filters, page)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar lançamentos do livro-caixa")
		return nil, NewLedgerError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar lançamentos")
	}

	return result, nil
}

func validateNewTransaction(req *domain.NewTransactionRequest) error {
	if req.Amount <= 0 {
		return NewLedgerError(ErrInvalidAmount, apiErrors.ErrInvalidRequest, "O valor deve ser maior que zero")
	}

	if !req.Type.Valid() {
		return NewLedgerError(ErrInvalidType, apiErrors.ErrInvalidFormat, "Tipo deve ser INCOME ou EXPENSE")
	}

	if !req.Category.Valid() {
		return NewLedgerError(ErrInvalidCategory, apiErrors.ErrInvalidFormat, "Categoria desconhecida")
	}

	if req.Description == "" {
		return NewLedgerError(ErrMissingDescription, apiErrors.ErrMissingRequiredData, "Descrição é obrigatória")
	}

	return nil
}

func applyTransactionPatch(entry *domain.FinancialTransaction, req *domain.UpdateTransactionRequest) error {
	if req.Type != nil {
		if !req.Type.Valid() {
			return NewLedgerError(ErrInvalidType, apiErrors.ErrInvalidFormat, "Tipo deve ser INCOME ou EXPENSE")
		}
		entry.Type = *req.Type
	}

	if req.Category != nil {
		if !req.Category.Valid() {
			return NewLedgerError(ErrInvalidCategory, apiErrors.ErrInvalidFormat, "Categoria desconhecida")
		}
		entry.Category = *req.Category
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return NewLedgerError(ErrInvalidAmount, apiErrors.ErrInvalidRequest, "O valor deve ser maior que zero")
		}
		entry.Amount = *req.Amount
	}

	if req.Description != nil {
		if *req.Description == "" {
			return NewLedgerError(ErrMissingDescription, apiErrors.ErrMissingRequiredData, "Descrição é obrigatória")
		}
		entry.Description = *req.Description
	}

	if req.ExternalRef != nil {
		entry.ExternalRef = req.ExternalRef
	}

	if req.Tags != nil {
		entry.Tags = req.Tags
	}

	if req.TransactionDate != nil {
		entry.TransactionDate = *req.TransactionDate
	}

	if req.Recurring != nil {
		entry.Recurring = *req.Recurring
	}

	return nil
}
