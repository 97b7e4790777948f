package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/storefront-saas-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func float64Ptr(f float64) *float64 {
	return &f
}

func TestService_Create(t *testing.T) {
	const storeID = "LJ0001"

	tests := []struct {
		name        string
		request     *domain.NewTransactionRequest
		setup       func(*mocks.MockLedgerRepository)
		expectedErr error
	}{
		{
			name: "Lançamento válido é persistido com a loja do contexto",
			request: &domain.NewTransactionRequest{
				Type:        domain.TransactionIncome,
				Category:    domain.CategorySales,
				Amount:      1500.50,
				Description: "Venda balcão",
				Tags:        []string{"balcao"},
			},
			setup: func(repo *mocks.MockLedgerRepository) {
				repo.EXPECT().
					Insert(gomock.Any()).
					DoAndReturn(func(entry *domain.FinancialTransaction) (*domain.FinancialTransaction, error) {
						assert.Equal(t, storeID, entry.StoreID)
						assert.NotEmpty(t, entry.Reference)
						assert.False(t, entry.TransactionDate.IsZero())

						entry.ID = 10
						return entry, nil
					})
			},
		},
		{
			name: "Valor zero é rejeitado sem tocar o repositório",
			request: &domain.NewTransactionRequest{
				Type:        domain.TransactionIncome,
				Category:    domain.CategorySales,
				Amount:      0,
				Description: "Venda balcão",
			},
			setup:       func(repo *mocks.MockLedgerRepository) {},
			expectedErr: ErrInvalidAmount,
		},
		{
			name: "Valor negativo é rejeitado",
			request: &domain.NewTransactionRequest{
				Type:        domain.TransactionExpense,
				Category:    domain.CategoryRent,
				Amount:      -50,
				Description: "Aluguel",
			},
			setup:       func(repo *mocks.MockLedgerRepository) {},
			expectedErr: ErrInvalidAmount,
		},
		{
			name: "Tipo desconhecido é rejeitado",
			request: &domain.NewTransactionRequest{
				Type:        domain.TransactionType("TRANSFER"),
				Category:    domain.CategorySales,
				Amount:      100,
				Description: "Transferência",
			},
			setup:       func(repo *mocks.MockLedgerRepository) {},
			expectedErr: ErrInvalidType,
		},
		{
			name: "Categoria fora da enumeração é rejeitada",
			request: &domain.NewTransactionRequest{
				Type:        domain.TransactionExpense,
				Category:    domain.TransactionCategory("CRYPTO"),
				Amount:      100,
				Description: "Compra",
			},
			setup:       func(repo *mocks.MockLedgerRepository) {},
			expectedErr: ErrInvalidCategory,
		},
		{
			name: "Descrição vazia é rejeitada",
			request: &domain.NewTransactionRequest{
				Type:     domain.TransactionIncome,
				Category: domain.CategorySales,
				Amount:   100,
			},
			setup:       func(repo *mocks.MockLedgerRepository) {},
			expectedErr: ErrMissingDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockLedgerRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo)

			entry, err := service.Create(storeID, tt.request)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))
				assert.Nil(t, entry)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, entry)
			assert.Equal(t, storeID, entry.StoreID)
		})
	}
}

func TestService_Create_DataDoLancamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockLedgerRepository(ctrl)
	service := NewService(repo)

	informedDate := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(entry *domain.FinancialTransaction) (*domain.FinancialTransaction, error) {
			assert.Equal(t, informedDate, entry.TransactionDate)
			return entry, nil
		})

	_, err := service.Create("LJ0001", &domain.NewTransactionRequest{
		Type:            domain.TransactionExpense,
		Category:        domain.CategoryMarketing,
		Amount:          300,
		Description:     "Campanha de fevereiro",
		TransactionDate: &informedDate,
	})

	assert.NoError(t, err)
}

func TestService_Update(t *testing.T) {
	const storeID = "LJ0001"

	existing := func() *domain.FinancialTransaction {
		return &domain.FinancialTransaction{
			ID:          7,
			Reference:   "TX-ABCDEF1234",
			StoreID:     storeID,
			Type:        domain.TransactionIncome,
			Category:    domain.CategorySales,
			Amount:      500,
			Description: "Venda original",
		}
	}

	t.Run("Lançamento de outra loja responde NotFound sem mutação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockLedgerRepository(ctrl)
		service := NewService(repo)

		// A busca escopada por loja não encontra o lançamento alheio.
		// Nenhuma chamada de Update é esperada.
		repo.EXPECT().GetByIDAndStore(7, storeID).Return(nil, nil)

		entry, err := service.Update(storeID, 7, &domain.UpdateTransactionRequest{
			Amount: float64Ptr(999),
		})

		assert.Nil(t, entry)
		assert.True(t, errors.Is(err, ErrEntryNotFound))
	})

	t.Run("Patch parcial altera apenas os campos informados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockLedgerRepository(ctrl)
		service := NewService(repo)

		repo.EXPECT().GetByIDAndStore(7, storeID).Return(existing(), nil)
		repo.EXPECT().
			Update(gomock.Any()).
			DoAndReturn(func(entry *domain.FinancialTransaction) error {
				assert.Equal(t, 750.0, entry.Amount)
				assert.Equal(t, "Venda original", entry.Description)
				assert.Equal(t, domain.TransactionIncome, entry.Type)
				return nil
			})

		entry, err := service.Update(storeID, 7, &domain.UpdateTransactionRequest{
			Amount: float64Ptr(750),
		})

		assert.NoError(t, err)
		assert.Equal(t, 750.0, entry.Amount)
	})

	t.Run("Patch com valor inválido é rejeitado antes da escrita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockLedgerRepository(ctrl)
		service := NewService(repo)

		repo.EXPECT().GetByIDAndStore(7, storeID).Return(existing(), nil)

		entry, err := service.Update(storeID, 7, &domain.UpdateTransactionRequest{
			Amount: float64Ptr(-10),
		})

		assert.Nil(t, entry)
		assert.True(t, errors.Is(err, ErrInvalidAmount))
	})
}

func TestService_Delete(t *testing.T) {
	const storeID = "LJ0001"

	t.Run("Exclusão de lançamento próprio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockLedgerRepository(ctrl)
		service := NewService(repo)

		repo.EXPECT().Delete(7, storeID).Return(true, nil)

		assert.NoError(t, service.Delete(storeID, 7))
	})

	t.Run("Lançamento inexistente ou de outra loja responde NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockLedgerRepository(ctrl)
		service := NewService(repo)

		repo.EXPECT().Delete(99, storeID).Return(false, nil)

		err := service.Delete(storeID, 99)
		assert.True(t, errors.Is(err, ErrEntryNotFound))
	})
}

func TestService_List(t *testing.T) {
	const storeID = "LJ0001"

	t.Run("Paginação é normalizada antes da consulta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockLedgerRepository(ctrl)
		service := NewService(repo)

		repo.EXPECT().
			List(storeID, gomock.Any(), domain.Pagination{Page: 1, Limit: 20}).
			Return(&domain.TransactionPage{Items: []*domain.FinancialTransaction{}, Page: 1, Limit: 20}, nil)

		result, err := service.List(storeID, &domain.TransactionFilters{}, domain.Pagination{Page: 0, Limit: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Page)
	})

	t.Run("Filtro com tipo inválido é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockLedgerRepository(ctrl)
		service := NewService(repo)

		badType := domain.TransactionType("TRANSFER")
		_, err := service.List(storeID, &domain.TransactionFilters{Type: &badType}, domain.Pagination{})

		assert.True(t, errors.Is(err, ErrInvalidType))
	})
}
