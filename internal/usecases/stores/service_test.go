package stores

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/storefront-saas-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"github.com/vfg2006/storefront-saas-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const actorID = 7

func newServiceWithMocks(t *testing.T) (StoreService, *mocks.MockStoreRepository, *mocks.MockAdminActivityRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	storeRepo := mocks.NewMockStoreRepository(ctrl)
	activityRepo := mocks.NewMockAdminActivityRepository(ctrl)

	return NewService(storeRepo, activityRepo), storeRepo, activityRepo
}

// expectAudit registra a expectativa da trilha de auditoria e devolve um
// canal que fecha quando o registro acontece. A auditoria roda em goroutine,
// então o teste precisa esperar por ela antes de encerrar o controller.
func expectAudit(activityRepo *mocks.MockAdminActivityRepository, action, storeID string) chan struct{} {
	done := make(chan struct{})

	activityRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(activity *domain.AdminActivity) error {
			defer close(done)
			if activity.Action != action || activity.TargetID != storeID {
				return errors.New("atividade inesperada")
			}
			return nil
		})

	return done
}

func waitAudit(t *testing.T, done chan struct{}) {
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("auditoria não foi registrada")
	}
}

func TestService_GetStore(t *testing.T) {
	t.Run("Loja existente é retornada", func(t *testing.T) {
		service, storeRepo, _ := newServiceWithMocks(t)

		storeRepo.EXPECT().
			GetByID("LJ0001").
			Return(&domain.Store{ID: "LJ0001", Name: "Loja do Centro"}, nil)

		store, err := service.GetStore("LJ0001")

		assert.NoError(t, err)
		assert.Equal(t, "LJ0001", store.ID)
	})

	t.Run("Loja inexistente retorna erro de recurso", func(t *testing.T) {
		service, storeRepo, _ := newServiceWithMocks(t)

		storeRepo.EXPECT().
			GetByID("LJ9999").
			Return(nil, nil)

		store, err := service.GetStore("LJ9999")

		assert.Nil(t, store)
		assert.True(t, errors.Is(err, ErrStoreNotFound))

		var storeErr *StoreError
		assert.True(t, errors.As(err, &storeErr))
		assert.Equal(t, apiErrors.ErrResourceNotFound, storeErr.Code)
	})
}

func TestService_ListStores(t *testing.T) {
	t.Run("Paginação é normalizada antes da consulta", func(t *testing.T) {
		service, storeRepo, _ := newServiceWithMocks(t)

		storeRepo.EXPECT().
			List(gomock.Any(), domain.Pagination{Page: 1, Limit: 20}).
			Return(&domain.StorePage{Items: []*domain.Store{}, Page: 1, Limit: 20}, nil)

		page, err := service.ListStores(&domain.StoreFilters{}, domain.Pagination{})

		assert.NoError(t, err)
		assert.Equal(t, 1, page.Page)
	})
}

func TestService_SuspendStore(t *testing.T) {
	t.Run("Loja ativa é suspensa e auditada", func(t *testing.T) {
		service, storeRepo, activityRepo := newServiceWithMocks(t)

		storeRepo.EXPECT().
			GetByID("LJ0001").
			Return(&domain.Store{ID: "LJ0001", Suspended: false}, nil)
		storeRepo.EXPECT().
			SetSuspended("LJ0001", true).
			Return(nil)
		done := expectAudit(activityRepo, "store.suspend", "LJ0001")

		store, err := service.SuspendStore("LJ0001", actorID)

		assert.NoError(t, err)
		assert.True(t, store.Suspended)
		waitAudit(t, done)
	})

	t.Run("Suspender loja já suspensa é conflito, não no-op", func(t *testing.T) {
		service, storeRepo, _ := newServiceWithMocks(t)

		storeRepo.EXPECT().
			GetByID("LJ0001").
			Return(&domain.Store{ID: "LJ0001", Suspended: true}, nil)

		store, err := service.SuspendStore("LJ0001", actorID)

		assert.Nil(t, store)
		assert.True(t, errors.Is(err, ErrAlreadyInState))

		var storeErr *StoreError
		assert.True(t, errors.As(err, &storeErr))
		assert.Equal(t, apiErrors.ErrResourceConflict, storeErr.Code)
	})

	t.Run("Falha ao gravar suspensão não audita", func(t *testing.T) {
		service, storeRepo, _ := newServiceWithMocks(t)

		storeRepo.EXPECT().
			GetByID("LJ0001").
			Return(&domain.Store{ID: "LJ0001"}, nil)
		storeRepo.EXPECT().
			SetSuspended("LJ0001", true).
			Return(errors.New("connection reset"))

		store, err := service.SuspendStore("LJ0001", actorID)

		assert.Nil(t, store)
		assert.True(t, errors.Is(err, ErrDatabaseOperation))
	})
}

func TestService_ReactivateStore(t *testing.T) {
	t.Run("Loja suspensa volta a ficar ativa", func(t *testing.T) {
		service, storeRepo, activityRepo := newServiceWithMocks(t)

		storeRepo.EXPECT().
			GetByID("LJ0001").
			Return(&domain.Store{ID: "LJ0001", Suspended: true}, nil)
		storeRepo.EXPECT().
			SetSuspended("LJ0001", false).
			Return(nil)
		done := expectAudit(activityRepo, "store.reactivate", "LJ0001")

		store, err := service.ReactivateStore("LJ0001", actorID)

		assert.NoError(t, err)
		assert.False(t, store.Suspended)
		waitAudit(t, done)
	})

	t.Run("Reativar loja que não está suspensa é conflito", func(t *testing.T) {
		service, storeRepo, _ := newServiceWithMocks(t)

		storeRepo.EXPECT().
			GetByID("LJ0001").
			Return(&domain.Store{ID: "LJ0001", Suspended: false}, nil)

		_, err := service.ReactivateStore("LJ0001", actorID)

		assert.True(t, errors.Is(err, ErrAlreadyInState))
	})
}

func TestService_VerifyStore(t *testing.T) {
	t.Run("Loja é verificada e auditada", func(t *testing.T) {
		service, storeRepo, activityRepo := newServiceWithMocks(t)

		storeRepo.EXPECT().
			GetByID("LJ0001").
			Return(&domain.Store{ID: "LJ0001", Verified: false}, nil)
		storeRepo.EXPECT().
			SetVerified("LJ0001", true).
			Return(nil)
		done := expectAudit(activityRepo, "store.verify", "LJ0001")

		store, err := service.VerifyStore("LJ0001", actorID)

		assert.NoError(t, err)
		assert.True(t, store.Verified)
		waitAudit(t, done)
	})

	t.Run("Verificar duas vezes é conflito", func(t *testing.T) {
		service, storeRepo, _ := newServiceWithMocks(t)

		storeRepo.EXPECT().
			GetByID("LJ0001").
			Return(&domain.Store{ID: "LJ0001", Verified: true}, nil)

		_, err := service.VerifyStore("LJ0001", actorID)

		assert.True(t, errors.Is(err, ErrAlreadyInState))
	})

	t.Run("Loja inexistente não é verificada", func(t *testing.T) {
		service, storeRepo, _ := newServiceWithMocks(t)

		storeRepo.EXPECT().
			GetByID("LJ9999").
			Return(nil, nil)

		_, err := service.VerifyStore("LJ9999", actorID)

		assert.True(t, errors.Is(err, ErrStoreNotFound))
	})
}
