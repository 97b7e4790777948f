package stores

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-saas-api/infrastructure/repository"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"github.com/vfg2006/storefront-saas-api/pkg/apiErrors"
)

// StoreService expõe as operações administrativas de moderação de lojas.
// Somente perfis administrativos chegam aqui; a checagem de papel acontece
// na borda HTTP.
type StoreService interface {
	ListStores(filters *domain.StoreFilters, page domain.Pagination) (*domain.StorePage, error)
	GetStore(storeID string) (*domain.Store, error)
	SuspendStore(storeID string, actorID int) (*domain.Store, error)
	ReactivateStore(storeID string, actorID int) (*domain.Store, error)
	VerifyStore(storeID string, actorID int) (*domain.Store, error)
}

type Service struct {
	storeRepo    repository.StoreRepository
	activityRepo repository.AdminActivityRepository
}

func NewService(
	storeRepo repository.StoreRepository,
	activityRepo repository.AdminActivityRepository,
) StoreService {
	return &Service{
		storeRepo:    storeRepo,
		activityRepo: activityRepo,
	}
}

func (s *Service) ListStores(filters *domain.StoreFilters, page domain.Pagination) (*domain.StorePage, error) {
	page.Normalize()

	result, err := s.storeRepo.List(filters, page)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar lojas")
		return nil, NewStoreError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return result, nil
}

func (s *Service) GetStore(storeID string) (*domain.Store, error) {
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		logrus.WithError(err).WithField("store_id", storeID).Error("Erro ao buscar loja")
		return nil, NewStoreError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, storeID, err.Error())
	}

	if store == nil {
		return nil, NewStoreError(ErrStoreNotFound, apiErrors.ErrResourceNotFound, storeID, "")
	}

	return store, nil
}

// SuspendStore suspende uma loja ativa. Suspender quem já está suspenso é
// conflito, não no-op: o chamador precisa saber que o estado que ele
// imaginava não é o estado real.
func (s *Service) SuspendStore(storeID string, actorID int) (*domain.Store, error) {
	return s.setSuspended(storeID, actorID, true, "store.suspend", "Loja suspensa")
}

func (s *Service) ReactivateStore(storeID string, actorID int) (*domain.Store, error) {
	return s.setSuspended(storeID, actorID, false, "store.reactivate", "Loja reativada")
}

func (s *Service) setSuspended(storeID string, actorID int, suspended bool, action, message string) (*domain.Store, error) {
	store, err := s.GetStore(storeID)
	if err != nil {
		return nil, err
	}

	if store.Suspended == suspended {
		return nil, NewStoreError(ErrAlreadyInState, apiErrors.ErrResourceConflict, storeID,
			fmt.Sprintf("suspended=%t", suspended))
	}

	if err := s.storeRepo.SetSuspended(storeID, suspended); err != nil {
		logrus.WithError(err).WithField("store_id", storeID).Error("Erro ao alterar suspensão da loja")
		return nil, NewStoreError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, storeID, err.Error())
	}

	store.Suspended = suspended
	s.audit(actorID, action, storeID, message)

	return store, nil
}

// VerifyStore marca a loja como verificada. Verificar duas vezes é conflito
func (s *Service) VerifyStore(storeID string, actorID int) (*domain.Store, error) {
	store, err := s.GetStore(storeID)
	if err != nil {
		return nil, err
	}

	if store.Verified {
		return nil, NewStoreError(ErrAlreadyInState, apiErrors.ErrResourceConflict, storeID, "verified=true")
	}

	if err := s.storeRepo.SetVerified(storeID, true); err != nil {
		logrus.WithError(err).WithField("store_id", storeID).Error("Erro ao verificar loja")
		return nil, NewStoreError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, storeID, err.Error())
	}

	store.Verified = true
	s.audit(actorID, "store.verify", storeID, "Loja verificada")

	return store, nil
}

// audit registra a ação na trilha administrativa sem bloquear a resposta.
// Falha de auditoria vira log, nunca erro para o chamador.
func (s *Service) audit(actorID int, action, storeID, message string) {
	go func() {
		activity := &domain.AdminActivity{
			ActorID:    actorID,
			Action:     action,
			TargetType: "store",
			TargetID:   storeID,
			Message:    message,
		}

		if err := s.activityRepo.Insert(activity); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"action":   action,
				"store_id": storeID,
			}).Warn("Erro ao registrar atividade administrativa")
		}
	}()
}
