package traffic

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-saas-api/infrastructure/repository"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
)

var (
	ErrMissingStore      = errors.New("loja do evento é obrigatória")
	ErrInvalidPeriodType = errors.New("tipo de período inválido para snapshot")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// snapshotPeriodTypes são as granularidades materializáveis de tráfego
var snapshotPeriodTypes = map[domain.PeriodType]struct{}{
	domain.PeriodDaily:   {},
	domain.PeriodWeekly:  {},
	domain.PeriodMonthly: {},
	domain.PeriodYearly:  {},
}

// TrafficService registra eventos brutos de visita e materializa snapshots
// por bucket. A ingestão é melhor esforço; a materialização é idempotente.
type TrafficService interface {
	RecordPageView(storeID, visitorID, page string)
	RecordSnapshot(storeID string, date time.Time, periodType domain.PeriodType) (*domain.AnalyticsSnapshot, error)
	ListSnapshots(storeID string, periodType domain.PeriodType, start, end time.Time) ([]*domain.AnalyticsSnapshot, error)
}

type Service struct {
	pageViewRepo repository.PageViewRepository
	snapshotRepo repository.AnalyticsSnapshotRepository
}

func NewService(
	pageViewRepo repository.PageViewRepository,
	snapshotRepo repository.AnalyticsSnapshotRepository,
) TrafficService {
	return &Service{
		pageViewRepo: pageViewRepo,
		snapshotRepo: snapshotRepo,
	}
}

// RecordPageView ingere um evento de visita. Fire-and-forget: falha é
// registrada em log e descartada, o rastreamento de tráfego é perdível por
// contrato.
func (s *Service) RecordPageView(storeID, visitorID, page string) {
	if storeID == "" || visitorID == "" {
		return
	}

	view := &domain.PageView{
		StoreID:   storeID,
		VisitorID: visitorID,
		Page:      page,
	}

	if err := s.pageViewRepo.Insert(view); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"store_id": storeID,
			"page":     page,
		}).Warn("Erro ao registrar page view, evento descartado")
	}
}

// RecordSnapshot materializa os contadores do bucket canônico que contém a
// data informada. O agregado vem sempre da fonte autoritativa (eventos
// brutos), nunca do snapshot anterior: reprocessar o mesmo bucket com os
// mesmos eventos converge para os mesmos contadores em vez de duplicá-los.
func (s *Service) RecordSnapshot(storeID string, date time.Time, periodType domain.PeriodType) (*domain.AnalyticsSnapshot, error) {
	if storeID == "" {
		return nil, ErrMissingStore
	}

	if _, ok := snapshotPeriodTypes[periodType]; !ok {
		return nil, ErrInvalidPeriodType
	}

	bucketStart := periodType.BucketStart(date)
	bucketEnd := periodType.Next(bucketStart)

	aggregate, err := s.pageViewRepo.AggregateRange(storeID, bucketStart, bucketEnd)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"store_id":    storeID,
			"period_type": periodType,
		}).Error("Erro ao agregar page views para snapshot")
		return nil, err
	}

	snapshot := &domain.AnalyticsSnapshot{
		StoreID:        storeID,
		PeriodType:     periodType,
		PeriodStart:    bucketStart,
		PageViews:      aggregate.PageViews,
		UniqueVisitors: aggregate.UniqueVisitors,
	}

	if err := s.snapshotRepo.Upsert(snapshot); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"store_id":    storeID,
			"period_type": periodType,
		}).Error("Erro ao gravar snapshot de tráfego")
		return nil, err
	}

	return snapshot, nil
}

func (s *Service) ListSnapshots(storeID string, periodType domain.PeriodType, start, end time.Time) ([]*domain.AnalyticsSnapshot, error) {
	if _, ok := snapshotPeriodTypes[periodType]; !ok {
		return nil, ErrInvalidPeriodType
	}

	snapshots, err := s.snapshotRepo.ListRange(storeID, periodType, start, end)
	if err != nil {
		logrus.WithError(err).WithField("store_id", storeID).Error("Erro ao listar snapshots de tráfego")
		return nil, err
	}

	return snapshots, nil
}
