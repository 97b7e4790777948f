package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/storefront-saas-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
)

const (
	analyticsSnapshotsTable = "analytics_snapshots sn"
)

// AnalyticsSnapshotRepository persiste os contadores materializados de
// tráfego. A unicidade de (store_id, period_type, period_start) é garantida
// pelo banco; a escrita é sempre um upsert, nunca um insert duplicado.
type AnalyticsSnapshotRepository interface {
	Upsert(snapshot *domain.AnalyticsSnapshot) error
	GetByBucket(storeID string, periodType domain.PeriodType, periodStart time.Time) (*domain.AnalyticsSnapshot, error)
	ListRange(storeID string, periodType domain.PeriodType, start, end time.Time) ([]*domain.AnalyticsSnapshot, error)
}

type analyticsSnapshotRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsSnapshotRepository(conn *postgres.Connection) AnalyticsSnapshotRepository {
	return &analyticsSnapshotRepository{
		conn: conn,
	}
}

func (r *analyticsSnapshotRepository) Upsert(snapshot *domain.AnalyticsSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert("analytics_snapshots").
		Columns("store_id", "period_type", "period_start", "page_views", "unique_visitors").
		Values(
			snapshot.StoreID,
			snapshot.PeriodType,
			snapshot.PeriodStart,
			snapshot.PageViews,
			snapshot.UniqueVisitors,
		).
		Suffix(`
			ON CONFLICT (store_id, period_type, period_start) DO UPDATE SET
				page_views = EXCLUDED.page_views,
				unique_visitors = EXCLUDED.unique_visitors,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *analyticsSnapshotRepository) GetByBucket(storeID string, periodType domain.PeriodType, periodStart time.Time) (*domain.AnalyticsSnapshot, error) {
	query, args, err := squirrel.
		Select("sn.id, sn.store_id, sn.period_type, sn.period_start, sn.page_views, sn.unique_visitors, sn.created_at, sn.updated_at").
		From(analyticsSnapshotsTable).
		Where(squirrel.Eq{
			"sn.store_id":     storeID,
			"sn.period_type":  periodType,
			"sn.period_start": periodStart,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.AnalyticsSnapshot{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&snapshot.ID,
		&snapshot.StoreID,
		&snapshot.PeriodType,
		&snapshot.PeriodStart,
		&snapshot.PageViews,
		&snapshot.UniqueVisitors,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *analyticsSnapshotRepository) ListRange(storeID string, periodType domain.PeriodType, start, end time.Time) ([]*domain.AnalyticsSnapshot, error) {
	query, args, err := squirrel.
		Select("sn.id, sn.store_id, sn.period_type, sn.period_start, sn.page_views, sn.unique_visitors, sn.created_at, sn.updated_at").
		From(analyticsSnapshotsTable).
		Where(squirrel.Eq{"sn.store_id": storeID, "sn.period_type": periodType}).
		Where(squirrel.GtOrEq{"sn.period_start": start}).
		Where(squirrel.Lt{"sn.period_start": end}).
		OrderBy("sn.period_start ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.AnalyticsSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.AnalyticsSnapshot{}
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.StoreID,
			&snapshot.PeriodType,
			&snapshot.PeriodStart,
			&snapshot.PageViews,
			&snapshot.UniqueVisitors,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}
