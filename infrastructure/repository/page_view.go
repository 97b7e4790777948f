package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/storefront-saas-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
)

const (
	pageViewsTable = "page_views pv"
)

// PageViewRepository persiste os eventos brutos de visita. A tabela é
// append-only: o agregador sempre recalcula a partir daqui, nunca de um
// snapshot anterior.
type PageViewRepository interface {
	Insert(view *domain.PageView) error
	AggregateRange(storeID string, start, end time.Time) (*domain.TrafficAggregate, error)
}

type pageViewRepository struct {
	conn *postgres.Connection
}

func NewPageViewRepository(conn *postgres.Connection) PageViewRepository {
	return &pageViewRepository{
		conn: conn,
	}
}

func (r *pageViewRepository) Insert(view *domain.PageView) error {
	query, args, err := squirrel.
		Insert("page_views").
		Columns("store_id", "visitor_id", "page").
		Values(view.StoreID, view.VisitorID, view.Page).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir page view: %w", err)
	}

	return nil
}

// AggregateRange conta visualizações e visitantes únicos de uma loja no
// intervalo meio-aberto [start, end)
func (r *pageViewRepository) AggregateRange(storeID string, start, end time.Time) (*domain.TrafficAggregate, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "COUNT(DISTINCT pv.visitor_id)").
		From(pageViewsTable).
		Where(squirrel.Eq{"pv.store_id": storeID}).
		Where(squirrel.GtOrEq{"pv.created_at": start}).
		Where(squirrel.Lt{"pv.created_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	aggregate := &domain.TrafficAggregate{}
	if err := r.conn.QueryRow(query, args...).Scan(&aggregate.PageViews, &aggregate.UniqueVisitors); err != nil {
		return nil, fmt.Errorf("erro ao agregar page views: %w", err)
	}

	return aggregate, nil
}
