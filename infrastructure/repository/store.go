package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/storefront-saas-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
)

const (
	storesTable = "stores st"
)

const storeColumns = "st.id, st.name, st.owner_user_id, st.active, st.verified, st.suspended, st.total_revenue, st.total_sales, st.created_at, st.updated_at"

type StoreRepository interface {
	GetByID(id string) (*domain.Store, error)
	ListActive() ([]*domain.Store, error)
	List(filters *domain.StoreFilters, page domain.Pagination) (*domain.StorePage, error)
	SetSuspended(id string, suspended bool) error
	SetVerified(id string, verified bool) error
	UpdateCounters(counters *domain.StoreCounters) error
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) GetByID(id string) (*domain.Store, error) {
	query, args, err := squirrel.
		Select(storeColumns).
		From(storesTable).
		Where(squirrel.Eq{"st.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	store, err := scanStore(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear loja: %w", err)
	}

	return store, nil
}

// ListActive retorna as lojas ativas e não suspensas, usadas pelos
// agendadores para iterar os tenants
func (r *storeRepository) ListActive() ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select(storeColumns).
		From(storesTable).
		Where(squirrel.Eq{"st.active": true, "st.suspended": false}).
		OrderBy("st.id").
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

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lojas: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

func (r *storeRepository) List(filters *domain.StoreFilters, page domain.Pagination) (*domain.StorePage, error) {
	base := squirrel.
		Select(storeColumns).
		From(storesTable)

	countBase := squirrel.
		Select("COUNT(*)").
		From(storesTable)

	if filters != nil {
		base = applyStoreFilters(base, filters)
		countBase = applyStoreFilters(countBase, filters)
	}

	countQuery, countArgs, err := countBase.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("erro ao contar lojas: %w", err)
	}

	query, args, err := base.
		OrderBy("st.created_at DESC", "st.id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
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

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lojas: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return &domain.StorePage{
		Items: stores,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

func applyStoreFilters(builder squirrel.SelectBuilder, filters *domain.StoreFilters) squirrel.SelectBuilder {
	if filters.Active != nil {
		builder = builder.Where(squirrel.Eq{"st.active": *filters.Active})
	}

	if filters.Suspended != nil {
		builder = builder.Where(squirrel.Eq{"st.suspended": *filters.Suspended})
	}

	if filters.Verified != nil {
		builder = builder.Where(squirrel.Eq{"st.verified": *filters.Verified})
	}

	if filters.Search != "" {
		builder = builder.Where(squirrel.ILike{"st.name": "%" + filters.Search + "%"})
	}

	return builder
}

func (r *storeRepository) SetSuspended(id string, suspended bool) error {
	return r.setFlag(id, "suspended", suspended)
}

func (r *storeRepository) SetVerified(id string, verified bool) error {
	return r.setFlag(id, "verified", verified)
}

func (r *storeRepository) setFlag(id string, column string, value bool) error {
	query, args, err := squirrel.
		Update("stores").
		Set(column, value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar loja: %w", err)
	}

	return nil
}

func (r *storeRepository) UpdateCounters(counters *domain.StoreCounters) error {
	query, args, err := squirrel.
		Update("stores").
		Set("total_revenue", counters.TotalRevenue).
		Set("total_sales", counters.TotalSales).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": counters.StoreID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar contadores da loja: %w", err)
	}

	return nil
}

func scanStore(row rowScanner) (*domain.Store, error) {
	store := &domain.Store{}

	err := row.Scan(
		&store.ID,
		&store.Name,
		&store.OwnerUserID,
		&store.Active,
		&store.Verified,
		&store.Suspended,
		&store.TotalRevenue,
		&store.TotalSales,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return store, nil
}
