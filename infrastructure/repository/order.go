package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/storefront-saas-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
)

const (
	ordersTable = "orders o"
)

// OrderRepository lê o domínio de pedidos (colaborador externo). Apenas
// pedidos com payment_status = PAID entram nas agregações; a data de
// referência é paid_at.
type OrderRepository interface {
	SumPaidByStore(storeID string, start, end time.Time) (float64, error)
	SumPaidAllStores(start, end time.Time) (float64, error)
	CountersByStore() ([]*domain.StoreCounters, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// SumPaidByStore soma a receita de pedidos pagos de uma loja no intervalo
// meio-aberto [start, end)
func (r *orderRepository) SumPaidByStore(storeID string, start, end time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(o.total), 0)").
		From(ordersTable).
		Where(squirrel.Eq{"o.store_id": storeID, "o.payment_status": domain.PaymentPaid}).
		Where(squirrel.GtOrEq{"o.paid_at": start}).
		Where(squirrel.Lt{"o.paid_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar pedidos pagos: %w", err)
	}

	return total, nil
}

// SumPaidAllStores soma a receita de pedidos pagos da plataforma inteira no
// intervalo meio-aberto [start, end). Usado apenas pelo rollup
// administrativo; o resultado é um agregado sem identificadores de tenant.
func (r *orderRepository) SumPaidAllStores(start, end time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(o.total), 0)").
		From(ordersTable).
		Where(squirrel.Eq{"o.payment_status": domain.PaymentPaid}).
		Where(squirrel.GtOrEq{"o.paid_at": start}).
		Where(squirrel.Lt{"o.paid_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar pedidos pagos da plataforma: %w", err)
	}

	return total, nil
}

// CountersByStore recalcula os contadores denormalizados de todas as lojas a
// partir da fonte autoritativa (pedidos pagos), nunca de forma incremental
func (r *orderRepository) CountersByStore() ([]*domain.StoreCounters, error) {
	query, args, err := squirrel.
		Select("o.store_id", "COALESCE(SUM(o.total), 0)", "COUNT(*)").
		From(ordersTable).
		Where(squirrel.Eq{"o.payment_status": domain.PaymentPaid}).
		GroupBy("o.store_id").
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

	counters := make([]*domain.StoreCounters, 0)
	for rows.Next() {
		counter := &domain.StoreCounters{}
		if err := rows.Scan(&counter.StoreID, &counter.TotalRevenue, &counter.TotalSales); err != nil {
			return nil, fmt.Errorf("erro ao escanear contadores: %w", err)
		}
		counters = append(counters, counter)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counters, nil
}
