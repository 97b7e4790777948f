package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/storefront-saas-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
)

const (
	subscriptionsTable = "subscriptions s"
)

// SubscriptionRepository lê o domínio de assinaturas (colaborador externo)
type SubscriptionRepository interface {
	CountByStatus() (*domain.SubscriptionStatusCount, error)
	PlanTotals() ([]*domain.PlanTotal, error)
	SumActivePriceStartedInRange(start, end time.Time) (float64, error)
	SumActivePriceByStore(storeID string, start, end time.Time) (float64, error)
	SumActivePrices() (float64, error)
	RecentPayments(limit int) ([]*domain.RecentPayment, error)
}

type subscriptionRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionRepository(conn *postgres.Connection) SubscriptionRepository {
	return &subscriptionRepository{
		conn: conn,
	}
}

func (r *subscriptionRepository) CountByStatus() (*domain.SubscriptionStatusCount, error) {
	query, args, err := squirrel.
		Select("s.status", "COUNT(*)").
		From(subscriptionsTable).
		GroupBy("s.status").
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

	counts := &domain.SubscriptionStatusCount{}
	for rows.Next() {
		var status domain.SubscriptionStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem por status: %w", err)
		}

		counts.Total += count
		switch status {
		case domain.SubscriptionActive:
			counts.Active = count
		case domain.SubscriptionTrial:
			counts.Trial = count
		case domain.SubscriptionExpired:
			counts.Expired = count
		case domain.SubscriptionCancelled:
			counts.Cancelled = count
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

// PlanTotals agrega quantidade e receita das assinaturas ativas por plano
func (r *subscriptionRepository) PlanTotals() ([]*domain.PlanTotal, error) {
	query, args, err := squirrel.
		Select("s.plan", "COUNT(*)", "COALESCE(SUM(s.price), 0)").
		From(subscriptionsTable).
		Where(squirrel.Eq{"s.status": domain.SubscriptionActive}).
		GroupBy("s.plan").
		OrderBy("s.plan").
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

	totals := make([]*domain.PlanTotal, 0)
	for rows.Next() {
		total := &domain.PlanTotal{}
		if err := rows.Scan(&total.Plan, &total.Subscriptions, &total.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais por plano: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

// SumActivePriceStartedInRange soma os preços das assinaturas ativas cuja
// start_date cai no intervalo meio-aberto [start, end)
func (r *subscriptionRepository) SumActivePriceStartedInRange(start, end time.Time) (float64, error) {
	return r.sumActivePrice(squirrel.
		Select("COALESCE(SUM(s.price), 0)").
		From(subscriptionsTable).
		Where(squirrel.Eq{"s.status": domain.SubscriptionActive}).
		Where(squirrel.GtOrEq{"s.start_date": start}).
		Where(squirrel.Lt{"s.start_date": end}))
}

// SumActivePriceByStore é a visão por tenant de SumActivePriceStartedInRange
func (r *subscriptionRepository) SumActivePriceByStore(storeID string, start, end time.Time) (float64, error) {
	return r.sumActivePrice(squirrel.
		Select("COALESCE(SUM(s.price), 0)").
		From(subscriptionsTable).
		Where(squirrel.Eq{"s.status": domain.SubscriptionActive, "s.store_id": storeID}).
		Where(squirrel.GtOrEq{"s.start_date": start}).
		Where(squirrel.Lt{"s.start_date": end}))
}

// SumActivePrices soma os preços de todas as assinaturas ativas da plataforma
func (r *subscriptionRepository) SumActivePrices() (float64, error) {
	return r.sumActivePrice(squirrel.
		Select("COALESCE(SUM(s.price), 0)").
		From(subscriptionsTable).
		Where(squirrel.Eq{"s.status": domain.SubscriptionActive}))
}

func (r *subscriptionRepository) sumActivePrice(builder squirrel.SelectBuilder) (float64, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar assinaturas: %w", err)
	}

	return total, nil
}

// RecentPayments projeta as últimas assinaturas com apenas os campos seguros
// para exibição administrativa. Nenhuma linha do livro-caixa de loja passa
// por aqui.
func (r *subscriptionRepository) RecentPayments(limit int) ([]*domain.RecentPayment, error) {
	query, args, err := squirrel.
		Select("u.name", "u.email", "s.plan", "s.price", "s.status", "s.start_date").
		From(subscriptionsTable).
		Join("users u ON u.id = s.user_id").
		OrderBy("s.start_date DESC").
		Limit(uint64(limit)).
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

	payments := make([]*domain.RecentPayment, 0)
	for rows.Next() {
		payment := &domain.RecentPayment{}
		err := rows.Scan(
			&payment.UserName,
			&payment.UserEmail,
			&payment.Plan,
			&payment.Amount,
			&payment.Status,
			&payment.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pagamentos recentes: %w", err)
		}
		payments = append(payments, payment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return payments, nil
}
