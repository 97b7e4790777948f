package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/storefront-saas-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"github.com/vfg2006/storefront-saas-api/pkg/utils"
)

const (
	ledgerTable = "financial_transactions ft"
)

const ledgerColumns = "ft.id, ft.reference, ft.store_id, ft.type, ft.category, ft.amount, ft.description, ft.external_ref, ft.tags, ft.transaction_date, ft.recurring, ft.created_at, ft.updated_at"

// LedgerRepository persiste os lançamentos do livro-caixa. Todas as queries
// carregam o store_id como filtro obrigatório: não existe caminho que leia
// linhas de outro tenant.
type LedgerRepository interface {
	Insert(entry *domain.FinancialTransaction) (*domain.FinancialTransaction, error)
	GetByIDAndStore(entryID int, storeID string) (*domain.FinancialTransaction, error)
	Update(entry *domain.FinancialTransaction) error
	Delete(entryID int, storeID string) (bool, error)
	List(storeID string, filters *domain.TransactionFilters, page domain.Pagination) (*domain.TransactionPage, error)
	SumByType(storeID string, txType domain.TransactionType, start, end time.Time) (float64, error)
	CategoryTotals(storeID string, start, end time.Time) ([]*domain.CategoryTotal, error)
}

type ledgerRepository struct {
	conn *postgres.Connection
}

func NewLedgerRepository(conn *postgres.Connection) LedgerRepository {
	return &ledgerRepository{
		conn: conn,
	}
}

func (r *ledgerRepository) Insert(entry *domain.FinancialTransaction) (*domain.FinancialTransaction, error) {
	query, args, err := squirrel.
		Insert("financial_transactions").
		Columns("reference", "store_id", "type", "category", "amount", "description", "external_ref", "tags", "transaction_date", "recurring").
		Values(
			entry.Reference,
			entry.StoreID,
			entry.Type,
			entry.Category,
			entry.Amount,
			entry.Description,
			entry.ExternalRef,
			pq.Array(entry.Tags),
			entry.TransactionDate,
			entry.Recurring,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir lançamento: %w", err)
	}

	return entry, nil
}

func (r *ledgerRepository) GetByIDAndStore(entryID int, storeID string) (*domain.FinancialTransaction, error) {
	query, args, err := squirrel.
		Select(ledgerColumns).
		From(ledgerTable).
		Where(squirrel.Eq{"ft.id": entryID, "ft.store_id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
	}

	return entry, nil
}

func (r *ledgerRepository) Update(entry *domain.FinancialTransaction) error {
	query, args, err := squirrel.
		Update("financial_transactions").
		Set("type", entry.Type).
		Set("category", entry.Category).
		Set("amount", entry.Amount).
		Set("description", entry.Description).
		Set("external_ref", entry.ExternalRef).
		Set("tags", pq.Array(entry.Tags)).
		Set("transaction_date", entry.TransactionDate).
		Set("recurring", entry.Recurring).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": entry.ID, "store_id": entry.StoreID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar lançamento: %w", err)
	}

	return nil
}

func (r *ledgerRepository) Delete(entryID int, storeID string) (bool, error) {
	query, args, err := squirrel.
		Delete("financial_transactions").
		Where(squirrel.Eq{"id": entryID, "store_id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao excluir lançamento: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *ledgerRepository) List(storeID string, filters *domain.TransactionFilters, page domain.Pagination) (*domain.TransactionPage, error) {
	base := squirrel.
		Select(ledgerColumns).
		From(ledgerTable).
		Where(squirrel.Eq{"ft.store_id": storeID})

	countBase := squirrel.
		Select("COUNT(*)").
		From(ledgerTable).
		Where(squirrel.Eq{"ft.store_id": storeID})

	if filters != nil {
		base = applyTransactionFilters(base, filters)
		countBase = applyTransactionFilters(countBase, filters)
	}

	countQuery, countArgs, err := countBase.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("erro ao contar lançamentos: %w", err)
	}

	// Ordenação estável: data do lançamento decrescente, empates resolvidos
	// pela ordem de inserção
	query, args, err := base.
		OrderBy("ft.transaction_date DESC", "ft.id DESC").
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

	items := make([]*domain.FinancialTransaction, 0)
	for rows.Next() {
		entry, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamentos: %w", err)
		}
		items = append(items, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return &domain.TransactionPage{
		Items: items,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

func applyTransactionFilters(builder squirrel.SelectBuilder, filters *domain.TransactionFilters) squirrel.SelectBuilder {
	if filters.Type != nil {
		builder = builder.Where(squirrel.Eq{"ft.type": *filters.Type})
	}

	if filters.Category != nil {
		builder = builder.Where(squirrel.Eq{"ft.category": *filters.Category})
	}

	if filters.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"ft.transaction_date": *filters.StartDate})
	}

	if filters.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"ft.transaction_date": utils.EndOfDay(*filters.EndDate)})
	}

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"ft.description": pattern},
			squirrel.ILike{"ft.external_ref": pattern},
		})
	}

	if len(filters.Tags) > 0 {
		// Interseção de tags: o lançamento precisa conter todas as
		// tags informadas
		builder = builder.Where("ft.tags @> ?", pq.Array(filters.Tags))
	}

	return builder
}

// SumByType soma os valores de um tipo no intervalo meio-aberto [start, end)
func (r *ledgerRepository) SumByType(storeID string, txType domain.TransactionType, start, end time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(ft.amount), 0)").
		From(ledgerTable).
		Where(squirrel.Eq{"ft.store_id": storeID, "ft.type": txType}).
		Where(squirrel.GtOrEq{"ft.transaction_date": start}).
		Where(squirrel.Lt{"ft.transaction_date": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar lançamentos: %w", err)
	}

	return total, nil
}

func (r *ledgerRepository) CategoryTotals(storeID string, start, end time.Time) ([]*domain.CategoryTotal, error) {
	query, args, err := squirrel.
		Select("ft.type", "ft.category", "COALESCE(SUM(ft.amount), 0)").
		From(ledgerTable).
		Where(squirrel.Eq{"ft.store_id": storeID}).
		Where(squirrel.GtOrEq{"ft.transaction_date": start}).
		Where(squirrel.Lt{"ft.transaction_date": end}).
		GroupBy("ft.type", "ft.category").
		OrderBy("ft.type", "ft.category").
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

	totals := make([]*domain.CategoryTotal, 0)
	for rows.Next() {
		total := &domain.CategoryTotal{}
		if err := rows.Scan(&total.Type, &total.Category, &total.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais por categoria: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*domain.FinancialTransaction, error) {
	entry := &domain.FinancialTransaction{}
	var tags pq.StringArray

	err := row.Scan(
		&entry.ID,
		&entry.Reference,
		&entry.StoreID,
		&entry.Type,
		&entry.Category,
		&entry.Amount,
		&entry.Description,
		&entry.ExternalRef,
		&tags,
		&entry.TransactionDate,
		&entry.Recurring,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Tags = tags

	return entry, nil
}
