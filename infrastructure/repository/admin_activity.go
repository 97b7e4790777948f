package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/storefront-saas-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
)

const (
	adminActivityTable = "admin_activity_logs al"
)

// AdminActivityRepository é o destino da trilha de auditoria. Append-only:
// o motor de relatórios só lê daqui para montar o feed de atividade recente.
type AdminActivityRepository interface {
	Insert(activity *domain.AdminActivity) error
	ListRecent(limit int) ([]*domain.AdminActivity, error)
}

type adminActivityRepository struct {
	conn *postgres.Connection
}

func NewAdminActivityRepository(conn *postgres.Connection) AdminActivityRepository {
	return &adminActivityRepository{
		conn: conn,
	}
}

func (r *adminActivityRepository) Insert(activity *domain.AdminActivity) error {
	var metadataJSON []byte
	var err error

	if activity.Metadata != nil {
		metadataJSON, err = json.Marshal(activity.Metadata)
		if err != nil {
			return fmt.Errorf("erro ao serializar metadata para JSON: %w", err)
		}
	}

	query, args, err := squirrel.
		Insert("admin_activity_logs").
		Columns("actor_id", "action", "target_type", "target_id", "message", "metadata", "ip", "user_agent").
		Values(
			activity.ActorID,
			activity.Action,
			activity.TargetType,
			activity.TargetID,
			activity.Message,
			metadataJSON,
			activity.IP,
			activity.UserAgent,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir registro de auditoria: %w", err)
	}

	return nil
}

func (r *adminActivityRepository) ListRecent(limit int) ([]*domain.AdminActivity, error) {
	query, args, err := squirrel.
		Select("al.id, al.actor_id, al.action, al.target_type, al.target_id, al.message, al.metadata, al.ip, al.user_agent, al.created_at").
		From(adminActivityTable).
		OrderBy("al.created_at DESC", "al.id DESC").
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

	activities := make([]*domain.AdminActivity, 0)
	for rows.Next() {
		activity := &domain.AdminActivity{}
		var metadataJSON []byte

		err := rows.Scan(
			&activity.ID,
			&activity.ActorID,
			&activity.Action,
			&activity.TargetType,
			&activity.TargetID,
			&activity.Message,
			&metadataJSON,
			&activity.IP,
			&activity.UserAgent,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registros de auditoria: %w", err)
		}

		if metadataJSON != nil {
			metadata := make(map[string]any)
			if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de metadata: %w", err)
			}
			activity.Metadata = metadata
		}

		activities = append(activities, activity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return activities, nil
}
