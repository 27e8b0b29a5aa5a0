package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/seller-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-ops-api/internal/domain"
	"github.com/vfg2006/seller-ops-api/pkg/utils"
)

const automationLogsTable = "automation_logs"

type AutomationLogRepository interface {
	Create(entry *domain.AutomationLog) error
	List(actionType string, limit, offset int) ([]*domain.AutomationLog, error)
	GetLatestByAction(actionType string) (*domain.AutomationLog, error)
}

type automationLogRepository struct {
	conn *postgres.Connection
}

func NewAutomationLogRepository(conn *postgres.Connection) AutomationLogRepository {
	return &automationLogRepository{
		conn: conn,
	}
}

func (r *automationLogRepository) Create(entry *domain.AutomationLog) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar identificador do log: %w", err)
	}
	entry.ID = id

	query, args, err := squirrel.StatementBuilder.
		Insert(automationLogsTable).
		Columns("id", "action_type", "item_id", "status", "message", "details").
		Values(
			entry.ID,
			entry.ActionType,
			entry.ItemID,
			entry.Status,
			entry.Message,
			entry.Details,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir log de automação: %w", err)
	}

	return nil
}

// GetLatestByAction devolve o registro bem-sucedido mais recente da ação
// (nil quando a ação nunca rodou com sucesso)
func (r *automationLogRepository) GetLatestByAction(actionType string) (*domain.AutomationLog, error) {
	query, args, err := squirrel.
		Select("id, action_type, item_id, status, message, details, created_at").
		From(automationLogsTable).
		Where(squirrel.Eq{"action_type": actionType, "status": domain.LogStatusSuccess}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry := &domain.AutomationLog{}
	var itemID, details sql.NullString

	err = r.conn.QueryRow(query, args...).Scan(
		&entry.ID,
		&entry.ActionType,
		&itemID,
		&entry.Status,
		&entry.Message,
		&details,
		&entry.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear log de automação: %w", err)
	}

	if itemID.Valid {
		entry.ItemID = &itemID.String
	}
	if details.Valid {
		entry.Details = &details.String
	}

	return entry, nil
}

func (r *automationLogRepository) List(actionType string, limit, offset int) ([]*domain.AutomationLog, error) {
	builder := squirrel.
		Select("id, action_type, item_id, status, message, details, created_at").
		From(automationLogsTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if actionType != "" {
		builder = builder.Where(squirrel.Eq{"action_type": actionType})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.AutomationLog, 0)
	for rows.Next() {
		entry := &domain.AutomationLog{}
		var itemID, details sql.NullString

		err := rows.Scan(
			&entry.ID,
			&entry.ActionType,
			&itemID,
			&entry.Status,
			&entry.Message,
			&details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear logs: %w", err)
		}

		if itemID.Valid {
			entry.ItemID = &itemID.String
		}
		if details.Valid {
			entry.Details = &details.String
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
