package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/seller-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-ops-api/internal/domain"
	"github.com/vfg2006/seller-ops-api/pkg/utils"
)

const relistHistoryTable = "relist_history"

type RelistHistoryRepository interface {
	Create(entry *domain.RelistHistory) error
	GetLatestByItemID(itemID string) (*domain.RelistHistory, error)
	CountSince(since time.Time) (int64, error)
}

type relistHistoryRepository struct {
	conn *postgres.Connection
}

func NewRelistHistoryRepository(conn *postgres.Connection) RelistHistoryRepository {
	return &relistHistoryRepository{
		conn: conn,
	}
}

func (r *relistHistoryRepository) Create(entry *domain.RelistHistory) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar identificador do histórico: %w", err)
	}
	entry.ID = id

	if entry.RelistedAt.IsZero() {
		entry.RelistedAt = time.Now().UTC()
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(relistHistoryTable).
		Columns("id", "listing_id", "item_id", "new_item_id", "relisted_at", "reason", "success", "error_message").
		Values(
			entry.ID,
			entry.ListingID,
			entry.ItemID,
			entry.NewItemID,
			entry.RelistedAt,
			entry.Reason,
			entry.Success,
			entry.ErrorMessage,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir histórico de relistagem: %w", err)
	}

	return nil
}

// GetLatestByItemID devolve a tentativa mais recente do item (nil quando nunca relistado)
func (r *relistHistoryRepository) GetLatestByItemID(itemID string) (*domain.RelistHistory, error) {
	query, args, err := squirrel.
		Select("id, listing_id, item_id, new_item_id, relisted_at, reason, success, error_message").
		From(relistHistoryTable).
		Where(squirrel.Eq{"item_id": itemID}).
		OrderBy("relisted_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry := &domain.RelistHistory{}
	var newItemID, errorMessage sql.NullString
	var reason sql.NullString

	err = r.conn.QueryRow(query, args...).Scan(
		&entry.ID,
		&entry.ListingID,
		&entry.ItemID,
		&newItemID,
		&entry.RelistedAt,
		&reason,
		&entry.Success,
		&errorMessage,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear histórico de relistagem: %w", err)
	}

	if newItemID.Valid {
		entry.NewItemID = &newItemID.String
	}
	if errorMessage.Valid {
		entry.ErrorMessage = &errorMessage.String
	}
	entry.Reason = reason.String

	return entry, nil
}

func (r *relistHistoryRepository) CountSince(since time.Time) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(relistHistoryTable).
		Where(squirrel.GtOrEq{"relisted_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar relistagens: %w", err)
	}

	return total, nil
}
