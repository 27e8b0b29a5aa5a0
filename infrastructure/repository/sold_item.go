package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/seller-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-ops-api/internal/domain"
	"github.com/vfg2006/seller-ops-api/pkg/utils"
)

const (
	soldItemsTable   = "sold_items"
	soldItemsColumns = "id, item_id, transaction_id, title, buyer_id, buyer_email, sale_price, quantity, " +
		"created_date, paid_time, shipped_time, feedback_received, feedback_requested, feedback_requested_at, last_updated"
)

type SoldItemRepository interface {
	GetByTransactionID(transactionID string) (*domain.SoldItem, error)
	ListFeedbackPending() ([]*domain.SoldItem, error)
	CountFeedbackPending() (int, error)
	Save(item *domain.SoldItem) error
	SetFeedbackReceived(transactionID string, received bool) error
	MarkFeedbackRequested(transactionID string, requestedAt time.Time) error
}

type soldItemRepository struct {
	conn *postgres.Connection
}

func NewSoldItemRepository(conn *postgres.Connection) SoldItemRepository {
	return &soldItemRepository{
		conn: conn,
	}
}

func (r *soldItemRepository) GetByTransactionID(transactionID string) (*domain.SoldItem, error) {
	query, args, err := squirrel.
		Select(soldItemsColumns).
		From(soldItemsTable).
		Where(squirrel.Eq{"transaction_id": transactionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	item, err := scanSoldItem(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	return item, nil
}

// ListFeedbackPending devolve as vendas sem feedback pedido nem recebido.
// Os filtros de envio e idade mínima ficam no motor de regras.
func (r *soldItemRepository) ListFeedbackPending() ([]*domain.SoldItem, error) {
	query, args, err := squirrel.
		Select(soldItemsColumns).
		From(soldItemsTable).
		Where(squirrel.Eq{"feedback_requested": false, "feedback_received": false}).
		OrderBy("created_date ASC NULLS LAST").
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

	items := make([]*domain.SoldItem, 0)
	for rows.Next() {
		item, err := scanSoldItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *soldItemRepository) CountFeedbackPending() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(soldItemsTable).
		Where(squirrel.Eq{"feedback_requested": false, "feedback_received": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar vendas pendentes: %w", err)
	}

	return total, nil
}

func (r *soldItemRepository) Save(item *domain.SoldItem) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar identificador da venda: %w", err)
	}
	item.ID = id

	query, args, err := squirrel.StatementBuilder.
		Insert(soldItemsTable).
		Columns("id", "item_id", "transaction_id", "title", "buyer_id", "buyer_email",
			"sale_price", "quantity", "created_date", "paid_time", "shipped_time", "feedback_received").
		Values(
			item.ID,
			item.ItemID,
			item.TransactionID,
			item.Title,
			item.BuyerID,
			item.BuyerEmail,
			item.SalePrice,
			item.Quantity,
			item.CreatedDate,
			item.PaidTime,
			item.ShippedTime,
			item.FeedbackReceived,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return nil
}

func (r *soldItemRepository) SetFeedbackReceived(transactionID string, received bool) error {
	query, args, err := squirrel.StatementBuilder.
		Update(soldItemsTable).
		Set("feedback_received", received).
		Set("last_updated", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"transaction_id": transactionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar feedback recebido: %w", err)
	}

	return nil
}

func (r *soldItemRepository) MarkFeedbackRequested(transactionID string, requestedAt time.Time) error {
	query, args, err := squirrel.StatementBuilder.
		Update(soldItemsTable).
		Set("feedback_requested", true).
		Set("feedback_requested_at", requestedAt).
		Set("last_updated", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"transaction_id": transactionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao marcar feedback solicitado: %w", err)
	}

	return nil
}

func scanSoldItem(row rowScanner) (*domain.SoldItem, error) {
	item := &domain.SoldItem{}
	var title, buyerEmail sql.NullString
	var createdDate, paidTime, shippedTime, feedbackRequestedAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.ItemID,
		&item.TransactionID,
		&title,
		&item.BuyerID,
		&buyerEmail,
		&item.SalePrice,
		&item.Quantity,
		&createdDate,
		&paidTime,
		&shippedTime,
		&item.FeedbackReceived,
		&item.FeedbackRequested,
		&feedbackRequestedAt,
		&item.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	item.Title = title.String
	item.BuyerEmail = buyerEmail.String
	if createdDate.Valid {
		t := createdDate.Time
		item.CreatedDate = &t
	}
	if paidTime.Valid {
		t := paidTime.Time
		item.PaidTime = &t
	}
	if shippedTime.Valid {
		t := shippedTime.Time
		item.ShippedTime = &t
	}
	if feedbackRequestedAt.Valid {
		t := feedbackRequestedAt.Time
		item.FeedbackRequestedAt = &t
	}

	return item, nil
}
