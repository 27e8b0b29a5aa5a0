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

const offersSentTable = "offers_sent"

type OfferSentRepository interface {
	Create(offer *domain.OfferSent) error
	GetLatestByItemID(itemID string) (*domain.OfferSent, error)
	CountSince(since time.Time) (int64, error)
}

type offerSentRepository struct {
	conn *postgres.Connection
}

func NewOfferSentRepository(conn *postgres.Connection) OfferSentRepository {
	return &offerSentRepository{
		conn: conn,
	}
}

func (r *offerSentRepository) Create(offer *domain.OfferSent) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar identificador da oferta: %w", err)
	}
	offer.ID = id

	if offer.SentAt.IsZero() {
		offer.SentAt = time.Now().UTC()
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(offersSentTable).
		Columns("id", "listing_id", "item_id", "buyer_id", "offer_price", "original_price",
			"discount_percent", "message", "sent_at", "success", "error_message").
		Values(
			offer.ID,
			offer.ListingID,
			offer.ItemID,
			offer.BuyerID,
			offer.OfferPrice,
			offer.OriginalPrice,
			offer.DiscountPercent,
			offer.Message,
			offer.SentAt,
			offer.Success,
			offer.ErrorMessage,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir oferta: %w", err)
	}

	return nil
}

// GetLatestByItemID devolve a oferta mais recente do item (nil quando nunca houve)
func (r *offerSentRepository) GetLatestByItemID(itemID string) (*domain.OfferSent, error) {
	query, args, err := squirrel.
		Select("id, listing_id, item_id, buyer_id, offer_price, original_price, discount_percent, message, sent_at, success, error_message").
		From(offersSentTable).
		Where(squirrel.Eq{"item_id": itemID}).
		OrderBy("sent_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	offer := &domain.OfferSent{}
	var buyerID, message, errorMessage sql.NullString

	err = r.conn.QueryRow(query, args...).Scan(
		&offer.ID,
		&offer.ListingID,
		&offer.ItemID,
		&buyerID,
		&offer.OfferPrice,
		&offer.OriginalPrice,
		&offer.DiscountPercent,
		&message,
		&offer.SentAt,
		&offer.Success,
		&errorMessage,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear oferta: %w", err)
	}

	if buyerID.Valid {
		offer.BuyerID = &buyerID.String
	}
	if errorMessage.Valid {
		offer.ErrorMessage = &errorMessage.String
	}
	offer.Message = message.String

	return offer, nil
}

func (r *offerSentRepository) CountSince(since time.Time) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(offersSentTable).
		Where(squirrel.GtOrEq{"sent_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar ofertas: %w", err)
	}

	return total, nil
}
