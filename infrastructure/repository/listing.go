package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/seller-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-ops-api/internal/domain"
	"github.com/vfg2006/seller-ops-api/pkg/utils"
)

const (
	listingsTable   = "listings"
	listingsColumns = "id, item_id, title, sku, price, quantity, quantity_sold, listing_type, " +
		"start_time, end_time, view_count, watch_count, condition, gallery_url, is_active, last_updated"
)

type ListingRepository interface {
	GetByItemID(itemID string) (*domain.Listing, error)
	ListActive() ([]*domain.Listing, error)
	ListPage(status domain.ListingStatus, limit, offset int) ([]*domain.Listing, error)
	CountByActive(active bool) (int, error)
	Save(listing *domain.Listing) error
	Update(listing *domain.Listing) error
	DeactivateMissing(activeItemIDs []string) (int64, error)
}

type listingRepository struct {
	conn *postgres.Connection
}

func NewListingRepository(conn *postgres.Connection) ListingRepository {
	return &listingRepository{
		conn: conn,
	}
}

func (r *listingRepository) GetByItemID(itemID string) (*domain.Listing, error) {
	query, args, err := squirrel.
		Select(listingsColumns).
		From(listingsTable).
		Where(squirrel.Eq{"item_id": itemID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	listing, err := scanListing(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
	}

	return listing, nil
}

func (r *listingRepository) ListActive() ([]*domain.Listing, error) {
	return r.list(squirrel.
		Select(listingsColumns).
		From(listingsTable).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("start_time ASC NULLS LAST"))
}

// ListPage pagina a listagem do painel. O filtro "stale" é calculado em
// memória pelo usecase, então aqui só entram active/inactive/all.
func (r *listingRepository) ListPage(status domain.ListingStatus, limit, offset int) ([]*domain.Listing, error) {
	builder := squirrel.
		Select(listingsColumns).
		From(listingsTable).
		OrderBy("last_updated DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	switch status {
	case domain.ListingStatusActive:
		builder = builder.Where(squirrel.Eq{"is_active": true})
	case domain.ListingStatusInactive:
		builder = builder.Where(squirrel.Eq{"is_active": false})
	}

	return r.list(builder)
}

func (r *listingRepository) CountByActive(active bool) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(listingsTable).
		Where(squirrel.Eq{"is_active": active}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar anúncios: %w", err)
	}

	return total, nil
}

func (r *listingRepository) Save(listing *domain.Listing) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar identificador do anúncio: %w", err)
	}
	listing.ID = id

	query, args, err := squirrel.StatementBuilder.
		Insert(listingsTable).
		Columns("id", "item_id", "title", "sku", "price", "quantity", "quantity_sold",
			"listing_type", "start_time", "end_time", "view_count", "watch_count",
			"condition", "gallery_url", "is_active").
		Values(
			listing.ID,
			listing.ItemID,
			listing.Title,
			listing.SKU,
			listing.Price,
			listing.Quantity,
			listing.QuantitySold,
			listing.ListingType,
			listing.StartTime,
			listing.EndTime,
			listing.ViewCount,
			listing.WatchCount,
			listing.Condition,
			listing.GalleryURL,
			listing.IsActive,
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
		return fmt.Errorf("erro ao inserir anúncio: %w", err)
	}

	return nil
}

// Update grava os campos mutáveis do espelho (os que mudam a cada sincronização)
func (r *listingRepository) Update(listing *domain.Listing) error {
	query, args, err := squirrel.StatementBuilder.
		Update(listingsTable).
		Set("title", listing.Title).
		Set("price", listing.Price).
		Set("quantity", listing.Quantity).
		Set("quantity_sold", listing.QuantitySold).
		Set("view_count", listing.ViewCount).
		Set("watch_count", listing.WatchCount).
		Set("is_active", listing.IsActive).
		Set("last_updated", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"item_id": listing.ItemID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar anúncio: %w", err)
	}

	return nil
}

// DeactivateMissing desativa todo anúncio ativo cujo item_id não veio na
// passada de sincronização atual. A comparação usa somente o conjunto desta
// passada, nunca um conjunto parcial de passadas anteriores.
func (r *listingRepository) DeactivateMissing(activeItemIDs []string) (int64, error) {
	result, err := r.conn.Exec(
		`UPDATE listings SET is_active = false, last_updated = NOW()
		 WHERE is_active = true AND NOT (item_id = ANY($1))`,
		pq.Array(activeItemIDs),
	)
	if err != nil {
		return 0, fmt.Errorf("erro ao desativar anúncios ausentes: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *listingRepository) list(builder squirrel.SelectBuilder) ([]*domain.Listing, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	listings := make([]*domain.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncios: %w", err)
		}
		listings = append(listings, listing)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return listings, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	listing := &domain.Listing{}
	var sku, listingType, condition, galleryURL sql.NullString
	var startTime, endTime sql.NullTime

	err := row.Scan(
		&listing.ID,
		&listing.ItemID,
		&listing.Title,
		&sku,
		&listing.Price,
		&listing.Quantity,
		&listing.QuantitySold,
		&listingType,
		&startTime,
		&endTime,
		&listing.ViewCount,
		&listing.WatchCount,
		&condition,
		&galleryURL,
		&listing.IsActive,
		&listing.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	listing.SKU = sku.String
	listing.ListingType = listingType.String
	listing.Condition = condition.String
	listing.GalleryURL = galleryURL.String
	if startTime.Valid {
		t := startTime.Time
		listing.StartTime = &t
	}
	if endTime.Valid {
		t := endTime.Time
		listing.EndTime = &t
	}

	return listing, nil
}
