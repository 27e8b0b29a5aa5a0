package automation

import (
	"time"

	"github.com/vfg2006/seller-ops-api/internal/domain"
	"github.com/vfg2006/seller-ops-api/pkg/apiErrors"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
	defaultLogs    = 50
	maxLogs        = 200
)

// GetListingsPage devolve uma página do espelho para o painel. O filtro
// "stale" é um predicado calculado, então essa página é montada em memória
// sobre os anúncios ativos.
func (s *Service) GetListingsPage(status domain.ListingStatus, page, perPage int) (*domain.ListingPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}
	now := time.Now().UTC()
	offset := (page - 1) * perPage

	if status == domain.ListingStatusStale {
		active, err := s.listingRepo.ListActive()
		if err != nil {
			return nil, NewAutomationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		stale := make([]*domain.Listing, 0)
		for _, listing := range active {
			if s.isStale(listing, now) {
				stale = append(stale, listing)
			}
		}

		total := len(stale)
		start := offset
		if start > total {
			start = total
		}
		end := start + perPage
		if end > total {
			end = total
		}

		items := make([]domain.ListingPageItem, 0, end-start)
		for _, listing := range stale[start:end] {
			items = append(items, s.toPageItem(listing, now))
		}

		return &domain.ListingPage{
			Items:      items,
			Total:      total,
			Page:       page,
			PerPage:    perPage,
			TotalPages: (total + perPage - 1) / perPage,
		}, nil
	}

	listings, err := s.listingRepo.ListPage(status, perPage, offset)
	if err != nil {
		return nil, NewAutomationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	var total int
	switch status {
	case domain.ListingStatusActive:
		total, err = s.listingRepo.CountByActive(true)
	case domain.ListingStatusInactive:
		total, err = s.listingRepo.CountByActive(false)
	default:
		var active, inactive int
		if active, err = s.listingRepo.CountByActive(true); err == nil {
			if inactive, err = s.listingRepo.CountByActive(false); err == nil {
				total = active + inactive
			}
		}
	}
	if err != nil {
		return nil, NewAutomationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	items := make([]domain.ListingPageItem, 0, len(listings))
	for _, listing := range listings {
		items = append(items, s.toPageItem(listing, now))
	}

	return &domain.ListingPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + perPage - 1) / perPage,
	}, nil
}

func (s *Service) toPageItem(listing *domain.Listing, now time.Time) domain.ListingPageItem {
	return domain.ListingPageItem{
		ItemID:     listing.ItemID,
		Title:      listing.Title,
		Price:      listing.Price,
		Quantity:   listing.Quantity,
		ViewCount:  listing.ViewCount,
		WatchCount: listing.WatchCount,
		DaysListed: listing.DaysListed(now),
		GalleryURL: listing.GalleryURL,
		IsStale:    s.isStale(listing, now),
		IsActive:   listing.IsActive,
	}
}

// GetStats resume o estado da loja para o painel
func (s *Service) GetStats() (*domain.DashboardStats, error) {
	now := time.Now().UTC()

	active, err := s.listingRepo.CountByActive(true)
	if err != nil {
		return nil, NewAutomationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	inactive, err := s.listingRepo.CountByActive(false)
	if err != nil {
		return nil, NewAutomationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	since := now.AddDate(0, 0, -30)
	relists, err := s.relistRepo.CountSince(since)
	if err != nil {
		return nil, NewAutomationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	offers, err := s.offerRepo.CountSince(since)
	if err != nil {
		return nil, NewAutomationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	pendingFeedback, err := s.soldRepo.CountFeedbackPending()
	if err != nil {
		return nil, NewAutomationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	stats := &domain.DashboardStats{
		ActiveListings:  active,
		InactiveListing: inactive,
		RelistsLast30d:  relists,
		OffersLast30d:   offers,
		PendingFeedback: pendingFeedback,
	}

	lastSync, err := s.logRepo.GetLatestByAction(domain.ActionSyncListings)
	if err != nil {
		return nil, NewAutomationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if lastSync != nil {
		syncedAt := lastSync.CreatedAt
		stats.LastSyncAt = &syncedAt
	}

	return stats, nil
}

// GetLogs lista o histórico de ações de automação, do mais recente ao mais antigo
func (s *Service) GetLogs(actionType string, limit, offset int) ([]*domain.AutomationLog, error) {
	if limit < 1 || limit > maxLogs {
		limit = defaultLogs
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.logRepo.List(actionType, limit, offset)
	if err != nil {
		return nil, NewAutomationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return entries, nil
}
