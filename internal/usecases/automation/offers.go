package automation

import (
	"fmt"
	"time"

	"github.com/vfg2006/seller-ops-api/internal/domain"
	"github.com/vfg2006/seller-ops-api/pkg/apiErrors"
	"github.com/vfg2006/seller-ops-api/pkg/log"
	"github.com/vfg2006/seller-ops-api/pkg/metrics"
	"github.com/vfg2006/seller-ops-api/pkg/utils"
)

// SendOffersToWatchers registra oportunidades de oferta para os anúncios
// ativos com observadores suficientes e nenhuma venda. A Trading API não
// envia oferta direcionada por aqui, então o registro vale como controle
// para as ferramentas promocionais do marketplace.
func (s *Service) SendOffersToWatchers() *domain.OfferBatchResult {
	log.L.Info("Procurando oportunidades de oferta...")
	now := time.Now().UTC()

	listings, err := s.listingRepo.ListActive()
	if err != nil {
		s.logAction(domain.ActionSendOffers, nil, domain.LogStatusFailed, err.Error(), nil)
		metrics.AutomationActions.WithLabelValues(domain.ActionSendOffers, domain.LogStatusFailed).Inc()
		return &domain.OfferBatchResult{
			Success:  false,
			Error:    err.Error(),
			Listings: []domain.OfferCandidateItem{},
		}
	}

	candidates := make([]*domain.Listing, 0)
	for _, listing := range listings {
		if listing.WatchCount >= s.cfg.Automation.OfferMinWatchers && listing.QuantitySold == 0 {
			candidates = append(candidates, listing)
		}
	}
	log.L.Infof("Encontrados %d anúncios com observadores", len(candidates))

	result := &domain.OfferBatchResult{
		Success:            true,
		OpportunitiesFound: len(candidates),
		Listings:           make([]domain.OfferCandidateItem, 0, len(candidates)),
	}

	for _, listing := range candidates {
		result.Listings = append(result.Listings, domain.OfferCandidateItem{
			ItemID:     listing.ItemID,
			Title:      listing.Title,
			Price:      listing.Price,
			Quantity:   listing.Quantity,
			ViewCount:  listing.ViewCount,
			WatchCount: listing.WatchCount,
			DaysListed: listing.DaysListed(now),
			GalleryURL: listing.GalleryURL,
		})
	}

	for _, listing := range candidates {
		last, err := s.offerRepo.GetLatestByItemID(listing.ItemID)
		if err != nil {
			log.L.WithError(err).Errorf("Erro ao consultar ofertas de %s", listing.ItemID)
			result.Failed++
			continue
		}

		if last != nil {
			daysSince := int(now.Sub(last.SentAt).Hours() / 24)
			if daysSince < s.cfg.Automation.OfferCooldownDays {
				log.L.Infof("Pulando %s, oferta enviada há %d dias", listing.ItemID, daysSince)
				continue
			}
		}

		discount := s.cfg.Automation.OfferDiscountPercent
		offerPrice := utils.RoundWithTwoDecimalPlace(listing.Price * (1 - discount/100))

		offer := &domain.OfferSent{
			ListingID:       listing.ID,
			ItemID:          listing.ItemID,
			OfferPrice:      offerPrice,
			OriginalPrice:   listing.Price,
			DiscountPercent: discount,
			Message:         fmt.Sprintf("Special %.0f%% off!", discount),
			SentAt:          now,
			Success:         true,
		}
		if err := s.offerRepo.Create(offer); err != nil {
			log.L.WithError(err).Errorf("Erro ao registrar a oferta de %s", listing.ItemID)
			result.Failed++
			continue
		}
		result.OffersSent++

		s.logAction(domain.ActionOffer, &listing.ItemID, domain.LogStatusSuccess,
			fmt.Sprintf("Oportunidade de oferta identificada: %s - $%.2f", listing.Title, offerPrice), nil)
		metrics.AutomationActions.WithLabelValues(domain.ActionOffer, domain.LogStatusSuccess).Inc()
	}

	log.L.WithFields(log.Fields{
		"opportunities": result.OpportunitiesFound,
		"offers_sent":   result.OffersSent,
		"failed":        result.Failed,
	}).Info("Checagem de ofertas concluída")

	return result
}

// SendOfferToWatchers registra uma oferta para um anúncio específico.
// As barreiras são avaliadas nesta ordem: anúncio inexistente, nenhum
// observador, carência ativa, visualizações insuficientes.
func (s *Service) SendOfferToWatchers(itemID string, discountPercent float64) (*domain.OfferResponse, error) {
	now := time.Now().UTC()

	listing, err := s.listingRepo.GetByItemID(itemID)
	if err != nil {
		return nil, NewAutomationErrorWithItem(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, itemID, err.Error())
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	if listing.WatchCount == 0 {
		return &domain.OfferResponse{
			Success: false,
			Error:   "Nenhum observador para este anúncio",
		}, nil
	}

	if discountPercent <= 0 {
		discountPercent = s.cfg.Automation.OfferDiscountPercent
	}

	last, err := s.offerRepo.GetLatestByItemID(itemID)
	if err != nil {
		return nil, NewAutomationErrorWithItem(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, itemID, err.Error())
	}

	if last != nil {
		daysSince := int(now.Sub(last.SentAt).Hours() / 24)
		if daysSince < s.cfg.Automation.OfferCooldownDays {
			return &domain.OfferResponse{
				Success:           false,
				Error:             fmt.Sprintf("Oferta enviada há %d dias", daysSince),
				CooldownRemaining: s.cfg.Automation.OfferCooldownDays - daysSince,
				LastOfferDate:     last.SentAt.Format(time.RFC3339),
			}, nil
		}
	}

	if listing.ViewCount < s.cfg.Automation.MinViewsForOffer {
		return &domain.OfferResponse{
			Success: false,
			Error: fmt.Sprintf("Anúncio com visualizações insuficientes (%d < %d)",
				listing.ViewCount, s.cfg.Automation.MinViewsForOffer),
		}, nil
	}

	offerPrice := utils.RoundWithTwoDecimalPlace(listing.Price * (1 - discountPercent/100))

	offer := &domain.OfferSent{
		ListingID:       listing.ID,
		ItemID:          itemID,
		OfferPrice:      offerPrice,
		OriginalPrice:   listing.Price,
		DiscountPercent: discountPercent,
		Message:         fmt.Sprintf("Special %.0f%% off!", discountPercent),
		SentAt:          now,
		Success:         true,
	}
	if err := s.offerRepo.Create(offer); err != nil {
		return nil, NewAutomationErrorWithItem(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, itemID, err.Error())
	}

	s.logAction(domain.ActionOffer, &itemID, domain.LogStatusSuccess,
		fmt.Sprintf("Oferta enviada: %s - $%.2f (%.0f%% off)", listing.Title, offerPrice, discountPercent), nil)
	metrics.AutomationActions.WithLabelValues(domain.ActionOffer, domain.LogStatusSuccess).Inc()

	return &domain.OfferResponse{
		Success:         true,
		Message:         fmt.Sprintf("Oferta enviada para %s", listing.Title),
		OfferPrice:      offerPrice,
		DiscountPercent: discountPercent,
		Watchers:        listing.WatchCount,
		Views:           listing.ViewCount,
	}, nil
}

// GetOfferEligibility avalia os critérios de oferta sem registrar nada
func (s *Service) GetOfferEligibility(itemID string) (*domain.OfferEligibility, error) {
	now := time.Now().UTC()

	listing, err := s.listingRepo.GetByItemID(itemID)
	if err != nil {
		return nil, NewAutomationErrorWithItem(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, itemID, err.Error())
	}
	if listing == nil {
		return &domain.OfferEligibility{Eligible: false, Reason: "Anúncio não encontrado"}, nil
	}

	if listing.WatchCount == 0 {
		return &domain.OfferEligibility{Eligible: false, Reason: "Sem observadores"}, nil
	}

	if listing.ViewCount < s.cfg.Automation.MinViewsForOffer {
		return &domain.OfferEligibility{
			Eligible: false,
			Reason: fmt.Sprintf("Visualizações insuficientes (%d < %d)",
				listing.ViewCount, s.cfg.Automation.MinViewsForOffer),
		}, nil
	}

	last, err := s.offerRepo.GetLatestByItemID(itemID)
	if err != nil {
		return nil, NewAutomationErrorWithItem(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, itemID, err.Error())
	}

	if last != nil {
		daysSince := int(now.Sub(last.SentAt).Hours() / 24)
		if daysSince < s.cfg.Automation.OfferCooldownDays {
			return &domain.OfferEligibility{
				Eligible:          false,
				Reason:            fmt.Sprintf("Oferta enviada há %d dias", daysSince),
				CooldownRemaining: s.cfg.Automation.OfferCooldownDays - daysSince,
			}, nil
		}
	}

	return &domain.OfferEligibility{
		Eligible: true,
		Watchers: listing.WatchCount,
		Views:    listing.ViewCount,
		Price:    listing.Price,
	}, nil
}
