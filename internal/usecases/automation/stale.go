package automation

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading"
	"github.com/vfg2006/seller-ops-api/internal/domain"
	"github.com/vfg2006/seller-ops-api/pkg/apiErrors"
	"github.com/vfg2006/seller-ops-api/pkg/log"
	"github.com/vfg2006/seller-ops-api/pkg/metrics"
)

// Limite da razão "very_old". Acima de StaleLowTrafficDays o anúncio já é
// candidato, este corte só muda a etiqueta exibida.
const veryOldDays = 60

const staleRelistReason = "stale_listing_end_relist"

// isStale aplica o predicado canônico de anúncio parado: velho demais sem
// nenhuma venda, ou velho com pouca visita. Sem StartTime nunca é parado.
func (s *Service) isStale(listing *domain.Listing, now time.Time) bool {
	if listing.StartTime == nil {
		return false
	}
	age := listing.DaysListed(now)

	noSale := age >= s.cfg.Automation.StaleNoSaleDays && listing.QuantitySold == 0
	lowTraffic := age >= s.cfg.Automation.StaleLowTrafficDays && listing.ViewCount < s.cfg.Automation.StaleMinViews

	return noSale || lowTraffic
}

func (s *Service) staleReason(listing *domain.Listing, now time.Time) string {
	age := listing.DaysListed(now)
	switch {
	case age >= s.cfg.Automation.StaleLowTrafficDays && listing.ViewCount < s.cfg.Automation.StaleMinViews:
		return domain.StaleReasonOldLowTraffic
	case age >= veryOldDays:
		return domain.StaleReasonVeryOld
	default:
		return domain.StaleReasonDefinitelyStale
	}
}

// CheckStaleListings identifica os anúncios parados e tenta o
// encerrar-e-relistar dos que estão fora do período de carência
func (s *Service) CheckStaleListings() *domain.StaleCheckResult {
	log.L.Info("Procurando anúncios parados...")
	now := time.Now().UTC()

	listings, err := s.listingRepo.ListActive()
	if err != nil {
		s.logAction(domain.ActionCheckStale, nil, domain.LogStatusFailed, err.Error(), nil)
		metrics.AutomationActions.WithLabelValues(domain.ActionCheckStale, domain.LogStatusFailed).Inc()
		return &domain.StaleCheckResult{
			Success:  false,
			Error:    err.Error(),
			Listings: []domain.StaleListingItem{},
		}
	}

	stale := make([]*domain.Listing, 0)
	for _, listing := range listings {
		if s.isStale(listing, now) {
			stale = append(stale, listing)
			log.L.Infof("Anúncio parado encontrado: %s - %d dias no ar, %d visualizações, %d vendas",
				listing.ItemID, listing.DaysListed(now), listing.ViewCount, listing.QuantitySold)
		}
	}
	log.L.Infof("Encontrados %d anúncios parados", len(stale))

	result := &domain.StaleCheckResult{
		Success:    true,
		StaleCount: len(stale),
		Listings:   make([]domain.StaleListingItem, 0, len(stale)),
	}

	for _, listing := range stale {
		result.Listings = append(result.Listings, domain.StaleListingItem{
			ItemID:     listing.ItemID,
			Title:      listing.Title,
			Price:      listing.Price,
			Quantity:   listing.Quantity,
			ViewCount:  listing.ViewCount,
			WatchCount: listing.WatchCount,
			DaysListed: listing.DaysListed(now),
			GalleryURL: listing.GalleryURL,
			Reason:     s.staleReason(listing, now),
		})
	}

	for _, listing := range stale {
		last, err := s.relistRepo.GetLatestByItemID(listing.ItemID)
		if err != nil {
			log.L.WithError(err).Errorf("Erro ao consultar o histórico de relistagem de %s", listing.ItemID)
			result.Failed++
			continue
		}

		// Carência: qualquer tentativa recente, com ou sem sucesso, segura o item
		if last != nil {
			daysSince := int(now.Sub(last.RelistedAt).Hours() / 24)
			if daysSince < s.cfg.Automation.RelistCooldownDays {
				log.L.Infof("Pulando %s, relistado há %d dias", listing.ItemID, daysSince)
				continue
			}
		}

		newItemID, err := s.trading.EndAndRelistItem(listing.ItemID, nil, nil)

		entry := &domain.RelistHistory{
			ListingID: listing.ID,
			ItemID:    listing.ItemID,
			Reason:    staleRelistReason,
			Success:   err == nil,
		}

		if err != nil {
			message := err.Error()
			entry.ErrorMessage = &message
			result.Failed++
			s.logAction(domain.ActionEndRelist, &listing.ItemID, domain.LogStatusFailed,
				fmt.Sprintf("Falha ao encerrar e relistar: %s - %v", listing.Title, err), nil)
			metrics.AutomationActions.WithLabelValues(domain.ActionEndRelist, domain.LogStatusFailed).Inc()
		} else {
			entry.NewItemID = &newItemID
			result.Relisted++
			s.logAction(domain.ActionEndRelist, &listing.ItemID, domain.LogStatusSuccess,
				fmt.Sprintf("Anúncio parado encerrado e relistado: %s -> %s", listing.Title, newItemID), nil)
			metrics.AutomationActions.WithLabelValues(domain.ActionEndRelist, domain.LogStatusSuccess).Inc()
		}

		if err := s.relistRepo.Create(entry); err != nil {
			log.L.WithError(err).Errorf("Erro ao gravar o histórico de relistagem de %s", listing.ItemID)
		}
	}

	log.L.WithFields(log.Fields{
		"stale_count": result.StaleCount,
		"relisted":    result.Relisted,
		"failed":      result.Failed,
	}).Info("Checagem de anúncios parados concluída")

	return result
}

// RelistListing encerra e relista um anúncio específico sob demanda.
// A falha parcial (encerrado sem substituto) volta como resposta distinta,
// o operador precisa saber que o anúncio original já saiu do ar.
func (s *Service) RelistListing(itemID string, newTitle *string, newPrice *float64) (*domain.RelistResponse, error) {
	listing, err := s.listingRepo.GetByItemID(itemID)
	if err != nil {
		return nil, NewAutomationErrorWithItem(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, itemID, err.Error())
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	newItemID, err := s.trading.EndAndRelistItem(itemID, newTitle, newPrice)

	entry := &domain.RelistHistory{
		ListingID: listing.ID,
		ItemID:    itemID,
		Reason:    "manual",
		Success:   err == nil,
	}

	if err != nil {
		message := err.Error()
		entry.ErrorMessage = &message
		if createErr := s.relistRepo.Create(entry); createErr != nil {
			log.L.WithError(createErr).Errorf("Erro ao gravar o histórico de relistagem de %s", itemID)
		}
		s.logAction(domain.ActionEndRelist, &itemID, domain.LogStatusFailed,
			fmt.Sprintf("Falha ao encerrar e relistar: %s - %v", listing.Title, err), nil)
		metrics.AutomationActions.WithLabelValues(domain.ActionEndRelist, domain.LogStatusFailed).Inc()

		response := &domain.RelistResponse{
			Success:        false,
			OriginalItemID: itemID,
			Error:          err.Error(),
		}
		var partial *trading.PartialRelistError
		if errors.As(err, &partial) {
			response.Message = "Anúncio encerrado mas a nova listagem não foi criada"
		}
		return response, nil
	}

	entry.NewItemID = &newItemID
	if createErr := s.relistRepo.Create(entry); createErr != nil {
		log.L.WithError(createErr).Errorf("Erro ao gravar o histórico de relistagem de %s", itemID)
	}

	// O original saiu do ar, o espelho acompanha sem esperar a próxima sincronização
	listing.IsActive = false
	if updateErr := s.listingRepo.Update(listing); updateErr != nil {
		log.L.WithError(updateErr).Errorf("Erro ao desativar o anúncio %s no espelho", itemID)
	}

	s.logAction(domain.ActionEndRelist, &itemID, domain.LogStatusSuccess,
		fmt.Sprintf("Anúncio encerrado e relistado: %s -> %s", listing.Title, newItemID), nil)
	metrics.AutomationActions.WithLabelValues(domain.ActionEndRelist, domain.LogStatusSuccess).Inc()

	return &domain.RelistResponse{
		Success:        true,
		OriginalItemID: itemID,
		NewItemID:      newItemID,
		Message:        fmt.Sprintf("Encerrado %s e criado o anúncio %s", itemID, newItemID),
	}, nil
}
