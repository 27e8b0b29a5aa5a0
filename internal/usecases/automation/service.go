package automation

import (
	"encoding/json"
	"fmt"

	"github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading"
	"github.com/vfg2006/seller-ops-api/infrastructure/repository"
	"github.com/vfg2006/seller-ops-api/internal/config"
	"github.com/vfg2006/seller-ops-api/internal/domain"
	"github.com/vfg2006/seller-ops-api/pkg/apiErrors"
	"github.com/vfg2006/seller-ops-api/pkg/log"
	"github.com/vfg2006/seller-ops-api/pkg/metrics"
)

type Service struct {
	cfg         *config.Config
	trading     trading.TradingIntegrator
	listingRepo repository.ListingRepository
	relistRepo  repository.RelistHistoryRepository
	offerRepo   repository.OfferSentRepository
	soldRepo    repository.SoldItemRepository
	logRepo     repository.AutomationLogRepository
}

func NewService(
	cfg *config.Config,
	tradingService trading.TradingIntegrator,
	listingRepo repository.ListingRepository,
	relistRepo repository.RelistHistoryRepository,
	offerRepo repository.OfferSentRepository,
	soldRepo repository.SoldItemRepository,
	logRepo repository.AutomationLogRepository,
) AutomationService {
	return &Service{
		cfg:         cfg,
		trading:     tradingService,
		listingRepo: listingRepo,
		relistRepo:  relistRepo,
		offerRepo:   offerRepo,
		soldRepo:    soldRepo,
		logRepo:     logRepo,
	}
}

// SyncListings espelha os anúncios ativos da conta no banco local
func (s *Service) SyncListings() (*domain.SyncStats, error) {
	log.L.Info("Sincronizando anúncios do marketplace...")

	records, err := s.trading.GetActiveListings()
	if err != nil {
		s.logAction(domain.ActionSyncListings, nil, domain.LogStatusFailed, err.Error(), nil)
		metrics.AutomationActions.WithLabelValues(domain.ActionSyncListings, domain.LogStatusFailed).Inc()
		return nil, NewAutomationError(ErrTradingOperation, apiErrors.ErrExternalService, err.Error())
	}

	stats := &domain.SyncStats{Total: len(records)}
	fetchedIDs := make([]string, 0, len(records))

	for _, record := range records {
		fetchedIDs = append(fetchedIDs, record.ItemID)

		existing, err := s.listingRepo.GetByItemID(record.ItemID)
		if err != nil {
			log.L.WithError(err).Errorf("Erro ao consultar o anúncio %s no espelho", record.ItemID)
			continue
		}

		if existing != nil {
			existing.Title = record.Title
			existing.Price = record.Price
			existing.Quantity = record.Quantity
			existing.QuantitySold = record.QuantitySold
			existing.ViewCount = record.ViewCount
			existing.WatchCount = record.WatchCount
			existing.IsActive = true

			if err := s.listingRepo.Update(existing); err != nil {
				log.L.WithError(err).Errorf("Erro ao atualizar o anúncio %s", record.ItemID)
				continue
			}
			stats.Updated++
			metrics.ListingsSynced.WithLabelValues("updated").Inc()
			continue
		}

		listing := &domain.Listing{
			ItemID:       record.ItemID,
			Title:        record.Title,
			SKU:          record.SKU,
			Price:        record.Price,
			Quantity:     record.Quantity,
			QuantitySold: record.QuantitySold,
			ListingType:  record.ListingType,
			StartTime:    record.StartTime,
			EndTime:      record.EndTime,
			ViewCount:    record.ViewCount,
			WatchCount:   record.WatchCount,
			Condition:    record.Condition,
			GalleryURL:   record.GalleryURL,
			IsActive:     true,
		}
		if err := s.listingRepo.Save(listing); err != nil {
			log.L.WithError(err).Errorf("Erro ao inserir o anúncio %s", record.ItemID)
			continue
		}
		stats.New++
		metrics.ListingsSynced.WithLabelValues("new").Inc()
	}

	// A desativação compara somente com o conjunto desta passada. Busca
	// vazia não desativa nada: pode ser só o marketplace indisponível.
	if len(fetchedIDs) > 0 {
		deactivated, err := s.listingRepo.DeactivateMissing(fetchedIDs)
		if err != nil {
			log.L.WithError(err).Error("Erro ao desativar anúncios ausentes")
		} else {
			stats.Deactivated = int(deactivated)
			metrics.ListingsSynced.WithLabelValues("deactivated").Add(float64(deactivated))
		}
	}

	details := marshalDetails(stats)
	s.logAction(domain.ActionSyncListings, nil, domain.LogStatusSuccess,
		fmt.Sprintf("Sincronizados %d anúncios", stats.Total), details)
	metrics.AutomationActions.WithLabelValues(domain.ActionSyncListings, domain.LogStatusSuccess).Inc()

	log.L.WithFields(log.Fields{
		"total":       stats.Total,
		"new":         stats.New,
		"updated":     stats.Updated,
		"deactivated": stats.Deactivated,
	}).Info("Sincronização de anúncios concluída")

	return stats, nil
}

// SyncSoldItems espelha as vendas da janela recente
func (s *Service) SyncSoldItems() (*domain.SoldSyncStats, error) {
	log.L.Info("Sincronizando vendas do marketplace...")

	records, err := s.trading.GetSoldItems(s.cfg.Automation.SoldWindowDays)
	if err != nil {
		s.logAction(domain.ActionSyncSold, nil, domain.LogStatusFailed, err.Error(), nil)
		metrics.AutomationActions.WithLabelValues(domain.ActionSyncSold, domain.LogStatusFailed).Inc()
		return nil, NewAutomationError(ErrTradingOperation, apiErrors.ErrExternalService, err.Error())
	}

	stats := &domain.SoldSyncStats{Total: len(records)}

	for _, record := range records {
		existing, err := s.soldRepo.GetByTransactionID(record.TransactionID)
		if err != nil {
			log.L.WithError(err).Errorf("Erro ao consultar a venda %s", record.TransactionID)
			continue
		}

		if existing != nil {
			if err := s.soldRepo.SetFeedbackReceived(record.TransactionID, record.FeedbackReceived); err != nil {
				log.L.WithError(err).Errorf("Erro ao atualizar a venda %s", record.TransactionID)
				continue
			}
			stats.Updated++
			continue
		}

		item := &domain.SoldItem{
			ItemID:           record.ItemID,
			TransactionID:    record.TransactionID,
			Title:            record.Title,
			BuyerID:          record.BuyerID,
			BuyerEmail:       record.BuyerEmail,
			SalePrice:        record.SalePrice,
			Quantity:         record.Quantity,
			CreatedDate:      record.CreatedDate,
			PaidTime:         record.PaidTime,
			ShippedTime:      record.ShippedTime,
			FeedbackReceived: record.FeedbackReceived,
		}
		if err := s.soldRepo.Save(item); err != nil {
			log.L.WithError(err).Errorf("Erro ao inserir a venda %s", record.TransactionID)
			continue
		}
		stats.New++
	}

	details := marshalDetails(stats)
	s.logAction(domain.ActionSyncSold, nil, domain.LogStatusSuccess,
		fmt.Sprintf("Sincronizadas %d vendas", stats.Total), details)
	metrics.AutomationActions.WithLabelValues(domain.ActionSyncSold, domain.LogStatusSuccess).Inc()

	log.L.WithFields(log.Fields{
		"total":   stats.Total,
		"new":     stats.New,
		"updated": stats.Updated,
	}).Info("Sincronização de vendas concluída")

	return stats, nil
}

// logAction grava a trilha de auditoria. Falha aqui não derruba a ação.
func (s *Service) logAction(actionType string, itemID *string, status, message string, details *string) {
	entry := &domain.AutomationLog{
		ActionType: actionType,
		ItemID:     itemID,
		Status:     status,
		Message:    message,
		Details:    details,
	}
	if err := s.logRepo.Create(entry); err != nil {
		log.L.WithError(err).Error("Erro ao registrar atividade de automação")
	}
}

func marshalDetails(v any) *string {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	details := string(raw)
	return &details
}
