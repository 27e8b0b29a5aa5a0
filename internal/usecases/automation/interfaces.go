package automation

import (
	"github.com/vfg2006/seller-ops-api/internal/domain"
)

// Syncer sincroniza o espelho local com a conta do vendedor no marketplace
type Syncer interface {
	// SyncListings espelha os anúncios ativos: cria os novos, atualiza os
	// existentes e desativa os que sumiram da conta
	SyncListings() (*domain.SyncStats, error)

	// SyncSoldItems espelha as vendas da janela recente para o
	// acompanhamento de feedback
	SyncSoldItems() (*domain.SoldSyncStats, error)
}

// RuleRunner executa as regras de automação sobre o espelho local
type RuleRunner interface {
	// CheckStaleListings identifica anúncios parados e tenta o
	// encerrar-e-relistar dos que estão fora do período de carência
	CheckStaleListings() *domain.StaleCheckResult

	// RelistListing encerra e relista um anúncio específico
	RelistListing(itemID string, newTitle *string, newPrice *float64) (*domain.RelistResponse, error)

	// SendOffersToWatchers registra oportunidades de oferta para os
	// anúncios com observadores suficientes
	SendOffersToWatchers() *domain.OfferBatchResult

	// SendOfferToWatchers registra uma oferta para um anúncio específico
	SendOfferToWatchers(itemID string, discountPercent float64) (*domain.OfferResponse, error)

	// GetOfferEligibility avalia os critérios de oferta sem registrar nada
	GetOfferEligibility(itemID string) (*domain.OfferEligibility, error)

	// RequestFeedbackFromBuyers pede feedback das vendas elegíveis
	RequestFeedbackFromBuyers() *domain.FeedbackResult
}

// AutomationService é a interface completa consumida pela API e pelos agendadores
type AutomationService interface {
	Syncer
	RuleRunner

	// GetListingsPage devolve uma página do espelho para o painel
	GetListingsPage(status domain.ListingStatus, page, perPage int) (*domain.ListingPage, error)

	// GetStats resume o estado da loja para o painel
	GetStats() (*domain.DashboardStats, error)

	// GetLogs lista o histórico de ações de automação
	GetLogs(actionType string, limit, offset int) ([]*domain.AutomationLog, error)
}
