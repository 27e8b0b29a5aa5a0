package automation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading"
	tradingmocks "github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading/mocks"
	"github.com/vfg2006/seller-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-ops-api/internal/config"
	"github.com/vfg2006/seller-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Automation: config.Automation{
			StaleNoSaleDays:      45,
			StaleLowTrafficDays:  30,
			StaleMinViews:        10,
			RelistCooldownDays:   7,
			OfferCooldownDays:    14,
			OfferMinWatchers:     2,
			MinViewsForOffer:     5,
			OfferDiscountPercent: 10,
			FeedbackRequestDays:  7,
			SoldWindowDays:       30,
		},
	}
}

func daysAgo(now time.Time, days int) *time.Time {
	t := now.AddDate(0, 0, -days)
	return &t
}

func TestService_isStale(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	service := &Service{cfg: testConfig()}

	tests := []struct {
		name     string
		listing  *domain.Listing
		expected bool
	}{
		{
			name:     "Anúncio velho sem nenhuma venda deve ser parado",
			listing:  &domain.Listing{StartTime: daysAgo(now, 50), QuantitySold: 0, ViewCount: 100},
			expected: true,
		},
		{
			name:     "Anúncio exatamente no limite de dias sem venda deve ser parado",
			listing:  &domain.Listing{StartTime: daysAgo(now, 45), QuantitySold: 0, ViewCount: 100},
			expected: true,
		},
		{
			name:     "Anúncio com pouca visita após o período de tráfego deve ser parado",
			listing:  &domain.Listing{StartTime: daysAgo(now, 30), QuantitySold: 3, ViewCount: 9},
			expected: true,
		},
		{
			name:     "Anúncio recente com pouca visita não deve ser parado",
			listing:  &domain.Listing{StartTime: daysAgo(now, 29), QuantitySold: 0, ViewCount: 0},
			expected: false,
		},
		{
			name:     "Anúncio com vendas e tráfego não deve ser parado",
			listing:  &domain.Listing{StartTime: daysAgo(now, 44), QuantitySold: 2, ViewCount: 50},
			expected: false,
		},
		{
			name:     "Anúncio sem data de início nunca é parado",
			listing:  &domain.Listing{StartTime: nil, QuantitySold: 0, ViewCount: 0},
			expected: false,
		},
		{
			name:     "Anúncio no limite de visualizações não conta como pouca visita",
			listing:  &domain.Listing{StartTime: daysAgo(now, 40), QuantitySold: 1, ViewCount: 10},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.isStale(tt.listing, now))
		})
	}
}

func TestService_staleReason(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	service := &Service{cfg: testConfig()}

	tests := []struct {
		name     string
		listing  *domain.Listing
		expected string
	}{
		{
			name:     "Pouca visita tem prioridade sobre a idade",
			listing:  &domain.Listing{StartTime: daysAgo(now, 70), QuantitySold: 0, ViewCount: 5},
			expected: domain.StaleReasonOldLowTraffic,
		},
		{
			name:     "Anúncio muito velho com tráfego recebe a etiqueta very_old",
			listing:  &domain.Listing{StartTime: daysAgo(now, 65), QuantitySold: 0, ViewCount: 80},
			expected: domain.StaleReasonVeryOld,
		},
		{
			name:     "Parado sem venda com tráfego recebe a etiqueta padrão",
			listing:  &domain.Listing{StartTime: daysAgo(now, 50), QuantitySold: 0, ViewCount: 30},
			expected: domain.StaleReasonDefinitelyStale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.staleReason(tt.listing, now))
		})
	}
}

func TestService_CheckStaleListings(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name     string
		setup    func(listingRepo *mocks.MockListingRepository, relistRepo *mocks.MockRelistHistoryRepository, tradingService *tradingmocks.MockTradingIntegrator)
		validate func(t *testing.T, result *domain.StaleCheckResult)
	}{
		{
			name: "Anúncio parado fora da carência deve ser encerrado e relistado",
			setup: func(listingRepo *mocks.MockListingRepository, relistRepo *mocks.MockRelistHistoryRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				listingRepo.EXPECT().ListActive().Return([]*domain.Listing{
					{ID: "abc123", ItemID: "110001", Title: "Anúncio parado", StartTime: daysAgo(now, 50)},
				}, nil)

				relistRepo.EXPECT().GetLatestByItemID("110001").Return(nil, nil)
				tradingService.EXPECT().EndAndRelistItem("110001", nil, nil).Return("220001", nil)
				relistRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *domain.RelistHistory) error {
					assert.True(t, entry.Success)
					assert.Equal(t, "110001", entry.ItemID)
					assert.Equal(t, "220001", *entry.NewItemID)
					return nil
				})
			},
			validate: func(t *testing.T, result *domain.StaleCheckResult) {
				assert.True(t, result.Success)
				assert.Equal(t, 1, result.StaleCount)
				assert.Equal(t, 1, result.Relisted)
				assert.Equal(t, 0, result.Failed)
				assert.Len(t, result.Listings, 1)
			},
		},
		{
			name: "Tentativa recente segura o item mesmo quando o relist falhou",
			setup: func(listingRepo *mocks.MockListingRepository, relistRepo *mocks.MockRelistHistoryRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				listingRepo.EXPECT().ListActive().Return([]*domain.Listing{
					{ID: "abc123", ItemID: "110002", Title: "Parado em carência", StartTime: daysAgo(now, 50)},
				}, nil)

				errorMessage := "EndItem falhou"
				relistRepo.EXPECT().GetLatestByItemID("110002").Return(&domain.RelistHistory{
					ItemID:       "110002",
					RelistedAt:   now.AddDate(0, 0, -3),
					Success:      false,
					ErrorMessage: &errorMessage,
				}, nil)
				// Sem chamada ao EndAndRelistItem: a carência conta qualquer tentativa
			},
			validate: func(t *testing.T, result *domain.StaleCheckResult) {
				assert.True(t, result.Success)
				assert.Equal(t, 1, result.StaleCount)
				assert.Equal(t, 0, result.Relisted)
				assert.Equal(t, 0, result.Failed)
			},
		},
		{
			name: "Falha no relist registra histórico e conta como falha",
			setup: func(listingRepo *mocks.MockListingRepository, relistRepo *mocks.MockRelistHistoryRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				listingRepo.EXPECT().ListActive().Return([]*domain.Listing{
					{ID: "abc123", ItemID: "110003", Title: "Parado com erro", StartTime: daysAgo(now, 50)},
				}, nil)

				relistRepo.EXPECT().GetLatestByItemID("110003").Return(nil, nil)
				tradingService.EXPECT().EndAndRelistItem("110003", nil, nil).Return("", errors.New("EndItem falhou"))
				relistRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *domain.RelistHistory) error {
					assert.False(t, entry.Success)
					assert.NotNil(t, entry.ErrorMessage)
					return nil
				})
			},
			validate: func(t *testing.T, result *domain.StaleCheckResult) {
				assert.True(t, result.Success)
				assert.Equal(t, 1, result.StaleCount)
				assert.Equal(t, 0, result.Relisted)
				assert.Equal(t, 1, result.Failed)
			},
		},
		{
			name: "Nenhum anúncio parado devolve resultado vazio",
			setup: func(listingRepo *mocks.MockListingRepository, relistRepo *mocks.MockRelistHistoryRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				listingRepo.EXPECT().ListActive().Return([]*domain.Listing{
					{ID: "abc123", ItemID: "110004", Title: "Saudável", StartTime: daysAgo(now, 10), ViewCount: 50, QuantitySold: 2},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.StaleCheckResult) {
				assert.True(t, result.Success)
				assert.Equal(t, 0, result.StaleCount)
				assert.Empty(t, result.Listings)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			listingRepo := mocks.NewMockListingRepository(ctrl)
			relistRepo := mocks.NewMockRelistHistoryRepository(ctrl)
			logRepo := mocks.NewMockAutomationLogRepository(ctrl)
			tradingService := tradingmocks.NewMockTradingIntegrator(ctrl)

			logRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

			service := &Service{
				cfg:         testConfig(),
				trading:     tradingService,
				listingRepo: listingRepo,
				relistRepo:  relistRepo,
				logRepo:     logRepo,
			}

			tt.setup(listingRepo, relistRepo, tradingService)

			result := service.CheckStaleListings()
			tt.validate(t, result)
		})
	}
}

func TestService_RelistListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listingRepo := mocks.NewMockListingRepository(ctrl)
	relistRepo := mocks.NewMockRelistHistoryRepository(ctrl)
	logRepo := mocks.NewMockAutomationLogRepository(ctrl)
	tradingService := tradingmocks.NewMockTradingIntegrator(ctrl)

	logRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

	service := &Service{
		cfg:         testConfig(),
		trading:     tradingService,
		listingRepo: listingRepo,
		relistRepo:  relistRepo,
		logRepo:     logRepo,
	}

	t.Run("Anúncio inexistente devolve erro de não encontrado", func(t *testing.T) {
		listingRepo.EXPECT().GetByItemID("999999").Return(nil, nil)

		response, err := service.RelistListing("999999", nil, nil)

		assert.Nil(t, response)
		assert.ErrorIs(t, err, ErrListingNotFound)
	})

	t.Run("Relist com sucesso desativa o original no espelho", func(t *testing.T) {
		listing := &domain.Listing{ID: "abc123", ItemID: "110001", Title: "Câmera antiga", IsActive: true}
		listingRepo.EXPECT().GetByItemID("110001").Return(listing, nil)
		tradingService.EXPECT().EndAndRelistItem("110001", nil, nil).Return("220001", nil)
		relistRepo.EXPECT().Create(gomock.Any()).Return(nil)
		listingRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *domain.Listing) error {
			assert.False(t, updated.IsActive)
			return nil
		})

		response, err := service.RelistListing("110001", nil, nil)

		assert.NoError(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, "110001", response.OriginalItemID)
		assert.Equal(t, "220001", response.NewItemID)
	})

	t.Run("Falha parcial devolve resposta com aviso em vez de erro", func(t *testing.T) {
		listing := &domain.Listing{ID: "abc123", ItemID: "110002", Title: "Item encerrado", IsActive: true}
		listingRepo.EXPECT().GetByItemID("110002").Return(listing, nil)

		partial := &trading.PartialRelistError{ItemID: "110002", Err: errors.New("AddFixedPriceItem falhou")}
		tradingService.EXPECT().EndAndRelistItem("110002", nil, nil).Return("", partial)
		relistRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *domain.RelistHistory) error {
			assert.False(t, entry.Success)
			return nil
		})

		response, err := service.RelistListing("110002", nil, nil)

		assert.NoError(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "Anúncio encerrado mas a nova listagem não foi criada", response.Message)
		assert.NotEmpty(t, response.Error)
	})

	t.Run("Erro comum no relist devolve resposta de falha sem aviso de parcial", func(t *testing.T) {
		listing := &domain.Listing{ID: "abc123", ItemID: "110003", Title: "Item com erro", IsActive: true}
		listingRepo.EXPECT().GetByItemID("110003").Return(listing, nil)
		tradingService.EXPECT().EndAndRelistItem("110003", nil, nil).Return("", errors.New("EndItem falhou"))
		relistRepo.EXPECT().Create(gomock.Any()).Return(nil)

		response, err := service.RelistListing("110003", nil, nil)

		assert.NoError(t, err)
		assert.False(t, response.Success)
		assert.Empty(t, response.Message)
	})
}
