package automation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tradingdomain "github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading/domain"
	tradingmocks "github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading/mocks"
	"github.com/vfg2006/seller-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_SyncListings(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(listingRepo *mocks.MockListingRepository, tradingService *tradingmocks.MockTradingIntegrator)
		validate func(t *testing.T, stats *domain.SyncStats, err error)
	}{
		{
			name: "Anúncio novo é inserido e o ausente desativado",
			setup: func(listingRepo *mocks.MockListingRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				tradingService.EXPECT().GetActiveListings().Return([]tradingdomain.ListingRecord{
					{ItemID: "110001", Title: "Novo anúncio", Price: 25.0, Quantity: 1},
				}, nil)

				listingRepo.EXPECT().GetByItemID("110001").Return(nil, nil)
				listingRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(listing *domain.Listing) error {
					assert.Equal(t, "110001", listing.ItemID)
					assert.True(t, listing.IsActive)
					return nil
				})
				listingRepo.EXPECT().DeactivateMissing([]string{"110001"}).Return(int64(2), nil)
			},
			validate: func(t *testing.T, stats *domain.SyncStats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, stats.Total)
				assert.Equal(t, 1, stats.New)
				assert.Equal(t, 0, stats.Updated)
				assert.Equal(t, 2, stats.Deactivated)
			},
		},
		{
			name: "Anúncio existente é atualizado e reativado",
			setup: func(listingRepo *mocks.MockListingRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				tradingService.EXPECT().GetActiveListings().Return([]tradingdomain.ListingRecord{
					{ItemID: "110002", Title: "Título novo", Price: 30.0, Quantity: 2, ViewCount: 15, WatchCount: 3},
				}, nil)

				listingRepo.EXPECT().GetByItemID("110002").Return(&domain.Listing{
					ID:       "abc123",
					ItemID:   "110002",
					Title:    "Título velho",
					Price:    20.0,
					IsActive: false,
				}, nil)
				listingRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(listing *domain.Listing) error {
					assert.Equal(t, "Título novo", listing.Title)
					assert.Equal(t, 30.0, listing.Price)
					assert.Equal(t, 15, listing.ViewCount)
					assert.True(t, listing.IsActive)
					return nil
				})
				listingRepo.EXPECT().DeactivateMissing([]string{"110002"}).Return(int64(0), nil)
			},
			validate: func(t *testing.T, stats *domain.SyncStats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, stats.Updated)
				assert.Equal(t, 0, stats.New)
			},
		},
		{
			name: "Busca vazia não desativa nenhum anúncio",
			setup: func(listingRepo *mocks.MockListingRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				tradingService.EXPECT().GetActiveListings().Return([]tradingdomain.ListingRecord{}, nil)
				// Sem chamada ao DeactivateMissing
			},
			validate: func(t *testing.T, stats *domain.SyncStats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, stats.Total)
				assert.Equal(t, 0, stats.Deactivated)
			},
		},
		{
			name: "Erro da Trading API interrompe a sincronização",
			setup: func(listingRepo *mocks.MockListingRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				tradingService.EXPECT().GetActiveListings().Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, stats *domain.SyncStats, err error) {
				assert.Nil(t, stats)
				assert.ErrorIs(t, err, ErrTradingOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			listingRepo := mocks.NewMockListingRepository(ctrl)
			logRepo := mocks.NewMockAutomationLogRepository(ctrl)
			tradingService := tradingmocks.NewMockTradingIntegrator(ctrl)

			logRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

			service := &Service{
				cfg:         testConfig(),
				trading:     tradingService,
				listingRepo: listingRepo,
				logRepo:     logRepo,
			}

			tt.setup(listingRepo, tradingService)

			stats, err := service.SyncListings()
			tt.validate(t, stats, err)
		})
	}
}

func TestService_SyncSoldItems(t *testing.T) {
	shipped := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(soldRepo *mocks.MockSoldItemRepository, tradingService *tradingmocks.MockTradingIntegrator)
		validate func(t *testing.T, stats *domain.SoldSyncStats, err error)
	}{
		{
			name: "Venda nova é inserida no espelho",
			setup: func(soldRepo *mocks.MockSoldItemRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				tradingService.EXPECT().GetSoldItems(30).Return([]tradingdomain.SoldRecord{
					{ItemID: "110001", TransactionID: "TX001", Title: "Vendido", SalePrice: 42.0, Quantity: 1, ShippedTime: &shipped},
				}, nil)

				soldRepo.EXPECT().GetByTransactionID("TX001").Return(nil, nil)
				soldRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(item *domain.SoldItem) error {
					assert.Equal(t, "TX001", item.TransactionID)
					assert.Equal(t, 42.0, item.SalePrice)
					return nil
				})
			},
			validate: func(t *testing.T, stats *domain.SoldSyncStats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, stats.Total)
				assert.Equal(t, 1, stats.New)
				assert.Equal(t, 0, stats.Updated)
			},
		},
		{
			name: "Venda existente só atualiza o status de feedback",
			setup: func(soldRepo *mocks.MockSoldItemRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				tradingService.EXPECT().GetSoldItems(30).Return([]tradingdomain.SoldRecord{
					{ItemID: "110002", TransactionID: "TX002", FeedbackReceived: true},
				}, nil)

				soldRepo.EXPECT().GetByTransactionID("TX002").Return(&domain.SoldItem{
					ID:            "def456",
					TransactionID: "TX002",
				}, nil)
				soldRepo.EXPECT().SetFeedbackReceived("TX002", true).Return(nil)
			},
			validate: func(t *testing.T, stats *domain.SoldSyncStats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, stats.Updated)
				assert.Equal(t, 0, stats.New)
			},
		},
		{
			name: "Erro da Trading API interrompe a sincronização de vendas",
			setup: func(soldRepo *mocks.MockSoldItemRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				tradingService.EXPECT().GetSoldItems(30).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, stats *domain.SoldSyncStats, err error) {
				assert.Nil(t, stats)
				assert.ErrorIs(t, err, ErrTradingOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			soldRepo := mocks.NewMockSoldItemRepository(ctrl)
			logRepo := mocks.NewMockAutomationLogRepository(ctrl)
			tradingService := tradingmocks.NewMockTradingIntegrator(ctrl)

			logRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

			service := &Service{
				cfg:      testConfig(),
				trading:  tradingService,
				soldRepo: soldRepo,
				logRepo:  logRepo,
			}

			tt.setup(soldRepo, tradingService)

			stats, err := service.SyncSoldItems()
			tt.validate(t, stats, err)
		})
	}
}
