package automation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/seller-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetListingsPage(t *testing.T) {
	now := time.Now().UTC()

	t.Run("Filtro stale é montado em memória sobre os ativos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		listingRepo := mocks.NewMockListingRepository(ctrl)
		service := &Service{cfg: testConfig(), listingRepo: listingRepo}

		listingRepo.EXPECT().ListActive().Return([]*domain.Listing{
			{ItemID: "110001", StartTime: daysAgo(now, 50), QuantitySold: 0, ViewCount: 100, IsActive: true},
			{ItemID: "110002", StartTime: daysAgo(now, 10), QuantitySold: 1, ViewCount: 50, IsActive: true},
			{ItemID: "110003", StartTime: daysAgo(now, 35), QuantitySold: 2, ViewCount: 3, IsActive: true},
		}, nil)

		page, err := service.GetListingsPage(domain.ListingStatusStale, 1, 20)

		assert.NoError(t, err)
		assert.Equal(t, 2, page.Total)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, "110001", page.Items[0].ItemID)
		assert.Equal(t, "110003", page.Items[1].ItemID)
		assert.True(t, page.Items[0].IsStale)
	})

	t.Run("Página stale fora do alcance devolve lista vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		listingRepo := mocks.NewMockListingRepository(ctrl)
		service := &Service{cfg: testConfig(), listingRepo: listingRepo}

		listingRepo.EXPECT().ListActive().Return([]*domain.Listing{
			{ItemID: "110001", StartTime: daysAgo(now, 50), QuantitySold: 0, ViewCount: 100, IsActive: true},
		}, nil)

		page, err := service.GetListingsPage(domain.ListingStatusStale, 3, 20)

		assert.NoError(t, err)
		assert.Equal(t, 1, page.Total)
		assert.Empty(t, page.Items)
		assert.Equal(t, 3, page.Page)
	})

	t.Run("Filtro active usa paginação do banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		listingRepo := mocks.NewMockListingRepository(ctrl)
		service := &Service{cfg: testConfig(), listingRepo: listingRepo}

		listingRepo.EXPECT().ListPage(domain.ListingStatusActive, 2, 2).Return([]*domain.Listing{
			{ItemID: "110003", IsActive: true},
			{ItemID: "110004", IsActive: true},
		}, nil)
		listingRepo.EXPECT().CountByActive(true).Return(7, nil)

		page, err := service.GetListingsPage(domain.ListingStatusActive, 2, 2)

		assert.NoError(t, err)
		assert.Equal(t, 7, page.Total)
		assert.Equal(t, 4, page.TotalPages)
		assert.Len(t, page.Items, 2)
	})

	t.Run("Filtro all soma ativos e inativos no total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		listingRepo := mocks.NewMockListingRepository(ctrl)
		service := &Service{cfg: testConfig(), listingRepo: listingRepo}

		listingRepo.EXPECT().ListPage(domain.ListingStatusAll, 20, 0).Return([]*domain.Listing{}, nil)
		listingRepo.EXPECT().CountByActive(true).Return(5, nil)
		listingRepo.EXPECT().CountByActive(false).Return(3, nil)

		page, err := service.GetListingsPage(domain.ListingStatusAll, 1, 20)

		assert.NoError(t, err)
		assert.Equal(t, 8, page.Total)
	})

	t.Run("Parâmetros inválidos caem nos padrões", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		listingRepo := mocks.NewMockListingRepository(ctrl)
		service := &Service{cfg: testConfig(), listingRepo: listingRepo}

		listingRepo.EXPECT().ListPage(domain.ListingStatusActive, 20, 0).Return([]*domain.Listing{}, nil)
		listingRepo.EXPECT().CountByActive(true).Return(0, nil)

		page, err := service.GetListingsPage(domain.ListingStatusActive, 0, 500)

		assert.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 20, page.PerPage)
	})
}

func TestService_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listingRepo := mocks.NewMockListingRepository(ctrl)
	relistRepo := mocks.NewMockRelistHistoryRepository(ctrl)
	offerRepo := mocks.NewMockOfferSentRepository(ctrl)
	soldRepo := mocks.NewMockSoldItemRepository(ctrl)
	logRepo := mocks.NewMockAutomationLogRepository(ctrl)

	service := &Service{
		cfg:         testConfig(),
		listingRepo: listingRepo,
		relistRepo:  relistRepo,
		offerRepo:   offerRepo,
		soldRepo:    soldRepo,
		logRepo:     logRepo,
	}

	lastSync := time.Date(2024, 6, 14, 3, 0, 0, 0, time.UTC)

	listingRepo.EXPECT().CountByActive(true).Return(42, nil)
	listingRepo.EXPECT().CountByActive(false).Return(7, nil)
	relistRepo.EXPECT().CountSince(gomock.Any()).Return(int64(5), nil)
	offerRepo.EXPECT().CountSince(gomock.Any()).Return(int64(12), nil)
	soldRepo.EXPECT().CountFeedbackPending().Return(3, nil)
	logRepo.EXPECT().GetLatestByAction(domain.ActionSyncListings).Return(&domain.AutomationLog{
		ActionType: domain.ActionSyncListings,
		Status:     domain.LogStatusSuccess,
		CreatedAt:  lastSync,
	}, nil)

	stats, err := service.GetStats()

	assert.NoError(t, err)
	assert.Equal(t, 42, stats.ActiveListings)
	assert.Equal(t, 7, stats.InactiveListing)
	assert.Equal(t, int64(5), stats.RelistsLast30d)
	assert.Equal(t, int64(12), stats.OffersLast30d)
	assert.Equal(t, 3, stats.PendingFeedback)
	assert.Equal(t, lastSync, *stats.LastSyncAt)
}

func TestService_GetLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logRepo := mocks.NewMockAutomationLogRepository(ctrl)
	service := &Service{cfg: testConfig(), logRepo: logRepo}

	t.Run("Limite fora do alcance cai no padrão", func(t *testing.T) {
		logRepo.EXPECT().List("", 50, 0).Return([]*domain.AutomationLog{}, nil)

		entries, err := service.GetLogs("", 0, -5)

		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Filtro por tipo de ação é repassado", func(t *testing.T) {
		logRepo.EXPECT().List(domain.ActionEndRelist, 10, 20).Return([]*domain.AutomationLog{
			{ActionType: domain.ActionEndRelist, Status: domain.LogStatusSuccess},
		}, nil)

		entries, err := service.GetLogs(domain.ActionEndRelist, 10, 20)

		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
