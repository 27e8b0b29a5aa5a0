package automation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tradingmocks "github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading/mocks"
	"github.com/vfg2006/seller-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_RequestFeedbackFromBuyers(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name     string
		setup    func(soldRepo *mocks.MockSoldItemRepository, tradingService *tradingmocks.MockTradingIntegrator)
		validate func(t *testing.T, result *domain.FeedbackResult)
	}{
		{
			name: "Venda enviada e madura recebe pedido de feedback",
			setup: func(soldRepo *mocks.MockSoldItemRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				soldRepo.EXPECT().ListFeedbackPending().Return([]*domain.SoldItem{
					{
						ItemID:        "110001",
						TransactionID: "TX001",
						Title:         "Venda madura",
						BuyerID:       "buyer01",
						CreatedDate:   daysAgo(now, 10),
						ShippedTime:   daysAgo(now, 8),
					},
				}, nil)

				tradingService.EXPECT().RequestFeedback("110001", "TX001", "buyer01").Return(nil)
				soldRepo.EXPECT().MarkFeedbackRequested("TX001", gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.FeedbackResult) {
				assert.Equal(t, 1, result.ReadyForRequest)
				assert.Equal(t, 1, result.RequestsSent)
				assert.Equal(t, 0, result.Failed)
			},
		},
		{
			name: "Venda sem envio nunca entra na rodada",
			setup: func(soldRepo *mocks.MockSoldItemRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				soldRepo.EXPECT().ListFeedbackPending().Return([]*domain.SoldItem{
					{
						ItemID:        "110002",
						TransactionID: "TX002",
						CreatedDate:   daysAgo(now, 20),
						ShippedTime:   nil,
					},
				}, nil)
				// Sem chamada à Trading API
			},
			validate: func(t *testing.T, result *domain.FeedbackResult) {
				assert.Equal(t, 0, result.ReadyForRequest)
				assert.Equal(t, 0, result.RequestsSent)
			},
		},
		{
			name: "Venda recente ainda não é elegível",
			setup: func(soldRepo *mocks.MockSoldItemRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				soldRepo.EXPECT().ListFeedbackPending().Return([]*domain.SoldItem{
					{
						ItemID:        "110003",
						TransactionID: "TX003",
						CreatedDate:   daysAgo(now, 5),
						ShippedTime:   daysAgo(now, 3),
					},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.FeedbackResult) {
				assert.Equal(t, 0, result.ReadyForRequest)
			},
		},
		{
			name: "Falha na Trading API conta como falha e não marca a venda",
			setup: func(soldRepo *mocks.MockSoldItemRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				soldRepo.EXPECT().ListFeedbackPending().Return([]*domain.SoldItem{
					{
						ItemID:        "110004",
						TransactionID: "TX004",
						BuyerID:       "buyer04",
						CreatedDate:   daysAgo(now, 12),
						ShippedTime:   daysAgo(now, 10),
					},
				}, nil)

				tradingService.EXPECT().RequestFeedback("110004", "TX004", "buyer04").Return(errors.New("CompleteSale falhou"))
				// Sem chamada ao MarkFeedbackRequested
			},
			validate: func(t *testing.T, result *domain.FeedbackResult) {
				assert.Equal(t, 1, result.ReadyForRequest)
				assert.Equal(t, 0, result.RequestsSent)
				assert.Equal(t, 1, result.Failed)
			},
		},
		{
			name: "Erro na listagem devolve resultado com erro",
			setup: func(soldRepo *mocks.MockSoldItemRepository, tradingService *tradingmocks.MockTradingIntegrator) {
				soldRepo.EXPECT().ListFeedbackPending().Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, result *domain.FeedbackResult) {
				assert.Equal(t, "conexão perdida", result.Error)
				assert.Equal(t, 0, result.ReadyForRequest)
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

			result := service.RequestFeedbackFromBuyers()
			tt.validate(t, result)
		})
	}
}
