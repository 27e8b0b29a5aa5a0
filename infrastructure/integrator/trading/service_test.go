package trading

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	tradingdomain "github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading/domain"
	"github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading/tradingclient"
	clientmocks "github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading/tradingclient/mocks"
	"github.com/vfg2006/seller-ops-api/internal/config"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Trading: config.Trading{
			PageSize:           2,
			RelistDelaySeconds: 0,
		},
	}
}

func TestTradingService_GetActiveListings(t *testing.T) {
	t.Run("Paginação para na página curta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clientmocks.NewMockClient(ctrl)
		service := &TradingService{cfg: testConfig(), Client: client}

		client.EXPECT().GetMyActiveListings(1, 2).Return([]tradingdomain.Item{
			{ItemID: "110001"},
			{ItemID: "110002"},
		}, nil)
		client.EXPECT().GetMyActiveListings(2, 2).Return([]tradingdomain.Item{
			{ItemID: "110003"},
		}, nil)

		records, err := service.GetActiveListings()

		assert.NoError(t, err)
		assert.Len(t, records, 3)
		assert.Equal(t, "110001", records[0].ItemID)
		assert.Equal(t, "110003", records[2].ItemID)
	})

	t.Run("Erro de transporte devolve lista vazia sem erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clientmocks.NewMockClient(ctrl)
		service := &TradingService{cfg: testConfig(), Client: client}

		client.EXPECT().GetMyActiveListings(1, 2).Return(nil, errors.New("timeout"))

		records, err := service.GetActiveListings()

		assert.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestTradingService_GetSoldItems(t *testing.T) {
	t.Run("Vendas da janela são normalizadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clientmocks.NewMockClient(ctrl)
		service := &TradingService{cfg: testConfig(), Client: client}

		client.EXPECT().GetMySoldTransactions(30, 2).Return([]tradingdomain.OrderTransaction{
			{
				Transaction: tradingdomain.Transaction{
					TransactionID: "TX001",
					Item:          tradingdomain.Item{ItemID: "110001", Title: "Câmera vintage"},
					Buyer:         tradingdomain.Buyer{UserID: "buyer01"},
				},
			},
		}, nil)

		records, err := service.GetSoldItems(30)

		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "TX001", records[0].TransactionID)
		assert.Equal(t, "buyer01", records[0].BuyerID)
	})

	t.Run("Erro de transporte devolve lista vazia sem erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clientmocks.NewMockClient(ctrl)
		service := &TradingService{cfg: testConfig(), Client: client}

		client.EXPECT().GetMySoldTransactions(30, 2).Return(nil, errors.New("timeout"))

		records, err := service.GetSoldItems(30)

		assert.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestTradingService_EndAndRelistItem(t *testing.T) {
	original := &tradingdomain.Item{
		ItemID:          "110001",
		Title:           "Câmera vintage",
		Description:     "Funcionando, com estojo",
		PrimaryCategory: tradingdomain.PrimaryCategory{CategoryID: "625"},
		ConditionID:     "3000",
		Location:        "Miami, FL",
		SellingStatus: tradingdomain.SellingStatus{
			CurrentPrice: tradingdomain.Amount{CurrencyID: "USD", Value: "149.90"},
		},
	}

	t.Run("Substituto herda os detalhes do original", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clientmocks.NewMockClient(ctrl)
		service := &TradingService{cfg: testConfig(), Client: client}

		client.EXPECT().EndItem("110001", EndReasonNotAvailable).Return(nil)
		client.EXPECT().GetItem("110001").Return(original, nil)
		client.EXPECT().AddFixedPriceItem(gomock.Any()).DoAndReturn(func(listing tradingclient.NewListing) (string, error) {
			assert.Equal(t, "Câmera vintage", listing.Title)
			assert.Equal(t, "625", listing.CategoryID)
			assert.Equal(t, 149.90, listing.Price)
			assert.Equal(t, 1, listing.Quantity)
			return "110099", nil
		})

		newItemID, err := service.EndAndRelistItem("110001", nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, "110099", newItemID)
	})

	t.Run("Título e preço novos sobrescrevem o molde", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clientmocks.NewMockClient(ctrl)
		service := &TradingService{cfg: testConfig(), Client: client}

		client.EXPECT().EndItem("110001", EndReasonNotAvailable).Return(nil)
		client.EXPECT().GetItem("110001").Return(original, nil)
		client.EXPECT().AddFixedPriceItem(gomock.Any()).DoAndReturn(func(listing tradingclient.NewListing) (string, error) {
			assert.Equal(t, "Câmera vintage revisada", listing.Title)
			assert.Equal(t, 129.90, listing.Price)
			return "110100", nil
		})

		newTitle := "Câmera vintage revisada"
		newPrice := 129.90
		newItemID, err := service.EndAndRelistItem("110001", &newTitle, &newPrice)

		assert.NoError(t, err)
		assert.Equal(t, "110100", newItemID)
	})

	t.Run("Falha no encerramento não toca o resto do fluxo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clientmocks.NewMockClient(ctrl)
		service := &TradingService{cfg: testConfig(), Client: client}

		client.EXPECT().EndItem("110001", EndReasonNotAvailable).Return(errors.New("EndItem falhou"))

		_, err := service.EndAndRelistItem("110001", nil, nil)

		assert.Error(t, err)
		var partial *PartialRelistError
		assert.False(t, errors.As(err, &partial))
	})

	t.Run("Falha depois do encerramento vira PartialRelistError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clientmocks.NewMockClient(ctrl)
		service := &TradingService{cfg: testConfig(), Client: client}

		client.EXPECT().EndItem("110001", EndReasonNotAvailable).Return(nil)
		client.EXPECT().GetItem("110001").Return(original, nil)
		client.EXPECT().AddFixedPriceItem(gomock.Any()).Return("", errors.New("AddFixedPriceItem falhou"))

		_, err := service.EndAndRelistItem("110001", nil, nil)

		var partial *PartialRelistError
		assert.ErrorAs(t, err, &partial)
		assert.Equal(t, "110001", partial.ItemID)
	})
}

func TestTradingService_RequestFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	service := &TradingService{cfg: testConfig(), Client: client}

	client.EXPECT().CompleteSaleWithFeedback("110001", "TX001", "buyer01", feedbackComment).Return(nil)

	err := service.RequestFeedback("110001", "TX001", "buyer01")

	assert.NoError(t, err)
}
