package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected *time.Time
	}{
		{
			name:     "Formato com milissegundos da Trading API",
			value:    "2024-06-01T10:30:00.000Z",
			expected: timePtr(time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)),
		},
		{
			name:     "Formato RFC3339 também é aceito",
			value:    "2024-06-01T10:30:00Z",
			expected: timePtr(time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)),
		},
		{
			name:     "Valor vazio vira nil",
			value:    "",
			expected: nil,
		},
		{
			name:     "Valor fora do formato vira nil em vez de erro",
			value:    "01/06/2024 10:30",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseTimestamp(tt.value)
			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}
			assert.NotNil(t, result)
			assert.True(t, tt.expected.Equal(*result))
		})
	}
}

func TestAmount_Float(t *testing.T) {
	tests := []struct {
		name     string
		amount   Amount
		expected float64
	}{
		{
			name:     "Valor monetário é convertido",
			amount:   Amount{CurrencyID: "USD", Value: "19.99"},
			expected: 19.99,
		},
		{
			name:     "Espaços ao redor são tolerados",
			amount:   Amount{Value: " 5.50 "},
			expected: 5.5,
		},
		{
			name:     "Valor vazio vira zero",
			amount:   Amount{},
			expected: 0,
		},
		{
			name:     "Valor inválido vira zero",
			amount:   Amount{Value: "abc"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.amount.Float())
		})
	}
}

func TestItem_ToRecord(t *testing.T) {
	item := Item{
		ItemID:               "110001",
		Title:                "Câmera vintage",
		SKU:                  "CAM-01",
		Quantity:             2,
		ListingType:          "FixedPriceItem",
		HitCount:             37,
		WatchCount:           4,
		ConditionDisplayName: "Used",
		SellingStatus: SellingStatus{
			CurrentPrice: Amount{CurrencyID: "USD", Value: "149.90"},
			QuantitySold: 1,
		},
		ListingDetails: ListingDetails{
			StartTime: "2024-05-01T08:00:00.000Z",
		},
	}

	record := item.ToRecord()

	assert.Equal(t, "110001", record.ItemID)
	assert.Equal(t, "Câmera vintage", record.Title)
	assert.Equal(t, 149.90, record.Price)
	assert.Equal(t, 1, record.QuantitySold)
	assert.Equal(t, 37, record.ViewCount)
	assert.Equal(t, 4, record.WatchCount)
	assert.NotNil(t, record.StartTime)
	assert.Nil(t, record.EndTime)
}

func TestItem_bestImageURL(t *testing.T) {
	tests := []struct {
		name     string
		item     Item
		expected string
	}{
		{
			name:     "Galeria do item tem prioridade",
			item:     Item{ItemID: "110001", GalleryURL: "https://example.com/a.jpg", PictureDetails: PictureDetails{GalleryURL: "https://example.com/b.jpg"}},
			expected: "https://example.com/a.jpg",
		},
		{
			name:     "Galeria do PictureDetails é a segunda opção",
			item:     Item{ItemID: "110001", PictureDetails: PictureDetails{GalleryURL: "https://example.com/b.jpg"}},
			expected: "https://example.com/b.jpg",
		},
		{
			name:     "Primeira PictureURL não vazia é usada",
			item:     Item{ItemID: "110001", PictureDetails: PictureDetails{PictureURLs: []string{"  ", "https://example.com/c.jpg"}}},
			expected: "https://example.com/c.jpg",
		},
		{
			name:     "Sem imagem nenhuma cai na URL padrão do marketplace",
			item:     Item{ItemID: "110001"},
			expected: "https://i.ebayimg.com/images/g/110001/s-l500.jpg",
		},
		{
			name:     "Sem imagem e sem item devolve vazio",
			item:     Item{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.item.bestImageURL())
		})
	}
}

func TestTransaction_ToRecord(t *testing.T) {
	transaction := Transaction{
		TransactionID: "TX001",
		Item:          Item{ItemID: "110001", Title: "Câmera vintage"},
		Buyer:         Buyer{UserID: "buyer01", Email: "buyer@example.com"},
		TransactionPrice: Amount{
			CurrencyID: "USD",
			Value:      "149.90",
		},
		QuantityPurchased: 1,
		CreatedDate:       "2024-06-01T10:00:00.000Z",
		ShippedTime:       "2024-06-03T15:00:00.000Z",
		FeedbackReceived:  &FeedbackRating{CommentType: "Positive"},
	}

	record := transaction.ToRecord()

	assert.Equal(t, "TX001", record.TransactionID)
	assert.Equal(t, "110001", record.ItemID)
	assert.Equal(t, "buyer01", record.BuyerID)
	assert.Equal(t, 149.90, record.SalePrice)
	assert.NotNil(t, record.CreatedDate)
	assert.NotNil(t, record.ShippedTime)
	assert.Nil(t, record.PaidTime)
	assert.True(t, record.FeedbackReceived)

	transaction.FeedbackReceived = nil
	assert.False(t, transaction.ToRecord().FeedbackReceived)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
