package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSoldItem_ReadyForFeedbackRequest(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	minDays := 7

	tests := []struct {
		name     string
		item     SoldItem
		expected bool
	}{
		{
			name: "Venda enviada e madura é elegível",
			item: SoldItem{
				CreatedDate: timePtr(now.AddDate(0, 0, -10)),
				ShippedTime: timePtr(now.AddDate(0, 0, -8)),
			},
			expected: true,
		},
		{
			name: "Venda exatamente no limite de dias é elegível",
			item: SoldItem{
				CreatedDate: timePtr(now.AddDate(0, 0, -7)),
				ShippedTime: timePtr(now.AddDate(0, 0, -5)),
			},
			expected: true,
		},
		{
			name: "Venda sem envio nunca é elegível",
			item: SoldItem{
				CreatedDate: timePtr(now.AddDate(0, 0, -30)),
				ShippedTime: nil,
			},
			expected: false,
		},
		{
			name: "Venda recente ainda não é elegível",
			item: SoldItem{
				CreatedDate: timePtr(now.AddDate(0, 0, -3)),
				ShippedTime: timePtr(now.AddDate(0, 0, -1)),
			},
			expected: false,
		},
		{
			name: "Feedback já pedido bloqueia nova solicitação",
			item: SoldItem{
				CreatedDate:       timePtr(now.AddDate(0, 0, -10)),
				ShippedTime:       timePtr(now.AddDate(0, 0, -8)),
				FeedbackRequested: true,
			},
			expected: false,
		},
		{
			name: "Feedback já recebido bloqueia a solicitação",
			item: SoldItem{
				CreatedDate:      timePtr(now.AddDate(0, 0, -10)),
				ShippedTime:      timePtr(now.AddDate(0, 0, -8)),
				FeedbackReceived: true,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.item.ReadyForFeedbackRequest(now, minDays))
		})
	}
}
