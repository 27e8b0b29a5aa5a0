package domain

import "time"

// SoldItem é o espelho local de uma transação concluída, usado para
// acompanhar o ciclo de solicitação de feedback do comprador
type SoldItem struct {
	ID                  string     `json:"id"`
	ItemID              string     `json:"item_id"`
	TransactionID       string     `json:"transaction_id"`
	Title               string     `json:"title,omitempty"`
	BuyerID             string     `json:"buyer_id"`
	BuyerEmail          string     `json:"buyer_email,omitempty"`
	SalePrice           float64    `json:"sale_price"`
	Quantity            int        `json:"quantity"`
	CreatedDate         *time.Time `json:"created_date,omitempty"`
	PaidTime            *time.Time `json:"paid_time,omitempty"`
	ShippedTime         *time.Time `json:"shipped_time,omitempty"`
	FeedbackReceived    bool       `json:"feedback_received"`
	FeedbackRequested   bool       `json:"feedback_requested"`
	FeedbackRequestedAt *time.Time `json:"feedback_requested_at,omitempty"`
	LastUpdated         time.Time  `json:"last_updated"`
}

// DaysSinceSale calcula a idade da venda em dias
func (s *SoldItem) DaysSinceSale(now time.Time) int {
	if s.CreatedDate == nil {
		return 0
	}
	return int(now.Sub(*s.CreatedDate).Hours() / 24)
}

// ReadyForFeedbackRequest indica se já é hora de pedir feedback.
// Venda sem ShippedTime nunca é elegível, independente da idade.
func (s *SoldItem) ReadyForFeedbackRequest(now time.Time, minDays int) bool {
	return !s.FeedbackRequested &&
		!s.FeedbackReceived &&
		s.ShippedTime != nil &&
		s.DaysSinceSale(now) >= minDays
}
