package domain

import "time"

// OfferSent registra cada oportunidade de oferta identificada para um anúncio.
// Append-only; a linha mais recente define o cooldown de ofertas do item.
type OfferSent struct {
	ID              string    `json:"id"`
	ListingID       string    `json:"listing_id"`
	ItemID          string    `json:"item_id"`
	BuyerID         *string   `json:"buyer_id,omitempty"`
	OfferPrice      float64   `json:"offer_price"`
	OriginalPrice   float64   `json:"original_price"`
	DiscountPercent float64   `json:"discount_percent"`
	Message         string    `json:"message,omitempty"`
	SentAt          time.Time `json:"sent_at"`
	Success         bool      `json:"success"`
	ErrorMessage    *string   `json:"error_message,omitempty"`
}
