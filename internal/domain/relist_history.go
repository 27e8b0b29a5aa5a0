package domain

import "time"

// RelistHistory registra cada tentativa de encerrar e relistar um anúncio.
// Tabela append-only: é ela que sustenta o cooldown de relistagem.
type RelistHistory struct {
	ID           string    `json:"id"`
	ListingID    string    `json:"listing_id"`
	ItemID       string    `json:"item_id"`
	NewItemID    *string   `json:"new_item_id,omitempty"`
	RelistedAt   time.Time `json:"relisted_at"`
	Reason       string    `json:"reason,omitempty"`
	Success      bool      `json:"success"`
	ErrorMessage *string   `json:"error_message,omitempty"`
}
