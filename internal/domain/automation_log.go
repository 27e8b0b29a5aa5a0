package domain

import "time"

// Tipos de ação registrados na trilha de auditoria
const (
	ActionSyncListings    = "sync_listings"
	ActionSyncSold        = "sync_sold"
	ActionEndRelist       = "end_relist"
	ActionCheckStale      = "check_stale"
	ActionOffer           = "offer"
	ActionSendOffers      = "send_offers"
	ActionFeedback        = "feedback"
	ActionRequestFeedback = "request_feedback"
)

// Status possíveis de uma entrada de log
const (
	LogStatusSuccess = "success"
	LogStatusFailed  = "failed"
	LogStatusSkipped = "skipped"
)

// AutomationLog é a trilha de auditoria de toda ação do motor de regras
type AutomationLog struct {
	ID         string    `json:"id"`
	ActionType string    `json:"action_type"`
	ItemID     *string   `json:"item_id,omitempty"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	Details    *string   `json:"details,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
