package domain

import "time"

// SyncStats resume uma passada de sincronização de anúncios
type SyncStats struct {
	Total       int `json:"total"`
	New         int `json:"new"`
	Updated     int `json:"updated"`
	Deactivated int `json:"deactivated"`
}

// SoldSyncStats resume uma passada de sincronização de vendas
type SoldSyncStats struct {
	Total   int `json:"total"`
	New     int `json:"new"`
	Updated int `json:"updated"`
}

// StaleListingItem é a visão de um anúncio parado devolvida pela checagem
type StaleListingItem struct {
	ItemID     string  `json:"item_id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	ViewCount  int     `json:"view_count"`
	WatchCount int     `json:"watch_count"`
	DaysListed int     `json:"days_listed"`
	GalleryURL string  `json:"gallery_url,omitempty"`
	Reason     string  `json:"reason"`
}

// StaleCheckResult agrega o resultado da checagem de anúncios parados
type StaleCheckResult struct {
	Success    bool               `json:"success"`
	StaleCount int                `json:"stale_count"`
	Relisted   int                `json:"relisted"`
	Failed     int                `json:"failed"`
	Listings   []StaleListingItem `json:"listings"`
	Error      string             `json:"error,omitempty"`
}

// OfferCandidateItem é a visão de um anúncio elegível para oferta no lote
type OfferCandidateItem struct {
	ItemID     string  `json:"item_id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	ViewCount  int     `json:"view_count"`
	WatchCount int     `json:"watch_count"`
	DaysListed int     `json:"days_listed"`
	GalleryURL string  `json:"gallery_url,omitempty"`
}

// OfferBatchResult agrega o resultado do lote de ofertas para observadores
type OfferBatchResult struct {
	Success            bool                 `json:"success"`
	OpportunitiesFound int                  `json:"opportunities_found"`
	OffersSent         int                  `json:"offers_sent"`
	Failed             int                  `json:"failed"`
	Listings           []OfferCandidateItem `json:"listings"`
	Error              string               `json:"error,omitempty"`
}

// OfferResponse é a resposta da oferta manual de um único item
type OfferResponse struct {
	Success           bool    `json:"success"`
	Message           string  `json:"message,omitempty"`
	Error             string  `json:"error,omitempty"`
	CooldownRemaining int     `json:"cooldown_remaining,omitempty"`
	LastOfferDate     string  `json:"last_offer_date,omitempty"`
	OfferPrice        float64 `json:"offer_price,omitempty"`
	DiscountPercent   float64 `json:"discount_percent,omitempty"`
	Watchers          int     `json:"watchers,omitempty"`
	Views             int     `json:"views,omitempty"`
}

// OfferEligibility é a resposta da consulta de elegibilidade (somente leitura)
type OfferEligibility struct {
	Eligible          bool    `json:"eligible"`
	Reason            string  `json:"reason,omitempty"`
	CooldownRemaining int     `json:"cooldown_remaining,omitempty"`
	Watchers          int     `json:"watchers,omitempty"`
	Views             int     `json:"views,omitempty"`
	Price             float64 `json:"price,omitempty"`
}

// FeedbackResult agrega o resultado da rodada de pedidos de feedback
type FeedbackResult struct {
	ReadyForRequest int    `json:"ready_for_request"`
	RequestsSent    int    `json:"requests_sent"`
	Failed          int    `json:"failed"`
	Error           string `json:"error,omitempty"`
}

// ListingPageItem é a visão de um anúncio na listagem paginada do painel
type ListingPageItem struct {
	ItemID     string  `json:"item_id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	ViewCount  int     `json:"view_count"`
	WatchCount int     `json:"watch_count"`
	DaysListed int     `json:"days_listed"`
	GalleryURL string  `json:"gallery_url,omitempty"`
	IsStale    bool    `json:"is_stale"`
	IsActive   bool    `json:"is_active"`
}

// ListingPage é uma página da listagem do painel
type ListingPage struct {
	Items      []ListingPageItem `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
}

// DashboardStats resume o estado da loja para o painel
type DashboardStats struct {
	ActiveListings  int        `json:"active_listings"`
	InactiveListing int        `json:"inactive_listings"`
	RelistsLast30d  int64      `json:"relists_last_30d"`
	OffersLast30d   int64      `json:"offers_last_30d"`
	PendingFeedback int        `json:"pending_feedback"`
	LastSyncAt      *time.Time `json:"last_sync_at,omitempty"`
}

// RelistResponse é a resposta do encerrar-e-relistar manual de um item
type RelistResponse struct {
	Success        bool   `json:"success"`
	OriginalItemID string `json:"original_item_id,omitempty"`
	NewItemID      string `json:"new_item_id,omitempty"`
	Message        string `json:"message,omitempty"`
	Error          string `json:"error,omitempty"`
}
