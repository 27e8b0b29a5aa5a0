package domain

import "time"

// Listing é o espelho local de um anúncio ativo (ou encerrado) no marketplace
type Listing struct {
	ID           string     `json:"id"`
	ItemID       string     `json:"item_id"`
	Title        string     `json:"title"`
	SKU          string     `json:"sku,omitempty"`
	Price        float64    `json:"price"`
	Quantity     int        `json:"quantity"`
	QuantitySold int        `json:"quantity_sold"`
	ListingType  string     `json:"listing_type,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	ViewCount    int        `json:"view_count"`
	WatchCount   int        `json:"watch_count"`
	Condition    string     `json:"condition,omitempty"`
	GalleryURL   string     `json:"gallery_url,omitempty"`
	IsActive     bool       `json:"is_active"`
	LastUpdated  time.Time  `json:"last_updated"`
}

// DaysListed calcula há quantos dias o anúncio está no ar.
// Sem StartTime (o marketplace nem sempre devolve) o anúncio conta como novo.
func (l *Listing) DaysListed(now time.Time) int {
	if l.StartTime == nil {
		return 0
	}
	return int(now.Sub(*l.StartTime).Hours() / 24)
}

// Razões atribuídas a um anúncio parado, na ordem de prioridade de avaliação
const (
	StaleReasonOldLowTraffic   = "old_low_traffic"
	StaleReasonVeryOld         = "very_old"
	StaleReasonDefinitelyStale = "definitely_stale"
)

// ListingStatus filtra a listagem do painel
type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "active"
	ListingStatusStale    ListingStatus = "stale"
	ListingStatusInactive ListingStatus = "inactive"
	ListingStatusAll      ListingStatus = "all"
)
