package domain

import (
	"fmt"
	"strings"
	"time"
)

// ListingRecord é a visão normalizada de um anúncio, já com os timestamps
// convertidos e a melhor imagem escolhida
type ListingRecord struct {
	ItemID       string
	Title        string
	SKU          string
	Price        float64
	Quantity     int
	QuantitySold int
	ListingType  string
	StartTime    *time.Time
	EndTime      *time.Time
	ViewCount    int
	WatchCount   int
	Condition    string
	GalleryURL   string
	Description  string
	CategoryID   string
	ConditionID  string
	Location     string
}

// SoldRecord é a visão normalizada de uma venda do SoldList
type SoldRecord struct {
	ItemID           string
	TransactionID    string
	Title            string
	BuyerID          string
	BuyerEmail       string
	SalePrice        float64
	Quantity         int
	CreatedDate      *time.Time
	PaidTime         *time.Time
	ShippedTime      *time.Time
	FeedbackReceived bool
}

func (i Item) ToRecord() ListingRecord {
	return ListingRecord{
		ItemID:       i.ItemID,
		Title:        i.Title,
		SKU:          i.SKU,
		Price:        i.SellingStatus.CurrentPrice.Float(),
		Quantity:     i.Quantity,
		QuantitySold: i.SellingStatus.QuantitySold,
		ListingType:  i.ListingType,
		StartTime:    ParseTimestamp(i.ListingDetails.StartTime),
		EndTime:      ParseTimestamp(i.ListingDetails.EndTime),
		ViewCount:    i.HitCount,
		WatchCount:   i.WatchCount,
		Condition:    i.ConditionDisplayName,
		GalleryURL:   i.bestImageURL(),
		Description:  i.Description,
		CategoryID:   i.PrimaryCategory.CategoryID,
		ConditionID:  i.ConditionID,
		Location:     i.Location,
	}
}

func (t Transaction) ToRecord() SoldRecord {
	return SoldRecord{
		ItemID:           t.Item.ItemID,
		TransactionID:    t.TransactionID,
		Title:            t.Item.Title,
		BuyerID:          t.Buyer.UserID,
		BuyerEmail:       t.Buyer.Email,
		SalePrice:        t.TransactionPrice.Float(),
		Quantity:         t.QuantityPurchased,
		CreatedDate:      ParseTimestamp(t.CreatedDate),
		PaidTime:         ParseTimestamp(t.PaidTime),
		ShippedTime:      ParseTimestamp(t.ShippedTime),
		FeedbackReceived: t.FeedbackReceived != nil,
	}
}

// bestImageURL escolhe a melhor imagem disponível: galeria do item, galeria
// do PictureDetails, primeira PictureURL, ou a URL padrão do marketplace.
func (i Item) bestImageURL() string {
	if url := strings.TrimSpace(i.GalleryURL); url != "" {
		return url
	}
	if url := strings.TrimSpace(i.PictureDetails.GalleryURL); url != "" {
		return url
	}
	for _, url := range i.PictureDetails.PictureURLs {
		if trimmed := strings.TrimSpace(url); trimmed != "" {
			return trimmed
		}
	}
	if i.ItemID != "" {
		return fmt.Sprintf("https://i.ebayimg.com/images/g/%s/s-l500.jpg", i.ItemID)
	}
	return ""
}
