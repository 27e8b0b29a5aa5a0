package domain

import (
	"strconv"
	"strings"
	"time"
)

// Amount é o formato monetário da Trading API (valor no texto, moeda no atributo)
type Amount struct {
	CurrencyID string `xml:"currencyID,attr"`
	Value      string `xml:",chardata"`
}

func (a Amount) Float() float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64)
	if err != nil {
		return 0
	}
	return value
}

type SellingStatus struct {
	CurrentPrice  Amount `xml:"CurrentPrice"`
	QuantitySold  int    `xml:"QuantitySold"`
	ListingStatus string `xml:"ListingStatus"`
}

type ListingDetails struct {
	StartTime   string `xml:"StartTime"`
	EndTime     string `xml:"EndTime"`
	ViewItemURL string `xml:"ViewItemURL"`
}

type PictureDetails struct {
	GalleryURL  string   `xml:"GalleryURL"`
	PictureURLs []string `xml:"PictureURL"`
}

type PrimaryCategory struct {
	CategoryID string `xml:"CategoryID"`
}

// Item é o anúncio como a Trading API o devolve
type Item struct {
	ItemID               string          `xml:"ItemID"`
	Title                string          `xml:"Title"`
	SKU                  string          `xml:"SKU"`
	Description          string          `xml:"Description"`
	Quantity             int             `xml:"Quantity"`
	ListingType          string          `xml:"ListingType"`
	HitCount             int             `xml:"HitCount"`
	WatchCount           int             `xml:"WatchCount"`
	ConditionID          string          `xml:"ConditionID"`
	ConditionDisplayName string          `xml:"ConditionDisplayName"`
	Location             string          `xml:"Location"`
	GalleryURL           string          `xml:"GalleryURL"`
	SellingStatus        SellingStatus   `xml:"SellingStatus"`
	ListingDetails       ListingDetails  `xml:"ListingDetails"`
	PictureDetails       PictureDetails  `xml:"PictureDetails"`
	PrimaryCategory      PrimaryCategory `xml:"PrimaryCategory"`
}

type Buyer struct {
	UserID string `xml:"UserID"`
	Email  string `xml:"Email"`
}

type FeedbackRating struct {
	CommentType string `xml:"CommentType"`
}

// Transaction é uma venda individual dentro do SoldList
type Transaction struct {
	TransactionID     string          `xml:"TransactionID"`
	Item              Item            `xml:"Item"`
	Buyer             Buyer           `xml:"Buyer"`
	TransactionPrice  Amount          `xml:"TransactionPrice"`
	QuantityPurchased int             `xml:"QuantityPurchased"`
	CreatedDate       string          `xml:"CreatedDate"`
	PaidTime          string          `xml:"PaidTime"`
	ShippedTime       string          `xml:"ShippedTime"`
	FeedbackReceived  *FeedbackRating `xml:"FeedbackReceived"`
}

type OrderTransaction struct {
	Transaction Transaction `xml:"Transaction"`
}

// ParseTimestamp converte o timestamp da Trading API. Valor ausente ou
// fora do formato vira nil em vez de erro, o espelho tolera a lacuna.
func ParseTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}

	layouts := []string{
		"2006-01-02T15:04:05.000Z",
		time.RFC3339,
	}

	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			utc := parsed.UTC()
			return &utc
		}
	}

	return nil
}
