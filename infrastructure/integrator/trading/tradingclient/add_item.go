package tradingclient

import (
	"encoding/xml"
	"fmt"
)

// NewListing reúne os campos necessários para criar o anúncio substituto
// a partir dos detalhes do anúncio original
type NewListing struct {
	Title       string
	Description string
	CategoryID  string
	Price       float64
	Quantity    int
	ConditionID string
	Location    string
	GalleryURL  string
}

type addFixedPriceItemRequest struct {
	XMLName              xml.Name             `xml:"urn:ebay:apis:eBLBaseComponents AddFixedPriceItemRequest"`
	RequesterCredentials requesterCredentials `xml:"RequesterCredentials"`
	Item                 addItemBody          `xml:"Item"`
}

type addItemBody struct {
	Title              string                 `xml:"Title"`
	Description        string                 `xml:"Description"`
	PrimaryCategory    addItemCategory        `xml:"PrimaryCategory"`
	StartPrice         string                 `xml:"StartPrice"`
	Quantity           int                    `xml:"Quantity"`
	ListingDuration    string                 `xml:"ListingDuration"`
	ListingType        string                 `xml:"ListingType"`
	Location           string                 `xml:"Location"`
	Country            string                 `xml:"Country"`
	Currency           string                 `xml:"Currency"`
	ConditionID        string                 `xml:"ConditionID"`
	PayPalEmailAddress string                 `xml:"PayPalEmailAddress,omitempty"`
	DispatchTimeMax    int                    `xml:"DispatchTimeMax"`
	ShippingDetails    addItemShipping        `xml:"ShippingDetails"`
	ReturnPolicy       addItemReturnPolicy    `xml:"ReturnPolicy"`
	PictureDetails     *addItemPictureDetails `xml:"PictureDetails,omitempty"`
}

type addItemCategory struct {
	CategoryID string `xml:"CategoryID"`
}

type addItemShipping struct {
	ShippingType           string                `xml:"ShippingType"`
	ShippingServiceOptions addItemShippingOption `xml:"ShippingServiceOptions"`
}

type addItemShippingOption struct {
	ShippingServicePriority       int    `xml:"ShippingServicePriority"`
	ShippingService               string `xml:"ShippingService"`
	ShippingServiceCost           string `xml:"ShippingServiceCost"`
	ShippingServiceAdditionalCost string `xml:"ShippingServiceAdditionalCost"`
}

type addItemReturnPolicy struct {
	ReturnsAcceptedOption    string `xml:"ReturnsAcceptedOption"`
	RefundOption             string `xml:"RefundOption"`
	ReturnsWithinOption      string `xml:"ReturnsWithinOption"`
	ShippingCostPaidByOption string `xml:"ShippingCostPaidByOption"`
}

type addItemPictureDetails struct {
	PictureURLs []string `xml:"PictureURL"`
}

type addFixedPriceItemResponse struct {
	XMLName xml.Name   `xml:"AddFixedPriceItemResponse"`
	Ack     string     `xml:"Ack"`
	Errors  []apiError `xml:"Errors"`
	ItemID  string     `xml:"ItemID"`
}

// AddFixedPriceItem cria um anúncio de preço fixo e devolve o ItemID gerado
func (c *TradingClient) AddFixedPriceItem(listing NewListing) (string, error) {
	body := addItemBody{
		Title:              listing.Title,
		Description:        listing.Description,
		PrimaryCategory:    addItemCategory{CategoryID: listing.CategoryID},
		StartPrice:         fmt.Sprintf("%.2f", listing.Price),
		Quantity:           listing.Quantity,
		ListingDuration:    c.config.Trading.ListingDuration,
		ListingType:        "FixedPriceItem",
		Location:           listing.Location,
		Country:            "US",
		Currency:           "USD",
		ConditionID:        listing.ConditionID,
		PayPalEmailAddress: c.config.Trading.PayPalEmailAddress,
		DispatchTimeMax:    1,
		ShippingDetails: addItemShipping{
			ShippingType: "Flat",
			ShippingServiceOptions: addItemShippingOption{
				ShippingServicePriority:       1,
				ShippingService:               "USPSMedia",
				ShippingServiceCost:           "0.00",
				ShippingServiceAdditionalCost: "0.00",
			},
		},
		ReturnPolicy: addItemReturnPolicy{
			ReturnsAcceptedOption:    "ReturnsAccepted",
			RefundOption:             "MoneyBack",
			ReturnsWithinOption:      "Days_30",
			ShippingCostPaidByOption: "Buyer",
		},
	}

	if listing.Location == "" {
		body.Location = c.config.Trading.DefaultLocation
	}
	if listing.ConditionID == "" {
		body.ConditionID = c.config.Trading.DefaultConditionID
	}
	if listing.GalleryURL != "" {
		body.PictureDetails = &addItemPictureDetails{PictureURLs: []string{listing.GalleryURL}}
	}

	request := addFixedPriceItemRequest{
		RequesterCredentials: requesterCredentials{EBayAuthToken: c.config.Trading.Token},
		Item:                 body,
	}

	var response addFixedPriceItemResponse
	if err := c.call("AddFixedPriceItem", request, &response); err != nil {
		return "", err
	}

	if !ackOK(response.Ack) {
		return "", ackError("AddFixedPriceItem", response.Ack, response.Errors)
	}

	return response.ItemID, nil
}
