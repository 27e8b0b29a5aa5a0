package tradingclient

import (
	"encoding/xml"

	tradingdomain "github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading/domain"
)

type getItemRequest struct {
	XMLName              xml.Name             `xml:"urn:ebay:apis:eBLBaseComponents GetItemRequest"`
	RequesterCredentials requesterCredentials `xml:"RequesterCredentials"`
	ItemID               string               `xml:"ItemID"`
	DetailLevel          string               `xml:"DetailLevel"`
}

type getItemResponse struct {
	XMLName xml.Name           `xml:"GetItemResponse"`
	Ack     string             `xml:"Ack"`
	Errors  []apiError         `xml:"Errors"`
	Item    tradingdomain.Item `xml:"Item"`
}

func (c *TradingClient) GetItem(itemID string) (*tradingdomain.Item, error) {
	request := getItemRequest{
		RequesterCredentials: requesterCredentials{EBayAuthToken: c.config.Trading.Token},
		ItemID:               itemID,
		DetailLevel:          "ReturnAll",
	}

	var response getItemResponse
	if err := c.call("GetItem", request, &response); err != nil {
		return nil, err
	}

	if !ackOK(response.Ack) {
		return nil, ackError("GetItem", response.Ack, response.Errors)
	}

	return &response.Item, nil
}
