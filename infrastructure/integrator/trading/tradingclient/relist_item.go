package tradingclient

import "encoding/xml"

type relistItemRequest struct {
	XMLName              xml.Name             `xml:"urn:ebay:apis:eBLBaseComponents RelistItemRequest"`
	RequesterCredentials requesterCredentials `xml:"RequesterCredentials"`
	Item                 relistItemBody       `xml:"Item"`
}

type relistItemBody struct {
	ItemID string `xml:"ItemID"`
}

type relistItemResponse struct {
	XMLName xml.Name   `xml:"RelistItemResponse"`
	Ack     string     `xml:"Ack"`
	Errors  []apiError `xml:"Errors"`
	ItemID  string     `xml:"ItemID"`
}

// RelistItem relança um anúncio encerrado e devolve o novo ItemID
func (c *TradingClient) RelistItem(itemID string) (string, error) {
	request := relistItemRequest{
		RequesterCredentials: requesterCredentials{EBayAuthToken: c.config.Trading.Token},
		Item:                 relistItemBody{ItemID: itemID},
	}

	var response relistItemResponse
	if err := c.call("RelistItem", request, &response); err != nil {
		return "", err
	}

	if !ackOK(response.Ack) {
		return "", ackError("RelistItem", response.Ack, response.Errors)
	}

	return response.ItemID, nil
}
