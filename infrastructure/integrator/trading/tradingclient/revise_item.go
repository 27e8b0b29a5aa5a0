package tradingclient

import (
	"encoding/xml"
	"fmt"
)

type reviseItemRequest struct {
	XMLName              xml.Name             `xml:"urn:ebay:apis:eBLBaseComponents ReviseItemRequest"`
	RequesterCredentials requesterCredentials `xml:"RequesterCredentials"`
	Item                 reviseItemBody       `xml:"Item"`
}

type reviseItemBody struct {
	ItemID     string `xml:"ItemID"`
	StartPrice string `xml:"StartPrice,omitempty"`
	Quantity   *int   `xml:"Quantity,omitempty"`
}

type reviseItemResponse struct {
	XMLName xml.Name   `xml:"ReviseItemResponse"`
	Ack     string     `xml:"Ack"`
	Errors  []apiError `xml:"Errors"`
}

func (c *TradingClient) ReviseItemPrice(itemID string, price float64) error {
	return c.reviseItem(reviseItemBody{
		ItemID:     itemID,
		StartPrice: fmt.Sprintf("%.2f", price),
	})
}

func (c *TradingClient) ReviseItemQuantity(itemID string, quantity int) error {
	return c.reviseItem(reviseItemBody{
		ItemID:   itemID,
		Quantity: &quantity,
	})
}

func (c *TradingClient) reviseItem(body reviseItemBody) error {
	request := reviseItemRequest{
		RequesterCredentials: requesterCredentials{EBayAuthToken: c.config.Trading.Token},
		Item:                 body,
	}

	var response reviseItemResponse
	if err := c.call("ReviseItem", request, &response); err != nil {
		return err
	}

	if !ackOK(response.Ack) {
		return ackError("ReviseItem", response.Ack, response.Errors)
	}

	return nil
}
