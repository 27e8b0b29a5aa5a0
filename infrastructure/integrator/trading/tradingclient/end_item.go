package tradingclient

import "encoding/xml"

type endItemRequest struct {
	XMLName              xml.Name             `xml:"urn:ebay:apis:eBLBaseComponents EndItemRequest"`
	RequesterCredentials requesterCredentials `xml:"RequesterCredentials"`
	ItemID               string               `xml:"ItemID"`
	EndingReason         string               `xml:"EndingReason"`
}

type endItemResponse struct {
	XMLName xml.Name   `xml:"EndItemResponse"`
	Ack     string     `xml:"Ack"`
	Errors  []apiError `xml:"Errors"`
}

func (c *TradingClient) EndItem(itemID, reasonCode string) error {
	request := endItemRequest{
		RequesterCredentials: requesterCredentials{EBayAuthToken: c.config.Trading.Token},
		ItemID:               itemID,
		EndingReason:         reasonCode,
	}

	var response endItemResponse
	if err := c.call("EndItem", request, &response); err != nil {
		return err
	}

	if !ackOK(response.Ack) {
		return ackError("EndItem", response.Ack, response.Errors)
	}

	return nil
}
