package tradingclient

import "encoding/xml"

type completeSaleRequest struct {
	XMLName              xml.Name             `xml:"urn:ebay:apis:eBLBaseComponents CompleteSaleRequest"`
	RequesterCredentials requesterCredentials `xml:"RequesterCredentials"`
	ItemID               string               `xml:"ItemID"`
	TransactionID        string               `xml:"TransactionID"`
	FeedbackInfo         feedbackInfo         `xml:"FeedbackInfo"`
}

type feedbackInfo struct {
	CommentText string `xml:"CommentText"`
	CommentType string `xml:"CommentType"`
	TargetUser  string `xml:"TargetUser"`
}

type completeSaleResponse struct {
	XMLName xml.Name   `xml:"CompleteSaleResponse"`
	Ack     string     `xml:"Ack"`
	Errors  []apiError `xml:"Errors"`
}

// CompleteSaleWithFeedback deixa feedback positivo para o comprador, o que
// na prática serve de lembrete para ele retribuir
func (c *TradingClient) CompleteSaleWithFeedback(itemID, transactionID, targetUser, comment string) error {
	request := completeSaleRequest{
		RequesterCredentials: requesterCredentials{EBayAuthToken: c.config.Trading.Token},
		ItemID:               itemID,
		TransactionID:        transactionID,
		FeedbackInfo: feedbackInfo{
			CommentText: comment,
			CommentType: "Positive",
			TargetUser:  targetUser,
		},
	}

	var response completeSaleResponse
	if err := c.call("CompleteSale", request, &response); err != nil {
		return err
	}

	if !ackOK(response.Ack) {
		return ackError("CompleteSale", response.Ack, response.Errors)
	}

	return nil
}
