package tradingclient

import (
	"encoding/xml"

	tradingdomain "github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading/domain"
)

type activeListRequest struct {
	Include    bool       `xml:"Include"`
	Pagination pagination `xml:"Pagination"`
}

type soldListRequest struct {
	Include        bool       `xml:"Include"`
	DurationInDays int        `xml:"DurationInDays"`
	Pagination     pagination `xml:"Pagination"`
}

type getMyeBaySellingRequest struct {
	XMLName              xml.Name             `xml:"urn:ebay:apis:eBLBaseComponents GetMyeBaySellingRequest"`
	RequesterCredentials requesterCredentials `xml:"RequesterCredentials"`
	ActiveList           *activeListRequest   `xml:"ActiveList,omitempty"`
	SoldList             *soldListRequest     `xml:"SoldList,omitempty"`
	DetailLevel          string               `xml:"DetailLevel"`
}

type getMyeBaySellingResponse struct {
	XMLName    xml.Name   `xml:"GetMyeBaySellingResponse"`
	Ack        string     `xml:"Ack"`
	Errors     []apiError `xml:"Errors"`
	ActiveList struct {
		ItemArray struct {
			Items []tradingdomain.Item `xml:"Item"`
		} `xml:"ItemArray"`
	} `xml:"ActiveList"`
	SoldList struct {
		OrderTransactionArray struct {
			OrderTransactions []tradingdomain.OrderTransaction `xml:"OrderTransaction"`
		} `xml:"OrderTransactionArray"`
	} `xml:"SoldList"`
}

// GetMyActiveListings busca uma página de anúncios ativos da conta do vendedor
func (c *TradingClient) GetMyActiveListings(page, entriesPerPage int) ([]tradingdomain.Item, error) {
	request := getMyeBaySellingRequest{
		RequesterCredentials: requesterCredentials{EBayAuthToken: c.config.Trading.Token},
		ActiveList: &activeListRequest{
			Include: true,
			Pagination: pagination{
				EntriesPerPage: entriesPerPage,
				PageNumber:     page,
			},
		},
		DetailLevel: "ReturnAll",
	}

	var response getMyeBaySellingResponse
	if err := c.call("GetMyeBaySelling", request, &response); err != nil {
		return nil, err
	}

	if !ackOK(response.Ack) {
		return nil, ackError("GetMyeBaySelling", response.Ack, response.Errors)
	}

	return response.ActiveList.ItemArray.Items, nil
}

// GetMySoldTransactions busca as vendas da janela recente
func (c *TradingClient) GetMySoldTransactions(windowDays, entriesPerPage int) ([]tradingdomain.OrderTransaction, error) {
	request := getMyeBaySellingRequest{
		RequesterCredentials: requesterCredentials{EBayAuthToken: c.config.Trading.Token},
		SoldList: &soldListRequest{
			Include:        true,
			DurationInDays: windowDays,
			Pagination: pagination{
				EntriesPerPage: entriesPerPage,
			},
		},
		DetailLevel: "ReturnAll",
	}

	var response getMyeBaySellingResponse
	if err := c.call("GetMyeBaySelling", request, &response); err != nil {
		return nil, err
	}

	if !ackOK(response.Ack) {
		return nil, ackError("GetMyeBaySelling", response.Ack, response.Errors)
	}

	return response.SoldList.OrderTransactionArray.OrderTransactions, nil
}
