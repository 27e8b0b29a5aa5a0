package tradingclient

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/seller-ops-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Trading: config.Trading{
			URL:                server.URL,
			AppID:              "app-id",
			DevID:              "dev-id",
			CertID:             "cert-id",
			Token:              "auth-token",
			SiteID:             "0",
			CompatibilityLevel: "967",
			ListingDuration:    "GTC",
			DefaultLocation:    "Miami, FL",
			DefaultConditionID: "3000",
		},
	}

	return NewClient(cfg)
}

func TestTradingClient_GetMyActiveListings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "text/xml", r.Header.Get("Content-Type"))
		assert.Equal(t, "GetMyeBaySelling", r.Header.Get("X-EBAY-API-CALL-NAME"))
		assert.Equal(t, "app-id", r.Header.Get("X-EBAY-API-APP-NAME"))
		assert.Equal(t, "dev-id", r.Header.Get("X-EBAY-API-DEV-NAME"))
		assert.Equal(t, "cert-id", r.Header.Get("X-EBAY-API-CERT-NAME"))
		assert.Equal(t, "967", r.Header.Get("X-EBAY-API-COMPATIBILITY-LEVEL"))
		assert.Equal(t, "0", r.Header.Get("X-EBAY-API-SITEID"))

		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "<eBayAuthToken>auth-token</eBayAuthToken>")
		assert.Contains(t, string(body), "<PageNumber>2</PageNumber>")
		assert.Contains(t, string(body), "<EntriesPerPage>100</EntriesPerPage>")

		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<GetMyeBaySellingResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Success</Ack>
  <ActiveList>
    <ItemArray>
      <Item>
        <ItemID>110001</ItemID>
        <Title>Câmera vintage</Title>
        <SellingStatus>
          <CurrentPrice currencyID="USD">149.90</CurrentPrice>
          <QuantitySold>1</QuantitySold>
        </SellingStatus>
        <WatchCount>4</WatchCount>
      </Item>
      <Item>
        <ItemID>110002</ItemID>
        <Title>Lente 50mm</Title>
      </Item>
    </ItemArray>
  </ActiveList>
</GetMyeBaySellingResponse>`))
	})

	items, err := client.GetMyActiveListings(2, 100)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "110001", items[0].ItemID)
	assert.Equal(t, "149.90", items[0].SellingStatus.CurrentPrice.Value)
	assert.Equal(t, 4, items[0].WatchCount)
}

func TestTradingClient_GetMySoldTransactions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "<DurationInDays>30</DurationInDays>")

		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<GetMyeBaySellingResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Success</Ack>
  <SoldList>
    <OrderTransactionArray>
      <OrderTransaction>
        <Transaction>
          <TransactionID>TX001</TransactionID>
          <Item><ItemID>110001</ItemID></Item>
          <Buyer><UserID>buyer01</UserID></Buyer>
          <CreatedDate>2024-06-01T10:00:00.000Z</CreatedDate>
        </Transaction>
      </OrderTransaction>
    </OrderTransactionArray>
  </SoldList>
</GetMyeBaySellingResponse>`))
	})

	transactions, err := client.GetMySoldTransactions(30, 100)

	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
	assert.Equal(t, "TX001", transactions[0].Transaction.TransactionID)
	assert.Equal(t, "buyer01", transactions[0].Transaction.Buyer.UserID)
}

func TestTradingClient_EndItem(t *testing.T) {
	t.Run("Ack Warning conta como concluído", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "EndItem", r.Header.Get("X-EBAY-API-CALL-NAME"))

			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), "<ItemID>110001</ItemID>")
			assert.Contains(t, string(body), "<EndingReason>NotAvailable</EndingReason>")

			w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<EndItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Warning</Ack>
</EndItemResponse>`))
		})

		err := client.EndItem("110001", "NotAvailable")

		assert.NoError(t, err)
	})

	t.Run("Ack Failure vira erro com os detalhes do marketplace", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<EndItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Failure</Ack>
  <Errors>
    <SeverityCode>Error</SeverityCode>
    <ShortMessage>Item not found</ShortMessage>
    <LongMessage>The item cannot be found.</LongMessage>
    <ErrorCode>17</ErrorCode>
  </Errors>
</EndItemResponse>`))
		})

		err := client.EndItem("110001", "NotAvailable")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "The item cannot be found.")
		assert.Contains(t, err.Error(), "código 17")
	})

	t.Run("Status fora do 200 vira erro de requisição", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		err := client.EndItem("110001", "NotAvailable")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "requisição falhou com status")
	})
}

func TestTradingClient_RelistItem(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "RelistItem", r.Header.Get("X-EBAY-API-CALL-NAME"))

		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<RelistItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Success</Ack>
  <ItemID>110099</ItemID>
</RelistItemResponse>`))
	})

	newItemID, err := client.RelistItem("110001")

	assert.NoError(t, err)
	assert.Equal(t, "110099", newItemID)
}

func TestTradingClient_AddFixedPriceItem(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AddFixedPriceItem", r.Header.Get("X-EBAY-API-CALL-NAME"))

		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "<Title>Câmera vintage</Title>")
		assert.Contains(t, string(body), "<StartPrice>149.90</StartPrice>")
		assert.Contains(t, string(body), "<ListingDuration>GTC</ListingDuration>")
		assert.Contains(t, string(body), "<Location>Miami, FL</Location>")
		assert.Contains(t, string(body), "<ConditionID>3000</ConditionID>")

		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<AddFixedPriceItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Success</Ack>
  <ItemID>110100</ItemID>
</AddFixedPriceItemResponse>`))
	})

	newItemID, err := client.AddFixedPriceItem(NewListing{
		Title:      "Câmera vintage",
		CategoryID: "625",
		Price:      149.90,
		Quantity:   1,
	})

	assert.NoError(t, err)
	assert.Equal(t, "110100", newItemID)
}

func TestTradingClient_GetItem(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GetItem", r.Header.Get("X-EBAY-API-CALL-NAME"))

		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<GetItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Success</Ack>
  <Item>
    <ItemID>110001</ItemID>
    <Title>Câmera vintage</Title>
    <Description>Funcionando, com estojo</Description>
    <PrimaryCategory><CategoryID>625</CategoryID></PrimaryCategory>
  </Item>
</GetItemResponse>`))
	})

	item, err := client.GetItem("110001")

	assert.NoError(t, err)
	assert.Equal(t, "Câmera vintage", item.Title)
	assert.Equal(t, "625", item.PrimaryCategory.CategoryID)
}
