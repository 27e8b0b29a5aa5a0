package tradingclient

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	tradingdomain "github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading/domain"
	"github.com/vfg2006/seller-ops-api/internal/config"
	"github.com/vfg2006/seller-ops-api/pkg/metrics"
)

type Client interface {
	GetMyActiveListings(page, entriesPerPage int) ([]tradingdomain.Item, error)
	GetMySoldTransactions(windowDays, entriesPerPage int) ([]tradingdomain.OrderTransaction, error)
	GetItem(itemID string) (*tradingdomain.Item, error)
	EndItem(itemID, reasonCode string) error
	RelistItem(itemID string) (string, error)
	AddFixedPriceItem(listing NewListing) (string, error)
	ReviseItemPrice(itemID string, price float64) error
	ReviseItemQuantity(itemID string, quantity int) error
	CompleteSaleWithFeedback(itemID, transactionID, targetUser, comment string) error
}

type TradingClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NovoClienteAPI cria uma nova instância de clienteAPI.
func NewClient(cfg *config.Config) Client {
	return &TradingClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

type requesterCredentials struct {
	EBayAuthToken string `xml:"eBayAuthToken"`
}

type pagination struct {
	EntriesPerPage int `xml:"EntriesPerPage"`
	PageNumber     int `xml:"PageNumber,omitempty"`
}

type apiError struct {
	SeverityCode string `xml:"SeverityCode"`
	ShortMessage string `xml:"ShortMessage"`
	LongMessage  string `xml:"LongMessage"`
	ErrorCode    string `xml:"ErrorCode"`
}

// call executa uma chamada da Trading API: serializa a requisição, monta os
// cabeçalhos X-EBAY-API-* e decodifica a resposta XML no ponteiro recebido.
func (c *TradingClient) call(callName string, request any, response any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	body, err := xml.Marshal(request)
	if err != nil {
		return fmt.Errorf("erro ao serializar a requisição: %w", err)
	}
	payload := append([]byte(xml.Header), body...)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Trading.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "text/xml")
	req.Header.Set("X-EBAY-API-COMPATIBILITY-LEVEL", c.config.Trading.CompatibilityLevel)
	req.Header.Set("X-EBAY-API-APP-NAME", c.config.Trading.AppID)
	req.Header.Set("X-EBAY-API-DEV-NAME", c.config.Trading.DevID)
	req.Header.Set("X-EBAY-API-CERT-NAME", c.config.Trading.CertID)
	req.Header.Set("X-EBAY-API-SITEID", c.config.Trading.SiteID)
	req.Header.Set("X-EBAY-API-CALL-NAME", callName)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.TradingAPIErrors.WithLabelValues(callName).Inc()
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.TradingAPIErrors.WithLabelValues(callName).Inc()
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := xml.NewDecoder(resp.Body).Decode(response); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

// ackOK aceita Success e Warning, o marketplace trata os dois como concluído
func ackOK(ack string) bool {
	return ack == "Success" || ack == "Warning"
}

func ackError(callName, ack string, errs []apiError) error {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, fmt.Sprintf("%s (código %s)", e.LongMessage, e.ErrorCode))
	}
	if len(messages) == 0 {
		messages = append(messages, "sem detalhes")
	}
	return fmt.Errorf("%s falhou com Ack %q: %s", callName, ack, strings.Join(messages, "; "))
}
