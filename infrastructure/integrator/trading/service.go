package trading

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	tradingdomain "github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading/domain"
	"github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading/tradingclient"
	"github.com/vfg2006/seller-ops-api/internal/config"
	"github.com/vfg2006/seller-ops-api/pkg/log"
)

// EndReasonNotAvailable é o código de encerramento usado no fluxo de relistagem
const EndReasonNotAvailable = "NotAvailable"

const feedbackComment = "Thank you for your purchase! Please leave feedback."

// PartialRelistError sinaliza a falha parcial do encerrar-e-relistar:
// o anúncio original já foi encerrado quando a criação do substituto falhou.
type PartialRelistError struct {
	ItemID string
	Err    error
}

func (e *PartialRelistError) Error() string {
	return fmt.Sprintf("anúncio %s encerrado mas a nova listagem não foi criada: %v", e.ItemID, e.Err)
}

func (e *PartialRelistError) Unwrap() error {
	return e.Err
}

type TradingIntegrator interface {
	GetActiveListings() ([]tradingdomain.ListingRecord, error)
	GetSoldItems(windowDays int) ([]tradingdomain.SoldRecord, error)
	GetItemDetails(itemID string) (*tradingdomain.ListingRecord, error)
	EndListing(itemID, reason string) error
	RelistItem(itemID string) (string, error)
	EndAndRelistItem(itemID string, newTitle *string, newPrice *float64) (string, error)
	UpdatePrice(itemID string, price float64) error
	UpdateQuantity(itemID string, quantity int) error
	RequestFeedback(itemID, transactionID, buyerID string) error
}

type TradingService struct {
	cfg    *config.Config
	Client tradingclient.Client
}

func New(cfg *config.Config, client tradingclient.Client) TradingIntegrator {
	return &TradingService{
		cfg:    cfg,
		Client: client,
	}
}

// GetActiveListings percorre as páginas de anúncios ativos até a página
// curta. Erro de transporte devolve lista vazia, a sincronização segue
// com o que já existe no espelho.
func (s *TradingService) GetActiveListings() ([]tradingdomain.ListingRecord, error) {
	pageSize := s.cfg.Trading.PageSize
	records := make([]tradingdomain.ListingRecord, 0)

	for page := 1; ; page++ {
		items, err := s.Client.GetMyActiveListings(page, pageSize)
		if err != nil {
			log.L.WithError(err).Errorf("Erro ao buscar a página %d de anúncios", page)
			return []tradingdomain.ListingRecord{}, nil
		}

		for _, item := range items {
			records = append(records, item.ToRecord())
		}

		if len(items) < pageSize {
			break
		}
	}

	return records, nil
}

func (s *TradingService) GetSoldItems(windowDays int) ([]tradingdomain.SoldRecord, error) {
	transactions, err := s.Client.GetMySoldTransactions(windowDays, s.cfg.Trading.PageSize)
	if err != nil {
		log.L.WithError(err).Error("Erro ao buscar as vendas recentes")
		return []tradingdomain.SoldRecord{}, nil
	}

	records := make([]tradingdomain.SoldRecord, 0, len(transactions))
	for _, ot := range transactions {
		records = append(records, ot.Transaction.ToRecord())
	}

	return records, nil
}

func (s *TradingService) GetItemDetails(itemID string) (*tradingdomain.ListingRecord, error) {
	item, err := s.Client.GetItem(itemID)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao buscar detalhes do anúncio %s", itemID)
	}

	record := item.ToRecord()
	return &record, nil
}

func (s *TradingService) EndListing(itemID, reason string) error {
	if err := s.Client.EndItem(itemID, reason); err != nil {
		return errors.Wrapf(err, "falha ao encerrar o anúncio %s", itemID)
	}
	return nil
}

func (s *TradingService) RelistItem(itemID string) (string, error) {
	newItemID, err := s.Client.RelistItem(itemID)
	if err != nil {
		return "", errors.Wrapf(err, "falha ao relistar o anúncio %s", itemID)
	}
	return newItemID, nil
}

// EndAndRelistItem encerra o anúncio, espera o marketplace processar o
// encerramento e cria o substituto a partir dos detalhes do original.
// A falha depois do encerramento vira PartialRelistError, o chamador
// precisa distinguir esse estado de uma falha limpa.
func (s *TradingService) EndAndRelistItem(itemID string, newTitle *string, newPrice *float64) (string, error) {
	if err := s.EndListing(itemID, EndReasonNotAvailable); err != nil {
		return "", err
	}

	time.Sleep(time.Duration(s.cfg.Trading.RelistDelaySeconds) * time.Second)

	newItemID, err := s.createFromTemplate(itemID, newTitle, newPrice)
	if err != nil {
		return "", &PartialRelistError{ItemID: itemID, Err: err}
	}

	return newItemID, nil
}

func (s *TradingService) UpdatePrice(itemID string, price float64) error {
	if err := s.Client.ReviseItemPrice(itemID, price); err != nil {
		return errors.Wrapf(err, "falha ao atualizar o preço do anúncio %s", itemID)
	}
	return nil
}

func (s *TradingService) UpdateQuantity(itemID string, quantity int) error {
	if err := s.Client.ReviseItemQuantity(itemID, quantity); err != nil {
		return errors.Wrapf(err, "falha ao atualizar a quantidade do anúncio %s", itemID)
	}
	return nil
}

func (s *TradingService) RequestFeedback(itemID, transactionID, buyerID string) error {
	err := s.Client.CompleteSaleWithFeedback(itemID, transactionID, buyerID, feedbackComment)
	if err != nil {
		return errors.Wrapf(err, "falha ao solicitar feedback da transação %s", transactionID)
	}
	return nil
}

// createFromTemplate usa o anúncio original como molde do substituto,
// sobrescrevendo título e preço quando informados
func (s *TradingService) createFromTemplate(itemID string, newTitle *string, newPrice *float64) (string, error) {
	original, err := s.GetItemDetails(itemID)
	if err != nil {
		return "", err
	}

	listing := tradingclient.NewListing{
		Title:       original.Title,
		Description: original.Description,
		CategoryID:  original.CategoryID,
		Price:       original.Price,
		Quantity:    original.Quantity,
		ConditionID: original.ConditionID,
		Location:    original.Location,
		GalleryURL:  original.GalleryURL,
	}
	if listing.Quantity == 0 {
		listing.Quantity = 1
	}
	if newTitle != nil && *newTitle != "" {
		listing.Title = *newTitle
	}
	if newPrice != nil && *newPrice > 0 {
		listing.Price = *newPrice
	}

	newItemID, err := s.Client.AddFixedPriceItem(listing)
	if err != nil {
		return "", errors.Wrapf(err, "falha ao criar o substituto do anúncio %s", itemID)
	}

	return newItemID, nil
}
