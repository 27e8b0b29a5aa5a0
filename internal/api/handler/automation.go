package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-ops-api/internal/usecases/automation"
	"github.com/vfg2006/seller-ops-api/pkg/apiErrors"
)

// SyncListings dispara uma sincronização de anúncios e devolve as estatísticas
func SyncListings(service automation.AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncListings")

		stats, err := service.SyncListings()
		if err != nil {
			logrus.Error("Erro na sincronização de anúncios:", err)
			writeAutomationError(w, err, "Erro na sincronização de anúncios")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logrus.Error("Erro ao enviar resposta da sincronização:", err)
		}
	}
}

// SyncSoldItems dispara uma sincronização de vendas e devolve as estatísticas
func SyncSoldItems(service automation.AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncSoldItems")

		stats, err := service.SyncSoldItems()
		if err != nil {
			logrus.Error("Erro na sincronização de vendas:", err)
			writeAutomationError(w, err, "Erro na sincronização de vendas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logrus.Error("Erro ao enviar resposta da sincronização de vendas:", err)
		}
	}
}

// CheckStaleListings executa a checagem de anúncios parados e devolve o resultado
func CheckStaleListings(service automation.AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CheckStaleListings")

		result := service.CheckStaleListings()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error("Erro ao enviar resultado da checagem de anúncios parados:", err)
		}
	}
}

// SendOffersToWatchers executa o lote de ofertas e devolve o resultado
func SendOffersToWatchers(service automation.AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SendOffersToWatchers")

		result := service.SendOffersToWatchers()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error("Erro ao enviar resultado do lote de ofertas:", err)
		}
	}
}

// RequestFeedback executa a rodada de pedidos de feedback e devolve o resultado
func RequestFeedback(service automation.AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RequestFeedback")

		result := service.RequestFeedbackFromBuyers()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error("Erro ao enviar resultado dos pedidos de feedback:", err)
		}
	}
}

// relistRequest é o corpo opcional do encerrar-e-relistar manual
type relistRequest struct {
	NewTitle *string  `json:"new_title"`
	NewPrice *float64 `json:"new_price"`
}

// RelistListing encerra e relista um anúncio específico
func RelistListing(service automation.AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := httprouter.ParamsFromContext(r.Context()).ByName("item_id")
		if itemID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do anúncio não informado", nil)
			return
		}

		var req relistRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
				return
			}
		}

		if req.NewPrice != nil && *req.NewPrice <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "O novo preço deve ser maior que zero", nil)
			return
		}

		response, err := service.RelistListing(itemID, req.NewTitle, req.NewPrice)
		if err != nil {
			logrus.Error("Erro ao relistar anúncio:", err)
			writeAutomationError(w, err, "Erro ao relistar anúncio")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error("Erro ao enviar resposta do relist:", err)
		}
	}
}

// offerRequest é o corpo opcional da oferta manual
type offerRequest struct {
	DiscountPercent float64 `json:"discount_percent"`
}

// SendOffer registra uma oferta para os observadores de um anúncio específico
func SendOffer(service automation.AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := httprouter.ParamsFromContext(r.Context()).ByName("item_id")
		if itemID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do anúncio não informado", nil)
			return
		}

		var req offerRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
				return
			}
		}

		if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "O desconto deve estar entre 0 e 100", nil)
			return
		}

		response, err := service.SendOfferToWatchers(itemID, req.DiscountPercent)
		if err != nil {
			logrus.Error("Erro ao enviar oferta:", err)
			writeAutomationError(w, err, "Erro ao enviar oferta")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error("Erro ao enviar resposta da oferta:", err)
		}
	}
}
