package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-ops-api/internal/domain"
	"github.com/vfg2006/seller-ops-api/internal/usecases/automation"
	"github.com/vfg2006/seller-ops-api/pkg/apiErrors"
)

// ListListings retorna uma página do espelho local de anúncios
func ListListings(service automation.AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		status := domain.ListingStatus(query.Get("status"))
		switch status {
		case domain.ListingStatusActive, domain.ListingStatusStale, domain.ListingStatusInactive, domain.ListingStatusAll:
		case "":
			status = domain.ListingStatusActive
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status inválido. Valores aceitos: active, stale, inactive, all", nil)
			return
		}

		page, _ := strconv.Atoi(query.Get("page"))
		perPage, _ := strconv.Atoi(query.Get("per_page"))

		listings, err := service.GetListingsPage(status, page, perPage)
		if err != nil {
			logrus.Error("Erro ao buscar anúncios:", err)
			writeAutomationError(w, err, "Erro ao buscar anúncios")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(listings); err != nil {
			logrus.Error("Erro ao enviar resposta de anúncios:", err)
		}
	}
}

// GetOfferEligibility avalia os critérios de oferta de um anúncio sem registrar nada
func GetOfferEligibility(service automation.AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := httprouter.ParamsFromContext(r.Context()).ByName("item_id")
		if itemID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do anúncio não informado", nil)
			return
		}

		eligibility, err := service.GetOfferEligibility(itemID)
		if err != nil {
			logrus.Error("Erro ao avaliar elegibilidade de oferta:", err)
			writeAutomationError(w, err, "Erro ao avaliar elegibilidade de oferta")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(eligibility); err != nil {
			logrus.Error("Erro ao enviar resposta de elegibilidade:", err)
		}
	}
}

// writeAutomationError traduz os erros do caso de uso para o código de API adequado
func writeAutomationError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, automation.ErrListingNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrListingNotFound, "Anúncio não encontrado", nil)
		return
	}

	var automationErr *automation.AutomationError
	if errors.As(err, &automationErr) {
		apiErrors.WriteError(w, automationErr.Code, message, automationErr.Details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}
