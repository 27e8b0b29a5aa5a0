package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-ops-api/internal/scheduler"
	"github.com/vfg2006/seller-ops-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeListingSync   = "listing-sync"
	CronJobTypeSoldSync      = "sold-sync"
	CronJobTypeStaleCheck    = "stale-check"
	CronJobTypeOfferCheck    = "offer-check"
	CronJobTypeFeedbackCheck = "feedback-check"
	CronJobTypeAll           = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ListingSyncService   *scheduler.ListingSyncService
	StaleCheckService    *scheduler.StaleCheckService
	OfferCheckService    *scheduler.OfferCheckService
	FeedbackCheckService *scheduler.FeedbackCheckService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeListingSync:
			if services.ListingSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de anúncios não disponível", nil)
				return
			}
			services.ListingSyncService.TriggerManualSync()

		case CronJobTypeSoldSync:
			if services.ListingSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de vendas não disponível", nil)
				return
			}
			services.ListingSyncService.TriggerManualSoldSync()

		case CronJobTypeStaleCheck:
			if services.StaleCheckService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de checagem de anúncios parados não disponível", nil)
				return
			}
			services.StaleCheckService.TriggerManualCheck()

		case CronJobTypeOfferCheck:
			if services.OfferCheckService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do lote de ofertas não disponível", nil)
				return
			}
			services.OfferCheckService.TriggerManualCheck()

		case CronJobTypeFeedbackCheck:
			if services.FeedbackCheckService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de pedidos de feedback não disponível", nil)
				return
			}
			services.FeedbackCheckService.TriggerManualCheck()

		case CronJobTypeAll:
			if services.ListingSyncService != nil {
				services.ListingSyncService.TriggerManualSync()
				services.ListingSyncService.TriggerManualSoldSync()
			}
			if services.StaleCheckService != nil {
				services.StaleCheckService.TriggerManualCheck()
			}
			if services.OfferCheckService != nil {
				services.OfferCheckService.TriggerManualCheck()
			}
			if services.FeedbackCheckService != nil {
				services.FeedbackCheckService.TriggerManualCheck()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: listing-sync, sold-sync, stale-check, offer-check, feedback-check, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"listing-sync":   services.ListingSyncService.GetStatus(),
			"stale-check":    services.StaleCheckService.GetStatus(),
			"offer-check":    services.OfferCheckService.GetStatus(),
			"feedback-check": services.FeedbackCheckService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
