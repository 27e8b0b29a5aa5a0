package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-ops-api/internal/usecases/automation"
)

// GetStats retorna o resumo do estado da loja para o painel
func GetStats(service automation.AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.GetStats()
		if err != nil {
			logrus.Error("Erro ao buscar estatísticas:", err)
			writeAutomationError(w, err, "Erro ao buscar estatísticas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logrus.Error("Erro ao enviar resposta de estatísticas:", err)
		}
	}
}

// GetLogs lista o histórico de ações de automação
func GetLogs(service automation.AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		actionType := query.Get("action_type")
		limit, _ := strconv.Atoi(query.Get("limit"))
		offset, _ := strconv.Atoi(query.Get("offset"))

		entries, err := service.GetLogs(actionType, limit, offset)
		if err != nil {
			logrus.Error("Erro ao buscar histórico de automação:", err)
			writeAutomationError(w, err, "Erro ao buscar histórico de automação")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logrus.Error("Erro ao enviar resposta do histórico:", err)
		}
	}
}
