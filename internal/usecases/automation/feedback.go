package automation

import (
	"fmt"
	"time"

	"github.com/vfg2006/seller-ops-api/internal/domain"
	"github.com/vfg2006/seller-ops-api/pkg/log"
	"github.com/vfg2006/seller-ops-api/pkg/metrics"
)

// RequestFeedbackFromBuyers pede feedback das vendas elegíveis: enviadas,
// com idade mínima e sem feedback pedido nem recebido
func (s *Service) RequestFeedbackFromBuyers() *domain.FeedbackResult {
	log.L.Info("Procurando vendas elegíveis para pedido de feedback...")
	now := time.Now().UTC()

	pending, err := s.soldRepo.ListFeedbackPending()
	if err != nil {
		s.logAction(domain.ActionRequestFeedback, nil, domain.LogStatusFailed, err.Error(), nil)
		metrics.AutomationActions.WithLabelValues(domain.ActionRequestFeedback, domain.LogStatusFailed).Inc()
		return &domain.FeedbackResult{Error: err.Error()}
	}

	ready := make([]*domain.SoldItem, 0)
	for _, item := range pending {
		if item.ReadyForFeedbackRequest(now, s.cfg.Automation.FeedbackRequestDays) {
			ready = append(ready, item)
		}
	}
	log.L.Infof("Encontradas %d vendas prontas para pedido de feedback", len(ready))

	result := &domain.FeedbackResult{ReadyForRequest: len(ready)}

	for _, item := range ready {
		if err := s.trading.RequestFeedback(item.ItemID, item.TransactionID, item.BuyerID); err != nil {
			result.Failed++
			s.logAction(domain.ActionFeedback, &item.ItemID, domain.LogStatusFailed,
				fmt.Sprintf("Falha ao solicitar feedback: %s", item.Title), nil)
			metrics.AutomationActions.WithLabelValues(domain.ActionFeedback, domain.LogStatusFailed).Inc()
			continue
		}

		if err := s.soldRepo.MarkFeedbackRequested(item.TransactionID, now); err != nil {
			log.L.WithError(err).Errorf("Erro ao marcar feedback solicitado da transação %s", item.TransactionID)
		}
		result.RequestsSent++

		s.logAction(domain.ActionFeedback, &item.ItemID, domain.LogStatusSuccess,
			fmt.Sprintf("Feedback solicitado para: %s", item.Title), nil)
		metrics.AutomationActions.WithLabelValues(domain.ActionFeedback, domain.LogStatusSuccess).Inc()
	}

	log.L.WithFields(log.Fields{
		"ready":  result.ReadyForRequest,
		"sent":   result.RequestsSent,
		"failed": result.Failed,
	}).Info("Rodada de pedidos de feedback concluída")

	return result
}
