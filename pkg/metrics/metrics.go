package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AutomationActions conta toda ação do motor de regras,
	// com o mesmo recorte da trilha de auditoria (ação + status)
	AutomationActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sellerops_automation_actions_total",
		Help: "Total de ações executadas pelo motor de automação",
	}, []string{"action", "status"})

	// ListingsSynced acompanha o resultado de cada passada de sincronização
	ListingsSynced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sellerops_listings_synced_total",
		Help: "Anúncios processados por passada de sincronização, por desfecho",
	}, []string{"outcome"}) // new | updated | deactivated

	// JobDuration mede a duração de cada job agendado
	JobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sellerops_job_duration_seconds",
		Help:    "Duração dos jobs agendados em segundos",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})

	// TradingAPIErrors conta falhas de transporte/negócio na Trading API
	TradingAPIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sellerops_trading_api_errors_total",
		Help: "Total de erros retornados pela Trading API do marketplace",
	}, []string{"call"})
)
