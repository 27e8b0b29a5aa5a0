package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/seller-ops-api/internal/api/handler/router"
	"github.com/vfg2006/seller-ops-api/internal/usecases/automation"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Listings(service automation.AutomationService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/listings",
			Method:  http.MethodGet,
			Handler: ListListings(service),
		},
		{
			Path:    "/v1/listings/:item_id/offer-eligibility",
			Method:  http.MethodGet,
			Handler: GetOfferEligibility(service),
		},
		{
			Path:    "/v1/listings/:item_id/relist",
			Method:  http.MethodPost,
			Handler: RelistListing(service),
		},
		{
			Path:    "/v1/listings/:item_id/offer",
			Method:  http.MethodPost,
			Handler: SendOffer(service),
		},
	}
}

func Automation(service automation.AutomationService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync",
			Method:  http.MethodPost,
			Handler: SyncListings(service),
		},
		{
			Path:    "/v1/sold/sync",
			Method:  http.MethodPost,
			Handler: SyncSoldItems(service),
		},
		{
			Path:    "/v1/check-stale",
			Method:  http.MethodPost,
			Handler: CheckStaleListings(service),
		},
		{
			Path:    "/v1/check-offers",
			Method:  http.MethodPost,
			Handler: SendOffersToWatchers(service),
		},
		{
			Path:    "/v1/check-feedback",
			Method:  http.MethodPost,
			Handler: RequestFeedback(service),
		},
	}
}

func Dashboard(service automation.AutomationService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stats",
			Method:  http.MethodGet,
			Handler: GetStats(service),
		},
		{
			Path:    "/v1/logs",
			Method:  http.MethodGet,
			Handler: GetLogs(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
