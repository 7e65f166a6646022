package handler

import (
	"net/http"

	"github.com/vfg2006/direct-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/direct-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/direct-dashboard-api/pkg/apiErrors"
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

func Campaigns(store campaigning.CampaignStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(store),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(store),
		},
		{
			Path:    "/v1/campaigns/:id/pause",
			Method:  http.MethodPost,
			Handler: PauseCampaign(store),
		},
		{
			Path:    "/v1/campaigns/:id/resume",
			Method:  http.MethodPost,
			Handler: ResumeCampaign(store),
		},
	}
}

func Stats(store campaigning.CampaignStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stats",
			Method:  http.MethodGet,
			Handler: GetStats(store),
		},
	}
}

func Sync(store campaigning.CampaignStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync",
			Method:  http.MethodPost,
			Handler: SyncCampaigns(store),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(store),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
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

func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "route not found", map[string]string{"path": r.URL.Path})
	})
}
