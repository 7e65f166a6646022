package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/direct-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/direct-dashboard-api/pkg/log"
)

const CronJobTypeCampaignSync = "campaign-sync"

// CronJob é um agendador que pode ser disparado manualmente
type CronJob interface {
	// TriggerManualSync dispara a execução em background; false quando já há uma em andamento
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores expostos pela API
type CronJobServices struct {
	CampaignSyncService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not informed", nil)
			return
		}

		switch cronType {
		case CronJobTypeCampaignSync:
			if services.CampaignSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "campaign sync scheduler not available", nil)
				return
			}

			if !services.CampaignSyncService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "sync already running", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: campaign-sync", nil)
			return
		}

		logger.WithField("cron_type", cronType).Info("cron: job triggered manually")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "cron job started",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.CampaignSyncService != nil {
			status[CronJobTypeCampaignSync] = services.CampaignSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
