package handler

import (
	"net/http"

	"github.com/vfg2006/direct-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/direct-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/direct-dashboard-api/pkg/log"
)

// SyncCampaigns executa a sincronização de forma síncrona. Quando já existe
// uma em andamento responde 409 com o próprio resultado no corpo.
func SyncCampaigns(store campaigning.CampaignStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		result := store.Resync(r.Context())
		if !result.Success {
			logger.Warn("sync: rejected, another sync is running")
			writeJSON(w, r, apiErrors.StatusFor(apiErrors.ErrSyncAlreadyRunning), result)
			return
		}

		logger.WithFields(log.Fields{
			"sync_id":   result.SyncID,
			"campaigns": len(result.Campaigns),
		}).Info("sync: campaigns synced")

		writeJSON(w, r, http.StatusOK, result)
	})
}

func GetSyncStatus(store campaigning.CampaignStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, store.SyncStatus())
	})
}
