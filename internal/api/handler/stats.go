package handler

import (
	"net/http"

	"github.com/vfg2006/direct-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/direct-dashboard-api/pkg/log"
)

func GetStats(store campaigning.CampaignStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats := store.ComputeStats(r.Context())

		log.ForContext(r.Context()).WithFields(log.Fields{
			"campaigns":         len(stats.Campaigns),
			"total_spent":       stats.TotalSpent,
			"total_conversions": stats.TotalConversions,
		}).Debug("stats: computed campaign stats")

		writeJSON(w, r, http.StatusOK, stats)
	})
}
