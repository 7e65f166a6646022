package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/direct-dashboard-api/internal/domain"
	"github.com/vfg2006/direct-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/direct-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/direct-dashboard-api/pkg/log"
)

type CampaignStatusResponse struct {
	ID     string                `json:"id"`
	Status domain.CampaignStatus `json:"status"`
}

func ListCampaigns(store campaigning.CampaignStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaigns := store.ListCampaigns(r.Context())

		log.ForContext(r.Context()).WithField("campaigns", len(campaigns)).Info("campaigns: listed campaigns")

		writeJSON(w, r, http.StatusOK, campaigns)
	})
}

func GetCampaign(store campaigning.CampaignStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, ok := store.GetCampaign(r.Context(), id)
		if !ok {
			log.ForContext(r.Context()).WithField("campaign_id", id).Warn("campaigns: campaign not found")
			apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "campaign not found", map[string]string{"campaign_id": id})
			return
		}

		writeJSON(w, r, http.StatusOK, campaign)
	})
}

func PauseCampaign(store campaigning.CampaignStore) http.Handler {
	return changeCampaignStatus(store.Pause, domain.CampaignStatusPaused)
}

func ResumeCampaign(store campaigning.CampaignStore) http.Handler {
	return changeCampaignStatus(store.Resume, domain.CampaignStatusActive)
}

func changeCampaignStatus(
	change func(ctx context.Context, campaignID string) bool,
	status domain.CampaignStatus,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if !change(r.Context(), id) {
			logger.WithField("campaign_id", id).Warn("campaigns: status change for unknown campaign")
			apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "campaign not found", map[string]string{"campaign_id": id})
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id":     id,
			"campaign_status": status,
		}).Info("campaigns: status changed")

		writeJSON(w, r, http.StatusOK, CampaignStatusResponse{ID: id, Status: status})
	})
}
