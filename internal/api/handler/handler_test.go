package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/direct-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/direct-dashboard-api/internal/domain"
	"github.com/vfg2006/direct-dashboard-api/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/direct-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestRouter(store *mocks.MockCampaignStore, cron CronJobServices) router.Router {
	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Campaigns(store)...),
		router.WithRoutes(Stats(store)...),
		router.WithRoutes(Sync(store)...),
		router.WithRoutes(CronJobs(cron)...),
		router.WithNotFound(NotFound()),
	)
}

func serve(rt http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockCampaignStore(ctrl)
	store.EXPECT().ListCampaigns(gomock.Any()).Return([]domain.Campaign{
		{ID: "yd_001", Name: "Ноутбуки - Поиск", Status: domain.CampaignStatusActive, Clicks: 5240},
	})

	rec := serve(newTestRouter(store, CronJobServices{}), http.MethodGet, "/v1/campaigns")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body []domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "yd_001", body[0].ID)
	assert.Equal(t, "Ноутбуки - Поиск", body[0].Name)
	assert.Equal(t, int64(5240), body[0].Clicks)
}

func TestGetCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockCampaignStore(ctrl)
	rt := newTestRouter(store, CronJobServices{})

	t.Run("Campanha existente", func(t *testing.T) {
		store.EXPECT().GetCampaign(gomock.Any(), "yd_001").Return(&domain.Campaign{ID: "yd_001", CPL: 262.73}, true)

		rec := serve(rt, http.MethodGet, "/v1/campaigns/yd_001")
		assert.Equal(t, http.StatusOK, rec.Code)

		var body domain.Campaign
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 262.73, body.CPL)
	})

	t.Run("Campanha inexistente", func(t *testing.T) {
		store.EXPECT().GetCampaign(gomock.Any(), "yd_404").Return(nil, false)

		rec := serve(rt, http.MethodGet, "/v1/campaigns/yd_404")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, apiErrors.ErrCampaignNotFound, body.Code)
	})
}

func TestPauseResumeCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockCampaignStore(ctrl)
	rt := newTestRouter(store, CronJobServices{})

	tests := []struct {
		name           string
		path           string
		setup          func()
		expectedCode   int
		expectedStatus domain.CampaignStatus
	}{
		{
			name:           "Pausar campanha",
			path:           "/v1/campaigns/yd_001/pause",
			setup:          func() { store.EXPECT().Pause(gomock.Any(), "yd_001").Return(true) },
			expectedCode:   http.StatusOK,
			expectedStatus: domain.CampaignStatusPaused,
		},
		{
			name:           "Retomar campanha",
			path:           "/v1/campaigns/yd_004/resume",
			setup:          func() { store.EXPECT().Resume(gomock.Any(), "yd_004").Return(true) },
			expectedCode:   http.StatusOK,
			expectedStatus: domain.CampaignStatusActive,
		},
		{
			name:         "Pausar campanha inexistente",
			path:         "/v1/campaigns/yd_404/pause",
			setup:        func() { store.EXPECT().Pause(gomock.Any(), "yd_404").Return(false) },
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Retomar campanha inexistente",
			path:         "/v1/campaigns/yd_404/resume",
			setup:        func() { store.EXPECT().Resume(gomock.Any(), "yd_404").Return(false) },
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := serve(rt, http.MethodPost, tt.path)
			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var body CampaignStatusResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedStatus, body.Status)
			}
		})
	}
}

func TestGetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockCampaignStore(ctrl)
	store.EXPECT().ComputeStats(gomock.Any()).Return(&domain.CampaignStats{
		Period:           domain.StatsPeriodLastSevenDays,
		Campaigns:        []domain.Campaign{},
		TotalSpent:       100,
		TotalConversions: 4,
		AvgCPL:           25,
		AvgCR:            8,
	})

	rec := serve(newTestRouter(store, CronJobServices{}), http.MethodGet, "/v1/stats")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "last_7_days", body["period"])
	assert.Equal(t, 25.0, body["avg_cpl"])
	assert.Equal(t, 8.0, body["avg_cr"])
	assert.Equal(t, 4.0, body["total_conversions"])
}

func TestSyncCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockCampaignStore(ctrl)
	rt := newTestRouter(store, CronJobServices{})

	t.Run("Sincronização concluída", func(t *testing.T) {
		syncedAt := time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)
		store.EXPECT().Resync(gomock.Any()).Return(&domain.SyncResult{
			Success:   true,
			Message:   "synced 1 campaigns",
			Campaigns: []domain.Campaign{{ID: "yd_001"}},
			SyncID:    "abc123",
			SyncedAt:  &syncedAt,
		})

		rec := serve(rt, http.MethodPost, "/v1/sync")
		assert.Equal(t, http.StatusOK, rec.Code)

		var body domain.SyncResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "abc123", body.SyncID)
		assert.Len(t, body.Campaigns, 1)
	})

	t.Run("Sincronização já em andamento", func(t *testing.T) {
		store.EXPECT().Resync(gomock.Any()).Return(&domain.SyncResult{
			Success:   false,
			Message:   "sync already running",
			Campaigns: []domain.Campaign{},
		})

		rec := serve(rt, http.MethodPost, "/v1/sync")
		assert.Equal(t, http.StatusConflict, rec.Code)

		var body domain.SyncResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "sync already running", body.Message)
	})
}

func TestGetSyncStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockCampaignStore(ctrl)
	store.EXPECT().SyncStatus().Return(&domain.SyncStatus{Syncing: true, LastSyncCampaigns: 4})

	rec := serve(newTestRouter(store, CronJobServices{}), http.MethodGet, "/v1/sync/status")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body domain.SyncStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Syncing)
	assert.Equal(t, 4, body.LastSyncCampaigns)
}

type fakeCronJob struct {
	triggered int
	accept    bool
}

func (f *fakeCronJob) TriggerManualSync() bool {
	f.triggered++
	return f.accept
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestCronJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockCampaignStore(ctrl)

	t.Run("Disparo manual", func(t *testing.T) {
		job := &fakeCronJob{accept: true}
		rec := serve(newTestRouter(store, CronJobServices{CampaignSyncService: job}), http.MethodPost, "/v1/cron/run/campaign-sync")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, job.triggered)
	})

	t.Run("Já em andamento", func(t *testing.T) {
		job := &fakeCronJob{accept: false}
		rec := serve(newTestRouter(store, CronJobServices{CampaignSyncService: job}), http.MethodPost, "/v1/cron/run/campaign-sync")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Tipo inválido", func(t *testing.T) {
		job := &fakeCronJob{accept: true}
		rec := serve(newTestRouter(store, CronJobServices{CampaignSyncService: job}), http.MethodPost, "/v1/cron/run/unknown")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, job.triggered)
	})

	t.Run("Agendador indisponível", func(t *testing.T) {
		rec := serve(newTestRouter(store, CronJobServices{}), http.MethodPost, "/v1/cron/run/campaign-sync")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Status", func(t *testing.T) {
		job := &fakeCronJob{}
		rec := serve(newTestRouter(store, CronJobServices{CampaignSyncService: job}), http.MethodGet, "/v1/cron/status")

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body[CronJobTypeCampaignSync]["sync_enabled"])
	})
}

func TestHealthcheckAndNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := newTestRouter(mocks.NewMockCampaignStore(ctrl), CronJobServices{})

	rec := serve(rt, http.MethodGet, "/healthcheck")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())

	rec = serve(rt, http.MethodGet, "/v1/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
