// Package scheduler contém os agendadores de sincronização de campanhas
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/direct-dashboard-api/internal/config"
	"github.com/vfg2006/direct-dashboard-api/internal/usecases/campaigning"
)

// CampaignSyncConfig representa a configuração do agendador de sincronização de campanhas
type CampaignSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CampaignSyncService executa Resync periodicamente. A exclusão mútua fica
// a cargo do próprio store: uma execução que encontra outra em andamento é
// apenas registrada e descartada.
type CampaignSyncService struct {
	scheduler *gocron.Scheduler
	config    CampaignSyncConfig
	store     campaigning.CampaignStore
}

func NewCampaignSyncService(store campaigning.CampaignStore, appConfig *config.Config) *CampaignSyncService {
	syncConfig := CampaignSyncConfig{
		CronSchedule: appConfig.CampaignSync.CronSchedule,
		SyncEnabled:  appConfig.CampaignSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("scheduler: campaign sync configuration loaded")

	return &CampaignSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		store:     store,
	}
}

// Start agenda a sincronização e para o agendador quando o contexto é cancelado
func (s *CampaignSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: campaign sync disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduler: error scheduling campaign sync: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: campaign sync started")

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping campaign sync")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CampaignSyncService) runSync(ctx context.Context) {
	startTime := time.Now()

	result := s.store.Resync(ctx)
	if !result.Success {
		logrus.WithField("message", result.Message).Info("scheduler: campaign sync skipped")
		return
	}

	logrus.WithFields(logrus.Fields{
		"sync_id":   result.SyncID,
		"campaigns": len(result.Campaigns),
		"duration":  time.Since(startTime).String(),
	}).Info("scheduler: campaign sync completed")
}

// TriggerManualSync dispara uma sincronização em background.
// Retorna false quando já existe uma em andamento.
func (s *CampaignSyncService) TriggerManualSync() bool {
	if s.store.IsSyncing() {
		logrus.Info("scheduler: campaign sync already running, ignoring manual trigger")
		return false
	}

	logrus.Info("scheduler: manual campaign sync triggered")
	go s.runSync(context.Background())

	return true
}

// GetStatus retorna o status atual do agendador
func (s *CampaignSyncService) GetStatus() map[string]any {
	status := s.store.SyncStatus()

	var nextRun *time.Time
	if s.scheduler.IsRunning() {
		_, next := s.scheduler.NextRun()
		nextRun = &next
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"syncing":                status.Syncing,
		"next_run_at":            nextRun,
		"last_sync_id":           status.LastSyncID,
		"last_sync_started_at":   status.LastSyncStartedAt,
		"last_sync_completed_at": status.LastSyncCompletedAt,
		"last_sync_campaigns":    status.LastSyncCampaigns,
	}
}
