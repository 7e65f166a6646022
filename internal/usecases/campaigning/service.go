package campaigning

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/direct-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/direct-dashboard-api/internal/config"
	"github.com/vfg2006/direct-dashboard-api/internal/domain"
	"github.com/vfg2006/direct-dashboard-api/pkg/log"
	"github.com/vfg2006/direct-dashboard-api/pkg/utils"
)

const MessageSyncAlreadyRunning = "sync already running"

// Latency é a latência simulada de cada operação, emulando a chamada à API
type Latency struct {
	List   time.Duration
	Get    time.Duration
	Stats  time.Duration
	Sync   time.Duration
	Status time.Duration
}

func LatencyFromConfig(cfg *config.Config) Latency {
	return Latency{
		List:   cfg.Campaign.ListDelay,
		Get:    cfg.Campaign.GetDelay,
		Stats:  cfg.Campaign.StatsDelay,
		Sync:   cfg.Campaign.SyncDelay,
		Status: cfg.Campaign.StatusDelay,
	}
}

type Service struct {
	repo      repository.CampaignRepository
	generator Generator
	latency   Latency
	now       func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncID          string
	lastSyncStartedAt   *time.Time
	lastSyncCompletedAt *time.Time
	lastSyncCampaigns   int
}

func NewService(
	repo repository.CampaignRepository,
	generator Generator,
	latency Latency,
) CampaignStore {
	return &Service{
		repo:      repo,
		generator: generator,
		latency:   latency,
		now:       time.Now,
	}
}

func (s *Service) ListCampaigns(ctx context.Context) []domain.Campaign {
	s.simulateDelay(ctx, s.latency.List)

	campaigns := s.repo.ListCampaigns()
	log.ForContext(ctx).WithField("campaigns", len(campaigns)).Debug("campaigns: listed")

	return campaigns
}

func (s *Service) GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, bool) {
	s.simulateDelay(ctx, s.latency.Get)

	campaign, ok := s.repo.GetCampaignByID(campaignID)
	if !ok {
		log.ForContext(ctx).WithField("campaign_id", campaignID).Debug("campaigns: campaign not found")
	}

	return campaign, ok
}

func (s *Service) ComputeStats(ctx context.Context) *domain.CampaignStats {
	s.simulateDelay(ctx, s.latency.Stats)

	return domain.CalculateCampaignStats(s.repo.ListCampaigns())
}

// Resync sincroniza as campanhas. A verificação e a marcação de
// syncRunning acontecem sob o mesmo lock; uma segunda chamada durante a
// execução retorna imediatamente sem alterar nada.
func (s *Service) Resync(ctx context.Context) *domain.SyncResult {
	logger := log.ForContext(ctx)

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logger.Warn("campaigns: sync already running, ignoring request")
		return &domain.SyncResult{
			Success:   false,
			Message:   MessageSyncAlreadyRunning,
			Campaigns: []domain.Campaign{},
		}
	}
	s.syncRunning = true
	startedAt := s.now()
	s.lastSyncStartedAt = &startedAt
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	syncID, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Warn("campaigns: failed to generate sync id")
	}

	logger.WithField("sync_id", syncID).Info("campaigns: sync started")

	s.simulateDelay(ctx, s.latency.Sync)

	campaigns := s.repo.UpdateAll(func(c *domain.Campaign) {
		c.Apply(s.generator.CampaignDelta(*c))
		c.RecalculateMetrics()
		c.ROAS = utils.RoundWithTwoDecimalPlace(s.generator.ROAS(*c))
	})

	completedAt := s.now()

	s.syncMutex.Lock()
	s.lastSyncID = syncID
	s.lastSyncCompletedAt = &completedAt
	s.lastSyncCampaigns = len(campaigns)
	s.syncMutex.Unlock()

	logger.WithFields(log.Fields{
		"sync_id":     syncID,
		"campaigns":   len(campaigns),
		"duration_ms": completedAt.Sub(startedAt).Milliseconds(),
	}).Info("campaigns: sync completed")

	return &domain.SyncResult{
		Success:   true,
		Message:   fmt.Sprintf("synced %d campaigns", len(campaigns)),
		Campaigns: campaigns,
		SyncID:    syncID,
		SyncedAt:  &completedAt,
	}
}

// Pause pausa a campanha. Retorna true sempre que a campanha existe,
// mesmo que já esteja pausada.
func (s *Service) Pause(ctx context.Context, campaignID string) bool {
	return s.setStatus(ctx, campaignID, domain.CampaignStatusPaused)
}

// Resume reativa a campanha. Mesma semântica de Pause.
func (s *Service) Resume(ctx context.Context, campaignID string) bool {
	return s.setStatus(ctx, campaignID, domain.CampaignStatusActive)
}

func (s *Service) setStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) bool {
	s.simulateDelay(ctx, s.latency.Status)

	ok := s.repo.UpdateStatus(campaignID, status)

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id":     campaignID,
		"campaign_status": status,
		"campaign_found":  ok,
	}).Info("campaigns: status change requested")

	return ok
}

func (s *Service) IsSyncing() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return s.syncRunning
}

func (s *Service) SyncStatus() *domain.SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return &domain.SyncStatus{
		Syncing:             s.syncRunning,
		LastSyncID:          s.lastSyncID,
		LastSyncStartedAt:   s.lastSyncStartedAt,
		LastSyncCompletedAt: s.lastSyncCompletedAt,
		LastSyncCampaigns:   s.lastSyncCampaigns,
	}
}

// simulateDelay emula a latência de rede. O cancelamento do contexto
// apenas encurta a espera; a operação segue normalmente.
func (s *Service) simulateDelay(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
