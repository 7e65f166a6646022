package repository

import (
	"sync"

	"github.com/vfg2006/direct-dashboard-api/internal/domain"
)

type CampaignRepository interface {
	ListCampaigns() []domain.Campaign
	GetCampaignByID(campaignID string) (*domain.Campaign, bool)
	UpdateStatus(campaignID string, status domain.CampaignStatus) bool
	UpdateAll(fn func(campaign *domain.Campaign)) []domain.Campaign
}

// campaignRepository mantém as campanhas em memória durante a vida do processo.
// Toda leitura devolve cópias; as mutações acontecem no lugar sob o lock de escrita.
type campaignRepository struct {
	mu        sync.RWMutex
	campaigns []domain.Campaign
	index     map[string]int
}

func NewCampaignRepository(seed []domain.Campaign) CampaignRepository {
	campaigns := make([]domain.Campaign, len(seed))
	copy(campaigns, seed)

	index := make(map[string]int, len(campaigns))
	for i, c := range campaigns {
		index[c.ID] = i
	}

	return &campaignRepository{
		campaigns: campaigns,
		index:     index,
	}
}

func (r *campaignRepository) ListCampaigns() []domain.Campaign {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot()
}

func (r *campaignRepository) GetCampaignByID(campaignID string) (*domain.Campaign, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[campaignID]
	if !ok {
		return nil, false
	}

	campaign := r.campaigns[i]
	return &campaign, true
}

func (r *campaignRepository) UpdateStatus(campaignID string, status domain.CampaignStatus) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[campaignID]
	if !ok {
		return false
	}

	r.campaigns[i].Status = status
	return true
}

// UpdateAll aplica fn a cada campanha e devolve um snapshot do resultado
func (r *campaignRepository) UpdateAll(fn func(campaign *domain.Campaign)) []domain.Campaign {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.campaigns {
		fn(&r.campaigns[i])
	}

	return r.snapshot()
}

func (r *campaignRepository) snapshot() []domain.Campaign {
	campaigns := make([]domain.Campaign, len(r.campaigns))
	copy(campaigns, r.campaigns)
	return campaigns
}
