package campaigning

//go:generate mockgen -source=interfaces.go -destination=mocks/campaigning_mock.go -package=mocks

import (
	"context"

	"github.com/vfg2006/direct-dashboard-api/internal/domain"
)

// CampaignStore é o detentor das campanhas do painel.
// Nenhuma operação falha por regra de negócio: campanha inexistente é
// sinalizada por retorno ausente/false e sincronização concorrente por
// um SyncResult com Success=false.
type CampaignStore interface {
	// ListCampaigns devolve cópias independentes das campanhas
	ListCampaigns(ctx context.Context) []domain.Campaign

	// GetCampaign busca uma campanha pelo ID
	GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, bool)

	// ComputeStats agrega gasto, conversões e médias de CPL, CR e ROAS
	ComputeStats(ctx context.Context) *domain.CampaignStats

	// Resync aplica a perturbação aos contadores e recalcula as métricas.
	// No máximo uma sincronização executa por vez.
	Resync(ctx context.Context) *domain.SyncResult

	Pause(ctx context.Context, campaignID string) bool
	Resume(ctx context.Context, campaignID string) bool

	IsSyncing() bool
	SyncStatus() *domain.SyncStatus
}

// Generator define a política de variação aplicada em cada sincronização
type Generator interface {
	// CampaignDelta retorna o incremento dos contadores de uma campanha
	CampaignDelta(campaign domain.Campaign) domain.CampaignDelta

	// ROAS retorna o novo ROAS de uma campanha
	ROAS(campaign domain.Campaign) float64
}
