package domain

import (
	"github.com/vfg2006/direct-dashboard-api/pkg/utils"
)

type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusPaused   CampaignStatus = "paused"
	CampaignStatusArchived CampaignStatus = "archived" // mantido por compatibilidade, nenhuma transição chega aqui
)

// Campaign representa uma campanha do Yandex Direct com seus contadores e métricas derivadas
type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	Budget      float64        `json:"budget"`
	Spent       float64        `json:"spent"`
	Impressions int64          `json:"impressions"`
	Clicks      int64          `json:"clicks"`
	Conversions int64          `json:"conversions"`
	CTR         float64        `json:"ctr"`
	CPC         float64        `json:"cpc"`
	CPL         float64        `json:"cpl"`
	CR          float64        `json:"cr"`
	ROAS        float64        `json:"roas"`
}

// CampaignDelta é o incremento aplicado aos contadores durante uma sincronização
type CampaignDelta struct {
	Spent       float64
	Impressions int64
	Clicks      int64
	Conversions int64
}

// Apply soma o incremento aos contadores. Valores negativos são ignorados,
// os contadores nunca diminuem.
func (c *Campaign) Apply(delta CampaignDelta) {
	if delta.Spent > 0 {
		c.Spent += delta.Spent
	}
	if delta.Impressions > 0 {
		c.Impressions += delta.Impressions
	}
	if delta.Clicks > 0 {
		c.Clicks += delta.Clicks
	}
	if delta.Conversions > 0 {
		c.Conversions += delta.Conversions
	}
}

// RecalculateMetrics recalcula CPL, CR, CPC e CTR a partir dos contadores
func (c *Campaign) RecalculateMetrics() {
	c.CPL = utils.RoundWithTwoDecimalPlace(safeDivide(c.Spent, float64(c.Conversions)))
	c.CR = utils.RoundWithTwoDecimalPlace(safeDivide(float64(c.Conversions), float64(c.Clicks)) * 100)
	c.CPC = utils.RoundWithTwoDecimalPlace(safeDivide(c.Spent, float64(c.Clicks)))
	c.CTR = utils.RoundWithTwoDecimalPlace(safeDivide(float64(c.Clicks), float64(c.Impressions)) * 100)
}

func (c *Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}

func safeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}
