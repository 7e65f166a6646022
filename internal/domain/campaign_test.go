package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaign_RecalculateMetrics(t *testing.T) {
	tests := []struct {
		name     string
		campaign Campaign
		expected Campaign
	}{
		{
			name: "Contadores preenchidos",
			campaign: Campaign{
				Spent:       112450,
				Impressions: 285600,
				Clicks:      8540,
				Conversions: 428,
			},
			expected: Campaign{
				Spent:       112450,
				Impressions: 285600,
				Clicks:      8540,
				Conversions: 428,
				CTR:         2.99,
				CPC:         13.17,
				CPL:         262.73,
				CR:          5.01,
			},
		},
		{
			name:     "Sem impressões, cliques nem conversões - métricas zeradas",
			campaign: Campaign{Spent: 500, CTR: 1, CPC: 2, CPL: 3, CR: 4},
			expected: Campaign{Spent: 500},
		},
		{
			name:     "Cliques sem conversões",
			campaign: Campaign{Spent: 100, Impressions: 1000, Clicks: 50},
			expected: Campaign{Spent: 100, Impressions: 1000, Clicks: 50, CTR: 5, CPC: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.campaign
			c.RecalculateMetrics()
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestCampaign_Apply(t *testing.T) {
	c := Campaign{Spent: 10, Impressions: 100, Clicks: 5, Conversions: 1}

	c.Apply(CampaignDelta{Spent: 2.5, Impressions: 20, Clicks: 3, Conversions: 2})
	assert.Equal(t, 12.5, c.Spent)
	assert.Equal(t, int64(120), c.Impressions)
	assert.Equal(t, int64(8), c.Clicks)
	assert.Equal(t, int64(3), c.Conversions)

	// contadores nunca diminuem
	c.Apply(CampaignDelta{Spent: -100, Impressions: -1, Clicks: -1, Conversions: -1})
	assert.Equal(t, 12.5, c.Spent)
	assert.Equal(t, int64(120), c.Impressions)
	assert.Equal(t, int64(8), c.Clicks)
	assert.Equal(t, int64(3), c.Conversions)
}

func TestCalculateCampaignStats(t *testing.T) {
	t.Run("Conjunto vazio", func(t *testing.T) {
		stats := CalculateCampaignStats(nil)

		assert.Equal(t, StatsPeriodLastSevenDays, stats.Period)
		assert.Empty(t, stats.Campaigns)
		assert.Zero(t, stats.TotalSpent)
		assert.Zero(t, stats.TotalConversions)
		assert.Zero(t, stats.AvgCPL)
		assert.Zero(t, stats.AvgCR)
		assert.Zero(t, stats.AvgROAS)
	})

	t.Run("Uma campanha", func(t *testing.T) {
		stats := CalculateCampaignStats([]Campaign{
			{ID: "yd_001", Spent: 100, Conversions: 4, Clicks: 50, Impressions: 1000, ROAS: 6.5},
		})

		assert.Equal(t, 100.0, stats.TotalSpent)
		assert.Equal(t, int64(4), stats.TotalConversions)
		assert.Equal(t, 25.0, stats.AvgCPL)
		assert.Equal(t, 8.0, stats.AvgCR)
		assert.Equal(t, 6.5, stats.AvgROAS)
		assert.Len(t, stats.Campaigns, 1)
	})

	t.Run("Médias ponderadas pelos totais", func(t *testing.T) {
		stats := CalculateCampaignStats([]Campaign{
			{ID: "a", Spent: 300, Conversions: 3, Clicks: 30, ROAS: 5},
			{ID: "b", Spent: 100, Conversions: 1, Clicks: 70, ROAS: 8},
		})

		assert.Equal(t, 400.0, stats.TotalSpent)
		assert.Equal(t, int64(4), stats.TotalConversions)
		assert.Equal(t, 100.0, stats.AvgCPL)
		assert.Equal(t, 4.0, stats.AvgCR)
		assert.Equal(t, 6.5, stats.AvgROAS)
	})

	t.Run("Snapshot independente", func(t *testing.T) {
		campaigns := []Campaign{{ID: "a", Name: "original"}}
		stats := CalculateCampaignStats(campaigns)

		stats.Campaigns[0].Name = "alterado"
		assert.Equal(t, "original", campaigns[0].Name)
	})
}
