package domain

import (
	"github.com/vfg2006/direct-dashboard-api/pkg/utils"
)

// StatsPeriodLastSevenDays é o único período exposto pelo painel
const StatsPeriodLastSevenDays = "last_7_days"

// CampaignStats é a visão agregada de todas as campanhas, calculada sob demanda
type CampaignStats struct {
	Period           string     `json:"period"`
	Campaigns        []Campaign `json:"campaigns"`
	TotalSpent       float64    `json:"total_spent"`
	TotalConversions int64      `json:"total_conversions"`
	AvgCPL           float64    `json:"avg_cpl"`
	AvgCR            float64    `json:"avg_cr"`
	AvgROAS          float64    `json:"avg_roas"`
}

// CalculateCampaignStats agrega as campanhas informadas.
// O CPL e o CR médios são ponderados pelos totais; o ROAS médio é a média simples.
func CalculateCampaignStats(campaigns []Campaign) *CampaignStats {
	var (
		totalSpent       float64
		totalConversions int64
		totalClicks      int64
		totalROAS        float64
	)

	for _, c := range campaigns {
		totalSpent += c.Spent
		totalConversions += c.Conversions
		totalClicks += c.Clicks
		totalROAS += c.ROAS
	}

	snapshot := make([]Campaign, len(campaigns))
	copy(snapshot, campaigns)

	return &CampaignStats{
		Period:           StatsPeriodLastSevenDays,
		Campaigns:        snapshot,
		TotalSpent:       utils.RoundWithTwoDecimalPlace(totalSpent),
		TotalConversions: totalConversions,
		AvgCPL:           utils.RoundWithTwoDecimalPlace(safeDivide(totalSpent, float64(totalConversions))),
		AvgCR:            utils.RoundWithTwoDecimalPlace(safeDivide(float64(totalConversions), float64(totalClicks)) * 100),
		AvgROAS:          utils.RoundWithTwoDecimalPlace(safeDivide(totalROAS, float64(len(campaigns)))),
	}
}
