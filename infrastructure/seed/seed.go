// Package seed carrega as campanhas iniciais do painel
package seed

import (
	_ "embed"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/direct-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed campaigns.json
var defaultCampaigns []byte

var (
	ErrEmptyCampaignID     = errors.New("seed: campaign without id")
	ErrDuplicateCampaignID = errors.New("seed: duplicated campaign id")
	ErrInvalidStatus       = errors.New("seed: invalid campaign status")
)

// Load retorna as campanhas do arquivo informado ou, se path for vazio,
// as campanhas embutidas no binário
func Load(path string) ([]domain.Campaign, error) {
	if path == "" {
		return Parse(defaultCampaigns)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "seed: reading %s", path)
	}

	logrus.WithField("path", path).Info("seed: loading campaigns from file")

	return Parse(data)
}

func Parse(data []byte) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	if err := json.Unmarshal(data, &campaigns); err != nil {
		return nil, errors.Wrap(err, "seed: decoding campaigns")
	}

	seen := make(map[string]struct{}, len(campaigns))
	for _, c := range campaigns {
		if c.ID == "" {
			return nil, errors.WithStack(ErrEmptyCampaignID)
		}

		if _, ok := seen[c.ID]; ok {
			return nil, errors.Wrap(ErrDuplicateCampaignID, c.ID)
		}
		seen[c.ID] = struct{}{}

		switch c.Status {
		case domain.CampaignStatusActive, domain.CampaignStatusPaused, domain.CampaignStatusArchived:
		default:
			return nil, errors.Wrapf(ErrInvalidStatus, "%s: %q", c.ID, c.Status)
		}
	}

	return campaigns, nil
}
