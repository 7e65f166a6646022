package campaigning

import (
	"math/rand/v2"
	"sync"

	"github.com/vfg2006/direct-dashboard-api/internal/domain"
)

// Limites superiores (exclusivos) da variação aleatória por sincronização
const (
	maxSpentIncrement       = 5000.0
	maxClicksIncrement      = 200
	maxConversionsIncrement = 15
	maxImpressionIncrement  = 10000

	minROAS   = 5.0
	roasRange = 3.0
)

// RandomGenerator reproduz a variação do mock do Yandex Direct.
// O ROAS é sorteado em [5, 8) sem relação com os contadores.
type RandomGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomGenerator cria um gerador. Com seed zero usa uma fonte não determinística.
func NewRandomGenerator(seed uint64) *RandomGenerator {
	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(seed, seed)
	}

	return &RandomGenerator{rnd: rand.New(src)}
}

func (g *RandomGenerator) CampaignDelta(_ domain.Campaign) domain.CampaignDelta {
	g.mu.Lock()
	defer g.mu.Unlock()

	return domain.CampaignDelta{
		Spent:       g.rnd.Float64() * maxSpentIncrement,
		Clicks:      g.rnd.Int64N(maxClicksIncrement),
		Conversions: g.rnd.Int64N(maxConversionsIncrement),
		Impressions: g.rnd.Int64N(maxImpressionIncrement),
	}
}

func (g *RandomGenerator) ROAS(_ domain.Campaign) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rnd.Float64()*roasRange + minROAS
}
