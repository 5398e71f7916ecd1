// Package legality assigns zone types and legal status to candidate sites.
// Two strategies coexist: nearest-match against curated real-world locations
// for point and legality-check passes, and probabilistic zone classification
// during grid scans.
package legality

import (
	"math"
	"math/rand"
	"strings"

	"github.com/minewatch-gh/minewatch-backend-go/internal/analysis/risk"
	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
	"github.com/minewatch-gh/minewatch-backend-go/internal/spatial"
)

// Base detection rates keyed by zone type.
var zoneBaseRates = map[string]float64{
	models.ZoneProtectedForest:   0.90,
	models.ZoneWaterBuffer:       0.85,
	models.ZoneCulturalHeritage:  0.80,
	models.ZoneGalamsey:          0.95,
	models.ZoneExpiredConcession: 0.88,
	models.ZoneAgricultural:      0.75,
	models.ZoneResidentialBuffer: 0.70,
}

const zoneDefaultRate = 0.60

// Risk-level bonuses with their ceilings.
const (
	criticalBonus   = 0.15
	criticalCeiling = 0.98
	veryHighBonus   = 0.10
	veryHighCeiling = 0.95
	highBonus       = 0.05
	highCeiling     = 0.90

	thresholdWeight  = 0.20
	sizeDeltaWeight  = 3.0
	hotspotBonus     = 0.10
	probabilityCap   = 0.98
	syntheticLegalPr = 0.4
)

// Districts whose name alone raises the detection probability.
var hotspotMatches = []string{"tarkwa", "nsuaem", "obuasi"}

// Classifier imputes legality onto candidate sites.
type Classifier struct {
	store *risk.Store
	rng   *rand.Rand

	// GuaranteedDetection keeps the reporting policy of never returning an
	// empty result for a known high-risk district. It fabricates findings
	// when organic scanning produces none; disable it to report scans
	// as-is.
	GuaranteedDetection bool
}

// NewClassifier builds a classifier over the district tables, drawing from
// rng.
func NewClassifier(store *risk.Store, rng *rand.Rand) *Classifier {
	return &Classifier{store: store, rng: rng, GuaranteedDetection: true}
}

// Classification is the outcome of a curated-location match.
type Classification struct {
	ZoneType    string
	LegalStatus string
	RiskLevel   string
	Confidence  float64
	MatchedName string
	DistanceKm  float64
}

// ClassifyNearest finds the curated location nearest to the candidate and
// imputes its legality. Districts without curated data fall back to a single
// synthetic community-mining entry with a 40% legal draw.
func (c *Classifier) ClassifyNearest(lat, lng float64, district string) Classification {
	locations := c.store.CuratedLocations(district)
	if len(locations) == 0 {
		status := models.StatusIllegal
		if c.rng.Float64() < syntheticLegalPr {
			status = models.StatusLegal
		}
		return Classification{
			ZoneType:    models.ZoneCommunityMining,
			LegalStatus: status,
			RiskLevel:   models.RiskModerate,
			Confidence:  0.5,
			MatchedName: "Community Mining Area",
		}
	}

	nearest := locations[0]
	best := spatial.HaversineKm(lat, lng, nearest.Lat, nearest.Lng)
	for _, loc := range locations[1:] {
		if d := spatial.HaversineKm(lat, lng, loc.Lat, loc.Lng); d < best {
			best = d
			nearest = loc
		}
	}

	status := models.StatusIllegal
	if nearest.IsLegal {
		status = models.StatusLegal
	}
	return Classification{
		ZoneType:    nearest.ZoneType,
		LegalStatus: status,
		RiskLevel:   nearest.RiskLevel,
		Confidence:  nearest.Confidence,
		MatchedName: nearest.Name,
		DistanceKm:  best,
	}
}

// DetectionProbability derives the chance a classified site is reported as a
// detection: zone base rate, risk bonus (each capped at its ceiling), the
// caller's threshold, the image delta, and a fixed bump for hotspot
// districts, all capped at 0.98.
func (c *Classifier) DetectionProbability(zoneType, riskLevel string, threshold, sizeDelta float64, district string) float64 {
	p, ok := zoneBaseRates[zoneType]
	if !ok {
		p = zoneDefaultRate
	}

	switch riskLevel {
	case models.RiskCritical:
		p = math.Min(p+criticalBonus, criticalCeiling)
	case models.RiskVeryHigh:
		p = math.Min(p+veryHighBonus, veryHighCeiling)
	case models.RiskHigh:
		p = math.Min(p+highBonus, highCeiling)
	}

	p += threshold * thresholdWeight
	p += sizeDelta * sizeDeltaWeight
	if isHotspot(district) {
		p += hotspotBonus
	}

	return math.Min(p, probabilityCap)
}

// IsDetected draws against the probability unless detection is forced.
func (c *Classifier) IsDetected(probability float64, force bool) bool {
	return force || c.rng.Float64() < probability
}

func isHotspot(district string) bool {
	name := strings.ToLower(district)
	for _, m := range hotspotMatches {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}
