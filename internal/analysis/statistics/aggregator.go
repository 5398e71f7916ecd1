// Package statistics turns a run's detections into district-wide figures.
// Every output is clamped by the district's risk tier: low-risk districts
// can never report near-total vegetation loss no matter how many spurious
// detections a scan produced. That clamp is the point of this package.
package statistics

import (
	"math"
	"math/rand"

	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
)

// Risk tiers keyed by illegal-mining likelihood, with the hard caps each
// tier allows.
const (
	highRiskLikelihood   = 0.5
	mediumRiskLikelihood = 0.2

	maxVegLossHigh   = 90.0
	maxVegLossMedium = 35.0
	maxVegLossLow    = 8.0

	maxSoilHigh   = 85.0
	maxSoilMedium = 25.0
	maxSoilLow    = 5.0

	minVegLoss = 0.5

	// Mining-specific terms only apply above this likelihood; below it the
	// multipliers shrink so quiet districts are not inflated.
	miningTermsLikelihood = 0.3
)

// Input is everything the aggregation needs from a completed scan.
type Input struct {
	AnalysisType    models.AnalysisType
	Threshold       float64
	Sites           []models.DetectedSite
	ImageDeltaRatio float64
	Profile         models.RiskProfile
}

// Aggregator computes bounded statistics; the variation factor draws from
// an injected source.
type Aggregator struct {
	rng *rand.Rand
}

// New returns an aggregator drawing variation from rng.
func New(rng *rand.Rand) *Aggregator {
	return &Aggregator{rng: rng}
}

// MaxVegetationLoss returns the vegetation-loss cap for a profile's tier.
func MaxVegetationLoss(p models.RiskProfile) float64 {
	switch {
	case p.IllegalMiningLikelihood > highRiskLikelihood:
		return maxVegLossHigh
	case p.IllegalMiningLikelihood > mediumRiskLikelihood:
		return maxVegLossMedium
	default:
		return maxVegLossLow
	}
}

// MaxSoilExposure returns the bare-soil cap for a profile's tier.
func MaxSoilExposure(p models.RiskProfile) float64 {
	switch {
	case p.IllegalMiningLikelihood > highRiskLikelihood:
		return maxSoilHigh
	case p.IllegalMiningLikelihood > mediumRiskLikelihood:
		return maxSoilMedium
	default:
		return maxSoilLow
	}
}

// Aggregate fills exactly the statistics relevant to the analysis type.
// Out-of-range inputs are clamped, never rejected: this feeds a compliance
// report where a crash is worse than a conservative estimate.
func (a *Aggregator) Aggregate(in Input) models.AnalysisStats {
	var stats models.AnalysisStats

	switch in.AnalysisType {
	case models.AnalysisNDVI:
		v := a.vegetationLoss(in)
		stats.VegetationLossPercent = &v
	case models.AnalysisBSI:
		s := a.soilIncrease(in)
		stats.BareSoilIncreasePercent = &s
	case models.AnalysisWater:
		t := a.waterTurbidity(in)
		stats.WaterTurbidity = &t
	case models.AnalysisChange:
		v := a.vegetationLoss(in)
		s := a.soilIncrease(in)
		stats.VegetationLossPercent = &v
		stats.BareSoilIncreasePercent = &s
	}

	return stats
}

type severityCounts struct {
	critical, high, moderate int
	totalAreaKm2             float64
}

func countSites(sites []models.DetectedSite) severityCounts {
	var c severityCounts
	for _, s := range sites {
		c.totalAreaKm2 += math.Max(s.AreaKm2, 0)
		switch s.Severity {
		case models.SeverityCritical:
			c.critical++
		case models.SeverityHigh:
			c.high++
		case models.SeverityModerate:
			c.moderate++
		}
	}
	return c
}

func (a *Aggregator) variation() float64 {
	return 0.8 + a.rng.Float64()*0.4
}

func (a *Aggregator) vegetationLoss(in Input) float64 {
	p := in.Profile
	c := countSites(in.Sites)
	loss := p.BaseVegetationLoss

	if p.IllegalMiningLikelihood > miningTermsLikelihood {
		loss += c.totalAreaKm2 * 5 * p.MiningIntensity
		loss += float64(c.critical) * 8 * p.EnvironmentalSensitivity
		loss += float64(c.high) * 5 * p.EnvironmentalSensitivity
		loss += float64(c.moderate) * 2 * p.EnvironmentalSensitivity
		loss += in.Threshold * 3 * p.MiningIntensity
		loss += in.ImageDeltaRatio * 10 * p.IllegalMiningLikelihood
	} else {
		loss += c.totalAreaKm2 * 0.7 * p.MiningIntensity
		loss += float64(c.critical) * 1.2 * p.EnvironmentalSensitivity
		loss += float64(c.high) * 0.7 * p.EnvironmentalSensitivity
		loss += float64(c.moderate) * 0.3 * p.EnvironmentalSensitivity
		loss += in.Threshold * 0.5 * p.MiningIntensity
		loss += in.ImageDeltaRatio * 1.5 * p.IllegalMiningLikelihood
	}

	loss *= a.variation()
	return clamp(loss, minVegLoss, MaxVegetationLoss(p))
}

func (a *Aggregator) soilIncrease(in Input) float64 {
	p := in.Profile
	c := countSites(in.Sites)
	soil := p.BaseSoilExposure

	if p.IllegalMiningLikelihood > miningTermsLikelihood {
		soil += c.totalAreaKm2 * 4 * p.MiningIntensity
		soil += float64(c.critical) * 6 * p.EnvironmentalSensitivity
		soil += float64(c.high) * 4 * p.EnvironmentalSensitivity
		soil += float64(c.moderate) * 1.5 * p.EnvironmentalSensitivity
		soil += in.Threshold * 2.5 * p.MiningIntensity
		soil += in.ImageDeltaRatio * 8 * p.IllegalMiningLikelihood
	} else {
		soil += c.totalAreaKm2 * 0.6 * p.MiningIntensity
		soil += float64(c.critical) * 0.9 * p.EnvironmentalSensitivity
		soil += float64(c.high) * 0.6 * p.EnvironmentalSensitivity
		soil += float64(c.moderate) * 0.2 * p.EnvironmentalSensitivity
		soil += in.Threshold * 0.4 * p.MiningIntensity
		soil += in.ImageDeltaRatio * 1.2 * p.IllegalMiningLikelihood
	}

	soil *= a.variation()
	return clamp(soil, 0, MaxSoilExposure(p))
}

func (a *Aggregator) waterTurbidity(in Input) models.TurbidityLevel {
	p := in.Profile
	c := countSites(in.Sites)

	score := p.WaterContaminationRisk
	score += c.totalAreaKm2 * 0.5
	score += float64(c.critical) * 0.4
	score += in.Threshold * 0.3
	score += in.ImageDeltaRatio * 2
	score *= a.variation()

	switch {
	case p.IllegalMiningLikelihood > highRiskLikelihood:
		if score > 1.5 || c.critical >= 1 {
			return models.TurbidityHigh
		}
		if score > 0.8 {
			return models.TurbidityMedium
		}
		return models.TurbidityLow
	case p.IllegalMiningLikelihood > mediumRiskLikelihood:
		if score > 0.8 {
			return models.TurbidityMedium
		}
		return models.TurbidityLow
	default:
		if score > 0.5 {
			return models.TurbidityMedium
		}
		return models.TurbidityLow
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
