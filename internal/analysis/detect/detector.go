// Package detect scores candidate cells for land change. The score is a
// bounded heuristic over the before/after image size delta, not real
// spectral differencing; the contract is the bounded shape of the score, not
// remote-sensing fidelity.
package detect

import (
	"math/rand"

	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
)

// Per-type weights applied to the size-delta proxy, with the span of the
// additive jitter each type carries.
const (
	ndviDeltaWeight  = 2.0
	ndviJitterSpan   = 0.3
	bsiDeltaWeight   = 1.5
	bsiJitterSpan    = 0.4
	waterDeltaWeight = 1.2
	waterJitterSpan  = 0.5
)

// SizeDeltaRatio is the cheap proxy for how much the before/after imagery
// differ: |after-before| / max(before, after), in [0,1].
func SizeDeltaRatio(beforeLen, afterLen int) float64 {
	if beforeLen <= 0 && afterLen <= 0 {
		return 0
	}
	max := beforeLen
	if afterLen > max {
		max = afterLen
	}
	diff := afterLen - beforeLen
	if diff < 0 {
		diff = -diff
	}
	return float64(diff) / float64(max)
}

// Detector computes per-type detection scores. The random jitter comes from
// an injected source so tests can pin it.
type Detector struct {
	rng *rand.Rand
}

// New returns a detector drawing jitter from rng.
func New(rng *rand.Rand) *Detector {
	return &Detector{rng: rng}
}

// Score returns a detection score in [0,1] for the analysis type given the
// before/after image lengths.
func (d *Detector) Score(t models.AnalysisType, beforeLen, afterLen int) float64 {
	delta := SizeDeltaRatio(beforeLen, afterLen)

	switch t {
	case models.AnalysisNDVI:
		return clamp01(delta*ndviDeltaWeight + d.rng.Float64()*ndviJitterSpan)
	case models.AnalysisBSI:
		return clamp01(delta*bsiDeltaWeight + d.rng.Float64()*bsiJitterSpan)
	case models.AnalysisWater:
		return clamp01(d.rng.Float64()*waterJitterSpan + delta*waterDeltaWeight)
	default:
		// Combined change score: mean of the three signals.
		ndvi := clamp01(delta*ndviDeltaWeight + d.rng.Float64()*ndviJitterSpan)
		bsi := clamp01(delta*bsiDeltaWeight + d.rng.Float64()*bsiJitterSpan)
		water := clamp01(d.rng.Float64()*waterJitterSpan + delta*waterDeltaWeight)
		return clamp01((ndvi + bsi + water) / 3)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
