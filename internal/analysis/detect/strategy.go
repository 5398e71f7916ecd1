package detect

import "math/rand"

// Strategy decides whether a scored cell becomes a candidate site. Two
// strategies coexist on purpose: the sub-area scan compares the score
// against the caller's threshold, while the district scan scales the score
// and draws against it. They produce different acceptance rates and must
// not be unified.
type Strategy interface {
	Name() string
	Accept(score, threshold float64, rng *rand.Rand) bool
}

// ThresholdStrategy accepts a cell when its score meets the requested
// detection threshold. Used by sub-area scans.
type ThresholdStrategy struct{}

func (ThresholdStrategy) Name() string { return "threshold" }

func (ThresholdStrategy) Accept(score, threshold float64, rng *rand.Rand) bool {
	return score >= threshold
}

// ProbabilityStrategy scales the score by (1+threshold) and accepts it with
// that probability. Any positive scaled score can be accepted; the draw
// decides. Used by district-wide scans.
type ProbabilityStrategy struct{}

func (ProbabilityStrategy) Name() string { return "probability" }

func (ProbabilityStrategy) Accept(score, threshold float64, rng *rand.Rand) bool {
	scaled := score * (1 + threshold)
	if scaled <= 0 {
		return false
	}
	return rng.Float64() < scaled
}
