package service

import (
	"github.com/minewatch-gh/minewatch-backend-go/internal/analysis/risk"
	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
)

// DistrictService exposes the configured district tables.
type DistrictService struct {
	store *risk.Store
}

// NewDistrictService creates a district service.
func NewDistrictService(store *risk.Store) *DistrictService {
	return &DistrictService{store: store}
}

// DistrictSummary is one row of the district listing.
type DistrictSummary struct {
	Name     string `json:"name"`
	Tier     string `json:"tier"`
	HighRisk bool   `json:"highRisk"`
}

// List returns all configured districts with their risk tier.
func (s *DistrictService) List() []DistrictSummary {
	names := s.store.Districts()
	out := make([]DistrictSummary, 0, len(names))
	for _, name := range names {
		out = append(out, DistrictSummary{
			Name:     name,
			Tier:     tier(s.store.Profile(name)),
			HighRisk: s.store.IsHighRisk(name),
		})
	}
	return out
}

// ProfileLookup resolves a district profile; fallback reports whether the
// default tier answered.
type ProfileLookup struct {
	District string             `json:"district"`
	Profile  models.RiskProfile `json:"profile"`
	Fallback bool               `json:"fallback"`
}

// Profile looks up a district's risk profile.
func (s *DistrictService) Profile(district string) ProfileLookup {
	return ProfileLookup{
		District: district,
		Profile:  s.store.Profile(district),
		Fallback: !s.store.HasProfile(district),
	}
}

func tier(p models.RiskProfile) string {
	switch {
	case p.IllegalMiningLikelihood > 0.5:
		return "high"
	case p.IllegalMiningLikelihood > 0.2:
		return "medium"
	default:
		return "low"
	}
}
