// Package risk holds the static per-district tables that bound every
// computed statistic: risk profiles, curated mining locations and the
// high-risk district list. Tables load from YAML so tests and deployments
// can inject their own districts; the embedded defaults cover the Ghanaian
// districts the service ships with.
package risk

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
)

// DefaultDistrict keys the fallback profile for unknown district names.
const DefaultDistrict = "default"

// Config is the YAML schema for district tables.
type Config struct {
	Profiles         map[string]models.RiskProfile       `yaml:"profiles"`
	CuratedLocations map[string][]models.CuratedLocation `yaml:"curated_locations"`
	HighRiskMatches  []string                            `yaml:"high_risk_matches"`
}

// Store resolves district names to their risk tables. Lookup is
// case-insensitive exact match: no fuzzy matching, so profile selection
// stays stable and auditable.
type Store struct {
	profiles map[string]models.RiskProfile
	curated  map[string][]models.CuratedLocation
	highRisk []string
}

// NewStore returns a store backed by the embedded default tables.
func NewStore() *Store {
	return newStore(defaultConfig())
}

// LoadStore reads district tables from a YAML file. Profiles outside their
// documented ranges are rejected at load time rather than clamped at
// runtime.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read district config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse district config: %w", err)
	}

	for name, p := range cfg.Profiles {
		if err := validateProfile(p); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
	}
	if _, ok := cfg.Profiles[DefaultDistrict]; !ok {
		return nil, fmt.Errorf("district config must define a %q profile", DefaultDistrict)
	}

	return newStore(cfg), nil
}

func newStore(cfg Config) *Store {
	s := &Store{
		profiles: make(map[string]models.RiskProfile, len(cfg.Profiles)),
		curated:  make(map[string][]models.CuratedLocation, len(cfg.CuratedLocations)),
		highRisk: make([]string, len(cfg.HighRiskMatches)),
	}
	for name, p := range cfg.Profiles {
		s.profiles[strings.ToLower(name)] = p
	}
	for name, locs := range cfg.CuratedLocations {
		s.curated[strings.ToLower(name)] = locs
	}
	for i, m := range cfg.HighRiskMatches {
		s.highRisk[i] = strings.ToLower(m)
	}
	return s
}

func validateProfile(p models.RiskProfile) error {
	unit := map[string]float64{
		"mining_intensity":          p.MiningIntensity,
		"environmental_sensitivity": p.EnvironmentalSensitivity,
		"water_contamination_risk":  p.WaterContaminationRisk,
		"illegal_mining_likelihood": p.IllegalMiningLikelihood,
	}
	for field, v := range unit {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s %.3f outside [0,1]", field, v)
		}
	}
	if p.BaseVegetationLoss < 0 || p.BaseVegetationLoss > 100 {
		return fmt.Errorf("base_vegetation_loss %.1f outside [0,100]", p.BaseVegetationLoss)
	}
	if p.BaseSoilExposure < 0 || p.BaseSoilExposure > 100 {
		return fmt.Errorf("base_soil_exposure %.1f outside [0,100]", p.BaseSoilExposure)
	}
	return nil
}

// Profile returns the risk profile for a district, falling back to the
// default tier for unknown names.
func (s *Store) Profile(district string) models.RiskProfile {
	if p, ok := s.profiles[strings.ToLower(district)]; ok {
		return p
	}
	return s.profiles[DefaultDistrict]
}

// HasProfile reports whether the district has its own entry (rather than
// resolving through the default tier).
func (s *Store) HasProfile(district string) bool {
	_, ok := s.profiles[strings.ToLower(district)]
	return ok
}

// CuratedLocations returns the pre-tagged site list for a district, nil for
// districts without curated data.
func (s *Store) CuratedLocations(district string) []models.CuratedLocation {
	return s.curated[strings.ToLower(district)]
}

// IsHighRisk reports whether the district name matches the fixed high-risk
// substring list.
func (s *Store) IsHighRisk(district string) bool {
	name := strings.ToLower(district)
	for _, m := range s.highRisk {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// Districts lists the configured district names, sorted, excluding the
// default entry.
func (s *Store) Districts() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		if name == DefaultDistrict {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
