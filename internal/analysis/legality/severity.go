package legality

import "github.com/minewatch-gh/minewatch-backend-go/internal/models"

// SeverityFor grades a site by area and risk level. Protected-forest and
// cultural-heritage zones are always critical regardless of area.
func SeverityFor(areaKm2 float64, riskLevel, zoneType string) models.Severity {
	if zoneType == models.ZoneProtectedForest || zoneType == models.ZoneCulturalHeritage {
		return models.SeverityCritical
	}

	switch {
	case areaKm2 > 2 || riskLevel == models.RiskCritical:
		return models.SeverityCritical
	case areaKm2 > 1 || riskLevel == models.RiskVeryHigh:
		return models.SeverityHigh
	case areaKm2 > 0.5:
		return models.SeverityModerate
	default:
		return models.SeverityLow
	}
}

// PriorityFor maps severity to the triage label; illegal critical sites in
// hotspot districts escalate to urgent.
func PriorityFor(severity models.Severity, legalStatus, district string) models.Priority {
	switch severity {
	case models.SeverityCritical:
		if legalStatus == models.StatusIllegal && isHotspot(district) {
			return models.PriorityUrgent
		}
		return models.PriorityCritical
	case models.SeverityHigh:
		return models.PriorityHigh
	case models.SeverityModerate:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}
