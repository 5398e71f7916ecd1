package models

import "github.com/paulmach/orb"

// Severity grades a detected site by area and zone risk.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Priority is the triage label shown to inspectors.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
	PriorityUrgent   Priority = "urgent"
)

// DetectedSite is one candidate disturbance found by a scan, immutable once
// classified.
type DetectedSite struct {
	ID             string      `json:"id"`
	CenterLat      float64     `json:"centerLat"`
	CenterLng      float64     `json:"centerLng"`
	AreaKm2        float64     `json:"areaKm2"`
	AreaM2         float64     `json:"areaM2"`
	DetectionScore float64     `json:"detectionScore"`
	Severity       Severity    `json:"severity"`
	Priority       Priority    `json:"priority"`
	ZoneType       string      `json:"zoneType"`
	LegalStatus    string      `json:"legalStatus"`
	RiskLevel      string      `json:"riskLevel"`
	Confidence     float64     `json:"confidence"`
	CoordinatesDMS string      `json:"coordinatesDMS"`
	CoordinatesUTM string      `json:"coordinatesUTM"`
	Geometry       orb.Polygon `json:"-"`
}

// Legal status values.
const (
	StatusLegal   = "legal"
	StatusIllegal = "illegal"
)
