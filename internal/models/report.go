package models

import (
	"time"

	"github.com/paulmach/orb/geojson"
)

// LegalitySummary condenses the run's classification outcome.
type LegalitySummary struct {
	IsIllegal      bool    `json:"isIllegal"`
	IllegalAreaKm2 float64 `json:"illegalAreaKm2"`
}

// AnalysisResult is what the engine hands back to the delivery layer: image
// URLs, the classified feature collection, bounded statistics and the
// sampling location the run used.
type AnalysisResult struct {
	BeforeImage     string                     `json:"beforeImage"`
	AfterImage      string                     `json:"afterImage"`
	DiffImage       string                     `json:"diffImage"`
	GeoJSONURL      string                     `json:"geojsonUrl,omitempty"`
	ChangePolygons  *geojson.FeatureCollection `json:"changePolygons"`
	Sites           []DetectedSite             `json:"sites"`
	Stats           AnalysisStats              `json:"stats"`
	Legality        LegalitySummary            `json:"legality"`
	CurrentLocation LocationInfo               `json:"currentLocation"`
	PlaceName       string                     `json:"placeName,omitempty"`
	Timestamp       time.Time                  `json:"timestamp"`
}

// AnalysisReport is the persisted aggregate of a completed run.
type AnalysisReport struct {
	ID           string          `json:"id"`
	District     string          `json:"district"`
	AnalysisType AnalysisType    `json:"analysisType"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	Threshold    float64         `json:"detectionThreshold"`
	Location     LocationInfo    `json:"location"`
	Stats        AnalysisStats   `json:"stats"`
	Legality     LegalitySummary `json:"legality"`
	SiteCount    int             `json:"siteCount"`
	GeoJSONURL   string          `json:"geojsonUrl,omitempty"`
	GeoJSON      string          `json:"-"`
	CreatedAt    time.Time       `json:"createdAt"`
}
