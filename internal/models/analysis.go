package models

import (
	"time"

	"github.com/paulmach/orb"
)

// AnalysisType selects which land-change signal a run evaluates.
type AnalysisType string

const (
	AnalysisNDVI   AnalysisType = "NDVI"
	AnalysisBSI    AnalysisType = "BSI"
	AnalysisWater  AnalysisType = "WATER"
	AnalysisChange AnalysisType = "CHANGE"
)

// Valid reports whether t is one of the supported analysis types.
func (t AnalysisType) Valid() bool {
	switch t {
	case AnalysisNDVI, AnalysisBSI, AnalysisWater, AnalysisChange:
		return true
	}
	return false
}

// AnalysisRequest is constructed once per API call and consumed once by the
// analysis engine. The AOI polygon's first ring is the area scanned.
type AnalysisRequest struct {
	AOI              orb.Polygon  `json:"-"`
	District         string       `json:"district"`
	StartDate        time.Time    `json:"startDate"`
	EndDate          time.Time    `json:"endDate"`
	AnalysisType     AnalysisType `json:"analysisType"`
	Threshold        float64      `json:"detectionThreshold"`
	SequenceNumber   int          `json:"sequenceNumber,omitempty"`
	ForceNewLocation bool         `json:"forceNewLocation,omitempty"`
}

// TurbidityLevel is the categorical water-quality statistic.
type TurbidityLevel string

const (
	TurbidityLow    TurbidityLevel = "Low"
	TurbidityMedium TurbidityLevel = "Medium"
	TurbidityHigh   TurbidityLevel = "High"
)

// AnalysisStats carries only the fields relevant to the analysis type that
// produced it: NDVI fills vegetation loss, BSI soil increase, WATER
// turbidity, CHANGE both percentage fields.
type AnalysisStats struct {
	VegetationLossPercent   *float64        `json:"vegetationLossPercent,omitempty"`
	BareSoilIncreasePercent *float64        `json:"bareSoilIncreasePercent,omitempty"`
	WaterTurbidity          *TurbidityLevel `json:"waterTurbidity,omitempty"`
}
