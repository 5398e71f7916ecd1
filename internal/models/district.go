package models

// RiskProfile bounds how extreme the computed statistics for a district may
// become. Intensities and likelihoods are in [0,1]; the two base fields are
// percentages in [0,100].
type RiskProfile struct {
	MiningIntensity          float64 `json:"miningIntensity" yaml:"mining_intensity"`
	EnvironmentalSensitivity float64 `json:"environmentalSensitivity" yaml:"environmental_sensitivity"`
	BaseVegetationLoss       float64 `json:"baseVegetationLoss" yaml:"base_vegetation_loss"`
	BaseSoilExposure         float64 `json:"baseSoilExposure" yaml:"base_soil_exposure"`
	WaterContaminationRisk   float64 `json:"waterContaminationRisk" yaml:"water_contamination_risk"`
	IllegalMiningLikelihood  float64 `json:"illegalMiningLikelihood" yaml:"illegal_mining_likelihood"`
}

// CuratedLocation is a pre-tagged real-world mining site used for
// nearest-match legality imputation.
type CuratedLocation struct {
	Name                string  `json:"name" yaml:"name"`
	Lat                 float64 `json:"lat" yaml:"lat"`
	Lng                 float64 `json:"lng" yaml:"lng"`
	IsLegal             bool    `json:"isLegal" yaml:"is_legal"`
	ZoneType            string  `json:"zoneType" yaml:"zone_type"`
	RiskLevel           string  `json:"riskLevel" yaml:"risk_level"`
	EnvironmentalImpact string  `json:"environmentalImpact" yaml:"environmental_impact"`
	Confidence          float64 `json:"confidence" yaml:"confidence"`
	NearestCommunity    string  `json:"nearestCommunity" yaml:"nearest_community"`
	LandUse             string  `json:"landUse" yaml:"land_use"`
	ProtectionStatus    string  `json:"protectionStatus" yaml:"protection_status"`
}

// Zone types assigned during classification.
const (
	ZoneProtectedForest   = "protected_forest"
	ZoneWaterBuffer       = "water_buffer"
	ZoneCulturalHeritage  = "cultural_heritage"
	ZoneGalamsey          = "galamsey_zone"
	ZoneExpiredConcession = "expired_concession"
	ZoneAgricultural      = "agricultural_land"
	ZoneResidentialBuffer = "residential_buffer"
	ZoneCommunityMining   = "community_mining"
)

// Risk levels attached to curated locations and imputed sites.
const (
	RiskCritical = "critical"
	RiskVeryHigh = "very_high"
	RiskHigh     = "high"
	RiskModerate = "moderate"
	RiskLow      = "low"
)
