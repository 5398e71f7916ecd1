package risk

import "github.com/minewatch-gh/minewatch-backend-go/internal/models"

// defaultConfig holds the embedded district tables: fifteen Ghanaian
// districts tiered from the galamsey hotspots of the Western and Ashanti
// regions down to metropolitan areas with no mining footprint, plus the
// default tier for unknown names.
func defaultConfig() Config {
	return Config{
		Profiles: map[string]models.RiskProfile{
			"tarkwa nsuaem": {
				MiningIntensity: 0.95, EnvironmentalSensitivity: 0.85,
				BaseVegetationLoss: 12, BaseSoilExposure: 10,
				WaterContaminationRisk: 0.9, IllegalMiningLikelihood: 0.9,
			},
			"prestea huni-valley": {
				MiningIntensity: 0.9, EnvironmentalSensitivity: 0.8,
				BaseVegetationLoss: 11, BaseSoilExposure: 9,
				WaterContaminationRisk: 0.85, IllegalMiningLikelihood: 0.88,
			},
			"obuasi municipal": {
				MiningIntensity: 0.88, EnvironmentalSensitivity: 0.75,
				BaseVegetationLoss: 10, BaseSoilExposure: 8.5,
				WaterContaminationRisk: 0.8, IllegalMiningLikelihood: 0.85,
			},
			"amansie west": {
				MiningIntensity: 0.8, EnvironmentalSensitivity: 0.8,
				BaseVegetationLoss: 9, BaseSoilExposure: 7.5,
				WaterContaminationRisk: 0.75, IllegalMiningLikelihood: 0.8,
			},
			"upper denkyira east": {
				MiningIntensity: 0.75, EnvironmentalSensitivity: 0.7,
				BaseVegetationLoss: 8, BaseSoilExposure: 7,
				WaterContaminationRisk: 0.7, IllegalMiningLikelihood: 0.75,
			},
			"asante akim central": {
				MiningIntensity: 0.65, EnvironmentalSensitivity: 0.6,
				BaseVegetationLoss: 7, BaseSoilExposure: 6,
				WaterContaminationRisk: 0.6, IllegalMiningLikelihood: 0.65,
			},
			"atiwa east": {
				MiningIntensity: 0.6, EnvironmentalSensitivity: 0.85,
				BaseVegetationLoss: 6.5, BaseSoilExposure: 5.5,
				WaterContaminationRisk: 0.65, IllegalMiningLikelihood: 0.6,
			},
			"wassa amenfi east": {
				MiningIntensity: 0.55, EnvironmentalSensitivity: 0.65,
				BaseVegetationLoss: 6, BaseSoilExposure: 5,
				WaterContaminationRisk: 0.55, IllegalMiningLikelihood: 0.55,
			},
			"birim north": {
				MiningIntensity: 0.4, EnvironmentalSensitivity: 0.55,
				BaseVegetationLoss: 4.5, BaseSoilExposure: 4,
				WaterContaminationRisk: 0.4, IllegalMiningLikelihood: 0.35,
			},
			"bolgatanga municipal": {
				MiningIntensity: 0.2, EnvironmentalSensitivity: 0.4,
				BaseVegetationLoss: 3, BaseSoilExposure: 3,
				WaterContaminationRisk: 0.2, IllegalMiningLikelihood: 0.08,
			},
			"sunyani municipal": {
				MiningIntensity: 0.15, EnvironmentalSensitivity: 0.45,
				BaseVegetationLoss: 2.5, BaseSoilExposure: 2.5,
				WaterContaminationRisk: 0.15, IllegalMiningLikelihood: 0.07,
			},
			"kumasi metropolitan": {
				MiningIntensity: 0.1, EnvironmentalSensitivity: 0.3,
				BaseVegetationLoss: 2, BaseSoilExposure: 2,
				WaterContaminationRisk: 0.15, IllegalMiningLikelihood: 0.05,
			},
			"cape coast metropolitan": {
				MiningIntensity: 0.08, EnvironmentalSensitivity: 0.35,
				BaseVegetationLoss: 1.8, BaseSoilExposure: 1.6,
				WaterContaminationRisk: 0.1, IllegalMiningLikelihood: 0.04,
			},
			"tema metropolitan": {
				MiningIntensity: 0.05, EnvironmentalSensitivity: 0.25,
				BaseVegetationLoss: 1.5, BaseSoilExposure: 1.5,
				WaterContaminationRisk: 0.1, IllegalMiningLikelihood: 0.02,
			},
			"accra metropolitan": {
				MiningIntensity: 0.05, EnvironmentalSensitivity: 0.2,
				BaseVegetationLoss: 1.2, BaseSoilExposure: 1.2,
				WaterContaminationRisk: 0.08, IllegalMiningLikelihood: 0.01,
			},
			DefaultDistrict: {
				MiningIntensity: 0.1, EnvironmentalSensitivity: 0.4,
				BaseVegetationLoss: 2, BaseSoilExposure: 2,
				WaterContaminationRisk: 0.15, IllegalMiningLikelihood: 0.02,
			},
		},
		CuratedLocations: map[string][]models.CuratedLocation{
			"tarkwa nsuaem": {
				{
					Name: "Bonsa River Dredging Site", Lat: 5.2103, Lng: -2.0091,
					IsLegal: false, ZoneType: models.ZoneWaterBuffer, RiskLevel: models.RiskCritical,
					EnvironmentalImpact: "severe", Confidence: 0.93,
					NearestCommunity: "Bonsa", LandUse: "alluvial dredging", ProtectionStatus: "river buffer zone",
				},
				{
					Name: "Nsuta Hills Pit Cluster", Lat: 5.2781, Lng: -1.9624,
					IsLegal: false, ZoneType: models.ZoneGalamsey, RiskLevel: models.RiskCritical,
					EnvironmentalImpact: "severe", Confidence: 0.9,
					NearestCommunity: "Nsuta", LandUse: "open pits", ProtectionStatus: "none",
				},
				{
					Name: "Tarkwa Goldfields Lease Block", Lat: 5.3019, Lng: -1.9895,
					IsLegal: true, ZoneType: models.ZoneExpiredConcession, RiskLevel: models.RiskHigh,
					EnvironmentalImpact: "moderate", Confidence: 0.88,
					NearestCommunity: "Tarkwa", LandUse: "surface mining lease", ProtectionStatus: "licensed concession",
				},
				{
					Name: "Benso Oil Palm Fringe", Lat: 5.1512, Lng: -1.9307,
					IsLegal: false, ZoneType: models.ZoneAgricultural, RiskLevel: models.RiskVeryHigh,
					EnvironmentalImpact: "high", Confidence: 0.82,
					NearestCommunity: "Benso", LandUse: "plantation encroachment", ProtectionStatus: "agricultural land",
				},
			},
			"obuasi municipal": {
				{
					Name: "Pompora Ridge Workings", Lat: 6.2174, Lng: -1.6548,
					IsLegal: false, ZoneType: models.ZoneGalamsey, RiskLevel: models.RiskCritical,
					EnvironmentalImpact: "severe", Confidence: 0.91,
					NearestCommunity: "Pompora", LandUse: "underground re-entry", ProtectionStatus: "none",
				},
				{
					Name: "AngloGold Concession Edge", Lat: 6.1989, Lng: -1.6793,
					IsLegal: true, ZoneType: models.ZoneExpiredConcession, RiskLevel: models.RiskHigh,
					EnvironmentalImpact: "moderate", Confidence: 0.87,
					NearestCommunity: "Obuasi", LandUse: "industrial mining", ProtectionStatus: "licensed concession",
				},
				{
					Name: "Jimi River Washing Bay", Lat: 6.2405, Lng: -1.7012,
					IsLegal: false, ZoneType: models.ZoneWaterBuffer, RiskLevel: models.RiskVeryHigh,
					EnvironmentalImpact: "high", Confidence: 0.85,
					NearestCommunity: "Anyinam", LandUse: "ore washing", ProtectionStatus: "river buffer zone",
				},
			},
			"prestea huni-valley": {
				{
					Name: "Ankobra Floodplain Pits", Lat: 5.4267, Lng: -2.1431,
					IsLegal: false, ZoneType: models.ZoneWaterBuffer, RiskLevel: models.RiskCritical,
					EnvironmentalImpact: "severe", Confidence: 0.92,
					NearestCommunity: "Prestea", LandUse: "floodplain excavation", ProtectionStatus: "river buffer zone",
				},
				{
					Name: "Bogoso Pit Extension", Lat: 5.5713, Lng: -2.0239,
					IsLegal: false, ZoneType: models.ZoneGalamsey, RiskLevel: models.RiskVeryHigh,
					EnvironmentalImpact: "high", Confidence: 0.86,
					NearestCommunity: "Bogoso", LandUse: "open pits", ProtectionStatus: "none",
				},
				{
					Name: "Huni Valley Community Concession", Lat: 5.4856, Lng: -1.9672,
					IsLegal: true, ZoneType: models.ZoneCommunityMining, RiskLevel: models.RiskModerate,
					EnvironmentalImpact: "moderate", Confidence: 0.8,
					NearestCommunity: "Huni Valley", LandUse: "community mining scheme", ProtectionStatus: "licensed community area",
				},
			},
			"amansie west": {
				{
					Name: "Offin Shelterbelt Intrusion", Lat: 6.3042, Lng: -1.8867,
					IsLegal: false, ZoneType: models.ZoneProtectedForest, RiskLevel: models.RiskCritical,
					EnvironmentalImpact: "severe", Confidence: 0.9,
					NearestCommunity: "Manso Nkwanta", LandUse: "forest clearing", ProtectionStatus: "forest reserve",
				},
				{
					Name: "Manso Adubia Workings", Lat: 6.2511, Lng: -1.9203,
					IsLegal: false, ZoneType: models.ZoneGalamsey, RiskLevel: models.RiskVeryHigh,
					EnvironmentalImpact: "high", Confidence: 0.84,
					NearestCommunity: "Adubia", LandUse: "open pits", ProtectionStatus: "none",
				},
			},
			"atiwa east": {
				{
					Name: "Atewa Range Foothill Clearing", Lat: 6.2308, Lng: -0.5561,
					IsLegal: false, ZoneType: models.ZoneProtectedForest, RiskLevel: models.RiskCritical,
					EnvironmentalImpact: "severe", Confidence: 0.94,
					NearestCommunity: "Kibi", LandUse: "forest clearing", ProtectionStatus: "forest reserve",
				},
				{
					Name: "Birim Headwater Diggings", Lat: 6.1975, Lng: -0.5814,
					IsLegal: false, ZoneType: models.ZoneWaterBuffer, RiskLevel: models.RiskVeryHigh,
					EnvironmentalImpact: "high", Confidence: 0.87,
					NearestCommunity: "Apapam", LandUse: "stream-bed mining", ProtectionStatus: "headwater buffer",
				},
			},
		},
		HighRiskMatches: []string{
			"tarkwa nsuaem", "tarkwa", "nsuaem", "obuasi",
			"prestea", "bogoso", "konongo", "dunkwa",
		},
	}
}
