package analysis

import (
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
	"github.com/minewatch-gh/minewatch-backend-go/internal/spatial"
)

// buildFeatureCollection renders the classified sites as GeoJSON features
// with the property set the reporting frontend expects.
func buildFeatureCollection(req models.AnalysisRequest, location models.LocationInfo, sites []models.DetectedSite, ts time.Time) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, site := range sites {
		bounds, err := spatial.ExtractBounds(site.Geometry)
		if err != nil {
			// Site geometry is engine-built and always valid; skip rather
			// than fail the report if that ever changes.
			continue
		}

		f := geojson.NewFeature(site.Geometry)
		f.ID = site.ID
		f.Properties = geojson.Properties{
			"subAreaId":            site.ID,
			"analysisTimestamp":    ts.Format(time.RFC3339),
			"district":             req.District,
			"analysisType":         string(req.AnalysisType),
			"threshold":            req.Threshold,
			"zone_type":            site.ZoneType,
			"legal_status":         site.LegalStatus,
			"detection_confidence": site.Confidence,
			"priority":             string(site.Priority),
			"severity":             string(site.Severity),
			"areaKm2":              site.AreaKm2,
			"detectionScore":       site.DetectionScore,
			"locationId":           location.LocationID,
			"centerCoordinates": map[string]float64{
				"lon": site.CenterLng,
				"lat": site.CenterLat,
			},
			"coordinateString": site.CoordinatesDMS,
			"boundingBox": map[string]float64{
				"n": bounds.MaxLat,
				"s": bounds.MinLat,
				"e": bounds.MaxLng,
				"w": bounds.MinLng,
			},
		}
		fc.Append(f)
	}

	return fc
}
