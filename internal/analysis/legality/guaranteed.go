package legality

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"

	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
	"github.com/minewatch-gh/minewatch-backend-go/internal/spatial"
)

// Coordinate jitter applied to synthesized sites so repeated runs do not
// stack markers on the exact curated coordinates.
const displayJitterDeg = 0.002

var riskOrder = map[string]int{
	models.RiskCritical: 0,
	models.RiskVeryHigh: 1,
	models.RiskHigh:     2,
	models.RiskModerate: 3,
	models.RiskLow:      4,
}

// EnsureDetections applies the guaranteed-detection policy: a run over a
// high-risk district that found nothing organically synthesizes between one
// and floor(threshold*3)+1 forced detections from the district's
// highest-risk curated locations. The sites are policy output, not
// measurements; callers that need raw scan results disable
// GuaranteedDetection.
func (c *Classifier) EnsureDetections(district string, threshold float64, sites []models.DetectedSite) []models.DetectedSite {
	if !c.GuaranteedDetection || len(sites) > 0 || !c.store.IsHighRisk(district) {
		return sites
	}

	locations := append([]models.CuratedLocation(nil), c.store.CuratedLocations(district)...)
	if len(locations) == 0 {
		locations = []models.CuratedLocation{{
			Name: "Community Mining Area", ZoneType: models.ZoneCommunityMining,
			RiskLevel: models.RiskHigh, Confidence: 0.5,
		}}
	}
	sort.SliceStable(locations, func(i, j int) bool {
		return riskOrder[locations[i].RiskLevel] < riskOrder[locations[j].RiskLevel]
	})

	want := int(math.Floor(threshold*3)) + 1
	if want > len(locations) {
		want = len(locations)
	}
	if want < 1 {
		want = 1
	}

	forced := make([]models.DetectedSite, 0, want)
	for i := 0; i < want; i++ {
		loc := locations[i]
		lat := loc.Lat + (c.rng.Float64()-0.5)*displayJitterDeg
		lng := loc.Lng + (c.rng.Float64()-0.5)*displayJitterDeg
		areaKm2 := 0.2 + c.rng.Float64()*0.8

		status := models.StatusIllegal
		if loc.IsLegal {
			status = models.StatusLegal
		}
		severity := SeverityFor(areaKm2, loc.RiskLevel, loc.ZoneType)

		forced = append(forced, models.DetectedSite{
			ID:             fmt.Sprintf("forced-%s-%d", shortDistrict(district), i+1),
			CenterLat:      lat,
			CenterLng:      lng,
			AreaKm2:        areaKm2,
			AreaM2:         areaKm2 * 1e6,
			DetectionScore: c.DetectionProbability(loc.ZoneType, loc.RiskLevel, threshold, 0, district),
			Severity:       severity,
			Priority:       PriorityFor(severity, status, district),
			ZoneType:       loc.ZoneType,
			LegalStatus:    status,
			RiskLevel:      loc.RiskLevel,
			Confidence:     loc.Confidence,
			CoordinatesDMS: spatial.ToDMS(lat, lng),
			CoordinatesUTM: spatial.ToUTM(lat, lng),
			Geometry:       c.IrregularPolygon(lat, lng, areaKm2),
		})
	}

	return forced
}

// IrregularPolygon draws a closed ring of jittered radii around a centre so
// detected sites render as organic shapes rather than squares. The radius is
// sized so the polygon roughly encloses the given area.
func (c *Classifier) IrregularPolygon(lat, lng, areaKm2 float64) orb.Polygon {
	const vertices = 8

	radiusKm := math.Sqrt(areaKm2 / math.Pi)
	radiusDeg := radiusKm / spatial.KmPerDegree

	ring := make(orb.Ring, 0, vertices+1)
	for i := 0; i < vertices; i++ {
		angle := 2 * math.Pi * float64(i) / vertices
		r := radiusDeg * (0.7 + c.rng.Float64()*0.6)
		ring = append(ring, orb.Point{
			lng + r*math.Cos(angle),
			lat + r*math.Sin(angle),
		})
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}

func shortDistrict(district string) string {
	// Truncate by runes so multibyte district names keep valid UTF-8 ids.
	runes := []rune(district)
	if len(runes) > 8 {
		runes = runes[:8]
	}
	for i, r := range runes {
		if r == ' ' {
			runes[i] = '-'
		}
	}
	return string(runes)
}
