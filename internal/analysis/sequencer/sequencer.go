// Package sequencer deterministically maps a district's bounds and a
// caller-maintained sequence number to one sampling location. Reproducibility
// is the contract: audits replay a report by sequence number alone, so the
// mapping below is a documented hash function, not a source of randomness,
// and must not be swapped for a PRNG.
package sequencer

import (
	"fmt"
	"math"

	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
	"github.com/minewatch-gh/minewatch-backend-go/internal/spatial"
)

const (
	seedFactor = 1337

	// Golden ratio fraction and its complement. Successive multiples mod 1
	// are low-discrepancy, so consecutive sequence numbers land far apart
	// without any stored state.
	lngConstant = 0.6180339887
	latConstant = 0.3819660113

	// Analysis cell side: 500 m expressed in degrees near the equator.
	// Approximate, not geodesically exact.
	CellSideDeg = 0.0045

	cellAreaKm2 = 0.25
	cellAreaM2  = 250000
)

var archetypes = [10]string{
	"Forest Reserve Area",
	"Remote Valley Region",
	"Upper Catchment Zone",
	"Riverine Lowland Sector",
	"Abandoned Concession Belt",
	"Hillside Clearing Zone",
	"Buffer Forest Margin",
	"Floodplain Survey Block",
	"Savanna Transition Strip",
	"Degraded Woodland Tract",
}

// NextLocation returns the sampling location for the given sequence number
// within the district bounds. Pure: identical inputs produce byte-identical
// output across calls and process restarts.
func NextLocation(bounds spatial.Bounds, district string, sequenceNumber int) models.LocationInfo {
	if sequenceNumber < 1 {
		sequenceNumber = 1
	}

	seed := float64(sequenceNumber * seedFactor)
	lngFrac := frac(seed * lngConstant)
	latFrac := frac(seed * latConstant)

	lat := bounds.MinLat + latFrac*bounds.Height()
	lng := bounds.MinLng + lngFrac*bounds.Width()

	idx := sequenceNumber - 1
	name := fmt.Sprintf("%s %c", archetypes[idx%len(archetypes)], 'A'+rune(idx%26))

	half := CellSideDeg / 2
	return models.LocationInfo{
		LocationID:     fmt.Sprintf("LOC-%03d", sequenceNumber),
		LocationName:   name,
		SequenceNumber: sequenceNumber,
		Coordinates: models.Coordinates{
			Lat: lat,
			Lng: lng,
			DMS: spatial.ToDMS(lat, lng),
			UTM: spatial.ToUTM(lat, lng),
		},
		AreaSizeKm2: cellAreaKm2,
		AreaSizeM2:  cellAreaM2,
		Bounds: models.CardinalBounds{
			North: lat + half,
			South: lat - half,
			East:  lng + half,
			West:  lng - half,
		},
		AnalysisArea: spatial.SquareAround(lat, lng, CellSideDeg),
	}
}

// NextSequenceNumber advances the caller-owned counter for a district: zero
// or negative current means start at 1.
func NextSequenceNumber(district string, current int) int {
	if current <= 0 {
		return 1
	}
	return current + 1
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}
