package spatial

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Degree-to-kilometre scale near the equator. Shoelace areas computed in
// squared degrees are multiplied by this squared to get km². The
// approximation degrades with latitude; Ghana sits close enough to the
// equator that the distortion is acceptable for reporting.
const KmPerDegree = 111.32

// GeometryError reports a malformed or empty area of interest. It is fatal
// for an analysis run.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}

// Bounds is a geographic bounding box in degrees.
type Bounds struct {
	MinLng float64 `json:"minLng"`
	MinLat float64 `json:"minLat"`
	MaxLng float64 `json:"maxLng"`
	MaxLat float64 `json:"maxLat"`
}

// Width returns the longitudinal span in degrees.
func (b Bounds) Width() float64 { return b.MaxLng - b.MinLng }

// Height returns the latitudinal span in degrees.
func (b Bounds) Height() float64 { return b.MaxLat - b.MinLat }

// IsDegenerate reports whether the box has collapsed to a line or point.
func (b Bounds) IsDegenerate() bool {
	return b.MinLng == b.MaxLng || b.MinLat == b.MaxLat
}

// ExtractBounds folds over the outer ring of a polygon and returns its
// bounding box. Empty rings and non-finite vertices are rejected.
func ExtractBounds(polygon orb.Polygon) (Bounds, error) {
	if len(polygon) == 0 || len(polygon[0]) == 0 {
		return Bounds{}, &GeometryError{Reason: "polygon has no outer ring"}
	}

	ring := polygon[0]
	b := Bounds{
		MinLng: ring[0][0], MaxLng: ring[0][0],
		MinLat: ring[0][1], MaxLat: ring[0][1],
	}

	for _, pt := range ring {
		lng, lat := pt[0], pt[1]
		if math.IsNaN(lng) || math.IsInf(lng, 0) || math.IsNaN(lat) || math.IsInf(lat, 0) {
			return Bounds{}, &GeometryError{Reason: "ring contains non-finite vertex"}
		}
		if lng < b.MinLng {
			b.MinLng = lng
		}
		if lng > b.MaxLng {
			b.MaxLng = lng
		}
		if lat < b.MinLat {
			b.MinLat = lat
		}
		if lat > b.MaxLat {
			b.MaxLat = lat
		}
	}

	return b, nil
}

// PolygonAreaKm2 computes the area of a closed ring with the shoelace
// formula in squared degrees and scales it to km².
func PolygonAreaKm2(ring orb.Ring) float64 {
	if len(ring) < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < len(ring); i++ {
		j := (i + 1) % len(ring)
		sum += ring[i][0]*ring[j][1] - ring[j][0]*ring[i][1]
	}

	return math.Abs(sum) / 2.0 * KmPerDegree * KmPerDegree
}

// SquareAround builds a closed square ring of the given side length (in
// degrees) centred on a point.
func SquareAround(lat, lng, sideDeg float64) orb.Polygon {
	h := sideDeg / 2
	ring := orb.Ring{
		{lng - h, lat - h},
		{lng + h, lat - h},
		{lng + h, lat + h},
		{lng - h, lat + h},
		{lng - h, lat - h},
	}
	return orb.Polygon{ring}
}
