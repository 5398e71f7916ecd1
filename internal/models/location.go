package models

import "github.com/paulmach/orb"

// Coordinates is a point with its display formats.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
	DMS string  `json:"dms"`
	UTM string  `json:"utm"`
}

// CardinalBounds is a bounding box keyed by compass direction, the shape the
// reporting frontend consumes.
type CardinalBounds struct {
	North float64 `json:"n"`
	South float64 `json:"s"`
	East  float64 `json:"e"`
	West  float64 `json:"w"`
}

// LocationInfo identifies one deterministic sampling location within a
// district. It is derived purely from (AOI bounds, sequence number) and is
// never stored as mutable state: asking for sequence N again reproduces the
// same value.
type LocationInfo struct {
	LocationID     string         `json:"locationId"`
	LocationName   string         `json:"locationName"`
	SequenceNumber int            `json:"sequenceNumber"`
	Coordinates    Coordinates    `json:"coordinates"`
	AreaSizeKm2    float64        `json:"areaSizeKm2"`
	AreaSizeM2     float64        `json:"areaSizeM2"`
	Bounds         CardinalBounds `json:"bounds"`
	AnalysisArea   orb.Polygon    `json:"-"`
}
