// Package gridscan partitions a bounding box into fixed-size cells and runs
// a detection callback over the cells that pass a remoteness check.
package gridscan

import (
	"math"

	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
	"github.com/minewatch-gh/minewatch-backend-go/internal/spatial"
)

const (
	// DistrictCellDeg is the coarse grid used for district-wide scans,
	// roughly 1 km per cell near the equator.
	DistrictCellDeg = 0.009

	// SubAreaCellDeg is the fine grid used inside a sampling location,
	// roughly 500 m per cell.
	SubAreaCellDeg = 0.0045

	// MaxCellEvaluations caps the number of cells a single scan may
	// evaluate (evaluations, not detections). It is the pipeline's only
	// throttle against unbounded CPU use and must stay in place.
	MaxCellEvaluations = 50

	// remotenessThreshold is the minimum remoteness score a cell needs
	// before detection runs; cells closer to settlements are skipped.
	remotenessThreshold = 0.4
)

// Cell is one grid square, identified by its centre.
type Cell struct {
	Lng     float64
	Lat     float64
	SizeDeg float64
	Index   int
}

// RemotenessFunc scores how far a cell centre sits from settlements, in
// [0,1]. The default is a coordinate heuristic; a real settlement layer can
// replace it without touching the scanner.
type RemotenessFunc func(lng, lat float64, district string) float64

// DetectFunc inspects one cell and returns a detected site or nil.
type DetectFunc func(cell Cell) *models.DetectedSite

// Scanner walks a bounding box in row-major order.
type Scanner struct {
	CellSizeDeg float64
	MaxCells    int
	Remoteness  RemotenessFunc
}

// NewDistrictScanner returns the coarse-grid scanner.
func NewDistrictScanner(remoteness RemotenessFunc) *Scanner {
	return &Scanner{CellSizeDeg: DistrictCellDeg, MaxCells: MaxCellEvaluations, Remoteness: remoteness}
}

// NewSubAreaScanner returns the fine-grid scanner.
func NewSubAreaScanner(remoteness RemotenessFunc) *Scanner {
	return &Scanner{CellSizeDeg: SubAreaCellDeg, MaxCells: MaxCellEvaluations, Remoteness: remoteness}
}

// Scan steps longitude then latitude across the bounds, skips cells that are
// not remote enough, and collects non-nil detections in scan order. It stops
// once MaxCells cells have been evaluated regardless of how many sites were
// found.
func (s *Scanner) Scan(bounds spatial.Bounds, district string, detect DetectFunc) []models.DetectedSite {
	maxCells := s.MaxCells
	if maxCells <= 0 {
		maxCells = MaxCellEvaluations
	}

	var sites []models.DetectedSite
	evaluated := 0

	for lng := bounds.MinLng; lng <= bounds.MaxLng; lng += s.CellSizeDeg {
		for lat := bounds.MinLat; lat <= bounds.MaxLat; lat += s.CellSizeDeg {
			if evaluated >= maxCells {
				return sites
			}
			evaluated++

			if s.Remoteness != nil && s.Remoteness(lng, lat, district) < remotenessThreshold {
				continue
			}

			cell := Cell{Lng: lng, Lat: lat, SizeDeg: s.CellSizeDeg, Index: evaluated}
			if site := detect(cell); site != nil {
				sites = append(sites, *site)
			}
		}
	}

	return sites
}

// DefaultRemoteness builds the stand-in remoteness heuristic: a district
// base score from mining intensity plus a coordinate-modulo term. There is
// no real settlement data behind it; it exists to thin the grid in a
// reproducible way.
func DefaultRemoteness(profile models.RiskProfile) RemotenessFunc {
	base := 0.25 + profile.MiningIntensity*0.35
	return func(lng, lat float64, district string) float64 {
		mod := math.Mod(math.Abs(lng*1000)+math.Abs(lat*1000), 10) / 10
		return base + mod*0.4
	}
}
