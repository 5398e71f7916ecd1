// Package analysis wires the detection pipeline: resolve the district AOI,
// pick the deterministic sampling location, scan for candidate sites,
// classify legality, aggregate bounded statistics and assemble the report
// payload. A run is all-or-nothing; there are no partial successes.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/minewatch-gh/minewatch-backend-go/internal/analysis/detect"
	"github.com/minewatch-gh/minewatch-backend-go/internal/analysis/gridscan"
	"github.com/minewatch-gh/minewatch-backend-go/internal/analysis/legality"
	"github.com/minewatch-gh/minewatch-backend-go/internal/analysis/risk"
	"github.com/minewatch-gh/minewatch-backend-go/internal/analysis/sequencer"
	"github.com/minewatch-gh/minewatch-backend-go/internal/analysis/statistics"
	"github.com/minewatch-gh/minewatch-backend-go/internal/geocode"
	"github.com/minewatch-gh/minewatch-backend-go/internal/imagery"
	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
	"github.com/minewatch-gh/minewatch-backend-go/internal/spatial"
	"github.com/minewatch-gh/minewatch-backend-go/internal/storage"
)

// Engine runs one analysis request end to end.
type Engine struct {
	store    *risk.Store
	provider imagery.Provider
	uploader storage.Uploader
	geocoder *geocode.Geocoder

	rng        *rand.Rand
	detector   *detect.Detector
	classifier *legality.Classifier
	aggregator *statistics.Aggregator

	subAreaStrategy  detect.Strategy
	districtStrategy detect.Strategy
}

// New builds an engine seeded from the clock.
func New(store *risk.Store, provider imagery.Provider, uploader storage.Uploader, geocoder *geocode.Geocoder) *Engine {
	return NewWithSeed(store, provider, uploader, geocoder, time.Now().UnixNano())
}

// NewWithSeed builds an engine with a fixed random seed; tests use this to
// pin the jitter draws.
func NewWithSeed(store *risk.Store, provider imagery.Provider, uploader storage.Uploader, geocoder *geocode.Geocoder, seed int64) *Engine {
	rng := rand.New(rand.NewSource(seed))
	return &Engine{
		store:            store,
		provider:         provider,
		uploader:         uploader,
		geocoder:         geocoder,
		rng:              rng,
		detector:         detect.New(rng),
		classifier:       legality.NewClassifier(store, rng),
		aggregator:       statistics.New(rng),
		subAreaStrategy:  detect.ThresholdStrategy{},
		districtStrategy: detect.ProbabilityStrategy{},
	}
}

// SetGuaranteedDetection toggles the high-risk reporting policy.
func (e *Engine) SetGuaranteedDetection(on bool) {
	e.classifier.GuaranteedDetection = on
}

// Run executes one analysis. Geometry failures abort; imagery failures were
// already recovered inside the provider; storage failures surface.
func (e *Engine) Run(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	bounds, err := spatial.ExtractBounds(req.AOI)
	if err != nil {
		return nil, err
	}
	if bounds.IsDegenerate() {
		return nil, &spatial.GeometryError{Reason: "bounds collapse to a point or line"}
	}

	seq := req.SequenceNumber
	if req.ForceNewLocation {
		seq = sequencer.NextSequenceNumber(req.District, seq)
	}
	if seq < 1 {
		seq = 1
	}
	location := sequencer.NextLocation(bounds, req.District, seq)
	log.Printf("[AnalysisEngine] %s run for %s at %s (seq %d)",
		req.AnalysisType, req.District, location.LocationID, seq)

	before := e.provider.Fetch(ctx, bounds, req.StartDate, req.AnalysisType)
	after := e.provider.Fetch(ctx, bounds, req.EndDate, req.AnalysisType)
	diff := imagery.SyntheticDiff(before, after, 512, 512)
	delta := detect.SizeDeltaRatio(len(before), len(after))

	profile := e.store.Profile(req.District)
	sites := e.scanSites(req, location, bounds, profile, len(before), len(after), delta)
	sites = e.classifier.EnsureDetections(req.District, req.Threshold, sites)

	stats := e.aggregator.Aggregate(statistics.Input{
		AnalysisType:    req.AnalysisType,
		Threshold:       req.Threshold,
		Sites:           sites,
		ImageDeltaRatio: delta,
		Profile:         profile,
	})

	var summary models.LegalitySummary
	for _, s := range sites {
		if s.LegalStatus == models.StatusIllegal {
			summary.IsIllegal = true
			summary.IllegalAreaKm2 += s.AreaKm2
		}
	}

	timestamp := time.Now().UTC()
	fc := buildFeatureCollection(req, location, sites, timestamp)

	result := &models.AnalysisResult{
		ChangePolygons:  fc,
		Sites:           sites,
		Stats:           stats,
		Legality:        summary,
		CurrentLocation: location,
		Timestamp:       timestamp,
	}

	if e.geocoder != nil {
		// Best-effort place name for the report header; failure degrades
		// to a DMS string inside the geocoder.
		result.PlaceName = e.geocoder.ReverseGeocode(ctx, location.Coordinates.Lat, location.Coordinates.Lng)
	}

	if err := e.uploadArtifacts(ctx, req, timestamp, before, after, diff, fc, result); err != nil {
		return nil, err
	}

	log.Printf("[AnalysisEngine] run complete: %d sites, illegal=%v", len(sites), summary.IsIllegal)
	return result, nil
}

// scanSites runs both scan variants: the fine grid inside the sampling
// location with threshold acceptance, and the coarse district grid with
// probability acceptance. Candidates from either are classified against the
// curated tables before they count as detections.
func (e *Engine) scanSites(req models.AnalysisRequest, location models.LocationInfo, aoiBounds spatial.Bounds, profile models.RiskProfile, beforeLen, afterLen int, delta float64) []models.DetectedSite {
	remoteness := gridscan.DefaultRemoteness(profile)
	counter := 0

	detectCell := func(strategy detect.Strategy, maxArea float64) gridscan.DetectFunc {
		return func(cell gridscan.Cell) *models.DetectedSite {
			score := e.detector.Score(req.AnalysisType, beforeLen, afterLen)
			if !strategy.Accept(score, req.Threshold, e.rng) {
				return nil
			}

			cls := e.classifier.ClassifyNearest(cell.Lat, cell.Lng, req.District)
			probability := e.classifier.DetectionProbability(cls.ZoneType, cls.RiskLevel, req.Threshold, delta, req.District)
			if !e.classifier.IsDetected(probability, false) {
				return nil
			}

			counter++
			areaKm2 := maxArea * (0.2 + e.rng.Float64()*0.8)
			severity := legality.SeverityFor(areaKm2, cls.RiskLevel, cls.ZoneType)

			return &models.DetectedSite{
				ID:             fmt.Sprintf("%s-S%02d", location.LocationID, counter),
				CenterLat:      cell.Lat,
				CenterLng:      cell.Lng,
				AreaKm2:        areaKm2,
				AreaM2:         areaKm2 * 1e6,
				DetectionScore: score,
				Severity:       severity,
				Priority:       legality.PriorityFor(severity, cls.LegalStatus, req.District),
				ZoneType:       cls.ZoneType,
				LegalStatus:    cls.LegalStatus,
				RiskLevel:      cls.RiskLevel,
				Confidence:     probability,
				CoordinatesDMS: spatial.ToDMS(cell.Lat, cell.Lng),
				CoordinatesUTM: spatial.ToUTM(cell.Lat, cell.Lng),
				Geometry:       e.classifier.IrregularPolygon(cell.Lat, cell.Lng, areaKm2),
			}
		}
	}

	subBounds := spatial.Bounds{
		MinLng: location.Bounds.West, MaxLng: location.Bounds.East,
		MinLat: location.Bounds.South, MaxLat: location.Bounds.North,
	}

	fine := gridscan.NewSubAreaScanner(remoteness)
	sites := fine.Scan(subBounds, req.District, detectCell(e.subAreaStrategy, 0.25))

	coarse := gridscan.NewDistrictScanner(remoteness)
	sites = append(sites, coarse.Scan(aoiBounds, req.District, detectCell(e.districtStrategy, 2.5))...)

	return sites
}

func (e *Engine) uploadArtifacts(ctx context.Context, req models.AnalysisRequest, ts time.Time, before, after, diff []byte, fc *geojson.FeatureCollection, result *models.AnalysisResult) error {
	if e.uploader == nil {
		return nil
	}

	geoDoc, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("failed to marshal feature collection: %w", err)
	}

	type artifact struct {
		data        []byte
		name, ext   string
		contentType string
		target      *string
	}
	artifacts := []artifact{
		{before, "before", "png", "image/png", &result.BeforeImage},
		{after, "after", "png", "image/png", &result.AfterImage},
		{diff, "diff", "png", "image/png", &result.DiffImage},
		{geoDoc, "geojson", "json", "application/geo+json", &result.GeoJSONURL},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(artifacts))
	for i, a := range artifacts {
		wg.Add(1)
		go func(i int, a artifact) {
			defer wg.Done()
			path := storage.ObjectPath(req.District, req.AnalysisType, ts, a.name, a.ext)
			url, err := e.uploader.Upload(ctx, a.data, path, a.contentType)
			if err != nil {
				errs[i] = err
				return
			}
			*a.target = url
		}(i, a)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
