package analysis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/paulmach/orb"

	"github.com/minewatch-gh/minewatch-backend-go/internal/analysis/risk"
	"github.com/minewatch-gh/minewatch-backend-go/internal/geocode"
	"github.com/minewatch-gh/minewatch-backend-go/internal/imagery"
	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
	"github.com/minewatch-gh/minewatch-backend-go/internal/spatial"
	"github.com/minewatch-gh/minewatch-backend-go/internal/storage"
)

// fakeProvider returns payloads whose size depends on the requested date, so
// the before/after pair carries a nonzero delta.
type fakeProvider struct{}

func (fakeProvider) Fetch(ctx context.Context, bounds spatial.Bounds, date time.Time, analysisType models.AnalysisType) []byte {
	size := 4096 + date.Day()*512
	return make([]byte, size)
}

type fakeUploader struct {
	mu    sync.Mutex
	paths []string
	fail  bool
}

func (u *fakeUploader) Upload(ctx context.Context, data []byte, objectPath, contentType string) (string, error) {
	if u.fail {
		return "", &storage.StorageError{Path: objectPath, Err: errors.New("bucket unavailable")}
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.paths = append(u.paths, objectPath)
	return "https://cdn.example/" + objectPath, nil
}

var tarkwaAOI = orb.Polygon{{
	{-2.15, 5.10}, {-1.85, 5.10}, {-1.85, 5.45}, {-2.15, 5.45}, {-2.15, 5.10},
}}

func tarkwaRequest() models.AnalysisRequest {
	return models.AnalysisRequest{
		AOI:            tarkwaAOI,
		District:       "Tarkwa Nsuaem",
		StartDate:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		AnalysisType:   models.AnalysisNDVI,
		Threshold:      0.3,
		SequenceNumber: 1,
	}
}

func newTestEngine(uploader storage.Uploader, seed int64) *Engine {
	return NewWithSeed(risk.NewStore(), fakeProvider{}, uploader, nil, seed)
}

func TestRunHighRiskDistrict(t *testing.T) {
	uploader := &fakeUploader{}
	engine := newTestEngine(uploader, 42)

	result, err := engine.Run(context.Background(), tarkwaRequest())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Sites) == 0 {
		t.Fatal("high-risk district must never produce an empty run")
	}
	if result.Stats.VegetationLossPercent == nil {
		t.Error("NDVI run missing vegetation loss")
	}
	if result.CurrentLocation.LocationID != "LOC-001" {
		t.Errorf("locationId = %q", result.CurrentLocation.LocationID)
	}

	for _, s := range result.Sites {
		if s.AreaKm2 <= 0 || s.DetectionScore < 0 || s.DetectionScore > 1 {
			t.Errorf("site %s has implausible figures: area %f score %f", s.ID, s.AreaKm2, s.DetectionScore)
		}
		if s.ZoneType == "" || s.LegalStatus == "" {
			t.Errorf("site %s missing classification", s.ID)
		}
	}

	// The legality summary must agree with the site list.
	var illegalArea float64
	illegal := false
	for _, s := range result.Sites {
		if s.LegalStatus == models.StatusIllegal {
			illegal = true
			illegalArea += s.AreaKm2
		}
	}
	if result.Legality.IsIllegal != illegal {
		t.Error("summary flag disagrees with sites")
	}
	if diff := result.Legality.IllegalAreaKm2 - illegalArea; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("summary area %f, sites sum to %f", result.Legality.IllegalAreaKm2, illegalArea)
	}
}

func TestRunUploadsAllArtifacts(t *testing.T) {
	uploader := &fakeUploader{}
	engine := newTestEngine(uploader, 42)

	result, err := engine.Run(context.Background(), tarkwaRequest())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(uploader.paths) != 4 {
		t.Fatalf("uploaded %d artifacts, want before/after/diff/geojson", len(uploader.paths))
	}
	for _, url := range []string{result.BeforeImage, result.AfterImage, result.DiffImage, result.GeoJSONURL} {
		if url == "" {
			t.Error("artifact URL missing from result")
		}
	}
}

func TestRunStorageFailureAborts(t *testing.T) {
	engine := newTestEngine(&fakeUploader{fail: true}, 42)

	_, err := engine.Run(context.Background(), tarkwaRequest())
	var storageErr *storage.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestRunRejectsDegenerateAOI(t *testing.T) {
	engine := newTestEngine(&fakeUploader{}, 42)

	req := tarkwaRequest()
	req.AOI = orb.Polygon{{{-2, 5}, {-2, 5.4}, {-2, 5}}}

	_, err := engine.Run(context.Background(), req)
	var geomErr *spatial.GeometryError
	if !errors.As(err, &geomErr) {
		t.Fatalf("expected GeometryError, got %v", err)
	}
}

func TestRunDeterministicLocation(t *testing.T) {
	a, err := newTestEngine(&fakeUploader{}, 1).Run(context.Background(), tarkwaRequest())
	if err != nil {
		t.Fatal(err)
	}
	b, err := newTestEngine(&fakeUploader{}, 99).Run(context.Background(), tarkwaRequest())
	if err != nil {
		t.Fatal(err)
	}

	// The sampling location depends only on bounds, district and sequence,
	// never on the engine seed.
	if !reflect.DeepEqual(a.CurrentLocation, b.CurrentLocation) {
		t.Error("location must not vary with the engine seed")
	}
}

func TestRunResolvesPlaceName(t *testing.T) {
	t.Run("geocoded name carried into the result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"display_name":"Tarkwa, Western Region, Ghana","address":{"town":"Tarkwa"}}`)
		}))
		defer srv.Close()

		geocoder := geocode.NewGeocoder(srv.URL, geocode.NewCache(4, time.Minute))
		engine := NewWithSeed(risk.NewStore(), fakeProvider{}, &fakeUploader{}, geocoder, 42)

		result, err := engine.Run(context.Background(), tarkwaRequest())
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if result.PlaceName != "Tarkwa" {
			t.Errorf("placeName = %q, want the geocoded town", result.PlaceName)
		}
	})

	t.Run("unconfigured geocoder degrades to coordinates", func(t *testing.T) {
		geocoder := geocode.NewGeocoder("", geocode.NewCache(4, time.Minute))
		engine := NewWithSeed(risk.NewStore(), fakeProvider{}, &fakeUploader{}, geocoder, 42)

		result, err := engine.Run(context.Background(), tarkwaRequest())
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		want := spatial.ToDMS(result.CurrentLocation.Coordinates.Lat, result.CurrentLocation.Coordinates.Lng)
		if result.PlaceName != want {
			t.Errorf("placeName = %q, want DMS fallback %q", result.PlaceName, want)
		}
	})
}

func TestRunForceNewLocation(t *testing.T) {
	engine := newTestEngine(&fakeUploader{}, 42)

	req := tarkwaRequest()
	req.ForceNewLocation = true

	result, err := engine.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.CurrentLocation.SequenceNumber != 2 {
		t.Errorf("forcing a new location from seq 1 should advance to 2, got %d",
			result.CurrentLocation.SequenceNumber)
	}
	if result.CurrentLocation.LocationID != "LOC-002" {
		t.Errorf("locationId = %q", result.CurrentLocation.LocationID)
	}
}

func TestRunGuaranteedDetectionDisabled(t *testing.T) {
	// With the policy off an empty organic scan stays empty. Force it by
	// scanning a low-risk district with the highest threshold.
	engine := newTestEngine(&fakeUploader{}, 7)
	engine.SetGuaranteedDetection(false)

	req := tarkwaRequest()
	req.District = "Accra Metropolitan"
	req.Threshold = 1

	result, err := engine.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, s := range result.Sites {
		if len(s.ID) > 6 && s.ID[:6] == "forced" {
			t.Error("disabled policy still fabricated sites")
		}
	}
}

func TestRunFeatureProperties(t *testing.T) {
	engine := newTestEngine(&fakeUploader{}, 42)

	result, err := engine.Run(context.Background(), tarkwaRequest())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.ChangePolygons.Features) != len(result.Sites) {
		t.Fatalf("%d features for %d sites", len(result.ChangePolygons.Features), len(result.Sites))
	}

	required := []string{
		"subAreaId", "analysisTimestamp", "district", "analysisType",
		"threshold", "zone_type", "legal_status", "detection_confidence",
		"priority", "severity", "areaKm2", "detectionScore", "locationId",
		"centerCoordinates", "coordinateString", "boundingBox",
	}
	for i, f := range result.ChangePolygons.Features {
		for _, key := range required {
			if _, ok := f.Properties[key]; !ok {
				t.Errorf("feature %d missing property %q", i, key)
			}
		}
		if f.Properties["district"] != "Tarkwa Nsuaem" {
			t.Errorf("feature %d district = %v", i, f.Properties["district"])
		}
		box, ok := f.Properties["boundingBox"].(map[string]float64)
		if !ok {
			t.Fatalf("feature %d bounding box has wrong shape", i)
		}
		if box["n"] <= box["s"] || box["e"] <= box["w"] {
			t.Errorf("feature %d bounding box inverted: %v", i, box)
		}
	}
}

func TestObjectPathLayout(t *testing.T) {
	uploader := &fakeUploader{}
	engine := newTestEngine(uploader, 42)

	if _, err := engine.Run(context.Background(), tarkwaRequest()); err != nil {
		t.Fatal(err)
	}

	for _, p := range uploader.paths {
		want := "tarkwa-nsuaem/NDVI/"
		if len(p) < len(want) || p[:len(want)] != want {
			t.Errorf("object path %q missing district/type prefix", p)
		}
	}
}

func TestSyntheticDiffFeedsDetection(t *testing.T) {
	// Sanity check that the provider fake produces different payload sizes,
	// otherwise the delta-driven terms go quiet and the run tests weaken.
	p := fakeProvider{}
	before := p.Fetch(context.Background(), spatial.Bounds{}, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), models.AnalysisNDVI)
	after := p.Fetch(context.Background(), spatial.Bounds{}, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), models.AnalysisNDVI)
	if len(before) == len(after) {
		t.Fatal("fake provider payloads must differ in size")
	}

	diff := imagery.SyntheticDiff(before, after, 64, 64)
	if len(diff) == 0 {
		t.Error("diff rendering returned nothing")
	}
}
