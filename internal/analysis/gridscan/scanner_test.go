package gridscan

import (
	"testing"

	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
	"github.com/minewatch-gh/minewatch-backend-go/internal/spatial"
)

func alwaysRemote(lng, lat float64, district string) float64 { return 1 }

func TestScanEvaluationCap(t *testing.T) {
	// Bounds large enough for tens of thousands of cells.
	bounds := spatial.Bounds{MinLng: -3, MaxLng: 0, MinLat: 4, MaxLat: 8}
	s := NewDistrictScanner(alwaysRemote)

	evaluated := 0
	s.Scan(bounds, "Tarkwa Nsuaem", func(cell Cell) *models.DetectedSite {
		evaluated++
		return nil
	})

	if evaluated > MaxCellEvaluations {
		t.Fatalf("evaluated %d cells, cap is %d", evaluated, MaxCellEvaluations)
	}
	if evaluated != MaxCellEvaluations {
		t.Errorf("large bounds should hit the cap exactly, evaluated %d", evaluated)
	}
}

func TestScanCapCountsEvaluationsNotDetections(t *testing.T) {
	bounds := spatial.Bounds{MinLng: -3, MaxLng: 0, MinLat: 4, MaxLat: 8}
	s := NewDistrictScanner(alwaysRemote)

	sites := s.Scan(bounds, "Tarkwa Nsuaem", func(cell Cell) *models.DetectedSite {
		return &models.DetectedSite{ID: "x"}
	})

	if len(sites) != MaxCellEvaluations {
		t.Errorf("all evaluated cells detected: want %d sites, got %d", MaxCellEvaluations, len(sites))
	}
}

func TestScanOrder(t *testing.T) {
	bounds := spatial.Bounds{MinLng: 0, MaxLng: 0.02, MinLat: 0, MaxLat: 0.02}
	s := &Scanner{CellSizeDeg: 0.009, MaxCells: MaxCellEvaluations, Remoteness: alwaysRemote}

	var cells []Cell
	s.Scan(bounds, "x", func(cell Cell) *models.DetectedSite {
		cells = append(cells, cell)
		return nil
	})

	if len(cells) != 9 {
		t.Fatalf("expected 3x3 cells, got %d", len(cells))
	}
	// Longitude advances in the outer loop: the first three cells share
	// the min longitude.
	for i := 1; i < 3; i++ {
		if cells[i].Lng != cells[0].Lng {
			t.Errorf("cell %d broke scan order", i)
		}
		if cells[i].Lat <= cells[i-1].Lat {
			t.Errorf("latitude should advance in the inner loop")
		}
	}
}

func TestScanSkipsNonRemoteCells(t *testing.T) {
	bounds := spatial.Bounds{MinLng: 0, MaxLng: 0.02, MinLat: 0, MaxLat: 0.02}
	s := &Scanner{CellSizeDeg: 0.009, MaxCells: MaxCellEvaluations,
		Remoteness: func(lng, lat float64, district string) float64 { return 0.1 }}

	called := false
	s.Scan(bounds, "x", func(cell Cell) *models.DetectedSite {
		called = true
		return nil
	})
	if called {
		t.Error("detection must not run on cells below the remoteness threshold")
	}
}

func TestDefaultRemoteness(t *testing.T) {
	high := DefaultRemoteness(models.RiskProfile{MiningIntensity: 0.95})
	low := DefaultRemoteness(models.RiskProfile{MiningIntensity: 0.05})

	// High-intensity districts clear the threshold everywhere; the base
	// alone exceeds it.
	if high(-2.0, 5.3, "tarkwa") < 0.4 {
		t.Error("high-intensity base should clear the threshold")
	}

	// Low-intensity districts depend on the coordinate term, so some
	// cells fall below the threshold and some do not.
	above, below := 0, 0
	for i := 0; i < 20; i++ {
		lng := -2.0 + float64(i)*0.0007
		if low(lng, 5.3, "accra") >= 0.4 {
			above++
		} else {
			below++
		}
	}
	if above == 0 || below == 0 {
		t.Errorf("coordinate term should split cells: %d above, %d below", above, below)
	}
}
