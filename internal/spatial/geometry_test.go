package spatial

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func squareRing(side float64) orb.Ring {
	return orb.Ring{
		{0, 0}, {side, 0}, {side, side}, {0, side}, {0, 0},
	}
}

func TestExtractBounds(t *testing.T) {
	t.Run("simple polygon", func(t *testing.T) {
		poly := orb.Polygon{{{-2.1, 5.0}, {-1.8, 5.0}, {-1.8, 5.4}, {-2.1, 5.4}, {-2.1, 5.0}}}
		b, err := ExtractBounds(poly)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.MinLng != -2.1 || b.MaxLng != -1.8 || b.MinLat != 5.0 || b.MaxLat != 5.4 {
			t.Errorf("wrong bounds: %+v", b)
		}
	})

	t.Run("empty polygon rejected", func(t *testing.T) {
		_, err := ExtractBounds(orb.Polygon{})
		var geomErr *GeometryError
		if !errors.As(err, &geomErr) {
			t.Fatalf("expected GeometryError, got %v", err)
		}
	})

	t.Run("non-finite vertex rejected", func(t *testing.T) {
		poly := orb.Polygon{{{0, 0}, {math.Inf(1), 0}, {1, 1}, {0, 0}}}
		var geomErr *GeometryError
		if _, err := ExtractBounds(poly); !errors.As(err, &geomErr) {
			t.Fatalf("expected GeometryError, got %v", err)
		}
	})
}

func TestBoundsDegenerate(t *testing.T) {
	b := Bounds{MinLng: 1, MaxLng: 1, MinLat: 0, MaxLat: 2}
	if !b.IsDegenerate() {
		t.Error("collapsed longitude span should be degenerate")
	}
	b = Bounds{MinLng: 0, MaxLng: 1, MinLat: 0, MaxLat: 2}
	if b.IsDegenerate() {
		t.Error("proper box should not be degenerate")
	}
}

func TestPolygonAreaKm2(t *testing.T) {
	t.Run("hundredth-degree square", func(t *testing.T) {
		// 0.01 deg sides near the equator are about 1.1132 km, so the
		// square covers about 1.24 km².
		got := PolygonAreaKm2(squareRing(0.01))
		want := 1.2392
		if math.Abs(got-want)/want > 0.01 {
			t.Errorf("area = %f, want %f within 1%%", got, want)
		}
	})

	t.Run("scales with side squared", func(t *testing.T) {
		small := PolygonAreaKm2(squareRing(0.01))
		large := PolygonAreaKm2(squareRing(0.02))
		if math.Abs(large/small-4) > 0.01 {
			t.Errorf("doubling the side should quadruple the area, ratio %f", large/small)
		}
	})

	t.Run("degenerate ring", func(t *testing.T) {
		if got := PolygonAreaKm2(orb.Ring{{0, 0}, {1, 1}}); got != 0 {
			t.Errorf("two-point ring area = %f, want 0", got)
		}
	})
}

func TestHaversineKm(t *testing.T) {
	// Tarkwa to Obuasi is just over 100 km.
	d := HaversineKm(5.3018, -1.9891, 6.2058, -1.6689)
	if d < 95 || d > 115 {
		t.Errorf("Tarkwa-Obuasi distance = %f km, want about 106", d)
	}

	if z := HaversineKm(5.0, -2.0, 5.0, -2.0); z != 0 {
		t.Errorf("zero distance = %f", z)
	}
}

func TestToDMS(t *testing.T) {
	got := ToDMS(5.5, -2.25)
	if !strings.Contains(got, "N") || !strings.Contains(got, "W") {
		t.Errorf("hemispheres missing from %q", got)
	}
	if !strings.HasPrefix(got, "5°30'") {
		t.Errorf("latitude minutes wrong in %q", got)
	}

	south := ToDMS(-1.0, 1.0)
	if !strings.Contains(south, "S") || !strings.Contains(south, "E") {
		t.Errorf("hemispheres wrong in %q", south)
	}
}

func TestToUTM(t *testing.T) {
	got := ToUTM(5.3, -2.0)
	// Western Ghana sits in zone 30 north.
	if !strings.HasPrefix(got, "30N") {
		t.Errorf("zone wrong in %q", got)
	}
	if !strings.Contains(got, "E ") || !strings.HasSuffix(got, "N") {
		t.Errorf("easting/northing missing in %q", got)
	}
}

func TestSquareAround(t *testing.T) {
	poly := SquareAround(5.0, -2.0, 0.0045)
	if len(poly) != 1 || len(poly[0]) != 5 {
		t.Fatalf("expected closed 5-point ring, got %v", poly)
	}
	if poly[0][0] != poly[0][4] {
		t.Error("ring is not closed")
	}

	area := PolygonAreaKm2(poly[0])
	if math.Abs(area-0.25) > 0.01 {
		t.Errorf("500m cell area = %f km², want about 0.25", area)
	}
}
