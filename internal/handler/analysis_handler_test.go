package handler

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb/geojson"
)

func aoiGeometry(t *testing.T, raw string) *geojson.Geometry {
	t.Helper()
	var g geojson.Geometry
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		t.Fatal(err)
	}
	return &g
}

func validDTO(t *testing.T) analysisRequestDTO {
	return analysisRequestDTO{
		AOI:          aoiGeometry(t, `{"type":"Polygon","coordinates":[[[-2.15,5.1],[-1.85,5.1],[-1.85,5.45],[-2.15,5.45],[-2.15,5.1]]]}`),
		District:     "Tarkwa Nsuaem",
		StartDate:    "2024-01-10",
		EndDate:      "2024-03-20",
		AnalysisType: "NDVI",
		Threshold:    0.3,
	}
}

func TestToRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		dto := validDTO(t)
		req, err := dto.toRequest()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.District != "Tarkwa Nsuaem" || string(req.AnalysisType) != "NDVI" {
			t.Errorf("request fields lost: %+v", req)
		}
		if len(req.AOI) != 1 || len(req.AOI[0]) != 5 {
			t.Errorf("polygon not carried through: %v", req.AOI)
		}
		if req.StartDate.Year() != 2024 || req.EndDate.Month() != 3 {
			t.Error("dates not parsed")
		}
	})

	t.Run("multipolygon uses first polygon", func(t *testing.T) {
		dto := validDTO(t)
		dto.AOI = aoiGeometry(t, `{"type":"MultiPolygon","coordinates":[[[[-2,5],[-1,5],[-1,6],[-2,6],[-2,5]]],[[[0,0],[1,0],[1,1],[0,1],[0,0]]]]}`)
		req, err := dto.toRequest()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.AOI[0][0][0] != -2 {
			t.Errorf("wrong polygon selected: %v", req.AOI)
		}
	})

	t.Run("point geometry rejected", func(t *testing.T) {
		dto := validDTO(t)
		dto.AOI = aoiGeometry(t, `{"type":"Point","coordinates":[-2,5]}`)
		if _, err := dto.toRequest(); err == nil {
			t.Error("point AOI should be rejected")
		}
	})

	t.Run("unknown analysis type rejected", func(t *testing.T) {
		dto := validDTO(t)
		dto.AnalysisType = "EVI"
		if _, err := dto.toRequest(); err == nil {
			t.Error("unknown analysis type should be rejected")
		}
	})

	t.Run("threshold out of range rejected", func(t *testing.T) {
		for _, v := range []float64{-0.1, 1.1} {
			dto := validDTO(t)
			dto.Threshold = v
			if _, err := dto.toRequest(); err == nil {
				t.Errorf("threshold %f should be rejected", v)
			}
		}
	})

	t.Run("bad dates rejected", func(t *testing.T) {
		dto := validDTO(t)
		dto.StartDate = "10/01/2024"
		if _, err := dto.toRequest(); err == nil {
			t.Error("non-ISO date should be rejected")
		}

		dto = validDTO(t)
		dto.StartDate, dto.EndDate = "2024-03-20", "2024-01-10"
		if _, err := dto.toRequest(); err == nil {
			t.Error("inverted date range should be rejected")
		}
	})

	t.Run("negative sequence rejected", func(t *testing.T) {
		dto := validDTO(t)
		dto.SequenceNumber = -1
		if _, err := dto.toRequest(); err == nil {
			t.Error("negative sequence number should be rejected")
		}
	})
}
