package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
	"github.com/minewatch-gh/minewatch-backend-go/internal/service"
	"github.com/minewatch-gh/minewatch-backend-go/internal/spatial"
	"github.com/minewatch-gh/minewatch-backend-go/internal/storage"
	"github.com/minewatch-gh/minewatch-backend-go/pkg/response"
)

// AnalysisHandler handles HTTP requests for analysis runs.
type AnalysisHandler struct {
	service *service.AnalysisService
}

// NewAnalysisHandler creates an analysis handler.
func NewAnalysisHandler(service *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

type analysisRequestDTO struct {
	AOI              *geojson.Geometry `json:"aoi" binding:"required"`
	District         string            `json:"district" binding:"required"`
	StartDate        string            `json:"startDate" binding:"required"`
	EndDate          string            `json:"endDate" binding:"required"`
	AnalysisType     string            `json:"analysisType" binding:"required"`
	Threshold        float64           `json:"detectionThreshold"`
	SequenceNumber   int               `json:"sequenceNumber"`
	ForceNewLocation bool              `json:"forceNewLocation"`
}

// Run handles POST /api/v1/analysis.
func (h *AnalysisHandler) Run(c *gin.Context) {
	var dto analysisRequestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	req, err := dto.toRequest()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	run, err := h.service.Run(c.Request.Context(), *req)
	if err != nil {
		status := http.StatusInternalServerError
		var geomErr *spatial.GeometryError
		var storErr *storage.StorageError
		switch {
		case errors.As(err, &geomErr):
			status = http.StatusBadRequest
		case errors.As(err, &storErr):
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"code":      status,
			"message":   err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	payload := gin.H{
		"reportId":        run.ReportID,
		"beforeImage":     run.Result.BeforeImage,
		"afterImage":      run.Result.AfterImage,
		"diffImage":       run.Result.DiffImage,
		"geojsonUrl":      run.Result.GeoJSONURL,
		"changePolygons":  run.Result.ChangePolygons,
		"stats":           run.Result.Stats,
		"legality":        run.Result.Legality,
		"currentLocation": run.Result.CurrentLocation,
		"placeName":       run.Result.PlaceName,
		"timestamp":       run.Result.Timestamp.Format(time.RFC3339),
	}
	if run.PersistErr != nil {
		payload["persistenceError"] = run.PersistErr.Error()
	}
	response.Success(c, payload)
}

func (dto *analysisRequestDTO) toRequest() (*models.AnalysisRequest, error) {
	polygon, err := polygonFromGeometry(dto.AOI.Geometry())
	if err != nil {
		return nil, err
	}

	analysisType := models.AnalysisType(dto.AnalysisType)
	if !analysisType.Valid() {
		return nil, errors.New("analysisType must be one of NDVI, BSI, WATER, CHANGE")
	}
	if dto.Threshold < 0 || dto.Threshold > 1 {
		return nil, errors.New("detectionThreshold must be within [0,1]")
	}
	if dto.SequenceNumber < 0 {
		return nil, errors.New("sequenceNumber must be >= 1 when set")
	}

	start, err := time.Parse("2006-01-02", dto.StartDate)
	if err != nil {
		return nil, errors.New("startDate must be YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", dto.EndDate)
	if err != nil {
		return nil, errors.New("endDate must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, errors.New("endDate must not precede startDate")
	}

	return &models.AnalysisRequest{
		AOI:              polygon,
		District:         dto.District,
		StartDate:        start,
		EndDate:          end,
		AnalysisType:     analysisType,
		Threshold:        dto.Threshold,
		SequenceNumber:   dto.SequenceNumber,
		ForceNewLocation: dto.ForceNewLocation,
	}, nil
}

func polygonFromGeometry(g orb.Geometry) (orb.Polygon, error) {
	switch geom := g.(type) {
	case orb.Polygon:
		return geom, nil
	case orb.MultiPolygon:
		if len(geom) == 0 {
			return nil, errors.New("aoi multipolygon is empty")
		}
		return geom[0], nil
	default:
		return nil, errors.New("aoi must be a Polygon or MultiPolygon")
	}
}
