package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"github.com/minewatch-gh/minewatch-backend-go/internal/analysis"
	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
	"github.com/minewatch-gh/minewatch-backend-go/internal/repository"
)

// AnalysisService runs the detection engine and persists the outcome.
type AnalysisService struct {
	engine  *analysis.Engine
	reports *repository.ReportRepository
}

// NewAnalysisService creates an analysis service.
func NewAnalysisService(engine *analysis.Engine, reports *repository.ReportRepository) *AnalysisService {
	return &AnalysisService{engine: engine, reports: reports}
}

// RunResult pairs the engine output with its persisted report ID.
// PersistErr is set when the save failed; the computed result is still
// returned so the caller can retry the save without rerunning the analysis.
type RunResult struct {
	Result     *models.AnalysisResult
	ReportID   string
	PersistErr error
}

// Run executes one analysis request and saves the report.
func (s *AnalysisService) Run(ctx context.Context, req models.AnalysisRequest) (*RunResult, error) {
	result, err := s.engine.Run(ctx, req)
	if err != nil {
		return nil, err
	}

	report := &models.AnalysisReport{
		ID:           uuid.NewString(),
		District:     req.District,
		AnalysisType: req.AnalysisType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Threshold:    req.Threshold,
		Location:     result.CurrentLocation,
		Stats:        result.Stats,
		Legality:     result.Legality,
		SiteCount:    len(result.Sites),
		GeoJSONURL:   result.GeoJSONURL,
		CreatedAt:    result.Timestamp,
	}
	if doc, err := json.Marshal(result.ChangePolygons); err == nil {
		report.GeoJSON = string(doc)
	}

	run := &RunResult{Result: result, ReportID: report.ID}
	if err := s.reports.Create(report); err != nil {
		// The analysis stands; only the save failed.
		log.Printf("[AnalysisService] report save failed: %v", err)
		run.ReportID = ""
		run.PersistErr = err
	}

	return run, nil
}

// GetReport loads one persisted report, nil when absent.
func (s *AnalysisService) GetReport(id string) (*models.AnalysisReport, error) {
	return s.reports.GetByID(id)
}

// ListReports lists persisted reports, newest first.
func (s *AnalysisService) ListReports(district string, limit, offset int) ([]*models.AnalysisReport, error) {
	return s.reports.List(district, limit, offset)
}
