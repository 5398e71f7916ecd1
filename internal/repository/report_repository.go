package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
)

// PersistenceError marks a failed save or load. It surfaces to the caller
// but never unwinds an already-computed analysis result; the save can be
// retried independently.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("report persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ReportRepository stores completed analysis reports.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a report repository.
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts one report row.
func (r *ReportRepository) Create(report *models.AnalysisReport) error {
	location, err := json.Marshal(report.Location)
	if err != nil {
		return &PersistenceError{Op: "encode location", Err: err}
	}
	stats, err := json.Marshal(report.Stats)
	if err != nil {
		return &PersistenceError{Op: "encode stats", Err: err}
	}
	legality, err := json.Marshal(report.Legality)
	if err != nil {
		return &PersistenceError{Op: "encode legality", Err: err}
	}

	query := `
		INSERT INTO analysis_reports (
			id, district, analysis_type, start_date, end_date, threshold,
			location, stats, legality, site_count, geojson_url, geojson, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query,
		report.ID, report.District, string(report.AnalysisType),
		report.StartDate, report.EndDate, report.Threshold,
		string(location), string(stats), string(legality),
		report.SiteCount, report.GeoJSONURL, report.GeoJSON, report.CreatedAt,
	)
	if err != nil {
		return &PersistenceError{Op: "insert", Err: err}
	}
	return nil
}

// GetByID loads one report, nil when absent.
func (r *ReportRepository) GetByID(id string) (*models.AnalysisReport, error) {
	query := `
		SELECT id, district, analysis_type, start_date, end_date, threshold,
		       location, stats, legality, site_count, geojson_url, created_at
		FROM analysis_reports WHERE id = ?
	`
	report, err := scanReport(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "select", Err: err}
	}
	return report, nil
}

// List returns reports newest first, optionally filtered by district.
func (r *ReportRepository) List(district string, limit, offset int) ([]*models.AnalysisReport, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, district, analysis_type, start_date, end_date, threshold,
		       location, stats, legality, site_count, geojson_url, created_at
		FROM analysis_reports
	`
	args := []interface{}{}
	if district != "" {
		query += " WHERE district = ?"
		args = append(args, district)
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	defer rows.Close()

	var reports []*models.AnalysisReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, &PersistenceError{Op: "scan", Err: err}
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReport(row rowScanner) (*models.AnalysisReport, error) {
	var report models.AnalysisReport
	var analysisType, location, stats, legality string
	var geojsonURL sql.NullString
	var startDate, endDate, createdAt time.Time

	err := row.Scan(&report.ID, &report.District, &analysisType,
		&startDate, &endDate, &report.Threshold,
		&location, &stats, &legality, &report.SiteCount,
		&geojsonURL, &createdAt)
	if err != nil {
		return nil, err
	}

	report.AnalysisType = models.AnalysisType(analysisType)
	report.StartDate = startDate
	report.EndDate = endDate
	report.GeoJSONURL = geojsonURL.String
	report.CreatedAt = createdAt

	if err := json.Unmarshal([]byte(location), &report.Location); err != nil {
		return nil, fmt.Errorf("decode location: %w", err)
	}
	if err := json.Unmarshal([]byte(stats), &report.Stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	if err := json.Unmarshal([]byte(legality), &report.Legality); err != nil {
		return nil, fmt.Errorf("decode legality: %w", err)
	}

	return &report, nil
}
