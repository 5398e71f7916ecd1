package database

import (
	"database/sql"
	"fmt"
)

// Analysis reports are append-only: a run writes one row and never updates
// it. The location, stats and legality columns hold the JSON documents the
// API returns, so a report replays without recomputation.
const schema = `
CREATE TABLE IF NOT EXISTS analysis_reports (
	id            TEXT PRIMARY KEY,
	district      TEXT NOT NULL,
	analysis_type TEXT NOT NULL,
	start_date    TIMESTAMP NOT NULL,
	end_date      TIMESTAMP NOT NULL,
	threshold     REAL NOT NULL,
	location      TEXT NOT NULL,
	stats         TEXT NOT NULL,
	legality      TEXT NOT NULL,
	site_count    INTEGER NOT NULL DEFAULT 0,
	geojson_url   TEXT,
	geojson       TEXT,
	created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_reports_district ON analysis_reports(district);
CREATE INDEX IF NOT EXISTS idx_reports_created ON analysis_reports(created_at);
`

func createSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
