// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package events

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pcdlite/pcdlite/internal/models"
)

// csvHeader is the column order of the CSV mirror. It matches the
// events table column order.
var csvHeader = []string{
	"event_id", "session_id", "event_type", "variant", "movie_id",
	"position", "filters", "timestamp", "request_id",
}

// Store persists events in DuckDB with an optional CSV append mirror.
// All methods are safe for concurrent use.
type Store struct {
	conn    *sql.DB
	csvPath string
	csvMu   sync.Mutex
	logger  zerolog.Logger
}

// Filter narrows an Events query. Zero values mean "no constraint".
type Filter struct {
	SessionID string
	Type      models.EventType
	Variant   models.Strategy
	Start     *time.Time
	End       *time.Time
}

// Open creates the event store at dbPath, initializing the schema and
// the CSV mirror. dbPath may be empty for an in-memory database. An
// empty csvPath disables the mirror.
func Open(dbPath, csvPath string, logger zerolog.Logger) (*Store, error) {
	if dbPath != "" {
		dir := filepath.Dir(dbPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("create database directory %s: %w", dir, err)
			}
		}
	}

	conn, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open event database: %w", err)
	}

	s := &Store{
		conn:    conn,
		csvPath: csvPath,
		logger:  logger.With().Str("component", "events").Logger(),
	}

	if err := s.initSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("initialize event schema: %w", err)
	}
	if err := s.initCSV(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("initialize event csv mirror: %w", err)
	}

	s.logger.Info().Str("db_path", dbPath).Str("csv_path", csvPath).Msg("event store opened")
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("close event database: %w", err)
	}
	return nil
}

func (s *Store) initSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS events (
			event_id   VARCHAR PRIMARY KEY,
			session_id VARCHAR NOT NULL,
			event_type VARCHAR NOT NULL,
			variant    VARCHAR NOT NULL,
			movie_id   INTEGER,
			position   INTEGER,
			filters    VARCHAR,
			timestamp  TIMESTAMP NOT NULL,
			request_id VARCHAR NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_session_id ON events(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_events_variant ON events(variant)`,
	}
	for _, stmt := range statements {
		if _, err := s.conn.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:30], err)
		}
	}
	return nil
}

// initCSV writes the header row if the mirror file does not exist yet.
func (s *Store) initCSV() error {
	if s.csvPath == "" {
		return nil
	}
	dir := filepath.Dir(s.csvPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create csv directory %s: %w", dir, err)
		}
	}
	if _, err := os.Stat(s.csvPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat csv mirror: %w", err)
	}

	f, err := os.OpenFile(s.csvPath, os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return fmt.Errorf("create csv mirror: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	w.Flush()
	return w.Error()
}

// LogImpression records that a ranked item was shown to a session. The
// parsed filters of the originating query are stored alongside.
func (s *Store) LogImpression(ctx context.Context, sessionID string, variant models.Strategy, movieID, position int, filters *models.ParsedFilters, requestID string) error {
	return s.logEvent(ctx, models.Event{
		EventID:   uuid.NewString(),
		SessionID: sessionID,
		Type:      models.EventImpression,
		Variant:   variant,
		MovieID:   movieID,
		Position:  position,
		Filters:   filters,
		Timestamp: time.Now(),
		RequestID: requestID,
	})
}

// LogClick records that a previously shown item was clicked.
func (s *Store) LogClick(ctx context.Context, sessionID string, variant models.Strategy, movieID, position int, requestID string) error {
	return s.logEvent(ctx, models.Event{
		EventID:   uuid.NewString(),
		SessionID: sessionID,
		Type:      models.EventClick,
		Variant:   variant,
		MovieID:   movieID,
		Position:  position,
		Timestamp: time.Now(),
		RequestID: requestID,
	})
}

func (s *Store) logEvent(ctx context.Context, ev models.Event) error {
	var filtersJSON sql.NullString
	if ev.Filters != nil {
		data, err := json.Marshal(ev.Filters)
		if err != nil {
			return fmt.Errorf("marshal event filters: %w", err)
		}
		filtersJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO events (event_id, session_id, event_type, variant, movie_id,
			position, filters, timestamp, request_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.EventID, ev.SessionID, string(ev.Type), string(ev.Variant),
		ev.MovieID, ev.Position, filtersJSON, ev.Timestamp, ev.RequestID)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	if err := s.appendCSV(ev, filtersJSON); err != nil {
		// The database row is the source of truth; a mirror failure is
		// logged but does not fail the request.
		s.logger.Warn().Err(err).Str("event_id", ev.EventID).Msg("csv mirror append failed")
	}
	return nil
}

func (s *Store) appendCSV(ev models.Event, filtersJSON sql.NullString) error {
	if s.csvPath == "" {
		return nil
	}
	s.csvMu.Lock()
	defer s.csvMu.Unlock()

	f, err := os.OpenFile(s.csvPath, os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return fmt.Errorf("open csv mirror: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	record := []string{
		ev.EventID,
		ev.SessionID,
		string(ev.Type),
		string(ev.Variant),
		strconv.Itoa(ev.MovieID),
		strconv.Itoa(ev.Position),
		filtersJSON.String,
		ev.Timestamp.Format(time.RFC3339Nano),
		ev.RequestID,
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("write csv record: %w", err)
	}
	w.Flush()
	return w.Error()
}

// Events returns events matching the filter, newest first.
func (s *Store) Events(ctx context.Context, filter Filter) ([]models.Event, error) {
	query := `SELECT event_id, session_id, event_type, variant, movie_id,
		position, filters, timestamp, request_id FROM events WHERE 1=1`
	args := []interface{}{}

	if filter.SessionID != "" {
		query += " AND session_id = ?"
		args = append(args, filter.SessionID)
	}
	if filter.Type != "" {
		query += " AND event_type = ?"
		args = append(args, string(filter.Type))
	}
	if filter.Variant != "" {
		query += " AND variant = ?"
		args = append(args, string(filter.Variant))
	}
	if filter.Start != nil {
		query += " AND timestamp >= ?"
		args = append(args, *filter.Start)
	}
	if filter.End != nil {
		query += " AND timestamp <= ?"
		args = append(args, *filter.End)
	}
	query += " ORDER BY timestamp DESC"

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Event
	for rows.Next() {
		var (
			ev          models.Event
			evType      string
			variant     string
			filtersJSON sql.NullString
		)
		if err := rows.Scan(&ev.EventID, &ev.SessionID, &evType, &variant,
			&ev.MovieID, &ev.Position, &filtersJSON, &ev.Timestamp, &ev.RequestID); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Type = models.EventType(evType)
		ev.Variant = models.Strategy(variant)
		if filtersJSON.Valid && filtersJSON.String != "" {
			var f models.ParsedFilters
			if err := json.Unmarshal([]byte(filtersJSON.String), &f); err != nil {
				return nil, fmt.Errorf("unmarshal event filters: %w", err)
			}
			ev.Filters = &f
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}

// SessionEvents returns every event for one session, newest first.
func (s *Store) SessionEvents(ctx context.Context, sessionID string) ([]models.Event, error) {
	return s.Events(ctx, Filter{SessionID: sessionID})
}

// PurgeOlderThan deletes events older than the given number of days and
// reports how many rows were removed. The CSV mirror is untouched.
func (s *Store) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	res, err := s.conn.ExecContext(ctx, "DELETE FROM events WHERE timestamp < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge events: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge events rows affected: %w", err)
	}
	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Int("days", days).Msg("purged old events")
	}
	return deleted, nil
}
