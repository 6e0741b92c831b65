package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/vkorchagin/matchref/internal/analysis"
	"github.com/vkorchagin/matchref/internal/pkg/config"
)

// PostgresFactStorage persists analysis results so bulk runs are resumable
// and inspectable. One row per analyzed match id, updated on re-analysis.
type PostgresFactStorage struct {
	db *sql.DB
}

func NewPostgresFactStorage(cfg *config.PostgresConfig) (*PostgresFactStorage, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	s := &PostgresFactStorage{db: db}
	if err := s.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("PostgreSQL fact storage initialized")
	return s, nil
}

func (s *PostgresFactStorage) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS match_facts (
		match_id VARCHAR(100) PRIMARY KEY,
		payload JSONB NOT NULL,
		analyzed_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_match_facts_analyzed_at ON match_facts(analyzed_at);
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// StoreAnalysis upserts one analysis result keyed by match id.
func (s *PostgresFactStorage) StoreAnalysis(ctx context.Context, a *analysis.MatchAnalysis) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal analysis for match %s: %w", a.MatchID, err)
	}

	query := `
	INSERT INTO match_facts (match_id, payload, analyzed_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (match_id) DO UPDATE SET
		payload = EXCLUDED.payload,
		analyzed_at = EXCLUDED.analyzed_at
	`
	if _, err := s.db.ExecContext(ctx, query, a.MatchID, payload); err != nil {
		return fmt.Errorf("store analysis for match %s: %w", a.MatchID, err)
	}
	return nil
}

// LoadAnalysis reads a previously stored analysis, or (nil, nil) when the
// match id has never been analyzed.
func (s *PostgresFactStorage) LoadAnalysis(ctx context.Context, matchID string) (*analysis.MatchAnalysis, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM match_facts WHERE match_id = $1`, matchID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load analysis for match %s: %w", matchID, err)
	}

	var a analysis.MatchAnalysis
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("unmarshal analysis for match %s: %w", matchID, err)
	}
	return &a, nil
}

func (s *PostgresFactStorage) Close() error {
	return s.db.Close()
}
