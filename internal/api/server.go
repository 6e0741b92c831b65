// Package api exposes the resolution pipeline over a small JSON API for the
// surrounding application.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/vkorchagin/matchref/internal/analysis"
	"github.com/vkorchagin/matchref/internal/pkg/config"
	"github.com/vkorchagin/matchref/internal/pkg/storage"
)

type Server struct {
	analyzer *analysis.Analyzer
	facts    *storage.PostgresFactStorage // nil when the sink is disabled
}

func NewServer(analyzer *analysis.Analyzer, facts *storage.PostgresFactStorage) *Server {
	return &Server{analyzer: analyzer, facts: facts}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/ping", s.handlePing).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handlePing).Methods(http.MethodGet)
	r.HandleFunc("/analyze/{matchId}", s.handleAnalyze).Methods(http.MethodGet)
	return r
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze runs the full multi-hop analysis for one match id. The main
// match's team names come as query parameters because the analysis page
// itself does not restate them in a machine-readable way.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req := analysis.Request{
		MatchID:  mux.Vars(r)["matchId"],
		Home:     r.URL.Query().Get("home"),
		Away:     r.URL.Query().Get("away"),
		LeagueID: r.URL.Query().Get("league"),
	}
	if req.Home == "" || req.Away == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query parameters 'home' and 'away' are required"})
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		slog.Warn("analysis failed", "match_id", req.MatchID, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "source page unavailable"})
		return
	}

	if s.facts != nil {
		if err := s.facts.StoreAnalysis(r.Context(), result); err != nil {
			slog.Warn("fact sink write failed", "match_id", req.MatchID, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg *config.ServiceConfig, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("resolver service listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
