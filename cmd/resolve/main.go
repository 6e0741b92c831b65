package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vkorchagin/matchref/internal/analysis"
	"github.com/vkorchagin/matchref/internal/pkg/config"
	"github.com/vkorchagin/matchref/internal/pkg/logging"
	"github.com/vkorchagin/matchref/internal/pkg/storage"
	"github.com/vkorchagin/matchref/internal/source"
)

const defaultConfigPath = "configs/production.yaml"

// Bulk resolution of independent match ids. Each request is
// "id:home:away[:league]", either comma separated on the command line or one
// per line in a file.
func main() {
	if err := run(); err != nil {
		slog.Error("Resolve failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", defaultConfigPath, "path to config file")
	matches := flag.String("matches", "", "comma separated id:home:away[:league] entries")
	inPath := flag.String("in", "", "file with one id:home:away[:league] entry per line")
	outPath := flag.String("out", "", "write results JSON to this file instead of stdout")
	workers := flag.Int("workers", 0, "override resolver.workers from config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.SetupLogger(&cfg.Logging, "resolve")

	requests, err := collectRequests(*matches, *inPath)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		return fmt.Errorf("no match requests given: use -matches or -in")
	}

	src, err := source.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to build page source: %w", err)
	}
	analyzer := analysis.NewAnalyzer(src, cfg)

	poolSize := cfg.Resolver.Workers
	if *workers > 0 {
		poolSize = *workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("Resolving matches", "count", len(requests), "workers", poolSize)
	results := analyzer.ResolveAll(ctx, requests, poolSize)

	if cfg.Postgres.DSN != "" {
		if err := storeResults(ctx, cfg, results); err != nil {
			return err
		}
	}

	return writeResults(results, *outPath)
}

func collectRequests(matches, inPath string) ([]analysis.Request, error) {
	var requests []analysis.Request
	for _, entry := range strings.Split(matches, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		req, err := parseEntry(entry)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			req, err := parseEntry(line)
			if err != nil {
				return nil, err
			}
			requests = append(requests, req)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
	}

	return requests, nil
}

func parseEntry(entry string) (analysis.Request, error) {
	parts := strings.Split(entry, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return analysis.Request{}, fmt.Errorf("bad match entry %q, want id:home:away[:league]", entry)
	}
	req := analysis.Request{MatchID: parts[0], Home: parts[1], Away: parts[2]}
	if len(parts) == 4 {
		req.LeagueID = parts[3]
	}
	return req, nil
}

func storeResults(ctx context.Context, cfg *config.Config, results map[string]*analysis.MatchAnalysis) error {
	facts, err := storage.NewPostgresFactStorage(&cfg.Postgres)
	if err != nil {
		return fmt.Errorf("failed to init fact storage: %w", err)
	}
	defer facts.Close()

	for id, res := range results {
		if res.Err != "" {
			continue
		}
		if err := facts.StoreAnalysis(ctx, res); err != nil {
			slog.Warn("fact sink write failed", "match_id", id, "error", err)
		}
	}
	return nil
}

func writeResults(results map[string]*analysis.MatchAnalysis, outPath string) error {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if outPath == "" {
		fmt.Println(string(payload))
		return nil
	}
	if err := os.WriteFile(outPath, payload, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	slog.Info("Results written", "path", outPath, "matches", len(results))
	return nil
}
