package analysis

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ResolveAll analyzes many independent match ids through a bounded worker
// pool. Each id needs its own page fetches and shares nothing with the
// others, so results are collected in completion order and joined by match
// id. A failed id produces an entry with Err set; it never blocks or cancels
// the other ids.
func (a *Analyzer) ResolveAll(ctx context.Context, requests []Request, workers int) map[string]*MatchAnalysis {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(requests) {
		workers = len(requests)
	}

	jobs := make(chan Request)
	results := make(chan *MatchAnalysis)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for req := range jobs {
				results <- a.analyzeOne(ctx, req)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, req := range requests {
			select {
			case jobs <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make(map[string]*MatchAnalysis, len(requests))
	for res := range results {
		out[res.MatchID] = res
	}
	return out
}

func (a *Analyzer) analyzeOne(ctx context.Context, req Request) *MatchAnalysis {
	start := time.Now()
	result, err := a.Analyze(ctx, req)
	if err != nil {
		slog.Warn("match analysis failed", "match_id", req.MatchID, "error", err)
		return &MatchAnalysis{MatchID: req.MatchID, Err: err.Error()}
	}
	slog.Debug("match analyzed", "match_id", req.MatchID, "duration", time.Since(start))
	return result
}
