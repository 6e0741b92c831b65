// Package source supplies parsed analysis-page documents to the resolution
// core. The core never fetches anything itself: it receives a PageSource and
// treats a fetch failure as "no document".
//
// Two fetchers exist: a plain HTTP client for static tables, and a headless
// browser for tables whose contents depend on client-side filter toggles.
// Either can be wrapped in a TTL cache; the core cannot tell the difference.
package source

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/vkorchagin/matchref/internal/pkg/config"
)

// PageSource yields a parsed document for a site-relative path.
type PageSource interface {
	Fetch(ctx context.Context, path string) (*goquery.Document, error)
}

// HTMLFetcher is the raw-bytes layer underneath a PageSource. The cache
// operates at this level so both the HTTP and browser fetchers share it.
type HTMLFetcher interface {
	FetchHTML(ctx context.Context, path string) ([]byte, error)
}

type documentSource struct {
	fetcher HTMLFetcher
}

// NewDocumentSource adapts an HTMLFetcher into a PageSource.
func NewDocumentSource(f HTMLFetcher) PageSource {
	return &documentSource{fetcher: f}
}

func (s *documentSource) Fetch(ctx context.Context, path string) (*goquery.Document, error) {
	body, err := s.fetcher.FetchHTML(ctx, path)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}
	return doc, nil
}

// FromConfig wires the configured fetcher stack: HTTP or browser fetcher,
// optionally behind a TTL cache (in-memory, or Redis when an address is set).
func FromConfig(cfg *config.Config) (PageSource, error) {
	var fetcher HTMLFetcher
	if cfg.Browser.Enabled {
		fetcher = NewBrowserFetcher(&cfg.Source, &cfg.Browser, FilterOptions{})
	} else {
		fetcher = NewHTTPFetcher(&cfg.Source)
	}

	if cfg.Cache.Enabled {
		store, err := newStore(&cfg.Cache)
		if err != nil {
			return nil, err
		}
		fetcher = NewCachedFetcher(fetcher, store, cfg.Cache.TTL)
	}

	return NewDocumentSource(fetcher), nil
}

func newStore(cfg *config.CacheConfig) (Store, error) {
	if cfg.RedisAddr != "" {
		return NewRedisStore(cfg.RedisAddr, cfg.RedisDB)
	}
	return NewMemoryStore(), nil
}
