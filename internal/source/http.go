package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vkorchagin/matchref/internal/pkg/config"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"

// HTTPFetcher fetches pages over plain HTTP with browser-like headers; the
// site 404s requests that look headless.
type HTTPFetcher struct {
	baseURL    string
	userAgent  string
	headers    map[string]string
	httpClient *http.Client
}

func NewHTTPFetcher(cfg *config.SourceConfig) *HTTPFetcher {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &HTTPFetcher{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:  ua,
		headers:    cfg.Headers,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (f *HTTPFetcher) FetchHTML(ctx context.Context, path string) ([]byte, error) {
	url := f.baseURL + ensureLeadingSlash(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}

func ensureLeadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
