package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/vkorchagin/matchref/internal/pkg/config"
)

// FilterOptions are the client-side table toggles the site applies with
// JavaScript. When any is set, the page must be read through the browser
// fetcher; the plain HTTP response never reflects them.
type FilterOptions struct {
	SameLeagueOnly bool
	HomeAwayOnly   bool
}

// Checkbox selectors of the filter toggles. Indexes 1 and 2 are the home and
// away history tables respectively.
const (
	leagueToggleSel = "#checkboxleague%d"
	homeToggleSel   = "#checkboxhome%d"
)

// BrowserFetcher drives a headless browser, applies the requested filter
// toggles and returns the settled page HTML. It owns no session state
// between calls: each fetch runs in a fresh browser context.
type BrowserFetcher struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	waitAfter time.Duration
	filters   FilterOptions
}

func NewBrowserFetcher(src *config.SourceConfig, br *config.BrowserConfig, filters FilterOptions) *BrowserFetcher {
	ua := src.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &BrowserFetcher{
		baseURL:   strings.TrimSuffix(src.BaseURL, "/"),
		userAgent: ua,
		timeout:   br.Timeout,
		waitAfter: br.WaitAfter,
		filters:   filters,
	}
}

func (f *BrowserFetcher) FetchHTML(ctx context.Context, path string) ([]byte, error) {
	url := f.baseURL + ensureLeadingSlash(path)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent(f.userAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	actions := []chromedp.Action{
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	}
	actions = append(actions, f.filterActions()...)

	var html string
	actions = append(actions, chromedp.OuterHTML("html", &html))

	if err := chromedp.Run(browserCtx, actions...); err != nil {
		return nil, fmt.Errorf("browser fetch %s: %w", url, err)
	}
	return []byte(html), nil
}

// filterActions clicks the requested toggles on both history tables and
// waits for the page to re-render the rows.
func (f *BrowserFetcher) filterActions() []chromedp.Action {
	var actions []chromedp.Action
	for _, tableIdx := range []int{1, 2} {
		if f.filters.SameLeagueOnly {
			actions = append(actions,
				chromedp.Click(fmt.Sprintf(leagueToggleSel, tableIdx), chromedp.NodeVisible),
				chromedp.Sleep(f.waitAfter),
			)
		}
		if f.filters.HomeAwayOnly {
			actions = append(actions,
				chromedp.Click(fmt.Sprintf(homeToggleSel, tableIdx), chromedp.NodeVisible),
				chromedp.Sleep(f.waitAfter),
			)
		}
	}
	return actions
}
