package scrape

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/playwright-community/playwright-go"
)

// BrowserOptions configures a BrowserDownloader
type BrowserOptions struct {
	BrowserType string // "chromium", "firefox", "webkit"
	Headless    bool
	Timeout     time.Duration
	Logger      hclog.Logger
}

// Validate checks the browser type
func (o BrowserOptions) Validate() error {
	switch o.BrowserType {
	case "", "chromium", "firefox", "webkit":
		return nil
	default:
		return fmt.Errorf("invalid browser_type '%s': must be 'chromium', 'firefox', or 'webkit'", o.BrowserType)
	}
}

// BrowserDownloader renders pages in a headless browser through playwright,
// for sites that only produce their content with JavaScript. The browser is
// started on first use and shared by all downloads until Close.
type BrowserDownloader struct {
	mu      sync.Mutex
	opts    BrowserOptions
	pw      *playwright.Playwright
	browser playwright.Browser
}

// NewBrowserDownloader creates a downloader; no browser is launched yet.
func NewBrowserDownloader(opts BrowserOptions) (*BrowserDownloader, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.BrowserType == "" {
		opts.BrowserType = "chromium"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	return &BrowserDownloader{opts: opts}, nil
}

// ensureBrowser makes sure playwright and the browser are running.
// Caller must hold b.mu.
func (b *BrowserDownloader) ensureBrowser() error {
	if b.browser != nil {
		return nil
	}

	if b.pw == nil {
		pw, err := playwright.Run()
		if err != nil {
			return fmt.Errorf("could not start playwright: %w", err)
		}
		b.pw = pw
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(b.opts.Headless),
	}

	var browser playwright.Browser
	var err error
	switch b.opts.BrowserType {
	case "firefox":
		browser, err = b.pw.Firefox.Launch(launchOpts)
	case "webkit":
		browser, err = b.pw.WebKit.Launch(launchOpts)
	default:
		browser, err = b.pw.Chromium.Launch(launchOpts)
	}
	if err != nil {
		return fmt.Errorf("could not launch browser: %w", err)
	}

	b.opts.Logger.Debug("browser launched", "browser", b.opts.BrowserType, "headless", b.opts.Headless)
	b.browser = browser
	return nil
}

// Download navigates a fresh page to url and returns the rendered HTML.
func (b *BrowserDownloader) Download(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b.mu.Lock()
	if err := b.ensureBrowser(); err != nil {
		b.mu.Unlock()
		return "", err
	}
	browser := b.browser
	b.mu.Unlock()

	page, err := browser.NewPage()
	if err != nil {
		return "", fmt.Errorf("could not create page: %w", err)
	}
	defer page.Close()

	resp, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(float64(b.opts.Timeout.Milliseconds())),
	})
	if err != nil {
		return "", fmt.Errorf("navigation failed: %w", err)
	}
	if resp != nil && !resp.Ok() {
		b.opts.Logger.Debug("browser navigation returned non-success status", "url", url, "status", resp.Status())
		return "", ErrNoContent
	}

	content, err := page.Content()
	if err != nil {
		return "", fmt.Errorf("could not read page content: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		return "", ErrNoContent
	}
	return content, nil
}

// Close shuts down the browser and the playwright driver.
func (b *BrowserDownloader) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var firstErr error
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			firstErr = err
		}
		b.browser = nil
	}
	if b.pw != nil {
		if err := b.pw.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
		b.pw = nil
	}
	return firstErr
}
