package config

import (
	"fmt"
	"time"
)

// FetcherConfig selects and tunes the page downloader
type FetcherConfig struct {
	Backend           string  `hcl:"backend,optional"` // "http" or "browser"
	UserAgent         string  `hcl:"user_agent,optional"`
	Timeout           int     `hcl:"timeout,optional"` // seconds
	RequestsPerSecond float64 `hcl:"requests_per_second,optional"`
	MaxPageBytes      int64   `hcl:"max_page_bytes,optional"`

	// Browser backend only
	BrowserType string `hcl:"browser_type,optional"` // "chromium", "firefox", "webkit"
	Headless    *bool  `hcl:"headless,optional"`
}

// Defaults fills in default values for unset fields
func (f *FetcherConfig) Defaults() {
	if f.Backend == "" {
		f.Backend = "http"
	}
	if f.Timeout == 0 {
		f.Timeout = 30
	}
	if f.MaxPageBytes == 0 {
		f.MaxPageBytes = 10 * 1024 * 1024
	}
	if f.BrowserType == "" {
		f.BrowserType = "chromium"
	}
	if f.Headless == nil {
		headless := true
		f.Headless = &headless
	}
}

// Validate checks backend and browser settings
func (f *FetcherConfig) Validate() error {
	switch f.Backend {
	case "http", "browser":
	default:
		return fmt.Errorf("invalid backend '%s': must be 'http' or 'browser'", f.Backend)
	}
	switch f.BrowserType {
	case "chromium", "firefox", "webkit":
	default:
		return fmt.Errorf("invalid browser_type '%s': must be 'chromium', 'firefox', or 'webkit'", f.BrowserType)
	}
	if f.Timeout < 1 {
		return fmt.Errorf("timeout must be positive, got %d", f.Timeout)
	}
	if f.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second cannot be negative")
	}
	if f.MaxPageBytes < 1 {
		return fmt.Errorf("max_page_bytes must be positive, got %d", f.MaxPageBytes)
	}
	return nil
}

func (f *FetcherConfig) TimeoutDuration() time.Duration {
	return time.Duration(f.Timeout) * time.Second
}

// IsHeadless reports the headless setting, defaulting to true
func (f *FetcherConfig) IsHeadless() bool {
	return f.Headless == nil || *f.Headless
}
