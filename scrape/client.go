package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/time/rate"
)

const (
	DefaultUserAgent    = "Mozilla/5.0 (compatible; commander/1.0)"
	DefaultTimeout      = 30 * time.Second
	DefaultMaxPageBytes = 10 * 1024 * 1024 // 10MB
)

// ClientOptions configures an HTTPClient. Zero values fall back to defaults;
// RequestsPerSecond <= 0 disables rate limiting.
type ClientOptions struct {
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
	MaxPageBytes      int64
	Logger            hclog.Logger
}

// HTTPClient downloads pages over plain HTTP(S). It implements both
// Downloader and PageGetter and is safe for concurrent use.
type HTTPClient struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
	maxBytes  int64
	logger    hclog.Logger
}

// NewHTTPClient creates a pooled HTTP client
func NewHTTPClient(opts ClientOptions) *HTTPClient {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxPageBytes <= 0 {
		opts.MaxPageBytes = DefaultMaxPageBytes
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}

	client := cleanhttp.DefaultPooledClient()
	client.Timeout = opts.Timeout
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= 5 {
			return fmt.Errorf("too many redirects")
		}
		return nil
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &HTTPClient{
		client:    client,
		limiter:   limiter,
		userAgent: opts.UserAgent,
		maxBytes:  opts.MaxPageBytes,
		logger:    opts.Logger,
	}
}

// Download fetches the page body. A non-2xx status or an empty body yields
// ErrNoContent; transport failures are returned wrapped.
func (c *HTTPClient) Download(ctx context.Context, url string) (string, error) {
	status, body, err := c.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		c.logger.Debug("download returned non-success status", "url", url, "status", status)
		return "", ErrNoContent
	}
	if strings.TrimSpace(body) == "" {
		return "", ErrNoContent
	}
	return body, nil
}

// Get fetches the page body with the given timeout. Non-2xx responses are
// reported as *StatusError.
func (c *HTTPClient) Get(ctx context.Context, url string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	status, body, err := c.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", &StatusError{StatusCode: status, URL: url}
	}
	return body, nil
}

func (c *HTTPClient) fetch(ctx context.Context, url string) (int, string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return 0, "", fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("fetched page", "url", url, "status", resp.StatusCode, "bytes", len(body), "duration", time.Since(start))
	return resp.StatusCode, string(body), nil
}
