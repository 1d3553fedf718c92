// Package fetch retrieves the JSON resources rendered into pages.
//
// Every failure (transport error, non-2xx status, unreadable body, invalid
// JSON) is collapsed into a single "no data" outcome: it is logged and the
// caller receives ok == false. Callers never see an error value.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ziadkadry99/sitefill/internal/logger"
)

// CacheBustParam is the query parameter carrying the request timestamp.
const CacheBustParam = "_"

// DefaultTimeout bounds a single resource request.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a resource is read.
const maxBodyBytes = 8 << 20

// ErrUnexpectedStatus indicates a non-2xx response.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Fetcher issues cache-busting GET requests for JSON resources.
type Fetcher struct {
	client    *http.Client
	base      *url.URL
	log       *logger.Logger
	now       func() time.Time
	userAgent string
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithClient replaces the HTTP client.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithClock replaces the clock used for the cache-busting parameter.
func WithClock(now func() time.Time) Option {
	return func(f *Fetcher) { f.now = now }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithTimeout sets the client timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.client = &http.Client{Timeout: d} }
}

// New creates a Fetcher resolving resource names against base.
func New(base *url.URL, log *logger.Logger, opts ...Option) *Fetcher {
	if log == nil {
		log = logger.Discard()
	}
	f := &Fetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		base:      base,
		log:       log,
		now:       time.Now,
		userAgent: "sitefill",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithBase returns a copy of f resolving resources against base.
func (f *Fetcher) WithBase(base *url.URL) *Fetcher {
	clone := *f
	clone.base = base
	return &clone
}

// WithLogger returns a copy of f logging to log.
func (f *Fetcher) WithLogger(log *logger.Logger) *Fetcher {
	clone := *f
	clone.log = log
	return &clone
}

// Base returns the URL resources are resolved against.
func (f *Fetcher) Base() *url.URL {
	return f.base
}

// ResourceURL resolves name against the base and appends the cache-busting
// parameter.
func (f *Fetcher) ResourceURL(name string) (string, error) {
	ref, err := url.Parse(name)
	if err != nil {
		return "", fmt.Errorf("parsing resource %q: %w", name, err)
	}
	u := ref
	if f.base != nil {
		u = f.base.ResolveReference(ref)
	}
	q := u.Query()
	q.Set(CacheBustParam, strconv.FormatInt(f.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Load fetches the named resource and decodes it into a T. On any failure it
// logs the cause and returns the zero T and false.
func Load[T any](ctx context.Context, f *Fetcher, name string) (T, bool) {
	var v T
	if err := f.get(ctx, name, &v); err != nil {
		f.log.Error("resource unavailable", "resource", name, "error", err)
		var zero T
		return zero, false
	}
	return v, true
}

func (f *Fetcher) get(ctx context.Context, name string, dst any) error {
	target, err := f.ResourceURL(name)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fetch failed: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}

	f.log.Debug("resource fetched", "resource", name, "status", resp.StatusCode, "bytes", len(body), "duration", time.Since(start))
	return nil
}
