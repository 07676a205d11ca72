// Package welcome fetches the greeting shown on the landing page from a
// remote endpoint once at startup.
package welcome

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vfit-app/vfit/internal/telemetry/metrics"
	"github.com/vfit-app/vfit/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultMessage = "Welcome to VFit"

	cacheSize = 1024 * 1024
	// the message is fetched once per process and never expires
	cacheExpireSeconds = 0
	maxMessageBytes    = 64 * 1024
)

var (
	messageCacheKey = []byte("welcome::message")

	ErrNoURL = errors.New("welcome url not configured")
)

type Fetcher struct {
	url            string
	httpClient     *http.Client
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

// NewHTTPClient returns a traced client with the given timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func NewFetcher(url string, httpClient *http.Client, metricsManager *metrics.Manager) *Fetcher {
	return &Fetcher{
		url:            url,
		httpClient:     httpClient,
		cache:          freecache.NewCache(cacheSize),
		metricsManager: metricsManager,
	}
}

// Message returns the fetched welcome message, or DefaultMessage if nothing
// has been fetched successfully yet.
func (f *Fetcher) Message() string {
	msg, err := f.cache.Get(messageCacheKey)
	if err != nil || len(msg) == 0 {
		return DefaultMessage
	}
	return string(msg)
}

// Fetch calls the welcome endpoint and caches the response body.
func (f *Fetcher) Fetch(ctx context.Context) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "welcome.fetch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if f.url == "" {
		return "", ErrNoURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMessageBytes))
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if err := f.cache.Set(messageCacheKey, body, cacheExpireSeconds); err != nil {
		log.Errorf("failed to cache welcome message: %s", err)
	}

	return string(body), nil
}

// FetchAsync runs a single Fetch in the background. Failures are logged and
// counted, and the default message stays in place. The returned channel is
// closed when the fetch is done.
func (f *Fetcher) FetchAsync(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		msg, err := f.Fetch(ctx)
		if err != nil {
			log.Errorf("error fetching welcome message from [%s]: %s", f.url, err)
			if f.metricsManager != nil {
				f.metricsManager.CounterWelcomeFetchFailed.Inc()
			}
			return
		}
		log.Debugf("welcome message fetched: %q", msg)
	}()
	return done
}
