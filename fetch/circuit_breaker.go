package fetch

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
)

// DefaultTripThreshold is the number of consecutive failures that opens a
// host's breaker.
const DefaultTripThreshold = 5

// CircuitBreakerFetcher wraps a PageFetcher with one circuit breaker per host.
type CircuitBreakerFetcher struct {
	fetcher   PageFetcher
	threshold int64
	breakers  map[string]*circuit.Breaker
	mu        sync.RWMutex
}

// NewCircuitBreakerFetcher wraps f with per-host breakers that trip after
// DefaultTripThreshold consecutive failures.
func NewCircuitBreakerFetcher(f PageFetcher) *CircuitBreakerFetcher {
	return NewCircuitBreakerFetcherWithThreshold(f, DefaultTripThreshold)
}

// NewCircuitBreakerFetcherWithThreshold wraps f with a custom trip threshold.
func NewCircuitBreakerFetcherWithThreshold(f PageFetcher, threshold int64) *CircuitBreakerFetcher {
	if threshold < 1 {
		threshold = DefaultTripThreshold
	}
	return &CircuitBreakerFetcher{
		fetcher:   f,
		threshold: threshold,
		breakers:  make(map[string]*circuit.Breaker),
	}
}

func (cbf *CircuitBreakerFetcher) breaker(host string) *circuit.Breaker {
	cbf.mu.RLock()
	b, ok := cbf.breakers[host]
	cbf.mu.RUnlock()
	if ok {
		return b
	}

	cbf.mu.Lock()
	defer cbf.mu.Unlock()

	if b, ok := cbf.breakers[host]; ok {
		return b
	}

	// Open breakers retry after 30s, doubling up to 5m.
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 30 * time.Second
	exp.MaxInterval = 5 * time.Minute
	exp.Multiplier = 2.0
	exp.Reset()

	b = circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    exp,
		ShouldTrip: circuit.ThresholdTripFunc(cbf.threshold),
	})
	cbf.breakers[host] = b
	return b
}

// Fetch runs the wrapped Fetch unless the host's breaker is open.
func (cbf *CircuitBreakerFetcher) Fetch(ctx context.Context, pageURL string) (*Response, error) {
	host := hostKey(pageURL)
	b := cbf.breaker(host)
	if !b.Ready() {
		return nil, fmt.Errorf("circuit breaker open for %s: %w", host, ErrUpstreamDown)
	}

	var resp *Response
	err := b.Call(func() error {
		var err error
		resp, err = cbf.fetcher.Fetch(ctx, pageURL)
		return err
	}, 0)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Head runs the wrapped Head unless the host's breaker is open.
func (cbf *CircuitBreakerFetcher) Head(ctx context.Context, headURL string) (size int64, contentType string, err error) {
	host := hostKey(headURL)
	b := cbf.breaker(host)
	if !b.Ready() {
		return 0, "", fmt.Errorf("circuit breaker open for %s: %w", host, ErrUpstreamDown)
	}

	err = b.Call(func() error {
		var err error
		size, contentType, err = cbf.fetcher.Head(ctx, headURL)
		return err
	}, 0)
	return size, contentType, err
}

// hostKey groups URLs by host. Unparseable URLs are grouped by their first
// 50 bytes.
func hostKey(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		if len(rawURL) > 50 {
			return rawURL[:50]
		}
		return rawURL
	}
	return parsed.Host
}

// States reports "open" or "closed" for every host seen so far.
func (cbf *CircuitBreakerFetcher) States() map[string]string {
	cbf.mu.RLock()
	defer cbf.mu.RUnlock()

	states := make(map[string]string, len(cbf.breakers))
	for host, b := range cbf.breakers {
		if b.Tripped() {
			states[host] = "open"
		} else {
			states[host] = "closed"
		}
	}
	return states
}
