// Package network tracks device reachability of the remote authority.
package network

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Prober answers a single reachability question. An error or
// indeterminate reading must be reported as offline.
type Prober interface {
	Probe(ctx context.Context) bool
}

// HTTPProber probes with a HEAD request. Any response counts as online;
// transport errors and timeouts count as offline.
type HTTPProber struct {
	url    string
	client *http.Client
}

func NewHTTPProber(url string, timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProber) Probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

// Monitor samples a Prober on a fixed interval and notifies subscribers
// exactly once per observed transition.
type Monitor struct {
	prober   Prober
	interval time.Duration
	log      *zap.Logger

	// serializes Refresh end to end so transition callbacks cannot
	// interleave out of order when a tick races a manual refresh
	refreshMu sync.Mutex

	mu        sync.Mutex
	online    bool
	sampled   bool
	listeners []func(online bool)
}

func NewMonitor(prober Prober, interval time.Duration, log *zap.Logger) *Monitor {
	return &Monitor{
		prober:   prober,
		interval: interval,
		log:      log,
	}
}

// Start samples immediately, then on every tick until ctx is done.
func (m *Monitor) Start(ctx context.Context) {
	go func() {
		m.Refresh(ctx)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Refresh(ctx)
			}
		}
	}()
}

// Refresh takes a sample right now. Hook it up to OS connectivity-change
// notifications where the platform provides them.
func (m *Monitor) Refresh(ctx context.Context) {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	online := m.prober.Probe(ctx)

	m.mu.Lock()
	// the pre-sample state counts as offline, so a first offline sample
	// is not a transition
	wasOnline := m.sampled && m.online
	changed := online != wasOnline
	m.sampled = true
	m.online = online
	listeners := make([]func(bool), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	if !changed {
		return
	}

	m.log.Info("connectivity changed", zap.Bool("online", online))
	for _, fn := range listeners {
		fn(online)
	}
}

// CurrentlyOnline returns the last-known sample without blocking.
// Before the first sample it reports offline.
func (m *Monitor) CurrentlyOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sampled && m.online
}

func (m *Monitor) Subscribe(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}
