package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeProber replays a scripted sequence of samples.
type fakeProber struct {
	samples []bool
	next    int
}

func (p *fakeProber) Probe(_ context.Context) bool {
	if p.next >= len(p.samples) {
		return p.samples[len(p.samples)-1]
	}
	sample := p.samples[p.next]
	p.next++
	return sample
}

func TestMonitor_notifiesOncePerTransition(t *testing.T) {
	t.Parallel()

	prober := &fakeProber{samples: []bool{false, false, true, true, false, true}}
	m := NewMonitor(prober, time.Second, zap.NewNop())

	var notified []bool
	m.Subscribe(func(online bool) {
		notified = append(notified, online)
	})

	ctx := context.Background()
	for range prober.samples {
		m.Refresh(ctx)
	}

	// the initial offline samples are not transitions
	assert.Equal(t, []bool{true, false, true}, notified)
}

func TestMonitor_CurrentlyOnline(t *testing.T) {
	t.Parallel()

	prober := &fakeProber{samples: []bool{true, false}}
	m := NewMonitor(prober, time.Second, zap.NewNop())
	ctx := context.Background()

	// before the first sample the monitor reports offline
	assert.False(t, m.CurrentlyOnline())

	m.Refresh(ctx)
	assert.True(t, m.CurrentlyOnline())

	m.Refresh(ctx)
	assert.False(t, m.CurrentlyOnline())
}

// alternatingProber flips between online and offline on every probe,
// safely under concurrent callers.
type alternatingProber struct {
	calls atomic.Int64
}

func (p *alternatingProber) Probe(_ context.Context) bool {
	return p.calls.Add(1)%2 == 1
}

func TestMonitor_concurrentRefreshKeepsTransitionOrder(t *testing.T) {
	t.Parallel()

	m := NewMonitor(&alternatingProber{}, time.Second, zap.NewNop())

	var mu sync.Mutex
	var notified []bool
	m.Subscribe(func(online bool) {
		mu.Lock()
		notified = append(notified, online)
		mu.Unlock()
	})

	const refreshes = 16
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < refreshes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Refresh(ctx)
		}()
	}
	wg.Wait()

	// every sample flips the state, so every refresh is a transition and
	// the callbacks must strictly alternate starting from online
	require.Len(t, notified, refreshes)
	for i, online := range notified {
		assert.Equal(t, i%2 == 0, online, "notification %d", i)
	}
}

func TestMonitor_multipleSubscribers(t *testing.T) {
	t.Parallel()

	prober := &fakeProber{samples: []bool{true}}
	m := NewMonitor(prober, time.Second, zap.NewNop())

	var first, second int
	m.Subscribe(func(bool) { first++ })
	m.Subscribe(func(bool) { second++ })

	m.Refresh(context.Background())

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestHTTPProber_Probe(t *testing.T) {
	t.Parallel()

	t.Run("any response counts as online", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		p := NewHTTPProber(srv.URL, time.Second)
		assert.True(t, p.Probe(context.Background()))
	})

	t.Run("transport error counts as offline", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		p := NewHTTPProber(srv.URL, time.Second)
		assert.False(t, p.Probe(context.Background()))
	})

	t.Run("uses HEAD", func(t *testing.T) {
		t.Parallel()

		var method string
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			method = r.Method
		}))
		defer srv.Close()

		p := NewHTTPProber(srv.URL, time.Second)
		require.True(t, p.Probe(context.Background()))
		assert.Equal(t, http.MethodHead, method)
	})
}
