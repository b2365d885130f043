// Package demoflag tracks the backend's demo-mode flag with a fixed
// polling interval. The watcher is injectable (no package-level
// singleton) and releases its ticker on Close.
package demoflag

import (
	"context"
	"sync"
	"time"

	"github.com/jaemin/econquiz/internal/api"
)

// Source fetches the current demo-mode status.
type Source interface {
	GetDemoStatus(ctx context.Context) (*api.DemoStatus, error)
}

// Watcher polls the demo-mode flag and notifies subscribers on change.
type Watcher struct {
	source   Source
	interval time.Duration

	mu      sync.Mutex
	status  api.DemoStatus
	subs    map[int]chan api.DemoStatus
	nextSub int

	done chan struct{}
	once sync.Once
}

// NewWatcher creates a Watcher polling source at the given interval.
// The returned watcher is idle until Start.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	return &Watcher{
		source:   source,
		interval: interval,
		subs:     make(map[int]chan api.DemoStatus),
		done:     make(chan struct{}),
	}
}

// Start begins polling. It refreshes once immediately, then on every
// tick until Close.
func (w *Watcher) Start(ctx context.Context) {
	go func() {
		w.refresh(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.refresh(ctx)
			case <-w.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Status returns the last observed flag.
func (w *Watcher) Status() api.DemoStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Subscribe registers for change notifications. The returned channel
// receives the new status whenever the flag flips; cancel releases it.
func (w *Watcher) Subscribe() (<-chan api.DemoStatus, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextSub
	w.nextSub++
	ch := make(chan api.DemoStatus, 1)
	w.subs[id] = ch

	cancel := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if sub, ok := w.subs[id]; ok {
			delete(w.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Close stops the polling goroutine and closes every subscriber
// channel, unblocking any receiver still waiting on one. Safe to call
// more than once.
func (w *Watcher) Close() {
	w.once.Do(func() {
		close(w.done)

		w.mu.Lock()
		defer w.mu.Unlock()
		for id, ch := range w.subs {
			delete(w.subs, id)
			close(ch)
		}
	})
}

func (w *Watcher) refresh(ctx context.Context) {
	status, err := w.source.GetDemoStatus(ctx)
	if err != nil {
		// Polling failures are transient; keep the last known flag.
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	changed := *status != w.status
	w.status = *status
	if !changed {
		return
	}
	// Sends are non-blocking (buffered chan, default drop), so holding
	// the lock here keeps Close from closing a channel mid-send.
	for _, ch := range w.subs {
		select {
		case ch <- *status:
		default:
		}
	}
}
