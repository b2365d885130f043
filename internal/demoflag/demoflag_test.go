package demoflag

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jaemin/econquiz/internal/api"
)

type fakeSource struct {
	mu     sync.Mutex
	status api.DemoStatus
	err    error
	calls  int
}

func (f *fakeSource) GetDemoStatus(context.Context) (*api.DemoStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	s := f.status
	return &s, nil
}

func (f *fakeSource) set(status api.DemoStatus, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.err = err
}

func TestWatcherNotifiesOnChange(t *testing.T) {
	src := &fakeSource{}
	w := NewWatcher(src, 5*time.Millisecond)
	defer w.Close()

	ch, cancel := w.Subscribe()
	defer cancel()

	w.Start(context.Background())

	src.set(api.DemoStatus{Enabled: true, Message: "resets hourly"}, nil)

	select {
	case got := <-ch:
		if !got.Enabled || got.Message != "resets hourly" {
			t.Errorf("unexpected status %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no notification within a second")
	}

	if got := w.Status(); !got.Enabled {
		t.Errorf("Status() not updated: %+v", got)
	}
}

func TestWatcherKeepsLastStatusOnError(t *testing.T) {
	src := &fakeSource{status: api.DemoStatus{Enabled: true}}
	w := NewWatcher(src, 5*time.Millisecond)
	defer w.Close()

	ch, cancel := w.Subscribe()
	defer cancel()

	w.Start(context.Background())

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("initial status never observed")
	}

	src.set(api.DemoStatus{}, errors.New("backend down"))
	time.Sleep(30 * time.Millisecond)

	if got := w.Status(); !got.Enabled {
		t.Error("poll failure must not clear the last known flag")
	}
}

func TestWatcherCloseStopsPolling(t *testing.T) {
	src := &fakeSource{}
	w := NewWatcher(src, 2*time.Millisecond)
	w.Start(context.Background())

	time.Sleep(20 * time.Millisecond)
	w.Close()
	// Close twice is allowed.
	w.Close()

	time.Sleep(10 * time.Millisecond)
	src.mu.Lock()
	after := src.calls
	src.mu.Unlock()

	time.Sleep(30 * time.Millisecond)
	src.mu.Lock()
	later := src.calls
	src.mu.Unlock()

	if later != after {
		t.Errorf("polling continued after Close: %d → %d calls", after, later)
	}
}

func TestCloseReleasesSubscribers(t *testing.T) {
	src := &fakeSource{}
	w := NewWatcher(src, time.Hour)

	ch, cancel := w.Subscribe()
	w.Close()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected channel closed after Close")
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber still blocked after Close")
	}
	// Cancelling after Close must not panic.
	cancel()
}

func TestUnsubscribeReleasesChannel(t *testing.T) {
	src := &fakeSource{}
	w := NewWatcher(src, time.Hour)
	defer w.Close()

	ch, cancel := w.Subscribe()
	cancel()

	if _, ok := <-ch; ok {
		t.Error("expected channel closed after unsubscribe")
	}
	// Cancelling twice must not panic.
	cancel()
}
