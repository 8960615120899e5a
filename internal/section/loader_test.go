package section

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func countingFetch(calls *int32, items []string, err error) FetchFunc[string] {
	return func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(calls, 1)
		if err != nil {
			return nil, err
		}
		return items, nil
	}
}

func TestSeededLoaderNeverFetches(t *testing.T) {
	var calls int32
	l := NewSeeded("menu", []string{"burger", "frites"})
	// seeded loaders ignore Load and Retry entirely
	l.Load(context.Background())
	l.Retry(context.Background())

	snap := l.Snapshot()
	if snap.State != StateSeeded {
		t.Fatalf("state = %s, want seeded", snap.State)
	}
	if len(snap.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(snap.Items))
	}
	if calls != 0 {
		t.Fatalf("fetch calls = %d, want 0", calls)
	}
}

func TestLoaderStartsIdle(t *testing.T) {
	var calls int32
	l := New("menu", countingFetch(&calls, nil, nil))
	if got := l.State(); got != StateIdle {
		t.Fatalf("state = %s, want idle", got)
	}
	if calls != 0 {
		t.Fatalf("fetch calls = %d, want 0 before Load", calls)
	}
}

func TestLoadSuccess(t *testing.T) {
	var calls int32
	l := New("menu", countingFetch(&calls, []string{"a", "b", "c"}, nil))
	l.Load(context.Background())

	snap := l.Snapshot()
	if snap.State != StateLoaded {
		t.Fatalf("state = %s, want loaded", snap.State)
	}
	if len(snap.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(snap.Items))
	}
	if snap.Empty() {
		t.Fatal("Empty() = true for a non-empty collection")
	}
	if calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", calls)
	}
}

func TestLoadEmptyIsNotAnError(t *testing.T) {
	var calls int32
	l := New("gallery", countingFetch(&calls, []string{}, nil))
	l.Load(context.Background())

	snap := l.Snapshot()
	if snap.State != StateLoaded {
		t.Fatalf("state = %s, want loaded", snap.State)
	}
	if !snap.Empty() {
		t.Fatal("Empty() = false for an empty loaded collection")
	}
	if snap.ErrMessage != "" {
		t.Fatalf("err message = %q, want empty", snap.ErrMessage)
	}
}

func TestLoadTwiceFetchesOnce(t *testing.T) {
	var calls int32
	l := New("menu", countingFetch(&calls, []string{"a"}, nil))
	l.Load(context.Background())
	l.Load(context.Background())
	if calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", calls)
	}
}

func TestLoadFailureThenRetry(t *testing.T) {
	var calls int32
	fail := errors.New("upstream down")
	var failing atomic.Bool
	failing.Store(true)
	l := New("planning", func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		if failing.Load() {
			return nil, fail
		}
		return []string{"mardi"}, nil
	})

	l.Load(context.Background())
	snap := l.Snapshot()
	if snap.State != StateFailed {
		t.Fatalf("state = %s, want failed", snap.State)
	}
	if snap.ErrMessage != ErrMessage {
		t.Fatalf("err message = %q, want %q", snap.ErrMessage, ErrMessage)
	}
	if snap.Empty() {
		t.Fatal("Empty() = true in failed state")
	}

	// retry re-issues exactly one fetch and clears the error
	failing.Store(false)
	l.Retry(context.Background())
	snap = l.Snapshot()
	if snap.State != StateLoaded {
		t.Fatalf("state after retry = %s, want loaded", snap.State)
	}
	if snap.ErrMessage != "" {
		t.Fatalf("err message after retry = %q, want empty", snap.ErrMessage)
	}
	if calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", calls)
	}
}

func TestRetryIsNoopUnlessFailed(t *testing.T) {
	var calls int32
	l := New("menu", countingFetch(&calls, []string{"a"}, nil))
	l.Retry(context.Background())
	if calls != 0 {
		t.Fatalf("fetch calls = %d, want 0 for retry before load", calls)
	}
	l.Load(context.Background())
	l.Retry(context.Background())
	if calls != 1 {
		t.Fatalf("fetch calls = %d, want 1 for retry after success", calls)
	}
}

func TestOnlyOneFetchInFlight(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	l := New("menu", func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []string{"a"}, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.Load(context.Background())
	}()

	for l.State() != StateLoading {
		runtime.Gosched()
	}
	// a second Load while one is in flight does nothing
	l.Load(context.Background())
	close(release)
	wg.Wait()

	if calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", calls)
	}
	if got := l.State(); got != StateLoaded {
		t.Fatalf("state = %s, want loaded", got)
	}
}
