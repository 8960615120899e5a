// Package section implements the remote-collection loading contract shared
// by the content-bearing page sections (menu, gallery, planning). One
// generic state machine replaces three near-identical per-section copies.
package section

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// State of a loader instance.
type State int

const (
	// StateSeeded means the loader was created with pre-supplied items and
	// will never fetch for the lifetime of this instance.
	StateSeeded State = iota
	// StateIdle means no fetch has been issued yet.
	StateIdle
	// StateLoading means exactly one fetch is in flight.
	StateLoading
	// StateLoaded means the last fetch settled successfully. An empty
	// collection is a valid loaded result, distinct from StateFailed.
	StateLoaded
	// StateFailed means the last fetch settled with an error. The only way
	// out is Retry.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateSeeded:
		return "seeded"
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrMessage is the generic user-facing failure text. The actual cause is
// logged for operators only.
const ErrMessage = "Une erreur est survenue, veuillez réessayer."

// FetchFunc retrieves the full collection for one section. The loader
// replaces its state wholesale with the returned slice.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Snapshot is an immutable view of a loader for rendering.
type Snapshot[T any] struct {
	State      State
	Items      []T
	ErrMessage string
}

// Empty reports whether the loader settled on an empty collection. It is
// false while loading and false on failure; the empty state gets its own
// "nothing available" rendering.
func (s Snapshot[T]) Empty() bool {
	return (s.State == StateLoaded || s.State == StateSeeded) && len(s.Items) == 0
}

// Loader owns the loading state of one section instance. At most one fetch
// is in flight at any time; a second Load or Retry while fetching is a no-op.
type Loader[T any] struct {
	name  string
	fetch FetchFunc[T]

	mu     sync.Mutex
	state  State
	items  []T
	errMsg string
}

// New creates a loader that will fetch on the first Load call.
func New[T any](name string, fetch FetchFunc[T]) *Loader[T] {
	return &Loader[T]{name: name, fetch: fetch, state: StateIdle}
}

// NewSeeded creates a loader pre-filled with items. It never fetches:
// Load and Retry are no-ops for its whole lifetime.
func NewSeeded[T any](name string, items []T) *Loader[T] {
	return &Loader[T]{name: name, state: StateSeeded, items: items}
}

// Load issues the fetch unless the loader is seeded, already loading, or
// already settled. It blocks until the fetch settles. Any fetch error is
// absorbed into StateFailed with a generic message; it never propagates.
func (l *Loader[T]) Load(ctx context.Context) {
	l.mu.Lock()
	if l.state != StateIdle {
		l.mu.Unlock()
		return
	}
	l.state = StateLoading
	l.mu.Unlock()

	l.run(ctx)
}

// Retry re-issues the fetch after a failure and clears the prior error. It
// is the only transition out of StateFailed; in every other state it is a
// no-op.
func (l *Loader[T]) Retry(ctx context.Context) {
	l.mu.Lock()
	if l.state != StateFailed {
		l.mu.Unlock()
		return
	}
	l.state = StateLoading
	l.errMsg = ""
	l.mu.Unlock()

	l.run(ctx)
}

func (l *Loader[T]) run(ctx context.Context) {
	items, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		zap.L().Warn("section fetch failed",
			zap.String("section", l.name),
			zap.Error(err),
		)
		l.state = StateFailed
		l.errMsg = ErrMessage
		return
	}
	l.state = StateLoaded
	l.items = items
	l.errMsg = ""
}

// Snapshot returns the current state for rendering.
func (l *Loader[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]T, len(l.items))
	copy(items, l.items)
	return Snapshot[T]{State: l.state, Items: items, ErrMessage: l.errMsg}
}

// State returns the current state.
func (l *Loader[T]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
