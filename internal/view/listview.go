package view

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned by Load when a later Load started before this one
// finished; its result was thrown away.
var ErrSuperseded = errors.New("view: superseded by a newer load")

type FetchFunc[T any] func(ctx context.Context, q Query) ([]T, error)

// State is a snapshot of a ListView for rendering.
type State[T any] struct {
	Items        []T
	Count        int
	Query        Query
	Loading      bool
	Loaded       bool
	Err          error
	Empty        bool
	EmptyMessage string
}

// ListView fetches one collection for the active Query. Each Load gets a
// sequence number and only the newest one may write the state.
type ListView[T any] struct {
	fetch        FetchFunc[T]
	emptyMessage func(Query) string

	mu      sync.Mutex
	seq     uint64
	query   Query
	items   []T
	loading bool
	loaded  bool
	err     error
}

func NewListView[T any](fetch FetchFunc[T], emptyMessage func(Query) string) *ListView[T] {
	return &ListView[T]{fetch: fetch, emptyMessage: emptyMessage}
}

// Load issues exactly one fetch for q. On failure the previous items stay.
func (v *ListView[T]) Load(ctx context.Context, q Query) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.query = q
	v.loading = true
	v.mu.Unlock()

	items, err := v.fetch(ctx, q)

	v.mu.Lock()
	defer v.mu.Unlock()

	if seq != v.seq {
		return ErrSuperseded
	}
	v.loading = false
	if err != nil {
		v.err = err
		return err
	}
	if items == nil {
		items = []T{}
	}
	v.items = items
	v.err = nil
	v.loaded = true
	return nil
}

func (v *ListView[T]) State() State[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	items := make([]T, len(v.items))
	copy(items, v.items)

	state := State[T]{
		Items:   items,
		Count:   len(items),
		Query:   v.query,
		Loading: v.loading,
		Loaded:  v.loaded,
		Err:     v.err,
	}
	state.Empty = v.loaded && !v.loading && len(items) == 0
	if state.Empty && v.emptyMessage != nil {
		state.EmptyMessage = v.emptyMessage(v.query)
	}
	return state
}
