// Package appstate is the application state container: a projects list backed by
// the data access layer, the editor session and the onboarding answers. Changes
// are applied synchronously and published to subscribers as full snapshots; a
// whitelisted subset of preferences is mirrored to persistent storage.
package appstate

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/angelmondragon/opusclip-demo/internal/dataaccess"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/kvstore"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
	"github.com/jonboulle/clockwork"
)

const (
	// DefaultSaveDelay is how long SaveProject pretends to work.
	DefaultSaveDelay = 500 * time.Millisecond
	// DefaultSeekStep is the J/L shortcut offset.
	DefaultSeekStep = 10 * time.Second
)

// Params groups the store's dependencies.
type Params struct {
	Data    dataaccess.Service
	Storage *kvstore.Store
	Logger  *logger.Logger
	Clock   clockwork.Clock
	// SaveDelay and SeekStep override the defaults when positive.
	SaveDelay time.Duration
	SeekStep  time.Duration
}

// Listener receives the state after every change.
type Listener func(State)

// Store owns one State. Each instance is independent; nothing is global.
type Store struct {
	data      dataaccess.Service
	storage   *kvstore.Store
	logg      *logger.Logger
	clock     clockwork.Clock
	saveDelay time.Duration
	seekStep  time.Duration

	// writeMu orders whole updates (mutate, save, notify); mu guards state.
	// Listeners must not call back into the store synchronously.
	writeMu   sync.Mutex
	mu        sync.Mutex
	state     State
	persisted persistedState
	listeners map[int]Listener
	nextID    int
}

// New builds a store, restoring persisted preferences from storage.
func New(ctx context.Context, params Params) (*Store, error) {
	if params.Data == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "data access service is required")
	}
	if params.Storage == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "storage is required")
	}
	if params.Logger == nil {
		params.Logger = logger.Nop()
	}
	if params.Clock == nil {
		params.Clock = clockwork.NewRealClock()
	}
	if params.SaveDelay <= 0 {
		params.SaveDelay = DefaultSaveDelay
	}
	if params.SeekStep <= 0 {
		params.SeekStep = DefaultSeekStep
	}

	s := &Store{
		data:      params.Data,
		storage:   params.Storage,
		logg:      params.Logger,
		clock:     params.Clock,
		saveDelay: params.SaveDelay,
		seekStep:  params.SeekStep,
		listeners: map[int]Listener{},
	}
	s.state = restore(ctx, s.storage, InitialState())
	s.persisted = persistedFrom(s.state)
	return s, nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn for every subsequent change and returns a function
// that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Select subscribes to a projection of the state. fn runs only when the
// projected value differs from the previous one.
func Select[T any](s *Store, selector func(State) T, fn func(T)) (unsubscribe func()) {
	var mu sync.Mutex
	last := selector(s.Snapshot())
	return s.Subscribe(func(state State) {
		next := selector(state)
		mu.Lock()
		changed := !reflect.DeepEqual(last, next)
		if changed {
			last = next
		}
		mu.Unlock()
		if changed {
			fn(next)
		}
	})
}

// update applies mutate, mirrors the persisted subset when it changed, then
// notifies listeners. Updates run one at a time, so storage and listeners see
// changes in the order they were applied.
func (s *Store) update(ctx context.Context, mutate func(*State)) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	mutate(&s.state)
	snapshot := s.state.clone()

	persist := persistedFrom(snapshot)
	dirty := !reflect.DeepEqual(persist, s.persisted)
	if dirty {
		s.persisted = persist
	}

	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	if dirty {
		save(ctx, s.storage, persist)
	}
	for _, fn := range listeners {
		fn(snapshot.clone())
	}
}

// read runs fn against the live state under the lock.
func (s *Store) read(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}
