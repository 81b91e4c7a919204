// Package kvstore is the persistent key-value layer every other component reads
// and writes through. Values are JSON documents. Reads and writes never fail from
// the caller's point of view: storage errors are logged, counted and replaced by
// the caller's default.
package kvstore

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"

	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
	"github.com/angelmondragon/opusclip-demo/pkg/metrics"
	"go.uber.org/multierr"
)

// Backend is raw byte storage. Implementations need not coordinate concurrent
// writers across processes: the last write wins.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Keys(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}

// Store adds JSON encoding and error containment on top of a Backend.
type Store struct {
	backend Backend
	logg    *logger.Logger
	metrics *metrics.StorageMetrics
}

func New(backend Backend, logg *logger.Logger, m *metrics.StorageMetrics) *Store {
	if logg == nil {
		logg = logger.Nop()
	}
	return &Store{backend: backend, logg: logg, metrics: m}
}

var jsonNull = []byte("null")

// Get decodes the value stored under key. A missing key, an unreadable backend or
// a malformed document all yield def. A stored JSON null yields the zero value of T.
func Get[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, found, err := s.backend.Get(ctx, key)
	if err != nil {
		s.fail(ctx, "get", key, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "read failed"))
		return def
	}
	if !found || len(raw) == 0 {
		return def
	}
	var out T
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		s.fail(ctx, "decode", key, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "stored value is corrupt"))
		return def
	}
	return out
}

// Set encodes value and writes it under key. Failures are logged and dropped.
func Set[T any](ctx context.Context, s *Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.fail(ctx, "encode", key, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "value is not serializable"))
		return
	}
	if err := s.backend.Set(ctx, key, raw); err != nil {
		s.fail(ctx, "set", key, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "write failed"))
	}
}

// Has reports whether key holds any value.
func (s *Store) Has(ctx context.Context, key string) bool {
	_, found, err := s.backend.Get(ctx, key)
	if err != nil {
		s.fail(ctx, "get", key, err)
		return false
	}
	return found
}

// Remove deletes the keys. Failures are logged and dropped.
func (s *Store) Remove(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := s.backend.Delete(ctx, keys...); err != nil {
		s.fail(ctx, "delete", "", pkgerrors.Wrap(pkgerrors.CodeStorage, err, "delete failed").WithDetails(keys))
	}
}

// Keys lists stored keys in lexical order; an unreadable backend lists nothing.
func (s *Store) Keys(ctx context.Context) []string {
	keys, err := s.backend.Keys(ctx)
	if err != nil {
		s.fail(ctx, "keys", "", err)
		return nil
	}
	sort.Strings(keys)
	return keys
}

// Clear deletes every stored key.
func (s *Store) Clear(ctx context.Context) {
	s.Remove(ctx, s.Keys(ctx)...)
}

// Ping reports backend health. Unlike reads and writes, it surfaces the error.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.backend.Ping(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "storage backend unreachable")
	}
	return nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) fail(ctx context.Context, op, key string, err error) {
	s.metrics.IncFailure(op)
	if key != "" {
		ctx = s.logg.WithStorageKey(ctx, key)
	}
	ctx = s.logg.WithField(ctx, "op", op)
	s.logg.WarnErr(ctx, "kvstore.operation_failed", err)
}

// closeAll closes every closer and joins their errors.
func closeAll(closers ...func() error) error {
	var err error
	for _, c := range closers {
		if c != nil {
			err = multierr.Append(err, c())
		}
	}
	return err
}
