package kvstore

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/angelmondragon/opusclip-demo/pkg/logger"
	"github.com/angelmondragon/opusclip-demo/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string            `json:"name"`
	Tags  []string          `json:"tags"`
	Attrs map[string]string `json:"attrs"`
	Score float64           `json:"score"`
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend(), nil, nil)

	value := sample{Name: "a", Tags: []string{"x", "y"}, Attrs: map[string]string{"k": "v"}, Score: 1.5}
	Set(ctx, s, "oc_sample_v1", value)

	got := Get(ctx, s, "oc_sample_v1", sample{})
	assert.Equal(t, value, got)
}

func TestGetMissingReturnsDefault(t *testing.T) {
	s := New(NewMemoryBackend(), nil, nil)
	def := sample{Name: "default"}
	assert.Equal(t, def, Get(context.Background(), s, "never-set", def))
}

func TestGetStoredNullReturnsZero(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, "oc_profile_v1", []byte("null")))
	s := New(backend, nil, nil)

	got := Get[*sample](ctx, s, "oc_profile_v1", &sample{Name: "fixture"})
	assert.Nil(t, got)
}

func TestGetCorruptReturnsDefaultAndLogs(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, "broken", []byte("{not json")))

	buf := &bytes.Buffer{}
	reg := prometheus.NewRegistry()
	s := New(backend, logger.New(logger.Options{ServiceName: "test", Output: buf}), metrics.NewStorageMetrics(reg))

	got := Get(ctx, s, "broken", []string{"fallback"})
	assert.Equal(t, []string{"fallback"}, got)
	assert.Contains(t, buf.String(), "kvstore.operation_failed")
	assert.Contains(t, buf.String(), `"storage_key":"broken"`)
}

func TestFailingBackendNeverPanicsOrReturnsErrors(t *testing.T) {
	ctx := context.Background()
	s := New(failingBackend{}, nil, metrics.NewStorageMetrics(prometheus.NewRegistry()))

	Set(ctx, s, "k", 1)
	assert.Equal(t, 7, Get(ctx, s, "k", 7))
	assert.False(t, s.Has(ctx, "k"))
	assert.Nil(t, s.Keys(ctx))
	s.Remove(ctx, "k")
	s.Clear(ctx)
	assert.Error(t, s.Ping(ctx))
}

func TestSetUnserializableIsSwallowed(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	s := New(backend, nil, nil)

	Set(ctx, s, "chan", make(chan int))
	_, found, _ := backend.Get(ctx, "chan")
	assert.False(t, found)
}

func TestClearRemovesEveryKey(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend(), nil, nil)
	Set(ctx, s, "b", 1)
	Set(ctx, s, "a", 2)

	assert.Equal(t, []string{"a", "b"}, s.Keys(ctx))
	assert.True(t, s.Has(ctx, "a"))

	s.Clear(ctx)
	assert.Empty(t, s.Keys(ctx))
}

func TestLastWriteWins(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	first := New(backend, nil, nil)
	second := New(backend, nil, nil)

	Set(ctx, first, "k", "from-first")
	Set(ctx, second, "k", "from-second")
	assert.Equal(t, "from-second", Get(ctx, first, "k", ""))
}

type failingBackend struct{}

var errUnavailable = errors.New("storage disabled")

func (failingBackend) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errUnavailable
}
func (failingBackend) Set(context.Context, string, []byte) error { return errUnavailable }
func (failingBackend) Delete(context.Context, ...string) error { return errUnavailable }
func (failingBackend) Keys(context.Context) ([]string, error) { return nil, errUnavailable }
func (failingBackend) Ping(context.Context) error { return errUnavailable }
func (failingBackend) Close() error { return nil }
