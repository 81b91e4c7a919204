package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/angelmondragon/opusclip-demo/pkg/config"
	"github.com/redis/go-redis/v9"
)

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := newClient(mock, nil, "")

	if err := client.Set(ctx, "oc_profile_v1", `{"id":"user-1"}`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, ok := mock.data["oc:kv:oc_profile_v1"]; !ok {
		t.Fatalf("expected namespaced key, got %v", mock.data)
	}

	value, found, err := client.Get(ctx, "oc_profile_v1")
	if err != nil || !found {
		t.Fatalf("get failed found=%v err=%v", found, err)
	}
	if value != `{"id":"user-1"}` {
		t.Fatalf("unexpected value %q", value)
	}

	if err := client.Del(ctx, "oc_profile_v1"); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	_, found, err = client.Get(ctx, "oc_profile_v1")
	if err != nil || found {
		t.Fatalf("expected missing key after delete, found=%v err=%v", found, err)
	}
	keys, err := client.Keys(ctx)
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected index to be empty, got %v", keys)
	}
}

func TestKeysListsIndex(t *testing.T) {
	ctx := context.Background()
	client := newClient(newMockCmdable(), nil, "demo")

	for _, key := range []string{"b", "a", "b"} {
		if err := client.Set(ctx, key, "1"); err != nil {
			t.Fatalf("set failed: %v", err)
		}
	}
	keys, err := client.Keys(ctx)
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	sort.Strings(keys)
	if fmt.Sprint(keys) != "[a b]" {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestGetPropagatesErrors(t *testing.T) {
	mock := newMockCmdable()
	mock.getErr = errors.New("connection reset")
	client := newClient(mock, nil, "")

	if _, _, err := client.Get(context.Background(), "x"); err == nil {
		t.Fatal("expected error")
	}
}

func TestUninitializedClient(t *testing.T) {
	client := &Client{}
	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected error from uninitialized client")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close should be a no-op, got %v", err)
	}
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.ValueKey("oc_clips_v1"); got != "oc:kv:oc_clips_v1" {
		t.Fatalf("unexpected value key %s", got)
	}
	if got := client.IndexKey(); got != "oc:index" {
		t.Fatalf("unexpected index key %s", got)
	}
	if got := client.ValueKey(" "); got != "oc:kv" {
		t.Fatalf("blank parts should be skipped, got %s", got)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error without url or address")
	}
	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://localhost:6379/2", PoolSize: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.DB != 2 || opts.PoolSize != 7 {
		t.Fatalf("unexpected options db=%d pool=%d", opts.DB, opts.PoolSize)
	}
}

type mockCmdable struct {
	data   map[string]string
	sets   map[string]map[string]struct{}
	getErr error
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{
		data: make(map[string]string),
		sets: make(map[string]map[string]struct{}),
	}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.getErr != nil {
		return redis.NewStringResult("", m.getErr)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func (m *mockCmdable) SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd {
	set, ok := m.sets[key]
	if !ok {
		set = make(map[string]struct{})
		m.sets[key] = set
	}
	for _, member := range members {
		set[fmt.Sprint(member)] = struct{}{}
	}
	return redis.NewIntResult(int64(len(members)), nil)
}

func (m *mockCmdable) SRem(ctx context.Context, key string, members ...any) *redis.IntCmd {
	for _, member := range members {
		delete(m.sets[key], fmt.Sprint(member))
	}
	return redis.NewIntResult(int64(len(members)), nil)
}

func (m *mockCmdable) SMembers(ctx context.Context, key string) *redis.StringSliceCmd {
	out := make([]string, 0, len(m.sets[key]))
	for member := range m.sets[key] {
		out = append(out, member)
	}
	return redis.NewStringSliceResult(out, nil)
}
