package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/kvstore"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T, max int) (*Log, *kvstore.Store, *clockwork.FakeClock) {
	t.Helper()
	storage := kvstore.New(kvstore.NewMemoryBackend(), nil, nil)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	log, err := New(Params{Storage: storage, Clock: clock, MaxEvents: max})
	require.NoError(t, err)
	return log, storage, clock
}

func TestLogEventPersists(t *testing.T) {
	log, storage, clock := newTestLog(t, 0)
	ctx := context.Background()

	event, err := log.PageView(ctx, "pricing")
	require.NoError(t, err)
	assert.Regexp(t, `^event-`, event.ID)
	assert.Equal(t, enums.AnalyticsEventPageView, event.Type)
	assert.Equal(t, clock.Now().UTC(), event.Timestamp)

	stored := kvstore.Get(ctx, storage, StorageKey, []Event{})
	require.Len(t, stored, 1)
	assert.Equal(t, event.ID, stored[0].ID)
	assert.Equal(t, "pricing", stored[0].Payload["page"])
}

func TestHelpersSetPayloadKeys(t *testing.T) {
	log, _, _ := newTestLog(t, 0)
	ctx := context.Background()

	_, err := log.CTAClick(ctx, "hero-get-started")
	require.NoError(t, err)
	_, err = log.Interaction(ctx, "toggle-captions")
	require.NoError(t, err)
	_, err = log.LogEvent(ctx, "custom_event", nil)
	require.NoError(t, err)

	events := log.Events(ctx)
	require.Len(t, events, 3)
	assert.Equal(t, "hero-get-started", events[0].Payload["cta"])
	assert.Equal(t, "toggle-captions", events[1].Payload["interaction"])
	assert.Empty(t, events[2].Payload)
}

func TestKeepsNewestEvents(t *testing.T) {
	log, _, _ := newTestLog(t, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := log.Interaction(ctx, fmt.Sprintf("n%d", i))
		require.NoError(t, err)
	}

	events := log.Events(ctx)
	require.Len(t, events, 3)
	assert.Equal(t, "n2", events[0].Payload["interaction"])
	assert.Equal(t, "n4", events[2].Payload["interaction"])
}

func TestDefaultCapIsOneHundred(t *testing.T) {
	log, _, _ := newTestLog(t, 0)
	ctx := context.Background()
	for i := 0; i < DefaultMaxEvents+5; i++ {
		_, err := log.PageView(ctx, "home")
		require.NoError(t, err)
	}
	assert.Len(t, log.Events(ctx), DefaultMaxEvents)
}

func TestClearAndInvalidType(t *testing.T) {
	log, _, _ := newTestLog(t, 0)
	ctx := context.Background()

	_, err := log.PageView(ctx, "home")
	require.NoError(t, err)
	log.Clear(ctx)
	assert.Empty(t, log.Events(ctx))

	_, err = log.LogEvent(ctx, "", nil)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}
