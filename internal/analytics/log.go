// Package analytics keeps a capped, append-only log of client and service
// events in persistent storage. Only the newest events are retained.
package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/ids"
	"github.com/angelmondragon/opusclip-demo/pkg/kvstore"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
	"github.com/jonboulle/clockwork"
)

const (
	// StorageKey holds the event list.
	StorageKey = "oc_analytics_events_v1"
	// DefaultMaxEvents is how many events survive each write.
	DefaultMaxEvents = 100
)

type Event struct {
	ID        string                   `json:"id"`
	Type      enums.AnalyticsEventType `json:"type"`
	Payload   map[string]any           `json:"payload"`
	Timestamp time.Time                `json:"timestamp"`
}

// Recorder is the part of Log other services depend on.
type Recorder interface {
	LogEvent(ctx context.Context, eventType enums.AnalyticsEventType, payload map[string]any) (Event, error)
}

type Params struct {
	Storage   *kvstore.Store
	Logger    *logger.Logger
	Clock     clockwork.Clock
	MaxEvents int
}

type Log struct {
	storage   *kvstore.Store
	logg      *logger.Logger
	clock     clockwork.Clock
	maxEvents int

	// mu serializes read-modify-write cycles within this process. Writers in
	// other processes are not coordinated.
	mu sync.Mutex
}

func New(params Params) (*Log, error) {
	if params.Storage == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "storage is required")
	}
	if params.Logger == nil {
		params.Logger = logger.Nop()
	}
	if params.Clock == nil {
		params.Clock = clockwork.NewRealClock()
	}
	if params.MaxEvents <= 0 {
		params.MaxEvents = DefaultMaxEvents
	}
	return &Log{
		storage:   params.Storage,
		logg:      params.Logger,
		clock:     params.Clock,
		maxEvents: params.MaxEvents,
	}, nil
}

// LogEvent appends an event and drops the oldest ones past the cap.
func (l *Log) LogEvent(ctx context.Context, eventType enums.AnalyticsEventType, payload map[string]any) (Event, error) {
	if _, err := enums.ParseAnalyticsEventType(string(eventType)); err != nil {
		return Event{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid event type")
	}
	if payload == nil {
		payload = map[string]any{}
	}
	event := Event{
		ID:        ids.Event(),
		Type:      eventType,
		Payload:   payload,
		Timestamp: l.clock.Now().UTC(),
	}

	l.mu.Lock()
	events := kvstore.Get(ctx, l.storage, StorageKey, []Event{})
	events = append(events, event)
	if over := len(events) - l.maxEvents; over > 0 {
		events = events[over:]
	}
	kvstore.Set(ctx, l.storage, StorageKey, events)
	l.mu.Unlock()

	l.logg.Debug(l.logg.WithField(ctx, "event_type", string(eventType)), "analytics.event_logged")
	return event, nil
}

// Events returns the retained events, oldest first.
func (l *Log) Events(ctx context.Context) []Event {
	events := kvstore.Get(ctx, l.storage, StorageKey, []Event{})
	if events == nil {
		return []Event{}
	}
	return events
}

func (l *Log) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kvstore.Set(ctx, l.storage, StorageKey, []Event{})
}

func (l *Log) PageView(ctx context.Context, page string) (Event, error) {
	return l.LogEvent(ctx, enums.AnalyticsEventPageView, map[string]any{"page": page})
}

func (l *Log) CTAClick(ctx context.Context, cta string) (Event, error) {
	return l.LogEvent(ctx, enums.AnalyticsEventCTAClick, map[string]any{"cta": cta})
}

func (l *Log) Interaction(ctx context.Context, name string) (Event, error) {
	return l.LogEvent(ctx, enums.AnalyticsEventInteraction, map[string]any{"interaction": name})
}
