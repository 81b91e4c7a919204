package uploads

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/angelmondragon/opusclip-demo/internal/analytics"
	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	err   error
	input models.CreateProjectInput
}

func (f *fakeCreator) CreateProject(_ context.Context, input models.CreateProjectInput) (models.Project, error) {
	f.input = input
	if f.err != nil {
		return models.Project{}, f.err
	}
	return models.Project{ID: input.ID, Title: input.Title, Duration: input.Duration, Points: input.Points}, nil
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []analytics.Event
}

func (f *fakeRecorder) LogEvent(_ context.Context, eventType enums.AnalyticsEventType, payload map[string]any) (analytics.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event := analytics.Event{Type: eventType, Payload: payload}
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeRecorder) types() []enums.AnalyticsEventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]enums.AnalyticsEventType, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

func TestUploadFromFile(t *testing.T) {
	creator := &fakeCreator{}
	recorder := &fakeRecorder{}
	svc, err := NewService(ServiceParams{
		Projects:  creator,
		Analytics: recorder,
		Clock:     clockwork.NewFakeClock(),
		IntN:      func(n int) int { return n - 1 },
	})
	require.NoError(t, err)

	project, err := svc.Upload(context.Background(), Request{FileName: "keynote.mp4"})
	require.NoError(t, err)

	assert.Equal(t, "keynote.mp4", project.Title)
	assert.Equal(t, float64(3599), project.Duration)
	assert.Equal(t, 1499, project.Points)
	assert.Regexp(t, `^project-[0-9a-f]{9}$`, creator.input.ID)
	assert.Regexp(t, `^project-\d+$`, creator.input.Slug)
	assert.Equal(t, DefaultDescription, creator.input.Description)

	assert.Equal(t, []enums.AnalyticsEventType{enums.AnalyticsEventUploadStart, enums.AnalyticsEventUploadSuccess}, recorder.types())
	assert.Equal(t, "file", recorder.events[0].Payload["type"])
	assert.Equal(t, project.ID, recorder.events[1].Payload["projectId"])
}

func TestUploadFromURLWaitsProcessingDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	creator := &fakeCreator{}
	svc, err := NewService(ServiceParams{
		Projects:        creator,
		Analytics:       &fakeRecorder{},
		Clock:           clock,
		ProcessingDelay: DefaultProcessingDelay,
		IntN:            func(int) int { return 0 },
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	type result struct {
		project models.Project
		err     error
	}
	done := make(chan result, 1)
	go func() {
		p, err := svc.Upload(ctx, Request{URL: "https://youtube.com/watch?v=abc"})
		done <- result{p, err}
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(DefaultProcessingDelay)
	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, DefaultTitle, got.project.Title)
	assert.Equal(t, float64(600), got.project.Duration)
	assert.Equal(t, 500, got.project.Points)
	assert.Equal(t, "https://youtube.com/watch?v=abc", creator.input.Description)
}

func TestUploadValidation(t *testing.T) {
	recorder := &fakeRecorder{}
	svc, err := NewService(ServiceParams{Projects: &fakeCreator{}, Analytics: recorder})
	require.NoError(t, err)
	ctx := context.Background()

	for _, req := range []Request{{}, {URL: "https://x.test/v", FileName: "a.mp4"}, {URL: "not a url"}} {
		_, err := svc.Upload(ctx, req)
		assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation), "request %+v", req)
	}
	assert.Empty(t, recorder.types())
}

func TestUploadFailureRecordsError(t *testing.T) {
	recorder := &fakeRecorder{}
	creator := &fakeCreator{err: errors.New("disk full")}
	svc, err := NewService(ServiceParams{Projects: creator, Analytics: recorder})
	require.NoError(t, err)

	_, err = svc.Upload(context.Background(), Request{FileName: "a.mp4"})
	require.Error(t, err)
	assert.Equal(t, []enums.AnalyticsEventType{enums.AnalyticsEventUploadStart, enums.AnalyticsEventUploadError}, recorder.types())
	assert.Equal(t, "disk full", recorder.events[1].Payload["error"])
}
