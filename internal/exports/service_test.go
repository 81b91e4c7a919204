package exports

import (
	"context"
	"testing"
	"time"

	"github.com/angelmondragon/opusclip-demo/internal/analytics"
	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/kvstore"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type projectSet map[string]bool

func (p projectSet) GetProject(_ context.Context, id string) (models.Project, error) {
	if !p[id] {
		return models.Project{}, pkgerrors.NotFound("project", id)
	}
	return models.Project{ID: id}, nil
}

func newTestService(t *testing.T, delay time.Duration) (Service, *analytics.Log, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	events, err := analytics.New(analytics.Params{Storage: kvstore.New(kvstore.NewMemoryBackend(), nil, nil), Clock: clock})
	require.NoError(t, err)
	svc, err := NewService(ServiceParams{Projects: projectSet{"project-1": true, "project-2": true}, Analytics: events, Clock: clock, RenderDelay: delay})
	require.NoError(t, err)
	return svc, events, clock
}

func TestExportDefaultsAndEvents(t *testing.T) {
	svc, events, _ := newTestService(t, 0)
	ctx := context.Background()

	result, err := svc.Export(ctx, "project-1", Options{})
	require.NoError(t, err)
	assert.Equal(t, Options{Resolution: enums.ExportResolution1080p, FPS: 30, Format: enums.ExportFormatMP4}, result.Options)

	logged := events.Events(ctx)
	require.Len(t, logged, 2)
	assert.Equal(t, enums.AnalyticsEventExportStart, logged[0].Type)
	assert.Equal(t, enums.AnalyticsEventExportComplete, logged[1].Type)
	assert.Equal(t, "1080p", logged[1].Payload["resolution"])
	assert.Equal(t, "project-1", logged[1].Payload["projectId"])
}

func TestExportWaitsRenderDelay(t *testing.T) {
	svc, _, clock := newTestService(t, DefaultRenderDelay)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type outcome struct {
		result Result
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		r, err := svc.Export(ctx, "project-2", Options{Resolution: enums.ExportResolution4K, FPS: 60, Format: enums.ExportFormatMOV})
		done <- outcome{r, err}
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(DefaultRenderDelay)
	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, DefaultRenderDelay, got.result.CompletedAt.Sub(got.result.StartedAt))
}

func TestExportRejectsBadOptions(t *testing.T) {
	svc, events, _ := newTestService(t, 0)
	ctx := context.Background()

	_, err := svc.Export(ctx, "project-1", Options{FPS: 24})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	_, err = svc.Export(ctx, "project-1", Options{Format: "webm"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	_, err = svc.Export(ctx, "", Options{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.Empty(t, events.Events(ctx))
}

func TestExportCanceled(t *testing.T) {
	svc, _, _ := newTestService(t, DefaultRenderDelay)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Export(ctx, "project-1", Options{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeCanceled))
}

func TestExportUnknownProject(t *testing.T) {
	svc, events, _ := newTestService(t, DefaultRenderDelay)
	ctx := context.Background()

	_, err := svc.Export(ctx, "project-404", Options{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Empty(t, events.Events(ctx))
}

func TestNewServiceRequiresProjects(t *testing.T) {
	_, err := NewService(ServiceParams{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}
