package transition

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/metrics"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(location string) (*Controller, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClock()
	return New(Params{Clock: clock, Location: location}), clock
}

func idle(c *Controller) func() bool {
	return func() bool { return !c.State().IsTransitioning }
}

func TestStartTransitionTiming(t *testing.T) {
	c, clock := newTestController("/")
	ctx := context.Background()

	require.NoError(t, c.Start(ctx, enums.TransitionDirectionForward))
	st := c.State()
	assert.True(t, st.IsTransitioning)
	assert.Equal(t, PhaseTransitioning, st.Phase)
	assert.Equal(t, enums.TransitionDirectionForward, st.Direction)

	clock.Advance(DefaultWindow - time.Millisecond)
	assert.True(t, c.State().IsTransitioning)

	clock.Advance(time.Millisecond)
	assert.Eventually(t, idle(c), time.Second, time.Millisecond)
	assert.Equal(t, PhaseIdle, c.State().Phase)
}

func TestRestartExtendsWindowAndLastDirectionWins(t *testing.T) {
	c, clock := newTestController("/")
	ctx := context.Background()

	require.NoError(t, c.Start(ctx, enums.TransitionDirectionForward))
	clock.Advance(200 * time.Millisecond)
	require.NoError(t, c.Start(ctx, enums.TransitionDirectionBackward))

	// The first timer would have fired here.
	clock.Advance(150 * time.Millisecond)
	st := c.State()
	assert.True(t, st.IsTransitioning)
	assert.Equal(t, enums.TransitionDirectionBackward, st.Direction)

	clock.Advance(150 * time.Millisecond)
	assert.Eventually(t, idle(c), time.Second, time.Millisecond)
}

func TestStartRejectsUnknownDirection(t *testing.T) {
	c, _ := newTestController("/")
	err := c.Start(context.Background(), enums.TransitionDirection("sideways"))
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.False(t, c.State().IsTransitioning)
}

func TestObserveInfersBackward(t *testing.T) {
	c, clock := newTestController("/dashboard")
	ctx := context.Background()

	st := c.Observe(ctx, "/dashboard")
	assert.False(t, st.IsTransitioning)

	st = c.Observe(ctx, "/pricing")
	assert.True(t, st.IsTransitioning)
	assert.Equal(t, enums.TransitionDirectionBackward, st.Direction)
	assert.Equal(t, "/pricing", st.Location)

	clock.Advance(DefaultWindow)
	assert.Eventually(t, idle(c), time.Second, time.Millisecond)
}

func TestNavigateDefersLocationChange(t *testing.T) {
	c, clock := newTestController("/")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan State, 1)
	go func() {
		st, err := c.Navigate(ctx, "/dashboard")
		assert.NoError(t, err)
		done <- st
	}()

	// Exit timer plus the navigation delay.
	require.NoError(t, clock.BlockUntilContext(ctx, 2))
	st := c.State()
	assert.True(t, st.IsTransitioning)
	assert.Equal(t, enums.TransitionDirectionForward, st.Direction)
	assert.Equal(t, "/", st.Location)

	clock.Advance(DefaultNavDelay)
	st = <-done
	assert.Equal(t, "/dashboard", st.Location)
	assert.True(t, st.IsTransitioning)

	// The client then reports the location Navigate committed; no inference.
	st = c.Observe(ctx, "/dashboard")
	assert.Equal(t, enums.TransitionDirectionForward, st.Direction)

	clock.Advance(DefaultWindow - DefaultNavDelay)
	assert.Eventually(t, idle(c), time.Second, time.Millisecond)
}

func TestNavigateCanceled(t *testing.T) {
	c, _ := newTestController("/")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st, err := c.Navigate(ctx, "/editor/project-1")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeCanceled))
	assert.Equal(t, "/", st.Location)

	_, err = c.Navigate(context.Background(), "")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestSubscribersSeeEveryPhase(t *testing.T) {
	c, clock := newTestController("/")
	var mu sync.Mutex
	var phases []Phase
	unsubscribe := c.Subscribe(func(st State) {
		mu.Lock()
		phases = append(phases, st.Phase)
		mu.Unlock()
	})
	defer unsubscribe()

	require.NoError(t, c.Start(context.Background(), enums.TransitionDirectionForward))
	clock.Advance(DefaultWindow)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(phases) == 2
	}, time.Second, time.Millisecond)
	mu.Lock()
	assert.Equal(t, []Phase{PhaseTransitioning, PhaseIdle}, phases)
	mu.Unlock()
}

func TestCloseStopsPendingTimer(t *testing.T) {
	c, clock := newTestController("/")
	require.NoError(t, c.Start(context.Background(), enums.TransitionDirectionForward))
	c.Close()
	clock.Advance(time.Second)
	assert.True(t, c.State().IsTransitioning)
}

func TestMetricsCountTriggers(t *testing.T) {
	reg := prometheus.NewRegistry()
	clock := clockwork.NewFakeClock()
	c := New(Params{Clock: clock, Metrics: metrics.NewTransitionMetrics(reg), Location: "/"})
	ctx := context.Background()

	require.NoError(t, c.Start(ctx, enums.TransitionDirectionForward))
	c.Observe(ctx, "/pricing")

	families, err := reg.Gather()
	require.NoError(t, err)
	got := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "route_transitions_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, pair := range m.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			got[labels["direction"]+"/"+labels["trigger"]] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{
		"forward/" + TriggerExplicit:  1,
		"backward/" + TriggerInferred: 1,
	}, got)
}
