// Package transition drives page enter/exit animations. A transition is a small
// state machine, Idle -> Transitioning -> Idle, whose exit is a single
// cancellable timer: starting a new transition while one is running replaces
// the timer, so only the latest start decides when the animation ends.
package transition

import (
	"context"
	"sync"
	"time"

	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
	"github.com/angelmondragon/opusclip-demo/pkg/metrics"
	"github.com/jonboulle/clockwork"
)

const (
	DefaultWindow   = 300 * time.Millisecond
	DefaultNavDelay = 50 * time.Millisecond
)

// Triggers recorded with each started transition.
const (
	TriggerExplicit = "explicit"
	TriggerNavigate = "navigate"
	TriggerInferred = "inferred"
)

type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseTransitioning Phase = "transitioning"
)

// State is what animated components read.
type State struct {
	Phase           Phase                     `json:"phase"`
	IsTransitioning bool                      `json:"isTransitioning"`
	Direction       enums.TransitionDirection `json:"transitionDirection"`
	Location        string                    `json:"location"`
}

type Params struct {
	Logger  *logger.Logger
	Metrics *metrics.TransitionMetrics
	Clock   clockwork.Clock
	// Window is how long a transition lasts; NavDelay is how long Navigate
	// waits before committing the new location. Zero selects the default.
	Window   time.Duration
	NavDelay time.Duration
	// Location is the initially observed location.
	Location string
}

type Controller struct {
	logg     *logger.Logger
	metrics  *metrics.TransitionMetrics
	clock    clockwork.Clock
	window   time.Duration
	navDelay time.Duration

	mu         sync.Mutex
	phase      Phase
	direction  enums.TransitionDirection
	location   string
	generation uint64
	timer      clockwork.Timer
	listeners  map[int]func(State)
	nextID     int
}

func New(params Params) *Controller {
	if params.Logger == nil {
		params.Logger = logger.Nop()
	}
	if params.Clock == nil {
		params.Clock = clockwork.NewRealClock()
	}
	if params.Window <= 0 {
		params.Window = DefaultWindow
	}
	if params.NavDelay <= 0 {
		params.NavDelay = DefaultNavDelay
	}
	return &Controller{
		logg:      params.Logger,
		metrics:   params.Metrics,
		clock:     params.Clock,
		window:    params.Window,
		navDelay:  params.NavDelay,
		phase:     PhaseIdle,
		direction: enums.TransitionDirectionForward,
		location:  params.Location,
		listeners: map[int]func(State){},
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	return State{
		Phase:           c.phase,
		IsTransitioning: c.phase == PhaseTransitioning,
		Direction:       c.direction,
		Location:        c.location,
	}
}

// Subscribe registers fn for every state change.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// Start enters Transitioning in direction and (re)arms the exit timer. A running
// transition is extended and may change direction.
func (c *Controller) Start(ctx context.Context, direction enums.TransitionDirection) error {
	if !direction.IsValid() {
		return pkgerrors.Newf(pkgerrors.CodeValidation, "invalid transition direction %q", direction)
	}
	c.start(ctx, direction, TriggerExplicit)
	return nil
}

// Navigate starts a forward transition, waits the navigation delay so the exit
// animation can begin, then commits href as the current location.
func (c *Controller) Navigate(ctx context.Context, href string) (State, error) {
	if href == "" {
		return State{}, pkgerrors.New(pkgerrors.CodeValidation, "href is required")
	}
	c.start(ctx, enums.TransitionDirectionForward, TriggerNavigate)

	select {
	case <-ctx.Done():
		return c.State(), pkgerrors.Wrap(pkgerrors.CodeCanceled, ctx.Err(), "navigation canceled")
	case <-c.clock.After(c.navDelay):
	}

	c.mu.Lock()
	c.location = href
	st := c.stateLocked()
	listeners := c.listenersLocked()
	c.mu.Unlock()

	c.notify(listeners, st)
	return st, nil
}

// Observe reports the location as currently seen by the client. A change that
// Navigate did not make (browser back or forward) starts a backward transition.
func (c *Controller) Observe(ctx context.Context, location string) State {
	c.mu.Lock()
	if location == c.location {
		st := c.stateLocked()
		c.mu.Unlock()
		return st
	}
	previous := c.location
	c.location = location
	c.mu.Unlock()

	c.logg.Debug(c.logg.WithFields(ctx, map[string]any{"from": previous, "to": location}), "transition.location_changed")
	return c.start(ctx, enums.TransitionDirectionBackward, TriggerInferred)
}

func (c *Controller) start(ctx context.Context, direction enums.TransitionDirection, trigger string) State {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.generation++
	gen := c.generation
	c.phase = PhaseTransitioning
	c.direction = direction
	c.timer = c.clock.AfterFunc(c.window, func() { c.finish(gen) })
	st := c.stateLocked()
	listeners := c.listenersLocked()
	c.mu.Unlock()

	c.metrics.IncStarted(string(direction), trigger)
	c.logg.Debug(c.logg.WithFields(ctx, map[string]any{"direction": string(direction), "trigger": trigger}), "transition.started")
	c.notify(listeners, st)
	return st
}

// finish returns to Idle unless a later start replaced this timer.
func (c *Controller) finish(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.phase != PhaseTransitioning {
		c.mu.Unlock()
		return
	}
	c.phase = PhaseIdle
	c.timer = nil
	st := c.stateLocked()
	listeners := c.listenersLocked()
	c.mu.Unlock()

	c.notify(listeners, st)
}

// Close stops a pending exit timer.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
}

func (c *Controller) listenersLocked() []func(State) {
	out := make([]func(State), 0, len(c.listeners))
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func (c *Controller) notify(listeners []func(State), st State) {
	for _, fn := range listeners {
		fn(st)
	}
}
