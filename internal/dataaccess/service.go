// Package dataaccess is the in-memory table set behind the application: profile,
// projects, clips, captions and timeline, loaded from persistent storage (or the
// fixture catalog on first run) and written back in full after every mutation.
// Every call waits a simulated network latency first.
package dataaccess

import (
	"context"
	"sync"
	"time"

	"github.com/angelmondragon/opusclip-demo/internal/fixtures"
	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/ids"
	"github.com/angelmondragon/opusclip-demo/pkg/kvstore"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
	"github.com/angelmondragon/opusclip-demo/pkg/metrics"
	"github.com/jonboulle/clockwork"
)

// ServiceParams groups dependencies for the data access service.
type ServiceParams struct {
	Storage *kvstore.Store
	Logger  *logger.Logger
	Metrics *metrics.DataAccessMetrics
	IDs     *ids.Generator
	// Clock drives latency and timestamps; defaults to the real clock.
	Clock clockwork.Clock
	// LatencyScale multiplies every simulated delay. 0 disables them.
	LatencyScale float64
}

// Service is the data access API. NotFound failures carry pkgerrors.CodeNotFound;
// a canceled context surfaces as pkgerrors.CodeCanceled.
type Service interface {
	Initialize(ctx context.Context) error
	Reset(ctx context.Context) error

	GetProfile(ctx context.Context) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.UserProfile, error)

	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, input models.CreateProjectInput) (models.Project, error)
	UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListClips(ctx context.Context, projectID string) ([]models.Clip, error)
	UpdateClip(ctx context.Context, projectID, clipID string, patch models.ClipPatch) (models.Clip, error)
	ListCaptions(ctx context.Context, clipID string) ([]models.CaptionBlock, error)
	ListTimeline(ctx context.Context, projectID string) ([]models.TimelineSegment, error)

	ListPlans(ctx context.Context) ([]models.Plan, error)
	ListLogos(ctx context.Context) ([]models.Logo, error)
	ListFeatures(ctx context.Context) ([]models.FeatureCard, error)
	ListWorkflow(ctx context.Context) ([]models.WorkflowItem, error)
	ListSocialAccounts(ctx context.Context) ([]models.SocialAccount, error)

	// LastSavedAt reports when the tables were last written to storage.
	LastSavedAt(ctx context.Context) (time.Time, bool)
}

type tables struct {
	profile  *models.UserProfile
	projects map[string]models.Project
	clips    map[string][]models.Clip
	captions map[string][]models.CaptionBlock
	timeline map[string][]models.TimelineSegment
}

func emptyTables() tables {
	return tables{
		projects: map[string]models.Project{},
		clips:    map[string][]models.Clip{},
		captions: map[string][]models.CaptionBlock{},
		timeline: map[string][]models.TimelineSegment{},
	}
}

type service struct {
	storage      *kvstore.Store
	logg         *logger.Logger
	metrics      *metrics.DataAccessMetrics
	ids          *ids.Generator
	clock        clockwork.Clock
	latencyScale float64

	mu   sync.Mutex
	data tables

	// static catalogs, always from fixtures
	plans    []models.Plan
	logos    []models.Logo
	features []models.FeatureCard
	workflow []models.WorkflowItem
	social   []models.SocialAccount
}

// NewService builds the data access service. Call Initialize before use.
func NewService(params ServiceParams) (Service, error) {
	if params.Storage == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "storage is required")
	}
	if params.LatencyScale < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "latency scale must be >= 0")
	}
	if params.Logger == nil {
		params.Logger = logger.Nop()
	}
	if params.Clock == nil {
		params.Clock = clockwork.NewRealClock()
	}
	if params.IDs == nil {
		params.IDs = ids.MustGenerator()
	}

	seed := fixtures.Default()
	return &service{
		storage:      params.Storage,
		logg:         params.Logger,
		metrics:      params.Metrics,
		ids:          params.IDs,
		clock:        params.Clock,
		latencyScale: params.LatencyScale,
		data:         emptyTables(),
		plans:        seed.Plans,
		logos:        seed.Logos,
		features:     seed.Features,
		workflow:     seed.Workflow,
		social:       seed.SocialAccounts,
	}, nil
}

// Initialize loads every table from storage, falling back per table to fixtures.
// Concurrent calls are not coordinated beyond the table lock; the last one to
// finish determines the loaded state.
func (s *service) Initialize(ctx context.Context) (err error) {
	defer s.observe(opInitialize, s.clock.Now(), &err)
	if err := s.wait(ctx, opInitialize); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked(ctx)
	return nil
}

// Reset drops memory and every persisted key, reseeds from fixtures and saves.
func (s *service) Reset(ctx context.Context) (err error) {
	defer s.observe(opReset, s.clock.Now(), &err)
	if err := s.wait(ctx, opReset); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = emptyTables()
	s.storage.Remove(ctx, PersistentKeys...)
	s.loadLocked(ctx)
	s.persistLocked(ctx)
	s.logg.Info(ctx, "dataaccess.reset")
	return nil
}

func (s *service) loadLocked(ctx context.Context) {
	seed := fixtures.Default()

	fallbackProfile := seed.Profile
	s.data.profile = kvstore.Get(ctx, s.storage, KeyProfile, &fallbackProfile)

	if stored := kvstore.Get[map[string]models.Project](ctx, s.storage, KeyProjects, nil); stored != nil {
		s.data.projects = stored
	} else {
		s.data.projects = seed.ProjectsByID()
	}
	if stored := kvstore.Get[map[string][]models.Clip](ctx, s.storage, KeyClips, nil); stored != nil {
		s.data.clips = stored
	} else {
		s.data.clips = seed.Clips
	}
	if stored := kvstore.Get[map[string][]models.CaptionBlock](ctx, s.storage, KeyCaptions, nil); stored != nil {
		s.data.captions = stored
	} else {
		s.data.captions = seed.Captions
	}
	if stored := kvstore.Get[map[string][]models.TimelineSegment](ctx, s.storage, KeyTimeline, nil); stored != nil {
		s.data.timeline = stored
	} else {
		s.data.timeline = seed.Timeline
	}
}

// persistLocked rewrites every table, not only the one that changed.
func (s *service) persistLocked(ctx context.Context) {
	kvstore.Set(ctx, s.storage, KeyProfile, s.data.profile)
	kvstore.Set(ctx, s.storage, KeyProjects, s.data.projects)
	kvstore.Set(ctx, s.storage, KeyClips, s.data.clips)
	kvstore.Set(ctx, s.storage, KeyCaptions, s.data.captions)
	kvstore.Set(ctx, s.storage, KeyTimeline, s.data.timeline)
	kvstore.Set(ctx, s.storage, KeyLastSaved, s.clock.Now().UTC().Format(time.RFC3339Nano))
}

func (s *service) LastSavedAt(ctx context.Context) (time.Time, bool) {
	raw := kvstore.Get(ctx, s.storage, KeyLastSaved, "")
	if raw == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func (s *service) observe(op string, start time.Time, err *error) {
	s.metrics.Observe(op, s.clock.Since(start), *err)
}

// nextUpdatedAt returns now, or 1ms past prev when the clock has not moved past it.
func nextUpdatedAt(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Millisecond)
}
