// Package exports simulates rendering the active project with chosen output
// options. Nothing is encoded; the job only waits the render delay.
package exports

import (
	"context"
	"time"

	"github.com/angelmondragon/opusclip-demo/internal/analytics"
	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
)

const DefaultRenderDelay = 3 * time.Second

// Options are the export dialog's choices. Empty fields take the dialog defaults.
type Options struct {
	Resolution enums.ExportResolution `json:"resolution" validate:"oneof=720p 1080p 4k"`
	FPS        int                    `json:"fps" validate:"oneof=30 60"`
	Format     enums.ExportFormat     `json:"format" validate:"oneof=mp4 mov avi"`
}

// WithDefaults fills empty fields with 1080p, 30 fps and mp4.
func (o Options) WithDefaults() Options {
	if o.Resolution == "" {
		o.Resolution = enums.ExportResolution1080p
	}
	if o.FPS == 0 {
		o.FPS = 30
	}
	if o.Format == "" {
		o.Format = enums.ExportFormatMP4
	}
	return o
}

func (o Options) payload(projectID string) map[string]any {
	return map[string]any{
		"projectId":  projectID,
		"resolution": string(o.Resolution),
		"fps":        o.FPS,
		"format":     string(o.Format),
	}
}

// Result describes a finished export.
type Result struct {
	ProjectID   string    `json:"projectId"`
	Options     Options   `json:"options"`
	StartedAt   time.Time `json:"startedAt"`
	CompletedAt time.Time `json:"completedAt"`
}

// Projects resolves the project being exported.
type Projects interface {
	GetProject(ctx context.Context, id string) (models.Project, error)
}

type ServiceParams struct {
	Projects  Projects
	Analytics analytics.Recorder
	Logger    *logger.Logger
	Clock     clockwork.Clock
	// RenderDelay is the simulated render time; zero disables it.
	RenderDelay time.Duration
}

type Service interface {
	Export(ctx context.Context, projectID string, opts Options) (Result, error)
}

type service struct {
	projects  Projects
	analytics analytics.Recorder
	logg      *logger.Logger
	clock     clockwork.Clock
	delay     time.Duration
	validate  *validator.Validate
}

func NewService(params ServiceParams) (Service, error) {
	if params.Projects == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "projects are required")
	}
	if params.Analytics == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "analytics recorder is required")
	}
	if params.Logger == nil {
		params.Logger = logger.Nop()
	}
	if params.Clock == nil {
		params.Clock = clockwork.NewRealClock()
	}
	if params.RenderDelay < 0 {
		params.RenderDelay = 0
	}
	return &service{
		projects:  params.Projects,
		analytics: params.Analytics,
		logg:      params.Logger,
		clock:     params.Clock,
		delay:     params.RenderDelay,
		validate:  validator.New(),
	}, nil
}

func (s *service) Export(ctx context.Context, projectID string, opts Options) (Result, error) {
	if projectID == "" {
		return Result{}, pkgerrors.New(pkgerrors.CodeValidation, "no project is open")
	}
	opts = opts.WithDefaults()
	if err := s.validate.Struct(opts); err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid export options")
	}
	if _, err := s.projects.GetProject(ctx, projectID); err != nil {
		return Result{}, err
	}

	ctx = s.logg.WithProjectID(ctx, projectID)
	result := Result{ProjectID: projectID, Options: opts, StartedAt: s.clock.Now().UTC()}
	s.record(ctx, enums.AnalyticsEventExportStart, opts.payload(projectID))

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return Result{}, pkgerrors.Wrap(pkgerrors.CodeCanceled, ctx.Err(), "export canceled")
		case <-s.clock.After(s.delay):
		}
	}

	result.CompletedAt = s.clock.Now().UTC()
	s.record(ctx, enums.AnalyticsEventExportComplete, opts.payload(projectID))
	s.logg.Info(ctx, "exports.completed")
	return result, nil
}

func (s *service) record(ctx context.Context, eventType enums.AnalyticsEventType, payload map[string]any) {
	if _, err := s.analytics.LogEvent(ctx, eventType, payload); err != nil {
		s.logg.WarnErr(ctx, "exports.analytics_failed", err)
	}
}
