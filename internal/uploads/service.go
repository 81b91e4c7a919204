// Package uploads turns a hero-section upload (a video URL or a file name) into
// a new project after a simulated processing delay.
package uploads

import (
	"context"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/angelmondragon/opusclip-demo/internal/analytics"
	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/ids"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
)

const (
	DefaultProcessingDelay = 1500 * time.Millisecond

	DefaultTitle       = "Uploaded Video"
	DefaultDescription = "Uploaded video file"

	minDuration  = 600
	durationSpan = 3000
	minPoints    = 500
	pointsSpan   = 1000
)

// Request names the upload source. Exactly one field is set.
type Request struct {
	URL      string `json:"url,omitempty" validate:"omitempty,url"`
	FileName string `json:"fileName,omitempty" validate:"omitempty,max=255"`
}

func (r Request) sourceType() string {
	if r.URL != "" {
		return "url"
	}
	return "file"
}

// ProjectCreator creates projects; the application store satisfies it.
type ProjectCreator interface {
	CreateProject(ctx context.Context, input models.CreateProjectInput) (models.Project, error)
}

type ServiceParams struct {
	Projects        ProjectCreator
	Analytics       analytics.Recorder
	Logger          *logger.Logger
	Clock           clockwork.Clock
	// ProcessingDelay is the simulated processing time; zero disables it.
	ProcessingDelay time.Duration
	// IntN returns a value in [0, n); defaults to math/rand/v2.
	IntN func(n int) int
}

type Service interface {
	Upload(ctx context.Context, req Request) (models.Project, error)
}

type service struct {
	projects  ProjectCreator
	analytics analytics.Recorder
	logg      *logger.Logger
	clock     clockwork.Clock
	delay     time.Duration
	intN      func(int) int
	validate  *validator.Validate
}

func NewService(params ServiceParams) (Service, error) {
	if params.Projects == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "project creator is required")
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
	if params.ProcessingDelay < 0 {
		params.ProcessingDelay = 0
	}
	if params.IntN == nil {
		params.IntN = rand.IntN
	}
	return &service{
		projects:  params.Projects,
		analytics: params.Analytics,
		logg:      params.Logger,
		clock:     params.Clock,
		delay:     params.ProcessingDelay,
		intN:      params.IntN,
		validate:  validator.New(),
	}, nil
}

// Upload waits the processing delay, then creates a project with a random
// duration of 600-3599 seconds and 500-1499 points.
func (s *service) Upload(ctx context.Context, req Request) (models.Project, error) {
	if (req.URL == "") == (req.FileName == "") {
		return models.Project{}, pkgerrors.New(pkgerrors.CodeValidation, "provide either a url or a file name")
	}
	if err := s.validate.Struct(req); err != nil {
		return models.Project{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid upload request")
	}

	s.record(ctx, enums.AnalyticsEventUploadStart, map[string]any{"type": req.sourceType()})

	project, err := s.process(ctx, req)
	if err != nil {
		s.logg.WarnErr(ctx, "uploads.failed", err)
		s.record(ctx, enums.AnalyticsEventUploadError, map[string]any{"error": err.Error()})
		return models.Project{}, err
	}

	s.record(ctx, enums.AnalyticsEventUploadSuccess, map[string]any{"projectId": project.ID})
	s.logg.Info(s.logg.WithProjectID(ctx, project.ID), "uploads.project_created")
	return project, nil
}

func (s *service) process(ctx context.Context, req Request) (models.Project, error) {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return models.Project{}, pkgerrors.Wrap(pkgerrors.CodeCanceled, ctx.Err(), "upload canceled")
		case <-s.clock.After(s.delay):
		}
	}

	input := models.CreateProjectInput{
		ID:          ids.Short("project"),
		Slug:        "project-" + strconv.FormatInt(s.clock.Now().UnixMilli(), 10),
		Title:       firstNonEmpty(req.FileName, DefaultTitle),
		Description: firstNonEmpty(req.URL, DefaultDescription),
		Duration:    float64(minDuration + s.intN(durationSpan)),
		Points:      minPoints + s.intN(pointsSpan),
	}
	return s.projects.CreateProject(ctx, input)
}

func (s *service) record(ctx context.Context, eventType enums.AnalyticsEventType, payload map[string]any) {
	if _, err := s.analytics.LogEvent(ctx, eventType, payload); err != nil {
		s.logg.WarnErr(ctx, "uploads.analytics_failed", err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
