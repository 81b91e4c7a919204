package dataaccess

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
)

// Defaults applied by CreateProject to omitted fields.
const (
	DefaultProjectTitle    = "Untitled Project"
	DefaultProjectDuration = 600
	DefaultVideoSrc        = "/videos/sample.mp4"
	DefaultPoster          = "/images/poster.png"
	DefaultClipCount       = 5
)

var defaultThumbnail = models.ProjectThumbnail{
	Square:   "/images/placeholder-square.png",
	Vertical: "/images/placeholder-vertical.png",
}

// ListProjects returns every project, newest created first. Ties keep id order.
func (s *service) ListProjects(ctx context.Context) (out []models.Project, err error) {
	defer s.observe(opListProjects, s.clock.Now(), &err)
	if err := s.wait(ctx, opListProjects); err != nil {
		return nil, err
	}

	s.mu.Lock()
	out = make([]models.Project, 0, len(s.data.projects))
	for _, p := range s.data.projects {
		out = append(out, p)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *service) GetProject(ctx context.Context, id string) (project models.Project, err error) {
	defer s.observe(opGetProject, s.clock.Now(), &err)
	if err := s.wait(ctx, opGetProject); err != nil {
		return models.Project{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.data.projects[id]
	if !ok {
		return models.Project{}, pkgerrors.NotFound("project", id)
	}
	return project, nil
}

// CreateProject fills omitted fields with defaults, inserts the project and
// generates its default clips and matching timeline segments.
func (s *service) CreateProject(ctx context.Context, input models.CreateProjectInput) (project models.Project, err error) {
	defer s.observe(opCreateProject, s.clock.Now(), &err)
	if err := s.wait(ctx, opCreateProject); err != nil {
		return models.Project{}, err
	}

	now := s.clock.Now().UTC()
	project = buildProject(input, now, s.ids.TimeBased("project"))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data.projects[project.ID]; exists {
		return models.Project{}, pkgerrors.Newf(pkgerrors.CodeConflict, "project %s already exists", project.ID)
	}

	clips := defaultClips(project)
	if len(clips) > 0 && clips[0].End == 0 {
		s.logg.Warn(s.logg.WithProjectID(ctx, project.ID), "dataaccess.zero_length_default_clips")
	}

	s.data.projects[project.ID] = project
	s.data.clips[project.ID] = clips
	s.data.timeline[project.ID] = timelineFor(project.ID, clips)
	s.persistLocked(ctx)
	return project, nil
}

func buildProject(input models.CreateProjectInput, now time.Time, fallbackID string) models.Project {
	p := models.Project{
		ID:          firstNonEmpty(input.ID, fallbackID),
		Title:       firstNonEmpty(input.Title, DefaultProjectTitle),
		Description: input.Description,
		Thumbnail:   defaultThumbnail,
		VideoSrc:    firstNonEmpty(input.VideoSrc, DefaultVideoSrc),
		Poster:      firstNonEmpty(input.Poster, DefaultPoster),
		Duration:    input.Duration,
		Points:      input.Points,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.Slug = firstNonEmpty(input.Slug, p.ID)
	if input.Thumbnail != nil {
		p.Thumbnail = *input.Thumbnail
	}
	// A zero duration counts as omitted.
	if p.Duration == 0 {
		p.Duration = DefaultProjectDuration
	}
	if input.CreatedAt != nil && !input.CreatedAt.IsZero() {
		p.CreatedAt = input.CreatedAt.UTC()
	}
	return p
}

// defaultClips splits the project into DefaultClipCount clips of
// floor(duration/DefaultClipCount) seconds. Any remainder stays uncovered after
// the last clip, and very short projects get zero-length clips.
func defaultClips(p models.Project) []models.Clip {
	segment := math.Floor(p.Duration / DefaultClipCount)
	clips := make([]models.Clip, 0, DefaultClipCount)
	for i := 0; i < DefaultClipCount; i++ {
		n := strconv.Itoa(i + 1)
		clips = append(clips, models.Clip{
			ID:        "clip-" + p.ID + "-" + n,
			ProjectID: p.ID,
			Title:     "Clip " + n,
			Start:     float64(i) * segment,
			End:       float64(i+1) * segment,
		})
	}
	return clips
}

func timelineFor(projectID string, clips []models.Clip) []models.TimelineSegment {
	segments := make([]models.TimelineSegment, 0, len(clips))
	for i, clip := range clips {
		segments = append(segments, models.TimelineSegment{
			ID:        "segment-" + projectID + "-" + strconv.Itoa(i+1),
			ProjectID: projectID,
			Start:     clip.Start,
			End:       clip.End,
			Type:      enums.SegmentTypeClip,
			ClipID:    clip.ID,
		})
	}
	return segments
}

// UpdateProject merges patch over the stored project and refreshes UpdatedAt,
// which always moves forward.
func (s *service) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (project models.Project, err error) {
	defer s.observe(opUpdateProject, s.clock.Now(), &err)
	if err := s.wait(ctx, opUpdateProject); err != nil {
		return models.Project{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.data.projects[id]
	if !ok {
		return models.Project{}, pkgerrors.NotFound("project", id)
	}

	project = patch.Apply(current)
	project.ID = current.ID
	project.UpdatedAt = nextUpdatedAt(current.UpdatedAt, s.clock.Now().UTC())
	s.data.projects[id] = project
	s.persistLocked(ctx)
	return project, nil
}

// DeleteProject removes the project with its clips, timeline and the captions of its clips.
func (s *service) DeleteProject(ctx context.Context, id string) (err error) {
	defer s.observe(opDeleteProject, s.clock.Now(), &err)
	if err := s.wait(ctx, opDeleteProject); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.projects[id]; !ok {
		return pkgerrors.NotFound("project", id)
	}

	for _, clip := range s.data.clips[id] {
		delete(s.data.captions, clip.ID)
	}
	delete(s.data.clips, id)
	delete(s.data.timeline, id)
	delete(s.data.projects, id)
	s.persistLocked(ctx)
	s.logg.Info(s.logg.WithProjectID(ctx, id), "dataaccess.project_deleted")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
