package dataaccess

import (
	"context"

	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
)

// ListClips returns the project's clips in order. A project without clips
// yields an empty list, not an error.
func (s *service) ListClips(ctx context.Context, projectID string) (out []models.Clip, err error) {
	defer s.observe(opListClips, s.clock.Now(), &err)
	if err := s.wait(ctx, opListClips); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Clip{}, s.data.clips[projectID]...), nil
}

func (s *service) UpdateClip(ctx context.Context, projectID, clipID string, patch models.ClipPatch) (clip models.Clip, err error) {
	defer s.observe(opUpdateClip, s.clock.Now(), &err)
	if err := s.wait(ctx, opUpdateClip); err != nil {
		return models.Clip{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	clips, ok := s.data.clips[projectID]
	if !ok {
		return models.Clip{}, pkgerrors.NotFound("clips for project", projectID)
	}
	for i := range clips {
		if clips[i].ID != clipID {
			continue
		}
		clips[i] = patch.Apply(clips[i])
		s.persistLocked(ctx)
		return clips[i], nil
	}
	return models.Clip{}, pkgerrors.NotFound("clip", clipID)
}

func (s *service) ListCaptions(ctx context.Context, clipID string) (out []models.CaptionBlock, err error) {
	defer s.observe(opListCaptions, s.clock.Now(), &err)
	if err := s.wait(ctx, opListCaptions); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CaptionBlock{}, s.data.captions[clipID]...), nil
}

func (s *service) ListTimeline(ctx context.Context, projectID string) (out []models.TimelineSegment, err error) {
	defer s.observe(opListTimeline, s.clock.Now(), &err)
	if err := s.wait(ctx, opListTimeline); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.TimelineSegment{}, s.data.timeline[projectID]...), nil
}
