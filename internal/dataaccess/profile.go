package dataaccess

import (
	"context"

	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
)

func (s *service) GetProfile(ctx context.Context) (profile models.UserProfile, err error) {
	defer s.observe(opGetProfile, s.clock.Now(), &err)
	if err := s.wait(ctx, opGetProfile); err != nil {
		return models.UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.profile == nil {
		return models.UserProfile{}, pkgerrors.NotFound("profile", "")
	}
	return *s.data.profile, nil
}

func (s *service) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (profile models.UserProfile, err error) {
	defer s.observe(opUpdateProfile, s.clock.Now(), &err)
	if err := s.wait(ctx, opUpdateProfile); err != nil {
		return models.UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.profile == nil {
		return models.UserProfile{}, pkgerrors.NotFound("profile", "")
	}

	updated := patch.Apply(*s.data.profile)
	updated.UpdatedAt = nextUpdatedAt(s.data.profile.UpdatedAt, s.clock.Now())
	s.data.profile = &updated
	s.persistLocked(ctx)
	return updated, nil
}
