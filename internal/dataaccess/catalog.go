package dataaccess

import (
	"context"

	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
)

// Catalog reads never fail once latency has elapsed.

func (s *service) ListPlans(ctx context.Context) ([]models.Plan, error) {
	return listCatalog(ctx, s, s.plans)
}

func (s *service) ListLogos(ctx context.Context) ([]models.Logo, error) {
	return listCatalog(ctx, s, s.logos)
}

func (s *service) ListFeatures(ctx context.Context) ([]models.FeatureCard, error) {
	return listCatalog(ctx, s, s.features)
}

func (s *service) ListWorkflow(ctx context.Context) ([]models.WorkflowItem, error) {
	return listCatalog(ctx, s, s.workflow)
}

func (s *service) ListSocialAccounts(ctx context.Context) ([]models.SocialAccount, error) {
	return listCatalog(ctx, s, s.social)
}

func listCatalog[T any](ctx context.Context, s *service, items []T) (out []T, err error) {
	defer s.observe(opListCatalog, s.clock.Now(), &err)
	if err := s.wait(ctx, opListCatalog); err != nil {
		return nil, err
	}
	return append([]T{}, items...), nil
}
