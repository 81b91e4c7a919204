// Package fixtures holds the deterministic demo catalog used to seed an empty
// installation. Every accessor returns a fresh copy, so callers may mutate freely.
package fixtures

import (
	"time"

	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	"github.com/shopspring/decimal"
)

// Set is one complete copy of the seed data.
type Set struct {
	Profile        models.UserProfile
	SocialAccounts []models.SocialAccount
	Logos          []models.Logo
	Features       []models.FeatureCard
	Workflow       []models.WorkflowItem
	Plans          []models.Plan
	Projects       []models.Project
	Clips          map[string][]models.Clip
	Captions       map[string][]models.CaptionBlock
	Timeline       map[string][]models.TimelineSegment
}

// Default builds a fresh fixture set.
func Default() Set {
	return Set{
		Profile:        profile(),
		SocialAccounts: socialAccounts(),
		Logos:          logos(),
		Features:       features(),
		Workflow:       workflow(),
		Plans:          plans(),
		Projects:       projects(),
		Clips:          clips(),
		Captions:       captions(),
		Timeline:       timeline(),
	}
}

// ProjectsByID keys the fixture projects by id.
func (s Set) ProjectsByID() map[string]models.Project {
	out := make(map[string]models.Project, len(s.Projects))
	for _, p := range s.Projects {
		out[p.ID] = p
	}
	return out
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func profile() models.UserProfile {
	return models.UserProfile{
		ID:                   "user-1",
		Name:                 "Alex Johnson",
		Email:                "alex@example.com",
		Role:                 enums.UserRoleCreator,
		PreferredAspectRatio: enums.AspectRatioVertical,
		CreatedAt:            day(2023, 1, 15),
		UpdatedAt:            day(2023, 6, 20),
	}
}

func socialAccounts() []models.SocialAccount {
	return []models.SocialAccount{
		{ID: "social-1", Platform: enums.SocialPlatformYouTube, Username: "alexjohnson", Connected: true, ProfileURL: "https://youtube.com/@alexjohnson"},
		{ID: "social-2", Platform: enums.SocialPlatformTikTok, Username: "alexjohnson"},
		{ID: "social-3", Platform: enums.SocialPlatformInstagram, Username: "alexjohnson", Connected: true, ProfileURL: "https://instagram.com/alexjohnson"},
	}
}

func logos() []models.Logo {
	return []models.Logo{
		{ID: "logo-1", Name: "Company A", Src: "/images/logo-a.png"},
		{ID: "logo-2", Name: "Company B", Src: "/images/logo-b.png"},
		{ID: "logo-3", Name: "Company C", Src: "/images/logo-c.png"},
		{ID: "logo-4", Name: "Company D", Src: "/images/logo-d.png"},
		{ID: "logo-5", Name: "Company E", Src: "/images/logo-e.png"},
	}
}

func features() []models.FeatureCard {
	return []models.FeatureCard{
		{ID: "feature-1", Title: "AI Models", Description: "Leverage cutting-edge AI to enhance your video content automatically", Icon: "🤖"},
		{ID: "feature-2", Title: "Clip Anything", Description: "Transform long videos into engaging clips with one click", Icon: "✂️"},
		{ID: "feature-3", Title: "Reframe Anything", Description: "Automatically reframe your content for different aspect ratios", Icon: "📱"},
	}
}

func workflow() []models.WorkflowItem {
	return []models.WorkflowItem{
		{ID: "workflow-1", Title: "Auto Import", Description: "Connect your video sources for automatic importing", Icon: "📥", Completed: true},
		{ID: "workflow-2", Title: "Auto Edit", Description: "Let AI create engaging clips from your content", Icon: "✂️", Completed: true},
		{ID: "workflow-3", Title: "Auto Scheduling", Description: "Schedule your content across platforms", Icon: "🗓️"},
	}
}

func plans() []models.Plan {
	return []models.Plan{
		{
			ID:          "plan-1",
			Name:        "Overlap Pro",
			Description: "Perfect for individual creators",
			Price: models.PlanPrice{
				Monthly: decimal.NewFromInt(29),
				Annual:  decimal.NewFromInt(290),
			},
			Features: []string{
				"100 video minutes/month",
				"AI-powered editing",
				"Auto-captioning",
				"Export in 1080p",
				"Basic analytics",
			},
			IsTrial:   true,
			TrialDays: 7,
		},
		{
			ID:          "plan-2",
			Name:        "Overlap Team",
			Description: "For growing teams and agencies",
			Price: models.PlanPrice{
				Monthly: decimal.NewFromInt(99),
				Annual:  decimal.NewFromInt(990),
			},
			Features: []string{
				"1000 video minutes/month",
				"All Pro features",
				"Team collaboration",
				"Export in 4K",
				"Advanced analytics",
				"Priority support",
			},
			IsRecommended: true,
			IsTrial:       true,
			TrialDays:     14,
		},
	}
}
