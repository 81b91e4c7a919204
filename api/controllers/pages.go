package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/opusclip-demo/api/responses"
	"github.com/angelmondragon/opusclip-demo/internal/analytics"
	"github.com/angelmondragon/opusclip-demo/internal/appstate"
	"github.com/angelmondragon/opusclip-demo/internal/dataaccess"
	"github.com/angelmondragon/opusclip-demo/internal/transition"
	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

// PageDeps are the collaborators the page routes read from.
type PageDeps struct {
	Data       dataaccess.Service
	Store      *appstate.Store
	Analytics  analytics.Recorder
	Transition *transition.Controller
}

// pageResponse is what every page route returns: the page name, the transition
// state after the location was observed, and the data the page renders.
type pageResponse struct {
	Page       string           `json:"page"`
	Transition transition.State `json:"transition"`
	Data       any              `json:"data"`
}

type homePage struct {
	Logos    []models.Logo         `json:"logos"`
	Features []models.FeatureCard  `json:"features"`
	Workflow []models.WorkflowItem `json:"workflow"`
	Plans    []models.Plan         `json:"plans"`
}

type onboardingPage struct {
	Onboarding appstate.OnboardingState `json:"onboarding"`
	Plans      []models.Plan            `json:"plans"`
}

type dashboardPage struct {
	Profile        models.UserProfile     `json:"profile"`
	Projects       projectsView           `json:"projects"`
	SocialAccounts []models.SocialAccount `json:"socialAccounts"`
	Workflow       []models.WorkflowItem  `json:"workflow"`
}

type editorPage struct {
	Project  models.Project           `json:"project"`
	Clips    []models.Clip            `json:"clips"`
	Timeline []models.TimelineSegment `json:"timeline"`
	Captions []models.CaptionBlock    `json:"captions"`
	Editor   appstate.EditorState     `json:"editor"`
}

type pageLoader func(ctx context.Context, r *http.Request) (any, error)

func page(deps PageDeps, logg *logger.Logger, name string, load pageLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithField(r.Context(), "page", name)
		data, err := load(ctx, r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		state := deps.Transition.Observe(ctx, r.URL.RequestURI())
		if deps.Analytics != nil {
			if _, err := deps.Analytics.LogEvent(ctx, enums.AnalyticsEventPageView, map[string]any{"page": name, "path": r.URL.Path}); err != nil {
				logg.WarnErr(ctx, "analytics.record_failed", err)
			}
		}
		responses.WriteSuccess(w, pageResponse{Page: name, Transition: state, Data: data})
	}
}

func PageHome(deps PageDeps, logg *logger.Logger) http.HandlerFunc {
	return page(deps, logg, "home", func(ctx context.Context, _ *http.Request) (any, error) {
		var out homePage
		var err error
		if out.Logos, err = deps.Data.ListLogos(ctx); err != nil {
			return nil, err
		}
		if out.Features, err = deps.Data.ListFeatures(ctx); err != nil {
			return nil, err
		}
		if out.Workflow, err = deps.Data.ListWorkflow(ctx); err != nil {
			return nil, err
		}
		if out.Plans, err = deps.Data.ListPlans(ctx); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func PagePricing(deps PageDeps, logg *logger.Logger) http.HandlerFunc {
	return page(deps, logg, "pricing", func(ctx context.Context, _ *http.Request) (any, error) {
		return deps.Data.ListPlans(ctx)
	})
}

func PageOnboarding(deps PageDeps, logg *logger.Logger) http.HandlerFunc {
	return page(deps, logg, "onboarding", func(ctx context.Context, _ *http.Request) (any, error) {
		plans, err := deps.Data.ListPlans(ctx)
		if err != nil {
			return nil, err
		}
		return onboardingPage{Onboarding: deps.Store.Snapshot().Onboarding, Plans: plans}, nil
	})
}

func PageDashboard(deps PageDeps, logg *logger.Logger) http.HandlerFunc {
	return page(deps, logg, "dashboard", func(ctx context.Context, _ *http.Request) (any, error) {
		var out dashboardPage
		var err error
		if out.Profile, err = deps.Data.GetProfile(ctx); err != nil {
			return nil, err
		}
		deps.Store.FetchProjects(ctx)
		out.Projects = viewOf(deps.Store.Snapshot().Projects)
		if out.SocialAccounts, err = deps.Data.ListSocialAccounts(ctx); err != nil {
			return nil, err
		}
		if out.Workflow, err = deps.Data.ListWorkflow(ctx); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// PageEditor opens the project in the editor session, selects its first clip
// and returns the clips, the timeline and that clip's captions.
func PageEditor(deps PageDeps, logg *logger.Logger) http.HandlerFunc {
	return page(deps, logg, "editor", func(ctx context.Context, r *http.Request) (any, error) {
		projectID, err := projectIDParam(r)
		if err != nil {
			return nil, err
		}
		ctx = logg.WithProjectID(ctx, projectID)

		var out editorPage
		if out.Project, err = deps.Store.OpenProject(ctx, projectID); err != nil {
			return nil, err
		}
		if out.Clips, err = deps.Data.ListClips(ctx, projectID); err != nil {
			return nil, err
		}
		if out.Timeline, err = deps.Data.ListTimeline(ctx, projectID); err != nil {
			return nil, err
		}

		out.Captions = []models.CaptionBlock{}
		if len(out.Clips) > 0 {
			deps.Store.SelectClip(ctx, out.Clips[0].ID)
			if out.Captions, err = deps.Data.ListCaptions(ctx, out.Clips[0].ID); err != nil {
				return nil, err
			}
		}
		out.Editor = deps.Store.Snapshot().Editor
		return out, nil
	})
}
