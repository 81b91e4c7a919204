package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/opusclip-demo/api/controllers"
	"github.com/angelmondragon/opusclip-demo/api/middleware"
	"github.com/angelmondragon/opusclip-demo/internal/analytics"
	"github.com/angelmondragon/opusclip-demo/internal/appstate"
	"github.com/angelmondragon/opusclip-demo/internal/dataaccess"
	"github.com/angelmondragon/opusclip-demo/internal/exports"
	"github.com/angelmondragon/opusclip-demo/internal/transition"
	"github.com/angelmondragon/opusclip-demo/internal/uploads"
	"github.com/angelmondragon/opusclip-demo/pkg/config"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

// Deps are the services the HTTP surface is wired to. Gatherer may be nil, in
// which case /metrics is not mounted.
type Deps struct {
	Config     *config.Config
	Logger     *logger.Logger
	Storage    controllers.Pinger
	Gatherer   prometheus.Gatherer
	Data       dataaccess.Service
	Store      *appstate.Store
	Transition *transition.Controller
	Analytics  *analytics.Log
	Uploads    uploads.Service
	Exports    exports.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.Storage, logg))
	})

	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	if cfg.App.EnableDebug {
		r.Route("/api/debug", func(r chi.Router) {
			r.Get("/reset", controllers.DebugReset(deps.Data, logg))
			r.Get("/seed", controllers.DebugSeed(deps.Data, logg))
		})
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/profile", controllers.ProfileGet(deps.Data, logg))
		r.Patch("/profile", controllers.ProfileUpdate(deps.Data, logg))

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", controllers.ProjectsList(deps.Store, logg))
			r.Post("/", controllers.ProjectCreate(deps.Store, logg))
			r.Post("/refresh", controllers.ProjectsRefresh(deps.Store, logg))
			r.Route("/{projectId}", func(r chi.Router) {
				r.Get("/", controllers.ProjectGet(deps.Data, logg))
				r.Patch("/", controllers.ProjectUpdate(deps.Store, logg))
				r.Delete("/", controllers.ProjectDelete(deps.Store, logg))
				r.Get("/clips", controllers.ClipsList(deps.Data, logg))
				r.Patch("/clips/{clipId}", controllers.ClipUpdate(deps.Data, logg))
				r.Get("/timeline", controllers.TimelineList(deps.Data, logg))
			})
		})
		r.Get("/clips/{clipId}/captions", controllers.CaptionsList(deps.Data, logg))
		r.Get("/catalog/{catalog}", controllers.CatalogList(deps.Data, logg))

		r.Route("/editor", func(r chi.Router) {
			r.Get("/", controllers.EditorGet(deps.Store))
			r.Post("/open/{projectId}", controllers.EditorOpen(deps.Store, logg))
			r.Post("/close", controllers.EditorClose(deps.Store))
			r.Post("/actions/{action}", controllers.EditorAction(deps.Store, deps.Analytics, logg))
			r.Put("/playhead", controllers.EditorPlayhead(deps.Store, logg))
			r.Put("/duration", controllers.EditorDuration(deps.Store, logg))
			r.Put("/aspect", controllers.EditorAspect(deps.Store, logg))
			r.Put("/selection", controllers.EditorSelection(deps.Store, logg))
			r.Put("/clip", controllers.EditorClip(deps.Store, logg))
			r.Post("/keys", controllers.EditorKeys(deps.Store, logg))
			r.Post("/export", controllers.EditorExport(deps.Store, deps.Exports, logg))
		})

		r.Route("/onboarding", func(r chi.Router) {
			r.Get("/", controllers.OnboardingGet(deps.Store))
			r.Put("/", controllers.OnboardingUpdate(deps.Store, logg))
			r.Post("/complete", controllers.OnboardingComplete(deps.Store, deps.Analytics, cfg.Onboarding, logg))
			r.Post("/reset", controllers.OnboardingReset(deps.Store, cfg.Onboarding))
		})

		r.Route("/transition", func(r chi.Router) {
			r.Get("/", controllers.TransitionGet(deps.Transition))
			r.Post("/start", controllers.TransitionStart(deps.Transition, logg))
			r.Post("/navigate", controllers.TransitionNavigate(deps.Transition, logg))
		})

		r.Route("/analytics/events", func(r chi.Router) {
			r.Get("/", controllers.AnalyticsEventsList(deps.Analytics, logg))
			r.Post("/", controllers.AnalyticsEventCreate(deps.Analytics, logg))
			r.Delete("/", controllers.AnalyticsEventsClear(deps.Analytics))
		})

		r.Post("/uploads", controllers.UploadCreate(deps.Uploads, logg))
	})

	pages := controllers.PageDeps{
		Data:       deps.Data,
		Store:      deps.Store,
		Analytics:  deps.Analytics,
		Transition: deps.Transition,
	}
	r.Group(func(r chi.Router) {
		r.Use(middleware.OnboardingGate(cfg.Onboarding, logg))
		r.Get("/", controllers.PageHome(pages, logg))
		r.Get("/pricing", controllers.PagePricing(pages, logg))
		r.Get("/onboarding", controllers.PageOnboarding(pages, logg))
		r.Get("/dashboard", controllers.PageDashboard(pages, logg))
		r.Get("/editor/{projectId}", controllers.PageEditor(pages, logg))
	})

	return r
}
