package controllers

import (
	"net/http"

	"github.com/angelmondragon/opusclip-demo/api/responses"
	"github.com/angelmondragon/opusclip-demo/api/validators"
	"github.com/angelmondragon/opusclip-demo/internal/analytics"
	"github.com/angelmondragon/opusclip-demo/internal/appstate"
	"github.com/angelmondragon/opusclip-demo/pkg/config"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

type onboardingPayload struct {
	Reasons *[]string               `json:"reasons" validate:"omitempty,max=20,dive,max=200"`
	Role    *string                 `json:"role" validate:"omitempty,max=100"`
	Plan    *string                 `json:"plan" validate:"omitempty,max=100"`
	Status  *enums.OnboardingStatus `json:"status" validate:"omitempty,oneof=not-started in-progress completed"`
}

func OnboardingGet(store *appstate.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Snapshot().Onboarding)
	}
}

// OnboardingUpdate applies the fields present in the body.
func OnboardingUpdate(store *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload onboardingPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if payload.Status != nil {
			if err := store.SetStatus(ctx, *payload.Status); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		}
		if payload.Reasons != nil {
			store.SetReasons(ctx, *payload.Reasons)
		}
		if payload.Role != nil {
			store.SetRole(ctx, *payload.Role)
		}
		if payload.Plan != nil {
			store.SetPlan(ctx, *payload.Plan)
		}
		responses.WriteSuccess(w, store.Snapshot().Onboarding)
	}
}

// OnboardingComplete stores the wizard answers and sets the completion cookie
// the onboarding gate checks.
func OnboardingComplete(store *appstate.Store, events analytics.Recorder, cfg config.OnboardingConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var answers appstate.Answers
		if err := validators.DecodeOptionalJSONBody(r, &answers); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		state := store.CompleteOnboarding(ctx, answers)
		recordEvent(ctx, events, logg, enums.AnalyticsEventOnboardingDone, map[string]any{
			"role": state.Role,
			"plan": state.Plan,
		})
		http.SetCookie(w, &http.Cookie{
			Name:     cfg.CookieName,
			Value:    "true",
			Path:     "/",
			MaxAge:   int(cfg.CookieMaxAge.Seconds()),
			SameSite: http.SameSiteLaxMode,
		})
		responses.WriteSuccess(w, state)
	}
}

// OnboardingReset restores the defaults and expires the completion cookie.
func OnboardingReset(store *appstate.Store, cfg config.OnboardingConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.ResetOnboarding(r.Context())
		http.SetCookie(w, &http.Cookie{
			Name:   cfg.CookieName,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
		responses.WriteSuccess(w, store.Snapshot().Onboarding)
	}
}
