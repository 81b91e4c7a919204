package controllers

import (
	"net/http"

	"github.com/angelmondragon/opusclip-demo/api/responses"
	"github.com/angelmondragon/opusclip-demo/api/validators"
	"github.com/angelmondragon/opusclip-demo/internal/transition"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

type transitionStartPayload struct {
	Direction enums.TransitionDirection `json:"direction" validate:"required,oneof=forward backward"`
}

type navigatePayload struct {
	Href string `json:"href" validate:"required,max=2048"`
}

func TransitionGet(ctrl *transition.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, ctrl.State())
	}
}

func TransitionStart(ctrl *transition.Controller, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload transitionStartPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := ctrl.Start(ctx, payload.Direction); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, ctrl.State())
	}
}

// TransitionNavigate blocks for the navigation delay and answers with the
// committed location.
func TransitionNavigate(ctrl *transition.Controller, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload navigatePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		state, err := ctrl.Navigate(ctx, payload.Href)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}
