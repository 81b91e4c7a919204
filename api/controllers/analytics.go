package controllers

import (
	"net/http"

	"github.com/angelmondragon/opusclip-demo/api/responses"
	"github.com/angelmondragon/opusclip-demo/api/validators"
	"github.com/angelmondragon/opusclip-demo/internal/analytics"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

type logEventPayload struct {
	Type    string         `json:"type" validate:"required,max=64"`
	Payload map[string]any `json:"payload"`
}

// AnalyticsEventsList returns the newest events, oldest first. ?limit trims
// the list to its tail.
func AnalyticsEventsList(log *analytics.Log, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, analytics.DefaultMaxEvents*10)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		events := log.Events(ctx)
		if limit > 0 && len(events) > limit {
			events = events[len(events)-limit:]
		}
		responses.WriteSuccess(w, events)
	}
}

func AnalyticsEventCreate(log *analytics.Log, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload logEventPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		event, err := log.LogEvent(ctx, enums.AnalyticsEventType(payload.Type), payload.Payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, event)
	}
}

func AnalyticsEventsClear(log *analytics.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Clear(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}
