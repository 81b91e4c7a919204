package controllers

import (
	"net/http"

	"github.com/angelmondragon/opusclip-demo/api/responses"
	"github.com/angelmondragon/opusclip-demo/internal/dataaccess"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

// DebugReset restores the seed tables.
func DebugReset(data dataaccess.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := data.Reset(ctx); err != nil {
			responses.WriteDebugError(ctx, logg, w, err)
			return
		}
		logg.Info(ctx, "debug.reset")
		responses.WriteDebugSuccess(w)
	}
}

// DebugSeed resets, then loads the tables back from storage.
func DebugSeed(data dataaccess.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := data.Reset(ctx); err != nil {
			responses.WriteDebugError(ctx, logg, w, err)
			return
		}
		if err := data.Initialize(ctx); err != nil {
			responses.WriteDebugError(ctx, logg, w, err)
			return
		}
		logg.Info(ctx, "debug.seed")
		responses.WriteDebugSuccess(w)
	}
}
