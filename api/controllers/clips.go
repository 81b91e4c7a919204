package controllers

import (
	"net/http"

	"github.com/angelmondragon/opusclip-demo/api/responses"
	"github.com/angelmondragon/opusclip-demo/api/validators"
	"github.com/angelmondragon/opusclip-demo/internal/dataaccess"
	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

func ClipsList(data dataaccess.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		projectID, err := projectIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		clips, err := data.ListClips(ctx, projectID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, clips)
	}
}

func ClipUpdate(data dataaccess.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		projectID, err := projectIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		clipID, err := pathParam(r, "clipId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var patch models.ClipPatch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if patch.Start != nil && patch.End != nil && *patch.End < *patch.Start {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "end must not be before start"))
			return
		}
		clip, err := data.UpdateClip(ctx, projectID, clipID, patch)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, clip)
	}
}

func CaptionsList(data dataaccess.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		clipID, err := pathParam(r, "clipId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		captions, err := data.ListCaptions(ctx, clipID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, captions)
	}
}

func TimelineList(data dataaccess.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		projectID, err := projectIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		segments, err := data.ListTimeline(ctx, projectID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, segments)
	}
}
