package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/opusclip-demo/api/responses"
	"github.com/angelmondragon/opusclip-demo/api/validators"
	"github.com/angelmondragon/opusclip-demo/internal/analytics"
	"github.com/angelmondragon/opusclip-demo/internal/appstate"
	"github.com/angelmondragon/opusclip-demo/internal/exports"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

type playheadPayload struct {
	Time *float64 `json:"time" validate:"required,gte=0"`
}

type durationPayload struct {
	Duration *float64 `json:"duration" validate:"required,gte=0"`
}

type aspectPayload struct {
	Aspect enums.AspectRatio `json:"aspect" validate:"required,oneof=9:16 1:1 16:9"`
}

type selectionPayload struct {
	Start *float64 `json:"start" validate:"omitempty,gte=0"`
	End   *float64 `json:"end" validate:"omitempty,gte=0"`
}

type clipSelectionPayload struct {
	ClipID string `json:"clipId" validate:"max=120"`
}

type exportPayload struct {
	ProjectID  string                 `json:"projectId" validate:"max=120"`
	Resolution enums.ExportResolution `json:"resolution" validate:"omitempty,oneof=720p 1080p 4k"`
	FPS        int                    `json:"fps" validate:"omitempty,oneof=30 60"`
	Format     enums.ExportFormat     `json:"format" validate:"omitempty,oneof=mp4 mov avi"`
}

type keyResult struct {
	Shortcut appstate.Shortcut    `json:"shortcut"`
	Editor   appstate.EditorState `json:"editor"`
}

func EditorGet(store *appstate.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Snapshot().Editor)
	}
}

// EditorOpen loads a project into the editor session.
func EditorOpen(store *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		projectID, err := projectIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if _, err := store.OpenProject(ctx, projectID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, store.Snapshot().Editor)
	}
}

func EditorClose(store *appstate.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.CloseProject(r.Context())
		responses.WriteSuccess(w, store.Snapshot().Editor)
	}
}

// EditorAction runs one of the toolbar actions named by the {action} parameter.
func EditorAction(store *appstate.Store, events analytics.Recorder, logg *logger.Logger) http.HandlerFunc {
	simple := map[string]func(context.Context){
		"toggle-captions":  store.ToggleCaptions,
		"toggle-reframe":   store.ToggleReframe,
		"mark-in":          store.MarkIn,
		"mark-out":         store.MarkOut,
		"clear-selection":  store.ClearSelection,
		"toggle-shortcuts": store.ToggleKeyboardShortcuts,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		action, err := pathParam(r, "action")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		switch action {
		case "play":
			store.Play(ctx)
			recordEvent(ctx, events, logg, enums.AnalyticsEventEditorPlay, nil)
		case "pause":
			store.Pause(ctx)
			recordEvent(ctx, events, logg, enums.AnalyticsEventEditorPause, nil)
		case "toggle-play":
			store.TogglePlay(ctx)
			if store.Snapshot().Editor.Playing {
				recordEvent(ctx, events, logg, enums.AnalyticsEventEditorPlay, nil)
			} else {
				recordEvent(ctx, events, logg, enums.AnalyticsEventEditorPause, nil)
			}
		case "split":
			store.SplitAtPlayhead(ctx)
			recordEvent(ctx, events, logg, enums.AnalyticsEventEditorSplit, map[string]any{
				"time": store.Snapshot().Editor.CurrentTime,
			})
		case "save":
			if err := store.SaveProject(ctx); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		default:
			fn, ok := simple[action]
			if !ok {
				responses.WriteError(ctx, logg, w, pkgerrors.Newf(pkgerrors.CodeValidation, "unknown editor action %q", action))
				return
			}
			fn(ctx)
		}
		responses.WriteSuccess(w, store.Snapshot().Editor)
	}
}

func EditorPlayhead(store *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload playheadPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		store.SetCurrentTime(ctx, *payload.Time)
		responses.WriteSuccess(w, store.Snapshot().Editor)
	}
}

func EditorDuration(store *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload durationPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		store.SetDuration(ctx, *payload.Duration)
		responses.WriteSuccess(w, store.Snapshot().Editor)
	}
}

func EditorAspect(store *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload aspectPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := store.SetAspect(ctx, payload.Aspect); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, store.Snapshot().Editor)
	}
}

// EditorSelection sets both selection bounds; a missing bound is cleared.
func EditorSelection(store *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload selectionPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		store.SetSelectionStart(ctx, payload.Start)
		store.SetSelectionEnd(ctx, payload.End)
		responses.WriteSuccess(w, store.Snapshot().Editor)
	}
}

func EditorClip(store *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload clipSelectionPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		store.SelectClip(ctx, payload.ClipID)
		responses.WriteSuccess(w, store.Snapshot().Editor)
	}
}

func EditorKeys(store *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var key appstate.Key
		if err := validators.DecodeJSONBody(r, &key); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		shortcut, err := store.HandleKey(ctx, key)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, keyResult{Shortcut: shortcut, Editor: store.Snapshot().Editor})
	}
}

// EditorExport exports the named project, or the active one when none is named.
func EditorExport(store *appstate.Store, svc exports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var payload exportPayload
		if err := validators.DecodeOptionalJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		projectID := payload.ProjectID
		if projectID == "" {
			if active := store.Snapshot().Editor.ActiveProjectID; active != nil {
				projectID = *active
			}
		}
		if projectID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeStateConflict, "no project is open"))
			return
		}
		opts := exports.Options{Resolution: payload.Resolution, FPS: payload.FPS, Format: payload.Format}
		result, err := svc.Export(ctx, projectID, opts)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func recordEvent(ctx context.Context, events analytics.Recorder, logg *logger.Logger, eventType enums.AnalyticsEventType, payload map[string]any) {
	if events == nil {
		return
	}
	if _, err := events.LogEvent(ctx, eventType, payload); err != nil {
		logg.WarnErr(ctx, "analytics.record_failed", err)
	}
}
