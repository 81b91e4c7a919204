package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/opusclip-demo/api/responses"
	"github.com/angelmondragon/opusclip-demo/api/validators"
	"github.com/angelmondragon/opusclip-demo/internal/appstate"
	"github.com/angelmondragon/opusclip-demo/internal/dataaccess"
	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

const maxTitleLen = 200

// projectsView is the projects slice plus the ordered list it describes.
type projectsView struct {
	appstate.ProjectsState
	Projects []models.Project `json:"projects"`
}

func viewOf(st appstate.ProjectsState) projectsView {
	return projectsView{ProjectsState: st, Projects: st.List()}
}

// ProjectsList fetches into the store and returns the cached slice. A fetch
// failure is reported in the error field, not as an error response.
func ProjectsList(store *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.FetchProjects(r.Context())
		responses.WriteSuccess(w, viewOf(store.Snapshot().Projects))
	}
}

func ProjectsRefresh(store *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.RefreshProjects(r.Context())
		responses.WriteSuccess(w, viewOf(store.Snapshot().Projects))
	}
}

func ProjectCreate(store *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var input models.CreateProjectInput
		if err := validators.DecodeOptionalJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input.Title = validators.SanitizeString(input.Title, maxTitleLen)

		project, err := store.CreateProject(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, project)
	}
}

func ProjectGet(data dataaccess.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		projectID, err := projectIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		project, err := data.GetProject(ctx, projectID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, project)
	}
}

func ProjectUpdate(store *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		projectID, err := projectIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var patch models.ProjectPatch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if patch.Title != nil {
			title := validators.SanitizeString(*patch.Title, maxTitleLen)
			patch.Title = &title
		}
		project, err := store.UpdateProject(ctx, projectID, patch)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, project)
	}
}

func ProjectDelete(store *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		projectID, err := projectIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := store.DeleteProject(ctx, projectID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func projectIDParam(r *http.Request) (string, error) {
	return pathParam(r, "projectId")
}

func pathParam(r *http.Request, name string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		return "", pkgerrors.Newf(pkgerrors.CodeValidation, "%s is required", name)
	}
	return value, nil
}
