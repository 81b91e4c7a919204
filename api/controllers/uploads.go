package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/opusclip-demo/api/responses"
	"github.com/angelmondragon/opusclip-demo/api/validators"
	"github.com/angelmondragon/opusclip-demo/internal/uploads"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

// UploadCreate runs the hero upload flow and answers with the new project.
func UploadCreate(svc uploads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req uploads.Request
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		req.URL = strings.TrimSpace(req.URL)
		req.FileName = validators.SanitizeString(req.FileName, 255)

		project, err := svc.Upload(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, project)
	}
}
