package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/opusclip-demo/api/responses"
	"github.com/angelmondragon/opusclip-demo/internal/dataaccess"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

// CatalogList serves one of the read-only marketing catalogs named by the
// {catalog} path parameter.
func CatalogList(data dataaccess.Service, logg *logger.Logger) http.HandlerFunc {
	loaders := map[string]func(context.Context) (any, error){
		"plans":    func(ctx context.Context) (any, error) { return data.ListPlans(ctx) },
		"logos":    func(ctx context.Context) (any, error) { return data.ListLogos(ctx) },
		"features": func(ctx context.Context) (any, error) { return data.ListFeatures(ctx) },
		"workflow": func(ctx context.Context) (any, error) { return data.ListWorkflow(ctx) },
		"social":   func(ctx context.Context) (any, error) { return data.ListSocialAccounts(ctx) },
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		name, err := pathParam(r, "catalog")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		load, ok := loaders[name]
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.NotFound("catalog", name))
			return
		}
		items, err := load(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}
