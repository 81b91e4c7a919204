package middleware

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/opusclip-demo/pkg/config"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

// OnboardingPath is where unfinished visitors are sent.
const OnboardingPath = "/onboarding"

// OnboardingGate redirects requests under a protected prefix to the onboarding
// page until the completion cookie is present. A disabled gate passes everything.
func OnboardingGate(cfg config.OnboardingConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.GateEnabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isProtected(r.URL.Path, cfg.ProtectedPrefixes) || hasCompleted(r, cfg.CookieName) {
				next.ServeHTTP(w, r)
				return
			}
			if logg != nil {
				logg.Debug(logg.WithField(r.Context(), "path", r.URL.Path), "onboarding.redirect")
			}
			http.Redirect(w, r, OnboardingPath, http.StatusTemporaryRedirect)
		})
	}
}

func isProtected(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
		if prefix == "" {
			continue
		}
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

func hasCompleted(r *http.Request, name string) bool {
	cookie, err := r.Cookie(name)
	return err == nil && cookie.Value == "true"
}
