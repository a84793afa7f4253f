package router

import (
	"net/http"
	"strings"

	"github.com/canvasslabs/canvassd/internal/pkg/config"
)

// middlewareMaintenance returns 503 for routes listed in
// app.maintenance.endpoints, letting operators fence off an endpoint
// without a redeploy.
func middlewareMaintenance(cfg config.Config) Middleware {
	blockedRoutes := make(map[string]struct{})
	if cfg != nil {
		for _, endpoint := range cfg.GetArray("app.maintenance.endpoints") {
			endpoint = strings.TrimSpace(endpoint)
			if endpoint == "" {
				continue
			}
			blockedRoutes[endpoint] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, blocked := blockedRoutes[routePattern(r)]; blocked {
				writeJSON(w, errorResponse{Error: "service is under maintenance"}, http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
