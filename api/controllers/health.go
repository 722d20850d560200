package controllers

import (
	"context"
	"net/http"

	"github.com/hobfurniture/orderdesk-backend/api/responses"
	"github.com/hobfurniture/orderdesk-backend/pkg/config"
	pkgerrors "github.com/hobfurniture/orderdesk-backend/pkg/errors"
	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
)

// Pinger is the health-check surface of the snapshot backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive reports process liveness.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-OrderDesk-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// HealthReady reports whether the snapshot backend is reachable. Persistence
// is best-effort, so a failing backend degrades readiness without affecting
// the editing surface.
func HealthReady(cfg *config.Config, logg *logger.Logger, backend Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if backend != nil {
			if err := backend.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "snapshot backend unreachable"))
				return
			}
		}
		w.Header().Set("X-OrderDesk-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
