package controllers

import (
	"net/http"

	"github.com/mfigueira/counseldesk/api/responses"
	"github.com/mfigueira/counseldesk/pkg/config"
	pkgerrors "github.com/mfigueira/counseldesk/pkg/errors"
	"github.com/mfigueira/counseldesk/pkg/logger"
	"github.com/mfigueira/counseldesk/pkg/store"
)

// HealthLive reports process liveness.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"status": "ok",
			"env":    cfg.App.Env,
		})
	}
}

// HealthReady verifies the embedded store is reachable.
func HealthReady(cfg *config.Config, logg *logger.Logger, storeP store.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if storeP == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeStoreUnavailable, "store not wired"))
			return
		}
		if err := storeP.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "store unreachable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
