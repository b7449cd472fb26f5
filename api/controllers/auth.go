package controllers

import (
	"net/http"

	"github.com/mfigueira/counseldesk/api/responses"
	"github.com/mfigueira/counseldesk/api/validators"
	"github.com/mfigueira/counseldesk/internal/auth"
	pkgerrors "github.com/mfigueira/counseldesk/pkg/errors"
	"github.com/mfigueira/counseldesk/pkg/logger"
)

// AuthSignup registers a visitor. The manager returns a structured result —
// success or a human-readable reason — which the kiosk UI reads directly, so
// policy failures are data rather than HTTP errors.
func AuthSignup(mgr *auth.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if mgr == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth manager unavailable"))
			return
		}

		var body auth.SignupRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, mgr.Signup(r.Context(), body))
	}
}

// AuthLogin authenticates the kiosk session.
func AuthLogin(mgr *auth.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if mgr == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth manager unavailable"))
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, mgr.Login(r.Context(), body.Email, body.Password))
	}
}

// AuthLogout ends the session. Always succeeds.
func AuthLogout(mgr *auth.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if mgr != nil {
			mgr.Logout()
		}
		responses.WriteSuccess(w, map[string]bool{"loggedOut": true})
	}
}

// AuthRestore attempts a session restore from the snapshot.
func AuthRestore(mgr *auth.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if mgr == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth manager unavailable"))
			return
		}
		restored := mgr.RestoreSession(r.Context())
		responses.WriteSuccess(w, map[string]any{
			"restored": restored,
			"user":     mgr.CurrentUser(),
		})
	}
}

// AuthMe returns the current session state.
func AuthMe(mgr *auth.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if mgr == nil {
			responses.WriteSuccess(w, map[string]any{"isLoggedIn": false})
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"isLoggedIn": mgr.IsLoggedIn(),
			"user":       mgr.CurrentUser(),
		})
	}
}
