package middleware

import (
	"net/http"

	"github.com/mfigueira/counseldesk/api/responses"
	pkgerrors "github.com/mfigueira/counseldesk/pkg/errors"
	"github.com/mfigueira/counseldesk/pkg/logger"
	"github.com/mfigueira/counseldesk/pkg/store/models"
)

// SessionReader is the read-only auth surface the guards need.
type SessionReader interface {
	IsLoggedIn() bool
	CurrentUser() *models.User
}

// RequireLogin rejects requests while the kiosk session is Anonymous.
func RequireLogin(mgr SessionReader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if mgr == nil || !mgr.IsLoggedIn() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin additionally checks the session user's admin flag. The flag
// was fixed at signup time; it is not re-derived here.
func RequireAdmin(mgr SessionReader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if mgr == nil || !mgr.IsLoggedIn() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required"))
				return
			}
			user := mgr.CurrentUser()
			if user == nil || !user.IsAdmin {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin access required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
