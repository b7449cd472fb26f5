package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mfigueira/counseldesk/api/responses"
	"github.com/mfigueira/counseldesk/api/validators"
	"github.com/mfigueira/counseldesk/internal/activity"
	"github.com/mfigueira/counseldesk/internal/analytics"
	"github.com/mfigueira/counseldesk/internal/users"
	pkgerrors "github.com/mfigueira/counseldesk/pkg/errors"
	"github.com/mfigueira/counseldesk/pkg/logger"
)

// AdminListUsers returns every registered user.
func AdminListUsers(repo *users.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := repo.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// SetActiveRequest toggles a user's active flag.
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// AdminSetUserActive deactivates or reactivates an account. Deactivated
// accounts fail login with an account-deactivated message.
func AdminSetUserActive(repo *users.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		var body SetActiveRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := repo.SetActive(r.Context(), uint(id), *body.Active); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"userId": id, "active": *body.Active})
	}
}

// AdminListActivities returns the activity trail for one user id. The id is
// not checked against the users collection; an unknown id simply yields an
// empty list.
func AdminListActivities(repo *activity.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseUint(r.URL.Query().Get("user_id"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "user_id query parameter required"))
			return
		}
		list, err := repo.ListForUser(r.Context(), uint(userID))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// AdminListAnalytics returns the raw events carrying one type.
func AdminListAnalytics(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventType := r.URL.Query().Get("type")
		if eventType == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "type query parameter required"))
			return
		}
		list, err := svc.ListByType(r.Context(), eventType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// AdminSummary returns the aggregate usage report.
func AdminSummary(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Summary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}
