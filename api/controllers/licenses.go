package controllers

import (
	"net/http"

	"github.com/mfigueira/counseldesk/api/middleware"
	"github.com/mfigueira/counseldesk/api/responses"
	"github.com/mfigueira/counseldesk/internal/activity"
	"github.com/mfigueira/counseldesk/internal/licenses"
	"github.com/mfigueira/counseldesk/pkg/logger"
	"github.com/mfigueira/counseldesk/pkg/store/models"
)

// Licenses looks up business-license requirements by state and category.
func Licenses(svc *licenses.Service, session middleware.SessionReader, rec *activity.Recorder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")
		category := r.URL.Query().Get("category")

		result := svc.Search(state, category)

		if rec != nil && session != nil && session.IsLoggedIn() {
			user := session.CurrentUser()
			rec.RecordActivity(r.Context(), user.ID, models.ActivityLicenseSearch,
				"Searched licenses: "+result.Category+" in "+result.State)
			rec.RecordAnalytics(r.Context(), models.EventLicenseSearch, models.Attributes{
				"state":    result.State,
				"category": result.Category,
				"found":    result.Found,
			})
		}

		responses.WriteSuccess(w, result)
	}
}

// LicenseOptions lists the states and categories the finder knows.
func LicenseOptions(svc *licenses.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"states":     svc.States(),
			"categories": svc.Categories(),
		})
	}
}
