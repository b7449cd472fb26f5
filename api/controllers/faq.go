package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mfigueira/counseldesk/api/middleware"
	"github.com/mfigueira/counseldesk/api/responses"
	"github.com/mfigueira/counseldesk/internal/activity"
	"github.com/mfigueira/counseldesk/internal/faq"
	pkgerrors "github.com/mfigueira/counseldesk/pkg/errors"
	"github.com/mfigueira/counseldesk/pkg/logger"
	"github.com/mfigueira/counseldesk/pkg/store/models"
)

// FAQList returns every FAQ entry.
func FAQList(svc *faq.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, svc.List())
	}
}

// FAQView returns one FAQ entry and records the view.
func FAQView(svc *faq.Service, session middleware.SessionReader, rec *activity.Recorder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid faq id"))
			return
		}

		entry, ok := svc.View(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "faq entry not found"))
			return
		}

		if rec != nil && session != nil && session.IsLoggedIn() {
			user := session.CurrentUser()
			rec.RecordActivity(r.Context(), user.ID, models.ActivityFAQView, "Viewed FAQ: "+entry.Question)
			rec.RecordAnalytics(r.Context(), models.EventFAQView, models.Attributes{"faqId": entry.ID})
		}

		responses.WriteSuccess(w, entry)
	}
}
