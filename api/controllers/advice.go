package controllers

import (
	"net/http"

	"github.com/mfigueira/counseldesk/api/middleware"
	"github.com/mfigueira/counseldesk/api/responses"
	"github.com/mfigueira/counseldesk/api/validators"
	"github.com/mfigueira/counseldesk/internal/activity"
	"github.com/mfigueira/counseldesk/internal/advice"
	"github.com/mfigueira/counseldesk/pkg/logger"
	"github.com/mfigueira/counseldesk/pkg/store/models"
)

// AdviceRequest is the advice panel's query payload.
type AdviceRequest struct {
	Question string `json:"question" validate:"required"`
}

// Advice answers a legal question from the canned topic table. Usage is
// recorded best-effort for signed-in visitors; the answer renders regardless
// of whether recording succeeds.
func Advice(svc *advice.Service, session middleware.SessionReader, rec *activity.Recorder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body AdviceRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := svc.Respond(body.Question)

		if rec != nil && session != nil && session.IsLoggedIn() {
			user := session.CurrentUser()
			rec.RecordActivity(r.Context(), user.ID, models.ActivityLegalQuery, "Asked: "+body.Question)
			rec.RecordAnalytics(r.Context(), models.EventLegalQuery, models.Attributes{
				"topic":   resp.Topic,
				"matched": resp.Matched,
			})
		}

		responses.WriteSuccess(w, resp)
	}
}
