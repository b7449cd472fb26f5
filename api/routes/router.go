package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfigueira/counseldesk/api/controllers"
	"github.com/mfigueira/counseldesk/api/middleware"
	"github.com/mfigueira/counseldesk/internal/activity"
	"github.com/mfigueira/counseldesk/internal/advice"
	"github.com/mfigueira/counseldesk/internal/analytics"
	"github.com/mfigueira/counseldesk/internal/auth"
	"github.com/mfigueira/counseldesk/internal/faq"
	"github.com/mfigueira/counseldesk/internal/licenses"
	"github.com/mfigueira/counseldesk/internal/users"
	"github.com/mfigueira/counseldesk/pkg/config"
	"github.com/mfigueira/counseldesk/pkg/logger"
	"github.com/mfigueira/counseldesk/pkg/store"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config    *config.Config
	Logger    *logger.Logger
	Store     *store.Client
	Auth      *auth.Manager
	Recorder  *activity.Recorder
	Advice    *advice.Service
	Licenses  *licenses.Service
	FAQ       *faq.Service
	Analytics analytics.Service
	Users     *users.Repository
	Activity  *activity.Repository
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(d.Config))
		r.Get("/ready", controllers.HealthReady(d.Config, d.Logger, d.Store))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", controllers.AuthSignup(d.Auth, d.Logger))
			r.Post("/login", controllers.AuthLogin(d.Auth, d.Logger))
			r.Post("/logout", controllers.AuthLogout(d.Auth))
			r.Post("/restore", controllers.AuthRestore(d.Auth, d.Logger))
			r.Get("/me", controllers.AuthMe(d.Auth))
		})

		r.Post("/advice", controllers.Advice(d.Advice, d.Auth, d.Recorder, d.Logger))
		r.Get("/licenses", controllers.Licenses(d.Licenses, d.Auth, d.Recorder, d.Logger))
		r.Get("/licenses/options", controllers.LicenseOptions(d.Licenses))
		r.Get("/faq", controllers.FAQList(d.FAQ))
		r.Get("/faq/{id}", controllers.FAQView(d.FAQ, d.Auth, d.Recorder, d.Logger))

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(d.Auth, d.Logger))
			r.Get("/users", controllers.AdminListUsers(d.Users, d.Logger))
			r.Post("/users/{id}/active", controllers.AdminSetUserActive(d.Users, d.Logger))
			r.Get("/activities", controllers.AdminListActivities(d.Activity, d.Logger))
			r.Get("/analytics", controllers.AdminListAnalytics(d.Analytics, d.Logger))
			r.Get("/summary", controllers.AdminSummary(d.Analytics, d.Logger))
		})
	})

	return r
}
