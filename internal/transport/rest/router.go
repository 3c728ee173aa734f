package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/cycletrack-backend/internal/transport/middleware"
)

// APIPrefix is the base path of every versioned endpoint.
const APIPrefix = "/api/v1"

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Auth    *AuthHandler
	Cycle   *CycleHandler
	Insight *InsightHandler
	User    *UserHandler
	Health  *HealthHandler
}

// Middlewares are the cross-cutting layers. Global wraps every route; Gate
// must skip the public auth and health paths itself. Nil entries are skipped.
type Middlewares struct {
	Global    []middleware.Middleware
	Gate      middleware.Middleware
	AuthLimit middleware.Middleware
	UserLimit middleware.Middleware
}

// NewRouter mounts every endpoint on a chi router.
func NewRouter(h Handlers, mw Middlewares) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(mw.Global...))
	use(r, mw.Gate)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			use(r, mw.AuthLimit)
			r.Post("/", h.Auth.Authenticate)
			r.Post("/logout", h.Auth.Logout)
		})

		r.Group(func(r chi.Router) {
			use(r, mw.UserLimit)

			r.Route("/cycles", func(r chi.Router) {
				r.Get("/current", h.Cycle.GetCurrent)
				r.Post("/periods", h.Cycle.RecordEvent)
				r.Get("/periods", h.Cycle.ListPeriods)
				r.Get("/periods/{id}", h.Cycle.GetPeriod)
				r.Post("/symptoms", h.Cycle.LogSymptom)
				r.Get("/symptoms", h.Cycle.ListSymptoms)
			})

			r.Get("/dashboard", h.Insight.Dashboard)

			r.Route("/predictions", func(r chi.Router) {
				r.Get("/cycle-stats", h.Insight.CycleStats)
				r.Post("/next-period", h.Insight.RefreshPrediction)
				r.Get("/next-period", h.Insight.GetPrediction)
			})

			r.Route("/users", func(r chi.Router) {
				r.Put("/details", h.User.SaveDetails)
				r.Get("/details", h.User.GetProfile)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return r
}

func use(r chi.Router, m middleware.Middleware) {
	if m != nil {
		r.Use(m)
	}
}
