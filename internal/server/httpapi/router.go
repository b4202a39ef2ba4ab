package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
	"moul.io/chizap"

	"github.com/crewhive/crewhive/internal/server/auth"
)

// NewRouter assembles the full API surface: request logging, recovery,
// per-IP rate limiting, a health probe, and the versionless /api tree with
// bearer auth on everything except sign-in and refresh.
func NewRouter(
	logger *zap.Logger,
	tokens *auth.Manager,
	authH *AuthHandler,
	usersH *UsersHandler,
	calendarH *CalendarHandler,
	rateLimit int,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(chizap.New(logger, &chizap.Opts{WithReferer: false, WithUserAgent: false}))
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(rateLimit, time.Minute))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", authH.Routes())

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(tokens))
			r.Mount("/users", usersH.Routes())
			r.Mount("/events", calendarH.EventRoutes())
			r.Mount("/shifts", calendarH.ShiftRoutes())
		})
	})

	return r
}
