package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"worko/internal/pkg/limiter"
	"worko/internal/pkg/logx"
	"worko/internal/pkg/resp"
)

// Per-IP budget for the public login/register routes.
const (
	AuthRate  = 0.5
	AuthBurst = 10
)

// Router builds the routing table: global middleware, the public validated
// routes, then the authentication gate in front of every protected route.
// The wildcard /{Id} lookup is registered inside the gate and chi matches
// static paths ahead of it.
func Router(deps *AppDeps) http.Handler {
	authLimiter := limiter.NewIPRateLimiter(rate.Limit(AuthRate), AuthBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, "success", map[string]string{
			"status":  "ok",
			"service": "worko-user-service",
		})
	})

	r.Route("/worko/user", func(u chi.Router) {
		u.With(authLimiter.Middleware).
			Get("/login", ValidatedBody[LoginInput](HandleLogin(deps)))
		u.With(authLimiter.Middleware).
			Post("/register", ValidatedBody[RegisterInput](HandleRegister(deps)))

		u.Group(func(p chi.Router) {
			p.Use(Authenticated(deps))

			p.Get("/logout", HandleLogout(deps))
			p.Get("/", HandleListUsers(deps))
			p.Get("/me", HandleGetSelf(deps))
			p.With(RequireValidID).Put("/put-update", HandlePutUpdate(deps))
			p.With(RequireValidID).Patch("/patch-update", HandlePatchUpdate(deps))
			p.With(RequireValidID).Delete("/delete-user", HandleDeleteUser(deps))
			p.Get("/{Id}", HandleGetUserByID(deps))
		})
	})

	return r
}
