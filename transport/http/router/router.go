package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"wearecars/config"
	"wearecars/internal/handlers/auth"
	"wearecars/internal/handlers/booking"
	"wearecars/internal/handlers/dashboard"
	"wearecars/internal/handlers/user"
	"wearecars/transport/http/middleware"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Booking   booking.Handler
	Dashboard dashboard.Handler
	User      user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole
	Config         *config.Config
}

// SetupRoutes mounts the versioned API behind the full middleware chain.
// Routes registered directly on the parent mux, such as the health check,
// stay outside of it.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Group(func(group chi.Router) {
		if r.Config.App.CORS.Enable {
			group.Use(cors.Handler(cors.Options{
				AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
				AllowedMethods:   r.Config.App.CORS.AllowedMethods,
				AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
				AllowCredentials: r.Config.App.CORS.AllowCredentials,
				MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
			}))
		}

		group.Use(r.AppMiddleware.Tracing)
		group.Use(r.AppMiddleware.RateLimit())

		group.Route("/v1", func(routerGroup chi.Router) {
			routerGroup.Use(r.AuthMiddleware.APIKey)
			routerGroup.Use(r.AuthMiddleware.Auth)
			routerGroup.Use(r.AuthMiddleware.RBAC)

			r.DomainHandlers.Auth.Router(routerGroup)
			r.DomainHandlers.Booking.Router(routerGroup)
			r.DomainHandlers.Dashboard.Router(routerGroup)
			r.DomainHandlers.User.Router(routerGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
		Config:         cfg,
	}
}
