package router

import (
	"cleanmatch/internal/handlers/analytics"
	"cleanmatch/internal/handlers/auth"
	"cleanmatch/internal/handlers/booking"
	"cleanmatch/internal/handlers/category"
	"cleanmatch/internal/handlers/service"
	"cleanmatch/internal/handlers/user"
	"cleanmatch/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	User      user.Handler
	Category  category.Handler
	Service   service.Handler
	Booking   booking.Handler
	Analytics analytics.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	middleware     middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.middleware.Auth)
		routerGroup.Use(r.middleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Category.Router(routerGroup)
		r.DomainHandlers.Service.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Analytics.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		middleware:     middleware,
	}
}
