package router

import (
	"elysian/internal/handlers/audit"
	"elysian/internal/handlers/auth"
	"elysian/internal/handlers/booking"
	"elysian/internal/handlers/guest"
	"elysian/internal/handlers/health"
	"elysian/internal/handlers/payment"
	"elysian/internal/handlers/report"
	"elysian/internal/handlers/room"
	"elysian/internal/handlers/roomtype"
	"elysian/internal/handlers/user"
	"elysian/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	RoomType roomtype.Handler
	Room     room.Handler
	Guest    guest.Handler
	Booking  booking.Handler
	Payment  payment.Handler
	Report   report.Handler
	Audit    audit.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.Tracing)
	router.Use(r.App.ClientIP)

	// Health stays outside /v1 so probes bypass auth and rate limiting.
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.App.RateLimit())
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Audit.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
