package router

import (
	"condovia/internal/handlers/amenity"
	"condovia/internal/handlers/announcement"
	"condovia/internal/handlers/auth"
	"condovia/internal/handlers/document"
	"condovia/internal/handlers/request"
	"condovia/internal/handlers/reservation"
	"condovia/internal/handlers/user"
	"condovia/internal/handlers/visitor"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Amenity      amenity.Handler
	Reservation  reservation.Handler
	Announcement announcement.Handler
	Request      request.Handler
	Visitor      visitor.Handler
	Document     document.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Amenity.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Announcement.Router(routerGroup)
		r.DomainHandlers.Request.Router(routerGroup)
		r.DomainHandlers.Visitor.Router(routerGroup)
		r.DomainHandlers.Document.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
