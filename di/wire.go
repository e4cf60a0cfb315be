//go:build wireinject
// +build wireinject

package di

import (
	"condovia/config"
	"condovia/infras/jwt"
	"condovia/infras/kafka"
	"condovia/infras/otel"
	"condovia/infras/postgres"
	"condovia/infras/redis"
	"condovia/infras/s3"
	"condovia/permissions"
	"condovia/shared/cache"
	"condovia/transport/http"
	"condovia/transport/http/middleware"
	"condovia/transport/http/router"

	"github.com/google/wire"

	amenityRepository "condovia/internal/domains/amenity/repository"
	amenityService "condovia/internal/domains/amenity/service"
	announcementRepository "condovia/internal/domains/announcement/repository"
	announcementService "condovia/internal/domains/announcement/service"
	authService "condovia/internal/domains/auth/service"
	documentRepository "condovia/internal/domains/document/repository"
	documentService "condovia/internal/domains/document/service"
	requestRepository "condovia/internal/domains/request/repository"
	requestService "condovia/internal/domains/request/service"
	reservationRepository "condovia/internal/domains/reservation/repository"
	reservationService "condovia/internal/domains/reservation/service"
	userRepository "condovia/internal/domains/user/repository"
	userService "condovia/internal/domains/user/service"
	visitorRepository "condovia/internal/domains/visitor/repository"
	visitorService "condovia/internal/domains/visitor/service"

	amenityHandler "condovia/internal/handlers/amenity"
	announcementHandler "condovia/internal/handlers/announcement"
	authHandler "condovia/internal/handlers/auth"
	documentHandler "condovia/internal/handlers/document"
	requestHandler "condovia/internal/handlers/request"
	reservationHandler "condovia/internal/handlers/reservation"
	userHandler "condovia/internal/handlers/user"
	visitorHandler "condovia/internal/handlers/visitor"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var amenityDomain = wire.NewSet(
	amenityRepository.New,
	amenityService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var announcementDomain = wire.NewSet(
	announcementRepository.New,
	announcementService.New,
)

var requestDomain = wire.NewSet(
	requestRepository.New,
	requestService.New,
)

var visitorDomain = wire.NewSet(
	visitorRepository.New,
	visitorService.New,
)

var documentDomain = wire.NewSet(
	documentRepository.New,
	documentService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	amenityDomain,
	reservationDomain,
	announcementDomain,
	requestDomain,
	visitorDomain,
	documentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	amenityHandler.New,
	reservationHandler.New,
	announcementHandler.New,
	requestHandler.New,
	visitorHandler.New,
	documentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
