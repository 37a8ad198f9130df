//go:build wireinject
// +build wireinject

package di

import (
	"cleanmatch/config"
	"cleanmatch/infras/jwt"
	"cleanmatch/infras/kafka"
	"cleanmatch/infras/otel"
	"cleanmatch/infras/postgres"
	"cleanmatch/infras/redis"
	"cleanmatch/permissions"
	"cleanmatch/shared/cache"
	"cleanmatch/transport/http"
	"cleanmatch/transport/http/middleware"
	"cleanmatch/transport/http/router"

	userRepository "cleanmatch/internal/domains/user/repository"
	userService "cleanmatch/internal/domains/user/service"

	authService "cleanmatch/internal/domains/auth/service"

	categoryRepository "cleanmatch/internal/domains/category/repository"
	categoryService "cleanmatch/internal/domains/category/service"

	serviceRepository "cleanmatch/internal/domains/service/repository"
	serviceService "cleanmatch/internal/domains/service/service"

	bookingRepository "cleanmatch/internal/domains/booking/repository"
	bookingService "cleanmatch/internal/domains/booking/service"

	analyticsService "cleanmatch/internal/domains/analytics/service"

	analyticsHandler "cleanmatch/internal/handlers/analytics"
	authHandler "cleanmatch/internal/handlers/auth"
	bookingHandler "cleanmatch/internal/handlers/booking"
	categoryHandler "cleanmatch/internal/handlers/category"
	serviceHandler "cleanmatch/internal/handlers/service"
	userHandler "cleanmatch/internal/handlers/user"

	"github.com/google/wire"
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
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var categoryDomain = wire.NewSet(
	categoryRepository.New,
	categoryService.New,
)

var serviceDomain = wire.NewSet(
	serviceRepository.New,
	serviceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var analyticsDomain = wire.NewSet(
	analyticsService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	categoryDomain,
	serviceDomain,
	bookingDomain,
	analyticsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	categoryHandler.New,
	serviceHandler.New,
	bookingHandler.New,
	analyticsHandler.New,
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
