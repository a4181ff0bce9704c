//go:build wireinject
// +build wireinject

package di

import (
	"wearecars/config"
	"wearecars/infras/jwt"
	"wearecars/infras/kafka"
	"wearecars/infras/otel"
	"wearecars/infras/postgres"
	"wearecars/infras/redis"
	"wearecars/permissions"
	"wearecars/shared/cache"
	"wearecars/transport/http"
	"wearecars/transport/http/middleware"
	"wearecars/transport/http/router"

	"github.com/google/wire"

	authService "wearecars/internal/domains/auth/service"
	bookingRepository "wearecars/internal/domains/booking/repository"
	bookingService "wearecars/internal/domains/booking/service"
	"wearecars/internal/domains/dashboard/feed"
	dashboardService "wearecars/internal/domains/dashboard/service"
	userRepository "wearecars/internal/domains/user/repository"
	userService "wearecars/internal/domains/user/service"

	authHandler "wearecars/internal/handlers/auth"
	bookingHandler "wearecars/internal/handlers/booking"
	dashboardHandler "wearecars/internal/handlers/dashboard"
	userHandler "wearecars/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
	feed.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	dashboardDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	dashboardHandler.New,
	userHandler.New,
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
