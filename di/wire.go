//go:build wireinject
// +build wireinject

package di

import (
	"elysian/config"
	"elysian/infras/jwt"
	"elysian/infras/kafka"
	"elysian/infras/otel"
	"elysian/infras/postgres"
	"elysian/infras/redis"
	"elysian/internal/notifier"
	"elysian/permissions"
	"elysian/shared/cache"
	"elysian/transport/http"
	"elysian/transport/http/middleware"
	"elysian/transport/http/router"

	auditRepository "elysian/internal/domains/audit/repository"
	auditService "elysian/internal/domains/audit/service"
	authRepository "elysian/internal/domains/auth/repository"
	authService "elysian/internal/domains/auth/service"
	bookingRepository "elysian/internal/domains/booking/repository"
	bookingService "elysian/internal/domains/booking/service"
	guestRepository "elysian/internal/domains/guest/repository"
	guestService "elysian/internal/domains/guest/service"
	paymentRepository "elysian/internal/domains/payment/repository"
	paymentService "elysian/internal/domains/payment/service"
	reportRepository "elysian/internal/domains/report/repository"
	reportService "elysian/internal/domains/report/service"
	roomRepository "elysian/internal/domains/room/repository"
	roomService "elysian/internal/domains/room/service"
	roomtypeRepository "elysian/internal/domains/roomtype/repository"
	roomtypeService "elysian/internal/domains/roomtype/service"
	userRepository "elysian/internal/domains/user/repository"
	userService "elysian/internal/domains/user/service"

	auditHandler "elysian/internal/handlers/audit"
	authHandler "elysian/internal/handlers/auth"
	bookingHandler "elysian/internal/handlers/booking"
	guestHandler "elysian/internal/handlers/guest"
	healthHandler "elysian/internal/handlers/health"
	paymentHandler "elysian/internal/handlers/payment"
	reportHandler "elysian/internal/handlers/report"
	roomHandler "elysian/internal/handlers/room"
	roomtypeHandler "elysian/internal/handlers/roomtype"
	userHandler "elysian/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
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
	permissions.Get,
	notifier.New,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authRepository.New,
	authService.New,
)

var roomTypeDomain = wire.NewSet(
	roomtypeRepository.New,
	roomtypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentRepository.NewRoomCharge,
	paymentService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var domains = wire.NewSet(
	auditDomain,
	userDomain,
	authDomain,
	roomTypeDomain,
	roomDomain,
	guestDomain,
	bookingDomain,
	paymentDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomtypeHandler.New,
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	reportHandler.New,
	auditHandler.New,
	healthHandler.New,
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
