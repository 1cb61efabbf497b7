//go:build wireinject
// +build wireinject

package di

import (
	"bengkel/app"
	"bengkel/config"
	"bengkel/infras/localstore"
	"bengkel/infras/otel"
	"bengkel/shared/cache"

	authRepository "bengkel/internal/domains/auth/repository"
	authService "bengkel/internal/domains/auth/service"
	bookingRepository "bengkel/internal/domains/booking/repository"
	bookingService "bengkel/internal/domains/booking/service"
	reportService "bengkel/internal/domains/report/service"
	userRepository "bengkel/internal/domains/user/repository"
	userService "bengkel/internal/domains/user/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	localstore.New,
)

var sharedHelpers = wire.NewSet(
	cache.NewMemoryCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var authDomain = wire.NewSet(
	authRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	userDomain,
	bookingDomain,
	reportDomain,
	authDomain,
)

func InitializeApp() (*app.App, error) {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		app.New,
	)

	return &app.App{}, nil
}
