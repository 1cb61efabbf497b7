package app

import (
	"context"
	"fmt"

	authService "bengkel/internal/domains/auth/service"
	bookingService "bengkel/internal/domains/booking/service"
	reportService "bengkel/internal/domains/report/service"
	userService "bengkel/internal/domains/user/service"
)

// App aggregates the services behind one handle for an embedding UI. All
// state lives in the local store, so two App instances over the same storage
// directory see the same data.
type App struct {
	Auth     authService.Auth
	Users    userService.User
	Bookings bookingService.Booking
	Reports  reportService.Report
}

// New builds the facade and seeds the default admin account so a fresh
// storage directory is usable immediately.
func New(auth authService.Auth, users userService.User, bookings bookingService.Booking, reports reportService.Report) (*App, error) {
	if err := users.EnsureDefaultAdmin(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed default admin: %w", err)
	}

	return &App{
		Auth:     auth,
		Users:    users,
		Bookings: bookings,
		Reports:  reports,
	}, nil
}
