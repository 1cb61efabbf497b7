package service

import (
	"context"
	"fmt"
	"sort"

	"bengkel/config"
	"bengkel/infras/otel"
	bookingModel "bengkel/internal/domains/booking/model"
	bookingRepo "bengkel/internal/domains/booking/repository"
	"bengkel/internal/domains/report/model/dto"
	"bengkel/shared"
	"bengkel/shared/cache"
	"bengkel/shared/constant"

	"github.com/rs/zerolog/log"
)

type Report interface {
	StatsFor(ctx context.Context, ownerID string) (dto.StatsResponse, error)
	Describe(booking bookingModel.Booking) dto.BookingView
	DescribeAll(bookings []bookingModel.Booking) dto.GetBookingViewsResponse
	RecentFor(ctx context.Context, ownerID string, limit int) (dto.GetBookingViewsResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.Cache
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.Cache, otel otel.Otel) Report {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// StatsFor counts the owner's bookings for the dashboard: total, completed,
// and still open. An empty ownerID counts across all owners.
func (s *serviceImpl) StatsFor(ctx context.Context, ownerID string) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StatsFor")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CacheKeyStats, ownerID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for stats")

		return res, nil
	}

	bookings, err := s.ownedBy(ctx, ownerID)
	if err != nil {
		return res, err
	}

	res.FromModels(bookings)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save stats to cache")
	}

	return res, nil
}

// Describe resolves a booking's enum values to display labels.
func (s *serviceImpl) Describe(booking bookingModel.Booking) (view dto.BookingView) {
	view.FromModel(booking)

	return view
}

func (s *serviceImpl) DescribeAll(bookings []bookingModel.Booking) (res dto.GetBookingViewsResponse) {
	res.FromModels(bookings)

	return res
}

// RecentFor lists the owner's most recent bookings, labels resolved, newest
// creation first. A limit of zero or less returns all of them.
func (s *serviceImpl) RecentFor(ctx context.Context, ownerID string, limit int) (res dto.GetBookingViewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecentFor")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.ownedBy(ctx, ownerID)
	if err != nil {
		return res, err
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	if limit > 0 && len(bookings) > limit {
		bookings = bookings[:limit]
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) ownedBy(ctx context.Context, ownerID string) ([]bookingModel.Booking, error) {
	bookings, err := s.bookingRepo.Find(ctx, func(b bookingModel.Booking) bool {
		return ownerID == "" || b.UserID == ownerID
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}
