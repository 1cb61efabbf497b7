package service

import (
	"context"
	"fmt"
	"sort"

	"bengkel/config"
	"bengkel/infras/otel"
	"bengkel/internal/domains/booking/model"
	"bengkel/internal/domains/booking/model/dto"
	"bengkel/internal/domains/booking/repository"
	userRepo "bengkel/internal/domains/user/repository"
	"bengkel/shared"
	"bengkel/shared/cache"
	"bengkel/shared/constant"
	"bengkel/shared/failure"
	"bengkel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, ownerID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, query dto.ListBookingsQuery) (dto.GetBookingsResponse, error)
	GetByOwner(ctx context.Context, ownerID string, query dto.ListBookingsQuery) (dto.GetBookingsResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	userRepo userRepo.User
	cfg      *config.Config
	cache    cache.Cache
	otel     otel.Otel
}

func New(repo repository.Booking, userRepo userRepo.User, cfg *config.Config, cache cache.Cache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, ownerID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	// The owner reference is only validated here, at creation time.
	owner, found, err := s.userRepo.Get(ctx, ownerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if owner exists")

		return res, fmt.Errorf("failed to check if owner exists: %w", err)
	}

	if !found {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	booking := req.ToModel(owner.ID, owner.DisplayName())

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyBookings, constant.CacheKeyStats)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CacheKeyBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if !found {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save booking to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, query dto.ListBookingsQuery) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, "", query)
}

func (s *serviceImpl) GetByOwner(ctx context.Context, ownerID string, query dto.ListBookingsQuery) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateVar(ownerID, "required"); err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.list(ctx, ownerID, query)
}

// list applies the owner scope and the optional filters, most recent
// creation first.
func (s *serviceImpl) list(ctx context.Context, ownerID string, query dto.ListBookingsQuery) (res dto.GetBookingsResponse, err error) {
	if err = validator.ValidateStruct(&query); err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(constant.CacheKeyBookings, ownerID, query.Status, query.DateFilter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	bookings, err := s.repo.Find(ctx, func(b model.Booking) bool {
		if ownerID != "" && b.UserID != ownerID {
			return false
		}

		return query.Matches(b)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	res.FromModels(bookings)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return res, failure.Validation("update request cannot be empty") //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if s.cfg.App.StrictStatusFlow && req.Status != "" {
		var (
			current model.Booking
			found   bool
		)

		current, found, err = s.repo.Get(ctx, id)
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking")

			return res, fmt.Errorf("failed to get booking: %w", err)
		}

		if !found {
			return res, failure.NotFound("booking not found") //nolint:wrapcheck
		}

		if !model.CanTransition(current.Status, req.Status) {
			return res, failure.Validation(fmt.Sprintf("status cannot change from %s to %s", current.Status, req.Status)) //nolint:wrapcheck
		}
	}

	booking, err := s.repo.Update(ctx, id, req.ApplyTo)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking")

		return res, err //nolint:wrapcheck
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(constant.CacheKeyBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyBookings, constant.CacheKeyStats)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		return err //nolint:wrapcheck
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(constant.CacheKeyBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyBookings, constant.CacheKeyStats)

	return nil
}
