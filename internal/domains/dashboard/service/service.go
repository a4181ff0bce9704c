package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"wearecars/config"
	"wearecars/infras/otel"
	bookingRepo "wearecars/internal/domains/booking/repository"
	"wearecars/internal/domains/dashboard/model/dto"
	"wearecars/shared/cache"
	"wearecars/shared/constant"
	gDto "wearecars/shared/dto"
)

const (
	cacheSummary  = constant.CachePrefixDashboard + ":summary"
	cacheRecent   = constant.CachePrefixDashboard + ":recent"
	cacheForecast = constant.CachePrefixDashboard + ":forecast"
)

// Dashboard aggregates booking data for the staff overview cards. It owns no
// table of its own; everything is derived from the booking store on read.
type Dashboard interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
	Recent(ctx context.Context) (dto.RecentBookingsResponse, error)
	Forecast(ctx context.Context) (dto.ForecastResponse, error)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheSummary, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheSummary).Msg("cache hit for dashboard summary")

		return res, nil
	}

	total, err := s.bookings.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	income, err := s.bookings.SumTotalPrice(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to sum booking income")

		return res, fmt.Errorf("failed to sum booking income: %w", err)
	}

	res.From(total, income)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheSummary, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard summary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Forecast(ctx context.Context) (res dto.ForecastResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Forecast")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheForecast, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheForecast).Msg("cache hit for fleet forecast")

		return res, nil
	}

	active, err := s.bookings.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count active bookings")

		return res, fmt.Errorf("failed to count active bookings: %w", err)
	}

	res.From(active)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheForecast, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save fleet forecast to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Recent(ctx context.Context) (res dto.RecentBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recent")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheRecent, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheRecent).Msg("cache hit for recent bookings")

		return res, nil
	}

	params := gDto.QueryParams{
		Page:    1,
		Limit:   constant.RecentBookingsLimit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.bookings.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheRecent, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save recent bookings to cache")
		}
	}()

	return res, nil
}
