package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"wearecars/config"
	"wearecars/infras/kafka"
	"wearecars/infras/otel"
	"wearecars/internal/domains/booking/model"
	"wearecars/internal/domains/booking/model/dto"
	"wearecars/internal/domains/booking/repository"
	"wearecars/internal/domains/pricing"
	"wearecars/shared"
	"wearecars/shared/cache"
	"wearecars/shared/constant"
	gDto "wearecars/shared/dto"
	"wearecars/shared/failure"
	"wearecars/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheReviewDraft   = "booking:draft"
)

type Booking interface {
	Quote(ctx context.Context, req dto.QuoteRequest) dto.QuoteResponse
	Review(ctx context.Context, req dto.CreateBookingRequest) (dto.ReviewResponse, error)
	Confirm(ctx context.Context, draftID string) (dto.BookingResponse, error)
	DiscardReview(ctx context.Context, draftID string) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
	rates pricing.Rates
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		kafka: kafkaClient,
		otel:  otel,
		rates: pricing.DefaultRates(),
	}
}

// Quote prices a possibly-incomplete form without touching any store.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) dto.QuoteResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()

	var res dto.QuoteResponse

	res.Breakdown.FromBreakdown(s.rates.Quote(req.PricingInput()))

	return res
}

// Review prices the validated request and stores the snapshot as a draft.
// The draft carries its own breakdown so the total shown here is exactly the
// total that will be written on confirmation.
func (s *serviceImpl) Review(ctx context.Context, req dto.CreateBookingRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Review")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft := dto.ReviewDraft{
		ID:        uuid.NewString(),
		Request:   req,
		Breakdown: s.rates.Quote(req.PricingInput()),
		CreatedAt: timezone.Now(),
	}

	ttl := s.cfg.App.Booking.ReviewTTLSeconds

	if err = s.cache.Save(ctx, shared.BuildCacheKey(cacheReviewDraft, draft.ID), draft, ttl); err != nil {
		log.Error().Err(err).Msg("failed to save review draft")

		return res, fmt.Errorf("failed to save review draft: %w", err)
	}

	res.FromDraft(draft, ttl)

	return res, nil
}

// Confirm turns a review draft into a booking row. The stored total comes
// from the draft breakdown, so a tariff change between review and confirm
// cannot move the price the customer was shown.
func (s *serviceImpl) Confirm(ctx context.Context, draftID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	draftKey := shared.BuildCacheKey(cacheReviewDraft, draftID)

	var draft dto.ReviewDraft
	if err = s.cache.Get(ctx, draftKey, &draft); err != nil {
		log.Error().Err(err).Str("draftID", draftID).Msg("review draft not found")

		return res, failure.NotFound("review draft not found or expired") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	booking := draft.Request.ToModel(user, draft.Breakdown)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	// The draft is consumed before the call returns so a repeated confirm of
	// the same draft cannot insert a second row.
	if err := s.cache.Delete(ctx, draftKey); err != nil {
		log.Error().Err(err).Msg("failed to delete review draft")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.BookingConfirmed, kafka.Message{
			Key:   booking.ID,
			Value: booking,
		}); err != nil {
			log.Error().Err(err).Msg("failed to publish booking confirmed event")
		}

		if err := s.cache.Publish(c, constant.ChannelBookingsChanged, booking.ID); err != nil {
			log.Error().Err(err).Msg("failed to notify booking change")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()

	return res, nil
}

// DiscardReview drops a pending draft without creating a booking.
func (s *serviceImpl) DiscardReview(ctx context.Context, draftID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DiscardReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	draftKey := shared.BuildCacheKey(cacheReviewDraft, draftID)

	var draft dto.ReviewDraft
	if err = s.cache.Get(ctx, draftKey, &draft); err != nil {
		log.Error().Err(err).Str("draftID", draftID).Msg("review draft not found")

		return failure.NotFound("review draft not found or expired") //nolint:wrapcheck
	}

	if err = s.cache.Delete(ctx, draftKey); err != nil {
		log.Error().Err(err).Msg("failed to delete review draft")

		return fmt.Errorf("failed to delete review draft: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}
