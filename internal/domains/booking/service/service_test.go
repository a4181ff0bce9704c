package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"wearecars/config"
	kafkaMocks "wearecars/infras/kafka/mocks"
	"wearecars/infras/otel/mocks"
	bookingMocks "wearecars/internal/domains/booking/mocks"
	"wearecars/internal/domains/booking/model"
	"wearecars/internal/domains/booking/model/dto"
	"wearecars/internal/domains/booking/service"
	"wearecars/internal/domains/pricing"
	cacheMocks "wearecars/shared/cache/mocks"
	gDto "wearecars/shared/dto"
	"wearecars/shared/failure"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Booking.ReviewTTLSeconds = 900
	cfg.Cache.TTL = 60

	return cfg
}

func TestBookingService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(bookingMocks.NewMockBooking(ctrl), newTestConfig(), cacheMocks.NewMockRedisCache(ctrl), kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

	res := svc.Quote(context.Background(), dto.QuoteRequest{
		NumberOfDays: 3,
		CarType:      pricing.CarTypeFamily,
		FuelType:     pricing.FuelTypePetrol,
	})

	assert.Equal(t, "75.00", res.Breakdown.BaseRental)
	assert.Equal(t, "50.00", res.Breakdown.CarTypeSurcharge)
	assert.Equal(t, "0.00", res.Breakdown.FuelSurcharge)
	assert.Equal(t, "125.00", res.Breakdown.TotalCost)
}

func TestBookingService_Quote_PartialInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(bookingMocks.NewMockBooking(ctrl), newTestConfig(), cacheMocks.NewMockRedisCache(ctrl), kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

	res := svc.Quote(context.Background(), dto.QuoteRequest{CarType: pricing.CarTypeSports})

	assert.Equal(t, "0.00", res.Breakdown.BaseRental)
	assert.Equal(t, "75.00", res.Breakdown.CarTypeSurcharge)
	assert.Equal(t, "75.00", res.Breakdown.TotalCost)
}

func reviewRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CustomerFirstName: "Jane",
		CustomerSurname:   "Doe",
		CustomerAddress:   "1 High Street, London",
		CustomerAge:       30,
		HasDrivingLicense: "yes",
		CarType:           pricing.CarTypeSUV,
		FuelType:          pricing.FuelTypeElectric,
		NumberOfDays:      7,
		UnlimitedMileage:  true,
		BreakdownCover:    true,
		PaymentMethod:     "Fonepay",
	}
}

func TestBookingService_Review(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(bookingMocks.NewMockBooking(ctrl), newTestConfig(), mockCache, kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

	var savedDraft dto.ReviewDraft

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 900).
		DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
			savedDraft = value.(dto.ReviewDraft)

			return nil
		})

	res, err := svc.Review(context.Background(), reviewRequest())

	assert.NoError(t, err)
	assert.NotEmpty(t, res.DraftID)
	assert.Equal(t, res.DraftID, savedDraft.ID)
	assert.Equal(t, pricing.Amount(374), savedDraft.Breakdown.TotalCost)
	assert.Equal(t, "374.00", res.Breakdown.TotalCost)
	assert.Equal(t, 900, res.ExpiresIn)
}

func TestBookingService_Review_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(bookingMocks.NewMockBooking(ctrl), newTestConfig(), mockCache, kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	_, err := svc.Review(context.Background(), reviewRequest())

	assert.Error(t, err)
}

func TestBookingService_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockKafka, mocks.NewOtel())

	// The draft total deliberately differs from what a fresh quote would
	// produce, to prove confirmation never reprices.
	draft := dto.ReviewDraft{
		ID:        "draft-id-123",
		Request:   reviewRequest(),
		Breakdown: pricing.Breakdown{TotalCost: 999},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), "booking:draft:draft-id-123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*dto.ReviewDraft)) = draft

			return nil
		})

	var inserted model.Booking

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			inserted = booking

			return nil
		})

	done := make(chan struct{})

	var (
		clears       int32
		draftDeleted atomic.Bool
	)

	mockCache.EXPECT().
		Delete(gomock.Any(), "booking:draft:draft-id-123").
		DoAndReturn(func(context.Context, string) error {
			draftDeleted.Store(true)

			return nil
		})
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string) error {
			if atomic.AddInt32(&clears, 1) == 3 {
				close(done)
			}

			return nil
		}).
		Times(3)

	res, err := svc.Confirm(context.Background(), "draft-id-123")

	assert.NoError(t, err)
	assert.Equal(t, int64(999), inserted.TotalPrice)
	assert.Equal(t, "999.00", res.TotalPrice)
	assert.Equal(t, draft.Request.CustomerFirstName, res.CustomerFirstName)

	// The draft must already be gone when the call returns, so confirming the
	// same draft twice cannot create two bookings.
	assert.True(t, draftDeleted.Load())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for cache invalidation")
	}
}

func TestBookingService_Confirm_DraftNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(bookingMocks.NewMockBooking(ctrl), newTestConfig(), mockCache, kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	_, err := svc.Confirm(context.Background(), "missing-draft")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_Confirm_InsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*dto.ReviewDraft)) = dto.ReviewDraft{ID: "draft-id-123", Request: reviewRequest()}

			return nil
		})

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(errors.New("insert failed"))

	_, err := svc.Confirm(context.Background(), "draft-id-123")

	assert.Error(t, err)
}

func TestBookingService_DiscardReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(bookingMocks.NewMockBooking(ctrl), newTestConfig(), mockCache, kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), "booking:draft:draft-id-123", gomock.Any()).
		Return(nil)
	mockCache.EXPECT().
		Delete(gomock.Any(), "booking:draft:draft-id-123").
		Return(nil)

	assert.NoError(t, svc.DiscardReview(context.Background(), "draft-id-123"))
}

func TestBookingService_DiscardReview_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(bookingMocks.NewMockBooking(ctrl), newTestConfig(), mockCache, kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	err := svc.DiscardReview(context.Background(), "missing-draft")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{ID: "booking-id-123", TotalPrice: 125}, nil)
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Get(context.Background(), "booking-id-123")

	assert.NoError(t, err)
	assert.Equal(t, "booking-id-123", res.ID)
	assert.Equal(t, "125.00", res.TotalPrice)
}

func TestBookingService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, nil)

	_, err := svc.Get(context.Background(), "missing-booking")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)
	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.Booking{
			{ID: "booking-1", TotalPrice: 125},
			{ID: "booking-2", TotalPrice: 374},
		}, nil)
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, "125.00", res.Bookings[0].TotalPrice)
}
