package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"wearecars/config"
	"wearecars/infras/otel/mocks"
	bookingMocks "wearecars/internal/domains/booking/mocks"
	"wearecars/internal/domains/booking/model"
	"wearecars/internal/domains/dashboard/service"
	cacheMocks "wearecars/shared/cache/mocks"
	"wearecars/shared/constant"
	gDto "wearecars/shared/dto"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return cfg
}

func TestDashboardService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockBookings, newTestConfig(), mockCache, mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	mockBookings.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(12, nil)
	mockBookings.EXPECT().
		SumTotalPrice(gomock.Any(), gomock.Any()).
		Return(int64(1499), nil)
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 12, res.TotalBookings)
	assert.Equal(t, 12, res.ActiveBookings)
	assert.Equal(t, "1499.00", res.TotalIncome)
}

func TestDashboardService_Summary_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockBookings, newTestConfig(), mockCache, mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	mockBookings.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(0, errors.New("db down"))

	_, err := svc.Summary(context.Background())

	assert.Error(t, err)
}

func TestDashboardService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockBookings, newTestConfig(), mockCache, mocks.NewOtel())

	expectedParams := gDto.QueryParams{
		Page:    1,
		Limit:   constant.RecentBookingsLimit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	mockBookings.EXPECT().
		GetAll(gomock.Any(), expectedParams, gomock.Any()).
		Return([]model.Booking{
			{ID: "booking-1", TotalPrice: 374},
			{ID: "booking-2", TotalPrice: 125},
		}, nil)
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Recent(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, "374.00", res.Bookings[0].TotalPrice)
}

func TestDashboardService_Forecast(t *testing.T) {
	tests := []struct {
		name              string
		activeBookings    int
		expectedProjected int
		expectedPhrase    string
	}{
		{
			name:              "high demand recommends fleet growth",
			activeBookings:    20,
			expectedProjected: 24,
			expectedPhrase:    "investing in additional cars",
		},
		{
			name:              "modest demand recommends holding steady",
			activeBookings:    8,
			expectedProjected: 10,
			expectedPhrase:    "maintain the fleet",
		},
		{
			name:              "small fleet projection never drops below the floor",
			activeBookings:    2,
			expectedProjected: 5,
			expectedPhrase:    "maintain the fleet",
		},
		{
			name:              "no demand keeps the current fleet",
			activeBookings:    0,
			expectedProjected: 5,
			expectedPhrase:    "No active bookings",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBookings := bookingMocks.NewMockBooking(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)

			svc := service.New(mockBookings, newTestConfig(), mockCache, mocks.NewOtel())

			mockCache.EXPECT().
				Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("cache miss"))
			mockBookings.EXPECT().
				Count(gomock.Any(), gomock.Any()).
				Return(test.activeBookings, nil)
			mockCache.EXPECT().
				Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil).
				AnyTimes()

			res, err := svc.Forecast(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, test.activeBookings, res.ActiveBookings)
			assert.Equal(t, test.expectedProjected, res.ProjectedCarNeeds)
			assert.Contains(t, res.InvestmentSuggestion, test.expectedPhrase)
		})
	}
}

func TestDashboardService_Forecast_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockBookings, newTestConfig(), mockCache, mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	mockBookings.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(0, errors.New("db down"))

	_, err := svc.Forecast(context.Background())

	assert.Error(t, err)
}

func TestDashboardService_Summary_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockBookings, newTestConfig(), mockCache, mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.Summary(context.Background())

	assert.NoError(t, err)
}
