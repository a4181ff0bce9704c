package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wearecars/internal/domains/booking/model"
	"wearecars/internal/domains/booking/model/dto"
	"wearecars/internal/domains/pricing"
	"wearecars/shared/failure"
	"wearecars/shared/validator"
)

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CustomerFirstName: "Jane",
		CustomerSurname:   "Doe",
		CustomerAddress:   "1 High Street, London",
		CustomerAge:       30,
		HasDrivingLicense: "yes",
		CarType:           pricing.CarTypeFamily,
		FuelType:          pricing.FuelTypePetrol,
		NumberOfDays:      3,
		PaymentMethod:     "Card",
	}
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	req := validRequest()

	assert.NoError(t, validator.ValidateStruct(&req))
}

func TestCreateBookingRequest_Validate_NoLicense(t *testing.T) {
	req := validRequest()
	req.HasDrivingLicense = "no"

	err := validator.ValidateStruct(&req)
	assert.Error(t, err)

	fields := failure.GetFields(err)
	assert.Equal(t, "Customer must have a valid driving license to book a car", fields["has_driving_license"])
}

func TestCreateBookingRequest_Validate_AccumulatesAllErrors(t *testing.T) {
	req := dto.CreateBookingRequest{
		CustomerFirstName: "Jane",
		CustomerSurname:   "Doe",
		CustomerAddress:   "1 High Street, London",
		CustomerAge:       17,
		HasDrivingLicense: "yes",
		CarType:           "Spaceship",
		FuelType:          pricing.FuelTypePetrol,
		NumberOfDays:      29,
		PaymentMethod:     "Card",
	}

	err := validator.ValidateStruct(&req)
	assert.Error(t, err)

	fields := failure.GetFields(err)
	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "customer_age")
	assert.Contains(t, fields, "car_type")
	assert.Contains(t, fields, "number_of_days")
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := validRequest()
	breakdown := pricing.DefaultRates().Quote(req.PricingInput())

	booking := req.ToModel("staff-user-id", breakdown)

	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.CustomerFirstName, booking.CustomerFirstName)
	assert.Equal(t, req.CustomerSurname, booking.CustomerSurname)
	assert.Equal(t, int64(125), booking.TotalPrice)
	assert.Equal(t, "staff-user-id", booking.CreatedBy)
	assert.Equal(t, "staff-user-id", booking.ModifiedBy)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_ToModel_FreezesBreakdownTotal(t *testing.T) {
	req := validRequest()

	// The stored total must come from the given breakdown, not be recomputed.
	booking := req.ToModel("staff-user-id", pricing.Breakdown{TotalCost: 999})

	assert.Equal(t, int64(999), booking.TotalPrice)
}

func TestBookingResponse_FromModel(t *testing.T) {
	req := validRequest()
	booking := req.ToModel("staff-user-id", pricing.DefaultRates().Quote(req.PricingInput()))

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, booking.ID, res.ID)
	assert.Equal(t, "125.00", res.TotalPrice)
	assert.Equal(t, booking.CarType, res.CarType)
	assert.Equal(t, booking.CreatedBy, res.CreatedBy)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	rates := pricing.DefaultRates()

	first := validRequest()
	second := validRequest()
	second.CarType = pricing.CarTypeSUV
	second.FuelType = pricing.FuelTypeElectric
	second.NumberOfDays = 7
	second.UnlimitedMileage = true
	second.BreakdownCover = true

	models := []model.Booking{
		first.ToModel("staff-user-id", rates.Quote(first.PricingInput())),
		second.ToModel("staff-user-id", rates.Quote(second.PricingInput())),
	}

	var res dto.GetBookingsResponse
	res.FromModels(models, 15, 10)

	assert.Equal(t, 15, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, "125.00", res.Bookings[0].TotalPrice)
	assert.Equal(t, "374.00", res.Bookings[1].TotalPrice)
}

func TestGetBookingsResponse_FromModels_EmptyList(t *testing.T) {
	var res dto.GetBookingsResponse
	res.FromModels(nil, 0, 10)

	assert.Equal(t, 0, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Bookings, 0)
}
