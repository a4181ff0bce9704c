package dto

import (
	"time"

	"github.com/google/uuid"

	"wearecars/internal/domains/booking/model"
	"wearecars/internal/domains/pricing"
	"wearecars/shared"
	gDto "wearecars/shared/dto"
	gModel "wearecars/shared/model"
	"wearecars/shared/timezone"
)

// QuoteRequest is a possibly-incomplete booking form. It carries no validate
// tags so the price preview works while the form is still being filled in.
type QuoteRequest struct {
	NumberOfDays     int    `json:"number_of_days"`
	CarType          string `json:"car_type"`
	FuelType         string `json:"fuel_type"`
	UnlimitedMileage bool   `json:"unlimited_mileage"`
	BreakdownCover   bool   `json:"breakdown_cover"`
}

func (q *QuoteRequest) PricingInput() pricing.Input {
	return pricing.Input{
		NumberOfDays:     q.NumberOfDays,
		CarType:          q.CarType,
		FuelType:         q.FuelType,
		UnlimitedMileage: q.UnlimitedMileage,
		BreakdownCover:   q.BreakdownCover,
	}
}

type CreateBookingRequest struct {
	CustomerFirstName string `json:"customer_first_name" validate:"required,max=100"`
	CustomerSurname   string `json:"customer_surname"    validate:"required,max=100"`
	CustomerAddress   string `json:"customer_address"    validate:"required,max=255"`
	CustomerAge       int    `json:"customer_age"        validate:"required,min=18"`
	HasDrivingLicense string `json:"has_driving_license" validate:"required,oneof=yes no,license"`
	CarType           string `json:"car_type"            validate:"required,oneof='City Car' 'Family Car' 'Sports Car' 'SUV'"`
	FuelType          string `json:"fuel_type"           validate:"required,oneof=Petrol Diesel Hybrid 'Full Electric'"`
	NumberOfDays      int    `json:"number_of_days"      validate:"required,min=1,max=28"`
	UnlimitedMileage  bool   `json:"unlimited_mileage"`
	BreakdownCover    bool   `json:"breakdown_cover"`
	PaymentMethod     string `json:"payment_method"      validate:"required,oneof=Cash Fonepay Card"`
}

func (c *CreateBookingRequest) PricingInput() pricing.Input {
	return pricing.Input{
		NumberOfDays:     c.NumberOfDays,
		CarType:          c.CarType,
		FuelType:         c.FuelType,
		UnlimitedMileage: c.UnlimitedMileage,
		BreakdownCover:   c.BreakdownCover,
	}
}

// ToModel builds the booking row. The total comes from the breakdown the
// draft was reviewed with, never a fresh computation.
func (c *CreateBookingRequest) ToModel(user string, breakdown pricing.Breakdown) model.Booking {
	return model.Booking{
		ID:                uuid.NewString(),
		CustomerFirstName: c.CustomerFirstName,
		CustomerSurname:   c.CustomerSurname,
		CustomerAddress:   c.CustomerAddress,
		CustomerAge:       c.CustomerAge,
		HasDrivingLicense: c.HasDrivingLicense,
		CarType:           c.CarType,
		FuelType:          c.FuelType,
		NumberOfDays:      c.NumberOfDays,
		UnlimitedMileage:  c.UnlimitedMileage,
		BreakdownCover:    c.BreakdownCover,
		PaymentMethod:     c.PaymentMethod,
		TotalPrice:        int64(breakdown.TotalCost),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// BreakdownResponse renders an itemized quote with two-decimal amounts.
type BreakdownResponse struct {
	BaseRental           string `json:"base_rental"`
	CarTypeSurcharge     string `json:"car_type_surcharge"`
	FuelSurcharge        string `json:"fuel_surcharge"`
	UnlimitedMileageCost string `json:"unlimited_mileage_cost"`
	BreakdownCoverCost   string `json:"breakdown_cover_cost"`
	TotalCost            string `json:"total_cost"`
}

func (r *BreakdownResponse) FromBreakdown(breakdown pricing.Breakdown) {
	r.BaseRental = breakdown.BaseRental.Display()
	r.CarTypeSurcharge = breakdown.CarTypeSurcharge.Display()
	r.FuelSurcharge = breakdown.FuelSurcharge.Display()
	r.UnlimitedMileageCost = breakdown.UnlimitedMileageCost.Display()
	r.BreakdownCoverCost = breakdown.BreakdownCoverCost.Display()
	r.TotalCost = breakdown.TotalCost.Display()
}

type QuoteResponse struct {
	Breakdown BreakdownResponse `json:"breakdown"`
}

// ReviewDraft is the snapshot stored between review and confirmation. The
// breakdown is carried inside the draft so confirmation reuses it verbatim.
type ReviewDraft struct {
	ID        string               `json:"id"`
	Request   CreateBookingRequest `json:"request"`
	Breakdown pricing.Breakdown    `json:"breakdown"`
	CreatedAt time.Time            `json:"created_at"`
}

type ReviewResponse struct {
	DraftID   string               `json:"draft_id"`
	Booking   CreateBookingRequest `json:"booking"`
	Breakdown BreakdownResponse    `json:"breakdown"`
	ExpiresIn int                  `json:"expires_in"`
}

func (r *ReviewResponse) FromDraft(draft ReviewDraft, ttlSeconds int) {
	r.DraftID = draft.ID
	r.Booking = draft.Request
	r.Breakdown.FromBreakdown(draft.Breakdown)
	r.ExpiresIn = ttlSeconds
}

type BookingResponse struct {
	ID                string `json:"id"`
	CustomerFirstName string `json:"customer_first_name"`
	CustomerSurname   string `json:"customer_surname"`
	CustomerAddress   string `json:"customer_address"`
	CustomerAge       int    `json:"customer_age"`
	HasDrivingLicense string `json:"has_driving_license"`
	CarType           string `json:"car_type"`
	FuelType          string `json:"fuel_type"`
	NumberOfDays      int    `json:"number_of_days"`
	UnlimitedMileage  bool   `json:"unlimited_mileage"`
	BreakdownCover    bool   `json:"breakdown_cover"`
	PaymentMethod     string `json:"payment_method"`
	TotalPrice        string `json:"total_price"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerFirstName = model.CustomerFirstName
	r.CustomerSurname = model.CustomerSurname
	r.CustomerAddress = model.CustomerAddress
	r.CustomerAge = model.CustomerAge
	r.HasDrivingLicense = model.HasDrivingLicense
	r.CarType = model.CarType
	r.FuelType = model.FuelType
	r.NumberOfDays = model.NumberOfDays
	r.UnlimitedMileage = model.UnlimitedMileage
	r.BreakdownCover = model.BreakdownCover
	r.PaymentMethod = model.PaymentMethod
	r.TotalPrice = pricing.Amount(model.TotalPrice).Display()
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
