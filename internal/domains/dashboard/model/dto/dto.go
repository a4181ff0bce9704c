package dto

import (
	bookingModel "wearecars/internal/domains/booking/model"
	bookingDto "wearecars/internal/domains/booking/model/dto"
	"wearecars/internal/domains/pricing"
)

// SummaryResponse is the dashboard card snapshot. Bookings are append-only,
// so every stored row counts as active.
type SummaryResponse struct {
	TotalBookings  int    `json:"total_bookings"`
	ActiveBookings int    `json:"active_bookings"`
	TotalIncome    string `json:"total_income"`
}

func (r *SummaryResponse) From(totalBookings int, totalIncome int64) {
	r.TotalBookings = totalBookings
	r.ActiveBookings = totalBookings
	r.TotalIncome = pricing.Amount(totalIncome).Display()
}

const (
	// forecastMinimumFleet is the floor below which the fleet is never
	// projected to shrink, so quiet months keep a usable pool of cars.
	forecastMinimumFleet = 5

	// forecastGrowthThreshold is the projected shortfall, in cars, above
	// which fleet investment is recommended.
	forecastGrowthThreshold = 3
)

// ForecastResponse projects next month's fleet needs from the active-booking
// count and turns the projection into an investment recommendation.
type ForecastResponse struct {
	ActiveBookings       int    `json:"active_bookings"`
	ProjectedCarNeeds    int    `json:"projected_car_needs"`
	InvestmentSuggestion string `json:"investment_suggestion"`
}

func (r *ForecastResponse) From(activeBookings int) {
	// 20% seasonal headroom over current demand, rounded up.
	growth := (activeBookings + 4) / 5

	projected := activeBookings + growth
	if projected < forecastMinimumFleet {
		projected = forecastMinimumFleet
	}

	r.ActiveBookings = activeBookings
	r.ProjectedCarNeeds = projected

	switch {
	case activeBookings == 0:
		r.InvestmentSuggestion = "No active bookings; maintain the current fleet and revisit once demand picks up."
	case growth >= forecastGrowthThreshold:
		r.InvestmentSuggestion = "Projected demand outpaces the current fleet; investing in additional cars is advisable."
	default:
		r.InvestmentSuggestion = "Projected demand is close to current capacity; maintain the fleet and monitor booking trends."
	}
}

type RecentBookingsResponse struct {
	Bookings []bookingDto.BookingResponse `json:"bookings"`
}

func (r *RecentBookingsResponse) FromModels(models []bookingModel.Booking) {
	r.Bookings = make([]bookingDto.BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
