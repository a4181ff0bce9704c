package pricing

import "strconv"

// Car and fuel types offered on the booking form. The rate tables are keyed
// by these display names.
const (
	CarTypeCity   = "City Car"
	CarTypeFamily = "Family Car"
	CarTypeSports = "Sports Car"
	CarTypeSUV    = "SUV"
)

const (
	FuelTypePetrol   = "Petrol"
	FuelTypeDiesel   = "Diesel"
	FuelTypeHybrid   = "Hybrid"
	FuelTypeElectric = "Full Electric"
)

// Amount is a money value in whole currency units. Every rate in the tables
// is a whole number, so arithmetic stays exact; two-decimal rendering happens
// only at the presentation edge via Display.
type Amount int64

func (a Amount) Display() string {
	return strconv.FormatInt(int64(a), 10) + ".00"
}

// Rates is the tariff applied to a booking. Quotes are computed against an
// explicit Rates value so a snapshot taken at review time keeps the breakdown
// it was priced with, whatever happens to the tariff afterwards.
type Rates struct {
	BaseRentalPerDay       Amount
	CarTypeSurcharge       map[string]Amount
	FuelSurcharge          map[string]Amount
	UnlimitedMileagePerDay Amount
	BreakdownCoverPerDay   Amount
}

// DefaultRates returns the standard tariff.
func DefaultRates() Rates {
	return Rates{
		BaseRentalPerDay: 25,
		CarTypeSurcharge: map[string]Amount{
			CarTypeCity:   0,
			CarTypeFamily: 50,
			CarTypeSports: 75,
			CarTypeSUV:    65,
		},
		FuelSurcharge: map[string]Amount{
			FuelTypePetrol:   0,
			FuelTypeDiesel:   0,
			FuelTypeHybrid:   30,
			FuelTypeElectric: 50,
		},
		UnlimitedMileagePerDay: 10,
		BreakdownCoverPerDay:   2,
	}
}

// Input is a possibly-partial booking request. Zero values mean "not yet
// chosen" and contribute nothing to the total, so Quote can run on every
// keystroke of the form.
type Input struct {
	NumberOfDays     int    `json:"number_of_days"`
	CarType          string `json:"car_type"`
	FuelType         string `json:"fuel_type"`
	UnlimitedMileage bool   `json:"unlimited_mileage"`
	BreakdownCover   bool   `json:"breakdown_cover"`
}

// Breakdown is an itemized quote. TotalCost is always the exact sum of the
// five components.
type Breakdown struct {
	BaseRental           Amount `json:"base_rental"`
	CarTypeSurcharge     Amount `json:"car_type_surcharge"`
	FuelSurcharge        Amount `json:"fuel_surcharge"`
	UnlimitedMileageCost Amount `json:"unlimited_mileage_cost"`
	BreakdownCoverCost   Amount `json:"breakdown_cover_cost"`
	TotalCost            Amount `json:"total_cost"`
}

// Quote computes an itemized price for the given input. It is a pure, total
// function: unknown car or fuel types and missing fields simply contribute
// zero, and it never returns an error.
func (r Rates) Quote(in Input) Breakdown {
	days := in.NumberOfDays
	if days < 0 {
		days = 0
	}

	breakdown := Breakdown{
		BaseRental:       Amount(days) * r.BaseRentalPerDay,
		CarTypeSurcharge: r.CarTypeSurcharge[in.CarType],
		FuelSurcharge:    r.FuelSurcharge[in.FuelType],
	}

	if in.UnlimitedMileage {
		breakdown.UnlimitedMileageCost = Amount(days) * r.UnlimitedMileagePerDay
	}

	if in.BreakdownCover {
		breakdown.BreakdownCoverCost = Amount(days) * r.BreakdownCoverPerDay
	}

	breakdown.TotalCost = breakdown.BaseRental +
		breakdown.CarTypeSurcharge +
		breakdown.FuelSurcharge +
		breakdown.UnlimitedMileageCost +
		breakdown.BreakdownCoverCost

	return breakdown
}
