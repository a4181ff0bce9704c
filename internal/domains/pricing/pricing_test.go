package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wearecars/internal/domains/pricing"
)

func TestQuote(t *testing.T) {
	rates := pricing.DefaultRates()

	tests := []struct {
		name  string
		input pricing.Input
		want  pricing.Breakdown
	}{
		{
			name: "family car petrol three days",
			input: pricing.Input{
				NumberOfDays: 3,
				CarType:      pricing.CarTypeFamily,
				FuelType:     pricing.FuelTypePetrol,
			},
			want: pricing.Breakdown{
				BaseRental:       75,
				CarTypeSurcharge: 50,
				FuelSurcharge:    0,
				TotalCost:        125,
			},
		},
		{
			name: "suv full electric with all extras",
			input: pricing.Input{
				NumberOfDays:     7,
				CarType:          pricing.CarTypeSUV,
				FuelType:         pricing.FuelTypeElectric,
				UnlimitedMileage: true,
				BreakdownCover:   true,
			},
			want: pricing.Breakdown{
				BaseRental:           175,
				CarTypeSurcharge:     65,
				FuelSurcharge:        50,
				UnlimitedMileageCost: 70,
				BreakdownCoverCost:   14,
				TotalCost:            374,
			},
		},
		{
			name:  "empty input",
			input: pricing.Input{},
			want:  pricing.Breakdown{},
		},
		{
			name: "zero days leaves only surcharges",
			input: pricing.Input{
				CarType:          pricing.CarTypeSports,
				FuelType:         pricing.FuelTypeHybrid,
				UnlimitedMileage: true,
				BreakdownCover:   true,
			},
			want: pricing.Breakdown{
				CarTypeSurcharge: 75,
				FuelSurcharge:    30,
				TotalCost:        105,
			},
		},
		{
			name: "unknown car and fuel types contribute nothing",
			input: pricing.Input{
				NumberOfDays: 2,
				CarType:      "Hovercraft",
				FuelType:     "Plutonium",
			},
			want: pricing.Breakdown{
				BaseRental: 50,
				TotalCost:  50,
			},
		},
		{
			name: "negative days treated as not yet chosen",
			input: pricing.Input{
				NumberOfDays: -4,
				CarType:      pricing.CarTypeCity,
			},
			want: pricing.Breakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rates.Quote(tt.input))
		})
	}
}

func TestQuoteTotalIsSumOfComponents(t *testing.T) {
	rates := pricing.DefaultRates()

	for days := 0; days <= 28; days++ {
		got := rates.Quote(pricing.Input{
			NumberOfDays:     days,
			CarType:          pricing.CarTypeSUV,
			FuelType:         pricing.FuelTypeHybrid,
			UnlimitedMileage: true,
			BreakdownCover:   true,
		})

		sum := got.BaseRental + got.CarTypeSurcharge + got.FuelSurcharge +
			got.UnlimitedMileageCost + got.BreakdownCoverCost
		assert.Equal(t, sum, got.TotalCost)
	}
}

func TestQuoteMonotonicInDays(t *testing.T) {
	rates := pricing.DefaultRates()

	prev := pricing.Amount(-1)

	for days := 0; days <= 28; days++ {
		got := rates.Quote(pricing.Input{
			NumberOfDays:     days,
			CarType:          pricing.CarTypeFamily,
			FuelType:         pricing.FuelTypeElectric,
			UnlimitedMileage: true,
		})

		assert.GreaterOrEqual(t, got.TotalCost, prev)
		prev = got.TotalCost
	}
}

func TestQuoteIsIdempotent(t *testing.T) {
	rates := pricing.DefaultRates()
	input := pricing.Input{
		NumberOfDays:   5,
		CarType:        pricing.CarTypeCity,
		FuelType:       pricing.FuelTypeDiesel,
		BreakdownCover: true,
	}

	assert.Equal(t, rates.Quote(input), rates.Quote(input))
}

func TestAmountDisplay(t *testing.T) {
	assert.Equal(t, "125.00", pricing.Amount(125).Display())
	assert.Equal(t, "0.00", pricing.Amount(0).Display())
}
