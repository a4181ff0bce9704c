package model

import (
	"wearecars/shared/model"
)

const (
	TableName  = "rented_cars"
	EntityName = "booking"

	FieldID                = "id"
	FieldCustomerFirstName = "customer_first_name"
	FieldCustomerSurname   = "customer_surname"
	FieldCustomerAddress   = "customer_address"
	FieldCustomerAge       = "customer_age"
	FieldHasDrivingLicense = "has_driving_license"
	FieldCarType           = "car_type"
	FieldFuelType          = "fuel_type"
	FieldNumberOfDays      = "number_of_days"
	FieldUnlimitedMileage  = "unlimited_mileage"
	FieldBreakdownCover    = "breakdown_cover"
	FieldPaymentMethod     = "payment_method"
	FieldTotalPrice        = "total_price"
	FieldCreatedBy         = "created_by"
)

// Booking is a confirmed rental. TotalPrice is the amount frozen at review
// time, not a value recomputed from the rate tables.
type Booking struct {
	ID                string `db:"id"`
	CustomerFirstName string `db:"customer_first_name"`
	CustomerSurname   string `db:"customer_surname"`
	CustomerAddress   string `db:"customer_address"`
	CustomerAge       int    `db:"customer_age"`
	HasDrivingLicense string `db:"has_driving_license"`
	CarType           string `db:"car_type"`
	FuelType          string `db:"fuel_type"`
	NumberOfDays      int    `db:"number_of_days"`
	UnlimitedMileage  bool   `db:"unlimited_mileage"`
	BreakdownCover    bool   `db:"breakdown_cover"`
	PaymentMethod     string `db:"payment_method"`
	TotalPrice        int64  `db:"total_price"`
	model.Metadata
}
