package booking

import (
	"testing"
	"time"

	"grandhaven/models"

	"github.com/stretchr/testify/assert"
)

func TestNumberOfNights(t *testing.T) {
	base := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, NumberOfNights(base, base.AddDate(0, 0, 2)))
	// A partial extra day bills as a full night.
	assert.Equal(t, 2, NumberOfNights(base, base.AddDate(0, 0, 1).Add(6*time.Hour)))
	assert.Equal(t, 1, NumberOfNights(base, base.Add(3*time.Hour)))
}

func TestComputeBookingTotal(t *testing.T) {
	b := &models.Booking{
		NumberOfNights: 2,
		Pricing:        models.BookingPricing{RoomRate: 2400},
	}
	ComputeBookingTotal(b)

	assert.InDelta(t, 4800.0, b.Pricing.RoomTotal, 1e-9)
	assert.InDelta(t, 4800.0, b.Pricing.Subtotal, 1e-9)
	assert.InDelta(t, 864.0, b.Pricing.TaxAmount, 1e-9)
	assert.InDelta(t, 5664.0, b.Pricing.TotalAmount, 1e-9)
}

func TestComputeBookingTotalAllComponents(t *testing.T) {
	b := &models.Booking{
		NumberOfNights: 2,
		Package:        &models.PackageSnapshot{Price: 1000},
		AdditionalServices: []models.AdditionalService{
			{Name: "spa", Price: 300, Quantity: 2, Status: models.AdditionalServiceConfirmed},
			{Name: "tour", Price: 500, Quantity: 1, Status: models.AdditionalServiceCancelled},
		},
		FoodOrders: []models.FoodOrder{{
			Items: []models.FoodOrderItem{{Price: 150, Quantity: 2}},
			// Stale stored total must be recomputed, not trusted.
			TotalAmount: 9999,
		}},
		Pricing: models.BookingPricing{RoomRate: 2400, DiscountAmount: 100},
	}
	ComputeBookingTotal(b)

	assert.InDelta(t, 4800.0, b.Pricing.RoomTotal, 1e-9)
	assert.InDelta(t, 1000.0, b.Pricing.PackageAmount, 1e-9)
	assert.InDelta(t, 600.0, b.Pricing.ServicesTotal, 1e-9, "cancelled services do not bill")
	assert.InDelta(t, 300.0, b.Pricing.FoodTotal, 1e-9)
	assert.InDelta(t, 300.0, b.FoodOrders[0].TotalAmount, 1e-9)

	subtotal := 4800.0 + 1000.0 + 600.0 + 300.0
	assert.InDelta(t, subtotal, b.Pricing.Subtotal, 1e-9)
	assert.InDelta(t, subtotal*TaxRate, b.Pricing.TaxAmount, 1e-9)
	assert.InDelta(t, subtotal*1.18-100, b.Pricing.TotalAmount, 1e-9)
}

func TestComputeBookingTotalIdempotent(t *testing.T) {
	b := &models.Booking{
		NumberOfNights: 3,
		AdditionalServices: []models.AdditionalService{
			{Name: "laundry", Price: 120, Quantity: 1, Status: models.AdditionalServicePending},
		},
		Pricing: models.BookingPricing{RoomRate: 1800},
	}
	ComputeBookingTotal(b)
	first := b.Pricing
	ComputeBookingTotal(b)

	assert.Equal(t, first, b.Pricing, "recomputing an unchanged booking must not drift")
}
