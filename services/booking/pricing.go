package booking

import (
	"math"
	"time"

	"grandhaven/models"
)

// TaxRate is the flat booking tax. Restaurant orders are taxed separately at
// their own rate.
const TaxRate = 0.18

// NumberOfNights derives the billed nights between check-in and check-out,
// rounding partial days up.
func NumberOfNights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// ComputeBookingTotal recomputes the booking's pricing breakdown in place.
// It must run before every save that touched a line item, so stored totals
// never go stale. It does not persist.
func ComputeBookingTotal(b *models.Booking) {
	roomTotal := b.Pricing.RoomRate * float64(b.NumberOfNights)

	var packageAmount float64
	if b.Package != nil {
		packageAmount = b.Package.Price
	}

	var servicesTotal float64
	for _, svc := range b.AdditionalServices {
		if svc.Status == models.AdditionalServiceCancelled {
			continue
		}
		servicesTotal += svc.Price * float64(svc.Quantity)
	}

	var foodTotal float64
	for i := range b.FoodOrders {
		b.FoodOrders[i].TotalAmount = b.FoodOrders[i].Total()
		foodTotal += b.FoodOrders[i].TotalAmount
	}

	subtotal := roomTotal + packageAmount + servicesTotal + foodTotal
	tax := subtotal * TaxRate

	b.Pricing.RoomTotal = roomTotal
	b.Pricing.PackageAmount = packageAmount
	b.Pricing.ServicesTotal = servicesTotal
	b.Pricing.FoodTotal = foodTotal
	b.Pricing.Subtotal = subtotal
	b.Pricing.TaxAmount = tax
	b.Pricing.TotalAmount = subtotal + tax - b.Pricing.DiscountAmount
}
