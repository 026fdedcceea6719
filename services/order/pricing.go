package order

import (
	"math"

	"grandhaven/models"
)

const (
	// TaxRate is the restaurant tax, deliberately distinct from the booking
	// tax rate.
	TaxRate = 0.10
	// RoomServiceFee is the flat delivery fee for room-service orders.
	RoomServiceFee = 50.0
	// TotalTolerance is the accepted drift between a client-supplied total
	// and the server-side computation.
	TotalTolerance = 0.01
)

// OrderTotals is the derived amount breakdown for an order.
type OrderTotals struct {
	TotalAmount float64
	Tax         float64
	DeliveryFee float64
	FinalAmount float64
}

// ComputeOrderTotal recomputes each item's subtotal from its price snapshot
// and quantity, then derives tax and the final amount. Item subtotals are
// never trusted from caller input.
func ComputeOrderTotal(items []models.OrderItem, deliveryType models.DeliveryType) OrderTotals {
	var total float64
	for i := range items {
		items[i].Subtotal = items[i].Price * float64(items[i].Quantity)
		total += items[i].Subtotal
	}

	tax := math.Round(total * TaxRate)

	var fee float64
	if deliveryType == models.DeliveryRoomService {
		fee = RoomServiceFee
	}

	return OrderTotals{
		TotalAmount: total,
		Tax:         tax,
		DeliveryFee: fee,
		FinalAmount: total + tax + fee,
	}
}
