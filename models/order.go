package models

import "time"

// OrderStatus is the restaurant order fulfillment state.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// IsTerminal reports whether the order can no longer change state.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// DeliveryType determines where the order is fulfilled. Room service carries
// a flat delivery fee.
type DeliveryType string

const (
	DeliveryRoomService DeliveryType = "room_service"
	DeliveryDineIn      DeliveryType = "dine_in"
	DeliveryPickup      DeliveryType = "pickup"
)

// OrderItem is a line item with a name/price snapshot from the menu. Subtotal
// is recomputed from price × quantity on every persist.
type OrderItem struct {
	MenuItemID string  `bson:"menuItemId" json:"menuItemId"`
	Name       string  `bson:"name" json:"name"`
	Price      float64 `bson:"price" json:"price"`
	Quantity   int     `bson:"quantity" json:"quantity"`
	Subtotal   float64 `bson:"subtotal" json:"subtotal"`
}

// CustomerInfo is the denormalized contact snapshot on an order.
type CustomerInfo struct {
	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email" json:"email"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
	RoomNumber string `bson:"roomNumber,omitempty" json:"roomNumber,omitempty"`
}

// Order is a restaurant order, independent of any booking.
type Order struct {
	ID                 string        `bson:"id" json:"id"`
	OrderNumber        string        `bson:"orderNumber" json:"orderNumber"`
	CustomerID         string        `bson:"customerId" json:"customerId"`
	Customer           CustomerInfo  `bson:"customer" json:"customer"`
	Items              []OrderItem   `bson:"items" json:"items"`
	TotalAmount        float64       `bson:"totalAmount" json:"totalAmount"`
	Tax                float64       `bson:"tax" json:"tax"`
	DeliveryFee        float64       `bson:"deliveryFee" json:"deliveryFee"`
	FinalAmount        float64       `bson:"finalAmount" json:"finalAmount"`
	Status             OrderStatus   `bson:"status" json:"status"`
	PaymentStatus      PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	PaymentIntentID    string        `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	TransactionID      string        `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	DeliveryType       DeliveryType  `bson:"deliveryType" json:"deliveryType"`
	DeliveryAddress    string        `bson:"deliveryAddress,omitempty" json:"deliveryAddress,omitempty"`
	ActualDeliveryTime *time.Time    `bson:"actualDeliveryTime,omitempty" json:"actualDeliveryTime,omitempty"`
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt" json:"updatedAt"`
}
