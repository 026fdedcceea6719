package models

import "time"

// BookingStatus is the overall lifecycle state of a reservation.
type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked-in"
	BookingStatusCheckedOut BookingStatus = "checked-out"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusNoShow     BookingStatus = "no-show"
)

// IsTerminal reports whether no further lifecycle transition is allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCheckedOut || s == BookingStatusCancelled || s == BookingStatusNoShow
}

// PaymentStatus is the payment axis, independent of the lifecycle status.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// AdditionalServiceStatus is the sub-status of a booked ancillary service.
type AdditionalServiceStatus string

const (
	AdditionalServicePending   AdditionalServiceStatus = "pending"
	AdditionalServiceConfirmed AdditionalServiceStatus = "confirmed"
	AdditionalServiceCompleted AdditionalServiceStatus = "completed"
	AdditionalServiceCancelled AdditionalServiceStatus = "cancelled"
)

// ServiceRequestStatus is the 5-state flow of an in-stay service ticket.
type ServiceRequestStatus string

const (
	ServiceRequestOpen       ServiceRequestStatus = "open"
	ServiceRequestAssigned   ServiceRequestStatus = "assigned"
	ServiceRequestInProgress ServiceRequestStatus = "in-progress"
	ServiceRequestResolved   ServiceRequestStatus = "resolved"
	ServiceRequestClosed     ServiceRequestStatus = "closed"
)

// PackageSnapshot is a copy of the package fields taken at booking creation
// so later package edits do not retroactively change an existing booking.
type PackageSnapshot struct {
	PackageID       string  `bson:"packageId" json:"packageId"`
	Name            string  `bson:"name" json:"name"`
	Price           float64 `bson:"price" json:"price"`
	DiscountPercent float64 `bson:"discountPercent" json:"discountPercent"`
}

// AdditionalService is an ancillary line item owned by the booking aggregate.
type AdditionalService struct {
	ID          string                  `bson:"id" json:"id"`
	Name        string                  `bson:"name" json:"name"`
	Price       float64                 `bson:"price" json:"price"`
	Quantity    int                     `bson:"quantity" json:"quantity"`
	ScheduledAt *time.Time              `bson:"scheduledAt,omitempty" json:"scheduledAt,omitempty"`
	Status      AdditionalServiceStatus `bson:"status" json:"status"`
}

// FoodOrderItem is a menu line inside an in-stay food order.
type FoodOrderItem struct {
	MenuItemID string  `bson:"menuItemId" json:"menuItemId"`
	Name       string  `bson:"name" json:"name"`
	Price      float64 `bson:"price" json:"price"`
	Quantity   int     `bson:"quantity" json:"quantity"`
}

// FoodOrder is a food order charged to the booking.
type FoodOrder struct {
	ID          string          `bson:"id" json:"id"`
	Items       []FoodOrderItem `bson:"items" json:"items"`
	TotalAmount float64         `bson:"totalAmount" json:"totalAmount"`
	OrderedAt   time.Time       `bson:"orderedAt" json:"orderedAt"`
}

// Total sums the order's item lines.
func (f *FoodOrder) Total() float64 {
	var total float64
	for _, it := range f.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// BookingPricing is the derived pricing breakdown. It is always recomputed by
// the pricing engine before save, never hand-set.
type BookingPricing struct {
	RoomRate       float64 `bson:"roomRate" json:"roomRate"`
	RoomTotal      float64 `bson:"roomTotal" json:"roomTotal"`
	PackageAmount  float64 `bson:"packageAmount" json:"packageAmount"`
	ServicesTotal  float64 `bson:"servicesTotal" json:"servicesTotal"`
	FoodTotal      float64 `bson:"foodTotal" json:"foodTotal"`
	Subtotal       float64 `bson:"subtotal" json:"subtotal"`
	TaxAmount      float64 `bson:"taxAmount" json:"taxAmount"`
	DiscountAmount float64 `bson:"discountAmount" json:"discountAmount"`
	TotalAmount    float64 `bson:"totalAmount" json:"totalAmount"`
}

// BookingPayment is the payment sub-record of a booking.
type BookingPayment struct {
	Status        PaymentStatus `bson:"status" json:"status"`
	Method        string        `bson:"method,omitempty" json:"method,omitempty"`
	TransactionID string        `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaidAmount    float64       `bson:"paidAmount" json:"paidAmount"`
	PaidAt        *time.Time    `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

// ServiceRequest is an in-stay ticket owned by the booking aggregate.
type ServiceRequest struct {
	ID            string               `bson:"id" json:"id"`
	Subject       string               `bson:"subject" json:"subject"`
	Description   string               `bson:"description,omitempty" json:"description,omitempty"`
	Status        ServiceRequestStatus `bson:"status" json:"status"`
	AssignedStaff string               `bson:"assignedStaff,omitempty" json:"assignedStaff,omitempty"`
	Resolution    string               `bson:"resolution,omitempty" json:"resolution,omitempty"`
	ResolvedAt    *time.Time           `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
	Rating        int                  `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
}

// Review is the optional post-stay review, attachable only after check-out.
type Review struct {
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Booking is the reservation aggregate. It exclusively owns its embedded
// additional services, food orders and service requests.
type Booking struct {
	ID                 string              `bson:"id" json:"id"`
	BookingNumber      string              `bson:"bookingNumber" json:"bookingNumber"`
	GuestID            string              `bson:"guestId" json:"guestId"`
	RoomID             string              `bson:"roomId" json:"roomId"`
	RoomNumber         string              `bson:"roomNumber" json:"roomNumber"`
	CheckInDate        time.Time           `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate       time.Time           `bson:"checkOutDate" json:"checkOutDate"`
	NumberOfNights     int                 `bson:"numberOfNights" json:"numberOfNights"`
	Adults             int                 `bson:"adults" json:"adults"`
	Children           int                 `bson:"children" json:"children"`
	Package            *PackageSnapshot    `bson:"package,omitempty" json:"package,omitempty"`
	AdditionalServices []AdditionalService `bson:"additionalServices" json:"additionalServices"`
	FoodOrders         []FoodOrder         `bson:"foodOrders" json:"foodOrders"`
	Pricing            BookingPricing      `bson:"pricing" json:"pricing"`
	Payment            BookingPayment      `bson:"payment" json:"payment"`
	SpecialRequests    string              `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	ServiceRequests    []ServiceRequest    `bson:"serviceRequests" json:"serviceRequests"`
	Status             BookingStatus       `bson:"status" json:"status"`
	ActualCheckIn      *time.Time          `bson:"actualCheckIn,omitempty" json:"actualCheckIn,omitempty"`
	ActualCheckOut     *time.Time          `bson:"actualCheckOut,omitempty" json:"actualCheckOut,omitempty"`
	Review             *Review             `bson:"review,omitempty" json:"review,omitempty"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// FindServiceRequest returns a pointer into the booking's service requests.
func (b *Booking) FindServiceRequest(id string) *ServiceRequest {
	for i := range b.ServiceRequests {
		if b.ServiceRequests[i].ID == id {
			return &b.ServiceRequests[i]
		}
	}
	return nil
}
