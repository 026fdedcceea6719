package booking

import (
	"time"

	bookingRepo "grandhaven/database/repository/booking"
	catalogRepo "grandhaven/database/repository/catalog"
	roomRepo "grandhaven/database/repository/room"
	"grandhaven/models"
)

// CreateBookingRequest carries the validated input for a new reservation.
type CreateBookingRequest struct {
	GuestID            string
	RoomID             string
	CheckInDate        time.Time
	CheckOutDate       time.Time
	Adults             int
	Children           int
	PackageID          string
	AdditionalServices []models.AdditionalService
	SpecialRequests    string
	DiscountAmount     float64
}

// StaffOverrideRequest is the staff escape hatch for fields guests cannot
// touch. Nil fields are left unchanged.
type StaffOverrideRequest struct {
	Status          *models.BookingStatus
	ActualCheckIn   *time.Time
	ActualCheckOut  *time.Time
	SpecialRequests *string
	Pricing         *models.BookingPricing
}

// ServiceRequestUpdate is a staff-side mutation of an in-stay ticket.
type ServiceRequestUpdate struct {
	Status        *models.ServiceRequestStatus
	AssignedStaff *string
	Resolution    *string
}

// BookingService drives the reservation aggregate through its lifecycle.
type BookingService interface {
	CreateBooking(req CreateBookingRequest) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	GetBookingByNumber(bookingNumber string) (*models.Booking, error)
	ListGuestBookings(guestID string) ([]models.Booking, error)
	ListBookings(status models.BookingStatus) ([]models.Booking, error)

	CheckIn(id string) (*models.Booking, error)
	CheckOut(id string) (*models.Booking, error)
	Cancel(id string) (*models.Booking, error)
	MarkNoShow(id string) (*models.Booking, error)

	UpdateSpecialRequests(id, guestID, text string) (*models.Booking, error)
	StaffOverride(id string, req StaffOverrideRequest) (*models.Booking, error)

	AddService(id string, svc models.AdditionalService) (*models.Booking, error)
	AddFoodOrder(id string, items []models.FoodOrderItem) (*models.Booking, error)
	AttachReview(id, guestID string, rating int, comment string) (*models.Booking, error)

	CreateServiceRequest(id, guestID, subject, description string) (*models.Booking, error)
	UpdateServiceRequest(id, requestID string, update ServiceRequestUpdate) (*models.Booking, error)
	RateServiceRequest(id, requestID, guestID string, rating int) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	RoomRepo    roomRepo.RoomRepository
	CatalogRepo catalogRepo.CatalogRepository
}
