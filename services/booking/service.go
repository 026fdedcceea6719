package booking

import (
	"fmt"
	"time"

	"grandhaven/models"
	"grandhaven/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// bookingNumberPrefix starts every human-readable booking number.
const bookingNumberPrefix = "GH"

// CreateBooking validates the request, snapshots the package, reserves a room
// unit and persists the booking in its initial confirmed state. The reserve
// happens before the insert; a failed insert releases the unit again.
func (s *DefaultBookingService) CreateBooking(req CreateBookingRequest) (*models.Booking, error) {
	if req.GuestID == "" || req.RoomID == "" {
		return nil, utils.ValidationError("guestId and roomId are required")
	}
	if !req.CheckOutDate.After(req.CheckInDate) {
		return nil, utils.ValidationError("check-out date must be after check-in date")
	}
	nights := NumberOfNights(req.CheckInDate, req.CheckOutDate)
	if nights < 1 {
		return nil, utils.ValidationError("booking must span at least one night")
	}
	if req.Adults < 1 {
		return nil, utils.ValidationError("at least one adult is required")
	}
	if req.DiscountAmount < 0 {
		return nil, utils.ValidationError("discount amount must not be negative")
	}

	room, err := s.RoomRepo.GetByID(req.RoomID)
	if err != nil {
		return nil, err
	}

	var snapshot *models.PackageSnapshot
	if req.PackageID != "" {
		pkg, err := s.CatalogRepo.GetPackage(req.PackageID)
		if err != nil {
			return nil, err
		}
		if !pkg.IsAvailable(req.CheckInDate) {
			return nil, utils.ValidationError(fmt.Sprintf("package %s is not available on the check-in date", pkg.Name))
		}
		snapshot = &models.PackageSnapshot{
			PackageID:       pkg.ID,
			Name:            pkg.Name,
			Price:           pkg.SeasonalPrice(req.CheckInDate),
			DiscountPercent: pkg.DiscountPercent,
		}
	}

	number, err := s.allocateBookingNumber(time.Now())
	if err != nil {
		return nil, err
	}

	services := make([]models.AdditionalService, 0, len(req.AdditionalServices))
	for _, svc := range req.AdditionalServices {
		if svc.Quantity < 1 {
			return nil, utils.ValidationError("additional service quantity must be at least 1")
		}
		svc.ID = uuid.New().String()
		svc.Status = models.AdditionalServicePending
		services = append(services, svc)
	}

	b := &models.Booking{
		ID:                 uuid.New().String(),
		BookingNumber:      number,
		GuestID:            req.GuestID,
		RoomID:             room.ID,
		RoomNumber:         room.RoomNumber,
		CheckInDate:        req.CheckInDate,
		CheckOutDate:       req.CheckOutDate,
		NumberOfNights:     nights,
		Adults:             req.Adults,
		Children:           req.Children,
		Package:            snapshot,
		AdditionalServices: services,
		FoodOrders:         []models.FoodOrder{},
		ServiceRequests:    []models.ServiceRequest{},
		SpecialRequests:    req.SpecialRequests,
		Status:             models.BookingStatusConfirmed,
		Payment:            models.BookingPayment{Status: models.PaymentStatusPending},
		Pricing: models.BookingPricing{
			RoomRate:       room.Price,
			DiscountAmount: req.DiscountAmount,
		},
	}
	ComputeBookingTotal(b)

	if err := s.RoomRepo.Reserve(room.ID); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(b); err != nil {
		// Compensate the reserved unit so a failed insert cannot leak it.
		if relErr := s.RoomRepo.Release(room.ID); relErr != nil {
			utils.GetLogger().Error("failed to release room after booking insert failure",
				zap.String("roomId", room.ID), zap.Error(relErr))
		}
		return nil, err
	}
	return b, nil
}

// allocateBookingNumber builds GH + yymmdd + zero-padded daily sequence.
func (s *DefaultBookingService) allocateBookingNumber(day time.Time) (string, error) {
	seq, err := s.Repo.NextSequence(day)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%03d", bookingNumberPrefix, day.Format("060102"), seq), nil
}

// GetBooking retrieves a booking by ID.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// GetBookingByNumber retrieves a booking by its booking number.
func (s *DefaultBookingService) GetBookingByNumber(bookingNumber string) (*models.Booking, error) {
	return s.Repo.GetByNumber(bookingNumber)
}

// ListGuestBookings lists the bookings owned by a guest.
func (s *DefaultBookingService) ListGuestBookings(guestID string) ([]models.Booking, error) {
	return s.Repo.ListByGuest(guestID)
}

// ListBookings lists bookings, optionally filtered by status.
func (s *DefaultBookingService) ListBookings(status models.BookingStatus) ([]models.Booking, error) {
	return s.Repo.List(status)
}

// UpdateSpecialRequests lets the owning guest change the free-text requests,
// allowed only while the booking is still in its confirmed state.
func (s *DefaultBookingService) UpdateSpecialRequests(id, guestID, text string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b.GuestID != guestID {
		return nil, utils.ForbiddenError("booking belongs to another guest")
	}
	if b.Status != models.BookingStatusConfirmed {
		return nil, utils.InvalidTransitionError("special requests can only change while the booking is confirmed")
	}
	b.SpecialRequests = text
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// StaffOverride applies direct field changes staff are allowed to make on any
// non-deleted booking. The lifecycle gating is intentionally bypassed here;
// only enum membership is checked.
func (s *DefaultBookingService) StaffOverride(id string, req StaffOverrideRequest) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Status != nil {
		switch *req.Status {
		case models.BookingStatusConfirmed, models.BookingStatusCheckedIn,
			models.BookingStatusCheckedOut, models.BookingStatusCancelled,
			models.BookingStatusNoShow:
			b.Status = *req.Status
		default:
			return nil, utils.ValidationError(fmt.Sprintf("unknown booking status %q", *req.Status))
		}
	}
	if req.ActualCheckIn != nil {
		b.ActualCheckIn = req.ActualCheckIn
	}
	if req.ActualCheckOut != nil {
		b.ActualCheckOut = req.ActualCheckOut
	}
	if req.SpecialRequests != nil {
		b.SpecialRequests = *req.SpecialRequests
	}
	if req.Pricing != nil {
		b.Pricing = *req.Pricing
	}
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}
