package booking

import (
	"fmt"
	"time"

	"grandhaven/models"
	"grandhaven/utils"
)

// bookingTransitions is the lifecycle table. Absent entries are terminal.
var bookingTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingStatusConfirmed: {
		models.BookingStatusCheckedIn,
		models.BookingStatusCancelled,
		models.BookingStatusNoShow,
	},
	models.BookingStatusCheckedIn: {
		models.BookingStatusCheckedOut,
		models.BookingStatusCancelled,
	},
}

func canTransition(from, to models.BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *DefaultBookingService) transition(id string, to models.BookingStatus) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !canTransition(b.Status, to) {
		return nil, utils.InvalidTransitionError(
			fmt.Sprintf("cannot move booking %s from %s to %s", b.BookingNumber, b.Status, to))
	}

	now := time.Now()
	switch to {
	case models.BookingStatusCheckedIn:
		b.ActualCheckIn = &now
	case models.BookingStatusCheckedOut:
		b.ActualCheckOut = &now
	case models.BookingStatusCancelled:
		// Signal to trigger an external refund; no refund is executed here.
		b.Payment.Status = models.PaymentStatusRefunded
	}
	b.Status = to

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}

	// The room unit returns to the pool once the stay is over or abandoned.
	if to == models.BookingStatusCheckedOut || to == models.BookingStatusCancelled {
		if err := s.RoomRepo.Release(b.RoomID); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// CheckIn moves a confirmed booking into checked-in and stamps the arrival.
func (s *DefaultBookingService) CheckIn(id string) (*models.Booking, error) {
	return s.transition(id, models.BookingStatusCheckedIn)
}

// CheckOut moves a checked-in booking to checked-out, stamps the departure
// and releases the room unit.
func (s *DefaultBookingService) CheckOut(id string) (*models.Booking, error) {
	return s.transition(id, models.BookingStatusCheckedOut)
}

// Cancel aborts a confirmed or checked-in booking, marks the payment for
// refund and releases the room unit.
func (s *DefaultBookingService) Cancel(id string) (*models.Booking, error) {
	return s.transition(id, models.BookingStatusCancelled)
}

// MarkNoShow is a manual, staff-only transition for guests who never arrive.
// Nothing triggers it automatically, and the room unit is not released; staff
// decide separately whether to put the room back on sale.
func (s *DefaultBookingService) MarkNoShow(id string) (*models.Booking, error) {
	return s.transition(id, models.BookingStatusNoShow)
}
