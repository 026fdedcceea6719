package bookingRepo

import (
	"time"

	"grandhaven/models"
)

// BookingRepository defines persistence for the booking aggregate.
type BookingRepository interface {
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByNumber(bookingNumber string) (*models.Booking, error)
	ListByGuest(guestID string) ([]models.Booking, error)
	List(status models.BookingStatus) ([]models.Booking, error)

	// NextSequence allocates the next per-day booking sequence atomically.
	NextSequence(day time.Time) (int, error)
}
