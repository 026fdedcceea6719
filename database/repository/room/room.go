package roomRepo

import "grandhaven/models"

// RoomRepository defines persistence and the availability ledger for rooms.
// Reserve and Release are the only mutators of the available counter.
type RoomRepository interface {
	Create(room *models.Room) error
	Update(room *models.Room) error
	Delete(id string) error
	GetByID(id string) (*models.Room, error)
	GetByNumber(roomNumber string) (*models.Room, error)
	List() ([]models.Room, error)

	// Reserve atomically decrements the room's available counter, failing
	// with an unavailable error when no unit is left. Release restores one
	// unit, bounded by the room's total capacity.
	Reserve(id string) error
	Release(id string) error

	SetStatus(id string, status models.RoomStatus) error
}
