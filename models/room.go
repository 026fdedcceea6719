package models

import "time"

// RoomStatus is the maintenance state of a room.
type RoomStatus string

const (
	RoomStatusGood                RoomStatus = "good"
	RoomStatusNeedsCleaning       RoomStatus = "needs_cleaning"
	RoomStatusMaintenanceRequired RoomStatus = "maintenance_required"
	RoomStatusOutOfOrder          RoomStatus = "out_of_order"
)

// Room is a bookable room record. Available is the unit counter the
// availability ledger mutates; it is only ever changed through the room
// repository's Reserve/Release conditional updates.
type Room struct {
	ID         string     `bson:"id" json:"id"`
	CategoryID string     `bson:"categoryId" json:"categoryId"`
	RoomNumber string     `bson:"roomNumber" json:"roomNumber"`
	Price      float64    `bson:"price" json:"price"`
	Total      int        `bson:"total" json:"total"`
	Available  int        `bson:"available" json:"available"`
	Status     RoomStatus `bson:"status" json:"status"`
	Amenities  []string   `bson:"amenities,omitempty" json:"amenities,omitempty"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updatedAt" json:"updatedAt"`
}
