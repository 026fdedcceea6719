package models

import "time"

// MenuItem is a restaurant catalog entry. Orders snapshot name and price at
// order time so later menu edits do not change an existing order.
type MenuItem struct {
	ID          string    `bson:"id" json:"id"`
	CategoryID  string    `bson:"categoryId" json:"categoryId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Available   bool      `bson:"available" json:"available"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// GalleryImage is an uploaded hotel gallery entry backed by object storage.
type GalleryImage struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	PublicID  string    `bson:"publicId" json:"publicId"`
	URL       string    `bson:"url" json:"url"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
