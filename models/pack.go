package models

import (
	"errors"
	"time"
)

// Season applies a price multiplier when a date falls inside its window.
type Season struct {
	Name       string    `bson:"name" json:"name"`
	StartDate  time.Time `bson:"startDate" json:"startDate"`
	EndDate    time.Time `bson:"endDate" json:"endDate"`
	Multiplier float64   `bson:"multiplier" json:"multiplier"`
}

// Package is a promotional bundle a booking may snapshot at creation time.
type Package struct {
	ID              string      `bson:"id" json:"id"`
	Name            string      `bson:"name" json:"name"`
	Description     string      `bson:"description,omitempty" json:"description,omitempty"`
	Price           float64     `bson:"price" json:"price"`
	DiscountPercent float64     `bson:"discountPercent" json:"discountPercent"`
	StartDate       *time.Time  `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate         *time.Time  `bson:"endDate,omitempty" json:"endDate,omitempty"`
	BlackoutDates   []time.Time `bson:"blackoutDates,omitempty" json:"blackoutDates,omitempty"`
	Seasons         []Season    `bson:"seasons,omitempty" json:"seasons,omitempty"`
	Inclusions      []string    `bson:"inclusions,omitempty" json:"inclusions,omitempty"`
	IsActive        bool        `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// EffectivePrice is the base price after the package discount.
func (p *Package) EffectivePrice() float64 {
	return p.Price * (1 - p.DiscountPercent/100)
}

// SeasonalPrice returns the effective price scaled by the first season whose
// window contains date. Overlapping seasons are rejected at write time by
// Validate, so stored order cannot silently decide the outcome.
func (p *Package) SeasonalPrice(date time.Time) float64 {
	base := p.EffectivePrice()
	for _, s := range p.Seasons {
		if !date.Before(s.StartDate) && !date.After(s.EndDate) {
			return base * s.Multiplier
		}
	}
	return base
}

// IsAvailable reports whether the package applies on the given date.
func (p *Package) IsAvailable(date time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.StartDate != nil && date.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && date.After(*p.EndDate) {
		return false
	}
	for _, b := range p.BlackoutDates {
		if sameCalendarDay(b, date) {
			return false
		}
	}
	return true
}

// Validate checks package integrity before persisting.
func (p *Package) Validate() error {
	if p.Name == "" {
		return errors.New("package name is required")
	}
	if p.Price < 0 {
		return errors.New("package price must not be negative")
	}
	if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
		return errors.New("discount percent must be between 0 and 100")
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return errors.New("package end date precedes start date")
	}
	for i, s := range p.Seasons {
		if s.Multiplier <= 0 {
			return errors.New("season multiplier must be positive")
		}
		if s.EndDate.Before(s.StartDate) {
			return errors.New("season end date precedes start date")
		}
		for _, other := range p.Seasons[i+1:] {
			if !s.EndDate.Before(other.StartDate) && !other.EndDate.Before(s.StartDate) {
				return errors.New("season windows must not overlap")
			}
		}
	}
	return nil
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
