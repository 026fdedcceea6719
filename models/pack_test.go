package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func festivePackage() *Package {
	return &Package{
		ID:              "pkg-1",
		Name:            "Festive Escape",
		Price:           1000,
		DiscountPercent: 20,
		IsActive:        true,
		Seasons: []Season{{
			Name:       "peak",
			StartDate:  time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2027, 1, 5, 0, 0, 0, 0, time.UTC),
			Multiplier: 1.5,
		}},
	}
}

func TestEffectivePrice(t *testing.T) {
	p := festivePackage()
	assert.InDelta(t, 800.0, p.EffectivePrice(), 1e-9)

	p.DiscountPercent = 0
	assert.InDelta(t, 1000.0, p.EffectivePrice(), 1e-9)
}

func TestSeasonalPrice(t *testing.T) {
	p := festivePackage()

	t.Run("inside the season", func(t *testing.T) {
		price := p.SeasonalPrice(time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC))
		assert.InDelta(t, 1200.0, price, 1e-9)
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		onStart := p.SeasonalPrice(time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC))
		onEnd := p.SeasonalPrice(time.Date(2027, 1, 5, 0, 0, 0, 0, time.UTC))
		assert.InDelta(t, 1200.0, onStart, 1e-9)
		assert.InDelta(t, 1200.0, onEnd, 1e-9)
	})

	t.Run("outside any season the effective price applies", func(t *testing.T) {
		price := p.SeasonalPrice(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
		assert.InDelta(t, 800.0, price, 1e-9)
	})
}

func TestIsAvailable(t *testing.T) {
	day := time.Date(2026, 12, 24, 14, 0, 0, 0, time.UTC)

	t.Run("inactive package never applies", func(t *testing.T) {
		p := festivePackage()
		p.IsActive = false
		assert.False(t, p.IsAvailable(day))
	})

	t.Run("validity window", func(t *testing.T) {
		p := festivePackage()
		start := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
		p.StartDate = &start
		p.EndDate = &end

		assert.True(t, p.IsAvailable(day))
		assert.False(t, p.IsAvailable(start.AddDate(0, 0, -1)))
		assert.False(t, p.IsAvailable(end.AddDate(0, 0, 1)))
	})

	t.Run("blackout matches the calendar day regardless of time", func(t *testing.T) {
		p := festivePackage()
		p.BlackoutDates = []time.Time{time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)}

		assert.False(t, p.IsAvailable(day))
		assert.True(t, p.IsAvailable(day.AddDate(0, 0, 1)))
	})
}

func TestPackageValidate(t *testing.T) {
	t.Run("valid package passes", func(t *testing.T) {
		require.NoError(t, festivePackage().Validate())
	})

	t.Run("discount outside 0-100", func(t *testing.T) {
		p := festivePackage()
		p.DiscountPercent = 120
		assert.Error(t, p.Validate())
	})

	t.Run("non-positive multiplier", func(t *testing.T) {
		p := festivePackage()
		p.Seasons[0].Multiplier = 0
		assert.Error(t, p.Validate())
	})

	t.Run("overlapping seasons are rejected", func(t *testing.T) {
		p := festivePackage()
		p.Seasons = append(p.Seasons, Season{
			Name:       "new year",
			StartDate:  time.Date(2026, 12, 30, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC),
			Multiplier: 1.8,
		})
		assert.Error(t, p.Validate())
	})

	t.Run("adjacent seasons are allowed", func(t *testing.T) {
		p := festivePackage()
		p.Seasons = append(p.Seasons, Season{
			Name:       "late winter",
			StartDate:  time.Date(2027, 1, 6, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC),
			Multiplier: 1.2,
		})
		assert.NoError(t, p.Validate())
	})

	t.Run("season end before start", func(t *testing.T) {
		p := festivePackage()
		p.Seasons[0].EndDate = p.Seasons[0].StartDate.AddDate(0, 0, -1)
		assert.Error(t, p.Validate())
	})
}
