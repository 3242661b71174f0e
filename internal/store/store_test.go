package store_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/localnerve/realtydash/internal/models"
	"github.com/localnerve/realtydash/internal/store"
)

func TestSeedData(t *testing.T) {
	c := qt.New(t)

	s := store.New()

	users := s.AllUsers()
	c.Assert(users, qt.HasLen, 4)
	c.Assert(users[0].Username, qt.Equals, "john_doe")
	c.Assert(users[0].ID, qt.Equals, 1)
	c.Assert(users[3].Username, qt.Equals, "emma_rodriguez")
	c.Assert(users[3].Role, qt.Equals, "Team Lead")

	rows := s.AllMarketData()
	c.Assert(rows, qt.HasLen, 6)

	months := make([]string, 0, len(rows))
	avgPrices := make([]int, 0, len(rows))
	for _, row := range rows {
		months = append(months, row.Month)
		avgPrices = append(avgPrices, row.AvgPrice)
	}
	c.Assert(months, qt.DeepEquals, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"})
	c.Assert(avgPrices, qt.DeepEquals, []int{420000, 435000, 445000, 458000, 470000, 485000})
}

func TestSeedIsPerStore(t *testing.T) {
	c := qt.New(t)

	// A fresh store always resets to the same seed; nothing carries over
	first := store.New()
	first.CreateComment(models.InsertComment{UserID: 1, Content: "gone after restart"})

	second := store.New()
	c.Assert(second.AllComments(), qt.HasLen, 0)
	c.Assert(second.AllUsers(), qt.HasLen, 4)
}

func TestCreatePropertyDerivesPricePerSqft(t *testing.T) {
	tests := []struct {
		name     string
		price    int
		sqft     int
		expected int
	}{
		{name: "exact division", price: 400000, sqft: 2000, expected: 200},
		{name: "rounds down", price: 500000, sqft: 1900, expected: 263},
		{name: "rounds up", price: 450000, sqft: 2200, expected: 205},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			s := store.New()
			property := s.CreateProperty(models.InsertProperty{
				Address:        "123 Main St",
				Price:          tt.price,
				Bedrooms:       3,
				Bathrooms:      2.5,
				Sqft:           tt.sqft,
				MarketPosition: models.MarketPositionAverage,
				Status:         models.PropertyStatusActive,
			})

			c.Assert(property.PricePerSqft, qt.Equals, tt.expected)
			c.Assert(property.ID, qt.Equals, 1)
			c.Assert(property.CreatedAt.IsZero(), qt.IsFalse)
		})
	}
}

func TestPropertyIDsAreMonotonic(t *testing.T) {
	c := qt.New(t)

	s := store.New()
	insert := models.InsertProperty{
		Address:        "123 Main St",
		Price:          400000,
		Bedrooms:       3,
		Bathrooms:      2.0,
		Sqft:           2000,
		MarketPosition: models.MarketPositionAverage,
		Status:         models.PropertyStatusActive,
	}

	first := s.CreateProperty(insert)
	second := s.CreateProperty(insert)
	c.Assert(second.ID, qt.Equals, first.ID+1)

	// Identifiers are never reused, even after deletion
	c.Assert(s.DeleteProperty(second.ID), qt.IsTrue)
	third := s.CreateProperty(insert)
	c.Assert(third.ID, qt.Equals, second.ID+1)
}

func TestUpdatePropertyMergesWithoutRecompute(t *testing.T) {
	c := qt.New(t)

	s := store.New()
	property := s.CreateProperty(models.InsertProperty{
		Address:        "123 Main St",
		Price:          400000,
		Bedrooms:       3,
		Bathrooms:      2.0,
		Sqft:           2000,
		MarketPosition: models.MarketPositionAverage,
		Status:         models.PropertyStatusActive,
	})
	c.Assert(property.PricePerSqft, qt.Equals, 200)

	newPrice := 600000
	newStatus := models.PropertyStatusPending
	updated, ok := s.UpdateProperty(property.ID, models.PropertyUpdate{
		Price:  &newPrice,
		Status: &newStatus,
	})
	c.Assert(ok, qt.IsTrue)
	c.Assert(updated.Price, qt.Equals, 600000)
	c.Assert(updated.Status, qt.Equals, models.PropertyStatusPending)

	// Untouched fields survive the merge; the derived field stays stale
	c.Assert(updated.Address, qt.Equals, "123 Main St")
	c.Assert(updated.PricePerSqft, qt.Equals, 200)
	c.Assert(updated.CreatedAt, qt.Equals, property.CreatedAt)
}

func TestUpdatePropertyNotFound(t *testing.T) {
	c := qt.New(t)

	s := store.New()
	newPrice := 600000
	_, ok := s.UpdateProperty(99, models.PropertyUpdate{Price: &newPrice})
	c.Assert(ok, qt.IsFalse)
	c.Assert(s.AllProperties(), qt.HasLen, 0)
}

func TestDeletePropertyIsIdempotentFailure(t *testing.T) {
	c := qt.New(t)

	s := store.New()
	property := s.CreateProperty(models.InsertProperty{
		Address:        "123 Main St",
		Price:          400000,
		Bedrooms:       3,
		Bathrooms:      2.0,
		Sqft:           2000,
		MarketPosition: models.MarketPositionAverage,
		Status:         models.PropertyStatusActive,
	})

	c.Assert(s.DeleteProperty(property.ID), qt.IsTrue)

	_, found := s.GetProperty(property.ID)
	c.Assert(found, qt.IsFalse)

	// Deleting an already-deleted id reports failure, not an error
	c.Assert(s.DeleteProperty(property.ID), qt.IsFalse)
}

func TestGetUserByUsername(t *testing.T) {
	c := qt.New(t)

	s := store.New()

	user, ok := s.GetUserByUsername("sarah_johnson")
	c.Assert(ok, qt.IsTrue)
	c.Assert(user.Name, qt.Equals, "Sarah Johnson")
	c.Assert(user.Initials, qt.Equals, "SJ")

	_, ok = s.GetUserByUsername("nobody")
	c.Assert(ok, qt.IsFalse)
}

func TestCreateUserAssignsNextID(t *testing.T) {
	c := qt.New(t)

	s := store.New()
	user := s.CreateUser(models.InsertUser{
		Username: "new_agent",
		Password: "password",
		Name:     "New Agent",
		Role:     "Agent",
		Initials: "NA",
	})

	// Four seeded users occupy ids 1-4
	c.Assert(user.ID, qt.Equals, 5)

	got, ok := s.GetUser(5)
	c.Assert(ok, qt.IsTrue)
	c.Assert(got, qt.DeepEquals, user)
}

func TestCreateMarketDataAppends(t *testing.T) {
	c := qt.New(t)

	s := store.New()
	row := s.CreateMarketData(models.InsertMarketData{
		Month:              "Jul",
		AvgPrice:           492000,
		CompetitorAvgPrice: 488000,
		ActiveListings:     251,
		DaysOnMarket:       17,
	})

	c.Assert(row.ID, qt.Equals, 7)

	rows := s.AllMarketData()
	c.Assert(rows, qt.HasLen, 7)
	c.Assert(rows[6].Month, qt.Equals, "Jul")
}

func TestCounts(t *testing.T) {
	c := qt.New(t)

	s := store.New()
	s.CreateComment(models.InsertComment{UserID: 1, Content: "hello"})

	counts := s.Counts()
	c.Assert(counts["users"], qt.Equals, 4)
	c.Assert(counts["marketData"], qt.Equals, 6)
	c.Assert(counts["comments"], qt.Equals, 1)
	c.Assert(counts["properties"], qt.Equals, 0)
}
