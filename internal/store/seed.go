package store

import (
	"github.com/rs/zerolog/log"

	"github.com/localnerve/realtydash/internal/models"
)

// seed populates the demo users and market history the dashboard ships with.
// Called once from New, before the store is handed to any handler, so it
// takes the lock through the regular Create methods.
func (s *Store) seed() {
	defaultUsers := []models.InsertUser{
		{Username: "john_doe", Password: "password", Name: "John Doe", Role: "Senior Agent", Initials: "JD"},
		{Username: "sarah_johnson", Password: "password", Name: "Sarah Johnson", Role: "Market Analyst", Initials: "SJ"},
		{Username: "mike_torres", Password: "password", Name: "Mike Torres", Role: "Real Estate Agent", Initials: "MT"},
		{Username: "emma_rodriguez", Password: "password", Name: "Emma Rodriguez", Role: "Team Lead", Initials: "ER"},
	}

	for _, user := range defaultUsers {
		s.CreateUser(user)
	}

	marketDataEntries := []models.InsertMarketData{
		{Month: "Jan", AvgPrice: 420000, CompetitorAvgPrice: 415000, ActiveListings: 240, DaysOnMarket: 25},
		{Month: "Feb", AvgPrice: 435000, CompetitorAvgPrice: 428000, ActiveListings: 235, DaysOnMarket: 23},
		{Month: "Mar", AvgPrice: 445000, CompetitorAvgPrice: 440000, ActiveListings: 245, DaysOnMarket: 22},
		{Month: "Apr", AvgPrice: 458000, CompetitorAvgPrice: 452000, ActiveListings: 250, DaysOnMarket: 20},
		{Month: "May", AvgPrice: 470000, CompetitorAvgPrice: 465000, ActiveListings: 248, DaysOnMarket: 19},
		{Month: "Jun", AvgPrice: 485000, CompetitorAvgPrice: 478000, ActiveListings: 247, DaysOnMarket: 18},
	}

	for _, row := range marketDataEntries {
		s.CreateMarketData(row)
	}

	log.Debug().
		Int("users", len(defaultUsers)).
		Int("marketData", len(marketDataEntries)).
		Msg("store seeded")
}
