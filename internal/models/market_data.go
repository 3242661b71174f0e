package models

import "time"

// MarketData represents one month of aggregated market numbers used by the
// trends chart. Rows are append-only.
type MarketData struct {
	ID                 int       `json:"id"`
	Month              string    `json:"month"`
	AvgPrice           int       `json:"avgPrice"`
	CompetitorAvgPrice int       `json:"competitorAvgPrice"`
	ActiveListings     int       `json:"activeListings"`
	DaysOnMarket       int       `json:"daysOnMarket"`
	CreatedAt          time.Time `json:"createdAt"`
}

// InsertMarketData is the payload for appending a market data row
type InsertMarketData struct {
	Month              string `json:"month"`
	AvgPrice           int    `json:"avgPrice"`
	CompetitorAvgPrice int    `json:"competitorAvgPrice"`
	ActiveListings     int    `json:"activeListings"`
	DaysOnMarket       int    `json:"daysOnMarket"`
}
