package models

import (
	"time"

	"github.com/localnerve/realtydash/internal/types"
)

// Property status labels
const (
	PropertyStatusActive  = "active"
	PropertyStatusPending = "pending"
	PropertyStatusSold    = "sold"
)

// Market position labels
const (
	MarketPositionAbove   = "Above Average"
	MarketPositionAverage = "Market Average"
	MarketPositionBelow   = "Below Average"
)

// Property represents a listing tracked by the dashboard.
// PricePerSqft is computed once at creation and intentionally left stale on
// later updates to price or sqft.
type Property struct {
	ID             int               `json:"id"`
	Address        string            `json:"address"`
	Price          int               `json:"price"`
	Bedrooms       int               `json:"bedrooms"`
	Bathrooms      types.FlexDecimal `json:"bathrooms"`
	Sqft           int               `json:"sqft"`
	PricePerSqft   int               `json:"pricePerSqft"`
	MarketPosition string            `json:"marketPosition"`
	ImageURL       *string           `json:"imageUrl"`
	Status         string            `json:"status"`
	DaysOnMarket   int               `json:"daysOnMarket"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// InsertProperty is the validated payload for creating a property.
// The store assigns id, createdAt and pricePerSqft.
type InsertProperty struct {
	Address        string            `json:"address"`
	Price          int               `json:"price"`
	Bedrooms       int               `json:"bedrooms"`
	Bathrooms      types.FlexDecimal `json:"bathrooms"`
	Sqft           int               `json:"sqft"`
	MarketPosition string            `json:"marketPosition"`
	ImageURL       *string           `json:"imageUrl"`
	Status         string            `json:"status"`
	DaysOnMarket   int               `json:"daysOnMarket"`
}

// PropertyUpdate carries a partial update for PUT /api/properties/:id.
// Nil fields are left untouched. PricePerSqft may be set directly but is
// never recomputed from Price or Sqft.
type PropertyUpdate struct {
	Address        *string            `json:"address"`
	Price          *int               `json:"price"`
	Bedrooms       *int               `json:"bedrooms"`
	Bathrooms      *types.FlexDecimal `json:"bathrooms"`
	Sqft           *int               `json:"sqft"`
	PricePerSqft   *int               `json:"pricePerSqft"`
	MarketPosition *string            `json:"marketPosition"`
	ImageURL       *string            `json:"imageUrl"`
	Status         *string            `json:"status"`
	DaysOnMarket   *int               `json:"daysOnMarket"`
}
