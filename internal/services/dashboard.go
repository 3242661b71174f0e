// dashboard.go
//
// A scalable, high performance drop-in replacement for the realty-dash nodejs data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of realtydash.
// realtydash is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// realtydash is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with realtydash.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"fmt"
	"math"

	"github.com/localnerve/realtydash/internal/models"
	"github.com/localnerve/realtydash/internal/store"
)

// DashboardStats is the aggregate card payload for the dashboard landing
// page. The *Change fields and teamPerformance are static placeholder strings
// carried over from the nodejs service; they are not derived from market
// history.
type DashboardStats struct {
	ActiveListings        int    `json:"activeListings"`
	ActiveListingsChange  string `json:"activeListingsChange"`
	AvgPrice              string `json:"avgPrice"`
	AvgPriceChange        string `json:"avgPriceChange"`
	DaysOnMarket          int    `json:"daysOnMarket"`
	DaysOnMarketChange    string `json:"daysOnMarketChange"`
	TeamPerformance       string `json:"teamPerformance"`
	TeamPerformanceChange string `json:"teamPerformanceChange"`
}

// ComputeDashboardStats aggregates over the full property collection:
// activeListings counts properties with status "active", avgPrice is the
// rounded mean price rendered as "$NNNK", daysOnMarket is the rounded mean
// of the per-property counters.
func ComputeDashboardStats(s *store.Store) DashboardStats {
	properties := s.AllProperties()

	activeListings := 0
	priceSum := 0
	daysSum := 0
	for _, property := range properties {
		if property.Status == models.PropertyStatusActive {
			activeListings++
		}
		priceSum += property.Price
		daysSum += property.DaysOnMarket
	}

	avgPrice := 0
	avgDaysOnMarket := 0
	if len(properties) > 0 {
		avgPrice = int(math.Round(float64(priceSum) / float64(len(properties))))
		avgDaysOnMarket = int(math.Round(float64(daysSum) / float64(len(properties))))
	}

	return DashboardStats{
		ActiveListings:        activeListings,
		ActiveListingsChange:  "+12.5%",
		AvgPrice:              fmt.Sprintf("$%dK", int(math.Round(float64(avgPrice)/1000))),
		AvgPriceChange:        "-2.1%",
		DaysOnMarket:          avgDaysOnMarket,
		DaysOnMarketChange:    "-5 days",
		TeamPerformance:       "94%",
		TeamPerformanceChange: "+7.2%",
	}
}
