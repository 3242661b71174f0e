// store.go
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

package store

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/localnerve/realtydash/internal/models"
)

// Store is the in-memory entity store: one map per entity type, each keyed by
// a per-type counter starting at 1. Identifiers are never reused, even after
// deletion. The nodejs service it replaces ran single-threaded; Fiber handlers
// run concurrently, so the store serializes access with a RWMutex instead.
type Store struct {
	mu sync.RWMutex

	users        map[int]models.User
	properties   map[int]models.Property
	marketData   map[int]models.MarketData
	teamActivity map[int]models.TeamActivity
	documents    map[int]models.Document
	comments     map[int]models.Comment

	nextUserID         int
	nextPropertyID     int
	nextMarketDataID   int
	nextTeamActivityID int
	nextDocumentID     int
	nextCommentID      int
}

// New constructs a Store and populates it with the fixed demo seed. The seed
// runs exactly once per process; nothing persists across restarts.
func New() *Store {
	s := &Store{
		users:              make(map[int]models.User),
		properties:         make(map[int]models.Property),
		marketData:         make(map[int]models.MarketData),
		teamActivity:       make(map[int]models.TeamActivity),
		documents:          make(map[int]models.Document),
		comments:           make(map[int]models.Comment),
		nextUserID:         1,
		nextPropertyID:     1,
		nextMarketDataID:   1,
		nextTeamActivityID: 1,
		nextDocumentID:     1,
		nextCommentID:      1,
	}

	s.seed()

	return s
}

// User methods

// GetUser returns the user with the given id.
func (s *Store) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	return user, ok
}

// GetUserByUsername returns the user with the given username.
// Usernames are unique at the application layer, not enforced here.
func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}

// CreateUser inserts a user and returns it with its assigned id.
func (s *Store) CreateUser(insert models.InsertUser) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       s.nextUserID,
		Username: insert.Username,
		Password: insert.Password,
		Name:     insert.Name,
		Role:     insert.Role,
		Initials: insert.Initials,
	}
	s.nextUserID++
	s.users[user.ID] = user

	return user
}

// AllUsers returns every user ordered by id.
func (s *Store) AllUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users
}

// Property methods

// AllProperties returns every property ordered by id.
func (s *Store) AllProperties() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	properties := make([]models.Property, 0, len(s.properties))
	for _, property := range s.properties {
		properties = append(properties, property)
	}
	sort.Slice(properties, func(i, j int) bool { return properties[i].ID < properties[j].ID })

	return properties
}

// GetProperty returns the property with the given id.
func (s *Store) GetProperty(id int) (models.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	property, ok := s.properties[id]
	return property, ok
}

// CreateProperty inserts a property, assigning id, createdAt and the derived
// pricePerSqft (round(price/sqft), computed once and never refreshed).
func (s *Store) CreateProperty(insert models.InsertProperty) models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	property := models.Property{
		ID:             s.nextPropertyID,
		Address:        insert.Address,
		Price:          insert.Price,
		Bedrooms:       insert.Bedrooms,
		Bathrooms:      insert.Bathrooms,
		Sqft:           insert.Sqft,
		PricePerSqft:   int(math.Round(float64(insert.Price) / float64(insert.Sqft))),
		MarketPosition: insert.MarketPosition,
		ImageURL:       insert.ImageURL,
		Status:         insert.Status,
		DaysOnMarket:   insert.DaysOnMarket,
		CreatedAt:      time.Now().UTC(),
	}
	s.nextPropertyID++
	s.properties[property.ID] = property

	return property
}

// UpdateProperty merges the non-nil fields of updates onto the stored
// property. Derived fields are not recomputed. Returns false if the id does
// not exist; the store is untouched in that case.
func (s *Store) UpdateProperty(id int, updates models.PropertyUpdate) (models.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	property, ok := s.properties[id]
	if !ok {
		return models.Property{}, false
	}

	if updates.Address != nil {
		property.Address = *updates.Address
	}
	if updates.Price != nil {
		property.Price = *updates.Price
	}
	if updates.Bedrooms != nil {
		property.Bedrooms = *updates.Bedrooms
	}
	if updates.Bathrooms != nil {
		property.Bathrooms = *updates.Bathrooms
	}
	if updates.Sqft != nil {
		property.Sqft = *updates.Sqft
	}
	if updates.PricePerSqft != nil {
		property.PricePerSqft = *updates.PricePerSqft
	}
	if updates.MarketPosition != nil {
		property.MarketPosition = *updates.MarketPosition
	}
	if updates.ImageURL != nil {
		property.ImageURL = updates.ImageURL
	}
	if updates.Status != nil {
		property.Status = *updates.Status
	}
	if updates.DaysOnMarket != nil {
		property.DaysOnMarket = *updates.DaysOnMarket
	}

	s.properties[id] = property

	return property, true
}

// DeleteProperty removes the property and reports whether anything was
// removed. Deleting an absent id is not an error.
func (s *Store) DeleteProperty(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.properties[id]
	if ok {
		delete(s.properties, id)
	}
	return ok
}

// Market data methods

// AllMarketData returns every market data row ordered by id, which is also
// chronological order because rows are append-only.
func (s *Store) AllMarketData() []models.MarketData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.MarketData, 0, len(s.marketData))
	for _, row := range s.marketData {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	return rows
}

// CreateMarketData appends a market data row.
func (s *Store) CreateMarketData(insert models.InsertMarketData) models.MarketData {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := models.MarketData{
		ID:                 s.nextMarketDataID,
		Month:              insert.Month,
		AvgPrice:           insert.AvgPrice,
		CompetitorAvgPrice: insert.CompetitorAvgPrice,
		ActiveListings:     insert.ActiveListings,
		DaysOnMarket:       insert.DaysOnMarket,
		CreatedAt:          time.Now().UTC(),
	}
	s.nextMarketDataID++
	s.marketData[row.ID] = row

	return row
}

// Team activity methods

// CreateTeamActivity appends a feed entry. The referenced userId is accepted
// as-is; an unknown user only surfaces as a dropped row at read time.
func (s *Store) CreateTeamActivity(insert models.InsertTeamActivity) models.TeamActivity {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity := models.TeamActivity{
		ID:              s.nextTeamActivityID,
		UserID:          insert.UserID,
		Action:          insert.Action,
		Description:     insert.Description,
		RelatedProperty: insert.RelatedProperty,
		CreatedAt:       time.Now().UTC(),
	}
	s.nextTeamActivityID++
	s.teamActivity[activity.ID] = activity

	return activity
}

// Document methods

// CreateDocument appends a shared document.
func (s *Store) CreateDocument(insert models.InsertDocument) models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	document := models.Document{
		ID:        s.nextDocumentID,
		Name:      insert.Name,
		Type:      insert.Type,
		SharedBy:  insert.SharedBy,
		FileURL:   insert.FileURL,
		CreatedAt: time.Now().UTC(),
	}
	s.nextDocumentID++
	s.documents[document.ID] = document

	return document
}

// Comment methods

// CreateComment appends a comment.
func (s *Store) CreateComment(insert models.InsertComment) models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := models.Comment{
		ID:        s.nextCommentID,
		UserID:    insert.UserID,
		Content:   insert.Content,
		CreatedAt: time.Now().UTC(),
	}
	s.nextCommentID++
	s.comments[comment.ID] = comment

	return comment
}

// Counts returns the number of records per collection, keyed by collection
// name. Used by the health check and the record-count gauges.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]int{
		"users":        len(s.users),
		"properties":   len(s.properties),
		"marketData":   len(s.marketData),
		"teamActivity": len(s.teamActivity),
		"documents":    len(s.documents),
		"comments":     len(s.comments),
	}
}
