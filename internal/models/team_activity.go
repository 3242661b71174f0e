package models

import "time"

// TeamActivity represents a feed entry attributed to a user.
type TeamActivity struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	Action          string    `json:"action"`
	Description     string    `json:"description"`
	RelatedProperty *string   `json:"relatedProperty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// InsertTeamActivity is the payload for appending a feed entry
type InsertTeamActivity struct {
	UserID          int     `json:"userId"`
	Action          string  `json:"action"`
	Description     string  `json:"description"`
	RelatedProperty *string `json:"relatedProperty"`
}

// TeamActivityWithUser is the joined read shape: the activity with its
// referencing user attached. Entries whose user no longer resolves are
// dropped from result sets, never null-filled.
type TeamActivityWithUser struct {
	TeamActivity
	User User `json:"user"`
}
