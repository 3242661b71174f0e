package models

import "time"

// Comment represents a discussion entry attributed to a user.
type Comment struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertComment is the payload for appending a comment
type InsertComment struct {
	UserID  int    `json:"userId"`
	Content string `json:"content"`
}

// CommentWithUser is the joined read shape with the authoring user attached.
type CommentWithUser struct {
	Comment
	User User `json:"user"`
}
