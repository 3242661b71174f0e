package models

// User represents a team member account.
// Passwords are stored as-is; the nodejs service never hashed them and the
// seeded demo accounts rely on that.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Initials string `json:"initials"`
}

// InsertUser is the payload for creating a user (id assigned by the store)
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Initials string `json:"initials"`
}
