package models

import "time"

// Document type tags
const (
	DocumentTypePDF   = "pdf"
	DocumentTypeExcel = "excel"
	DocumentTypeWord  = "word"
	DocumentTypeOther = "other"
)

// Document represents a file shared with the team.
type Document struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	SharedBy  int       `json:"sharedBy"`
	FileURL   *string   `json:"fileUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertDocument is the payload for sharing a document
type InsertDocument struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	SharedBy int     `json:"sharedBy"`
	FileURL  *string `json:"fileUrl"`
}

// DocumentWithUser is the joined read shape with the sharing user attached.
type DocumentWithUser struct {
	Document
	SharedByUser User `json:"sharedByUser"`
}
