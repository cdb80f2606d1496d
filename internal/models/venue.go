package models

import (
	"time"

	"github.com/google/uuid"
)

// Venue is a directory entry used to fill reply placeholders and to target
// booking requests. The directory is curated data, not user data.
type Venue struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"` // matches intent service categories
	Area        string    `json:"area"`
	Phone       *string   `json:"phone"`
	WhatsApp    *string   `json:"whatsapp"`
	Website     *string   `json:"website"`
	Hours       *string   `json:"hours"`
	Tags        []string  `json:"tags"` // mood/style tags: romantic, festive...
	IsPartner   bool      `json:"is_partner"`
	DisplayRank int       `json:"display_rank"`
	CreatedAt   time.Time `json:"created_at"`
}
