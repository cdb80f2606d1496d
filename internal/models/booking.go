package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusSent      = "sent"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusFailed    = "failed"
)

type BookingRequest struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	ConversationID *uuid.UUID `json:"conversation_id"`
	VenueID        *uuid.UUID `json:"venue_id"`
	Category       string     `json:"category"`
	PartySize      *int       `json:"party_size"`
	Timeframe      *string    `json:"timeframe"`
	Notes          *string    `json:"notes"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CreateBookingRequest struct {
	ConversationID *uuid.UUID `json:"conversation_id"`
	VenueID        *uuid.UUID `json:"venue_id"`
	Category       string     `json:"category"`
	PartySize      *int       `json:"party_size"`
	Timeframe      *string    `json:"timeframe"`
	Notes          *string    `json:"notes"`
}

// BookingQueue is the Redis list connecting the booking handler to the
// dispatch worker pool.
const BookingQueue = "queue:booking-dispatch"

// BookingJob is the payload pushed onto the Redis queue for the worker pool.
type BookingJob struct {
	BookingID  uuid.UUID `json:"booking_id"`
	UserID     uuid.UUID `json:"user_id"`
	RetryCount int       `json:"retry_count"`
}
