package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

type Conversation struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is one turn of a conversation. Immutable once written; history order
// is insertion order.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Sender         string    `json:"sender"` // "user" or "assistant"
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

type ChatRequest struct {
	ConversationID *uuid.UUID `json:"conversation_id"`
	Message        string     `json:"message"`
}

// ChatResponse carries the reply plus resolved-intent metadata for the client
// and for analytics.
type ChatResponse struct {
	ConversationID uuid.UUID    `json:"conversation_id"`
	Reply          string       `json:"reply"`
	Intent         string       `json:"intent"`
	Entities       ChatEntities `json:"entities"`
	Delegated      bool         `json:"delegated"` // true when the reply came from the LLM fallback
}

type ChatEntities struct {
	Services  []string `json:"services"`
	PartySize int      `json:"party_size,omitempty"`
	Timeframe string   `json:"timeframe,omitempty"`
	Moods     []string `json:"moods,omitempty"`
}
