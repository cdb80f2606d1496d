package models

import "github.com/google/uuid"

type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

// WSMessage is the envelope published over Redis pub/sub and forwarded to
// websocket clients.
type WSMessage struct {
	Type    string      `json:"type"` // "assistant_reply", "booking_update"
	Payload interface{} `json:"payload"`
}

type BookingUpdate struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
	VenueName string `json:"venue_name,omitempty"`
}

// UserUpdatesChannel names the pub/sub channel carrying one member's live
// updates. Publishers (concierge turns, booking dispatch) and the websocket
// hub must agree on it.
func UserUpdatesChannel(userID uuid.UUID) string {
	return "user_updates:" + userID.String()
}
