package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"gliitz-backend/internal/middleware"
	"gliitz-backend/internal/models"
	"gliitz-backend/internal/services"
)

const maxMessageLength = 2000

type ChatHandler struct {
	concierge *services.ConciergeService
}

func NewChatHandler(concierge *services.ConciergeService) *ChatHandler {
	return &ChatHandler{concierge: concierge}
}

// Message runs one concierge turn: the member's message in, the assistant's
// reply plus resolved entities out.
func (h *ChatHandler) Message(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResp("UNAUTHORIZED", "Authentication required", r))
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.Message) == "" {
		fields["message"] = "Message is required"
	}
	if len(req.Message) > maxMessageLength {
		fields["message"] = "Message exceeds 2000 characters"
	}
	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	resp, err := h.concierge.HandleMessage(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
