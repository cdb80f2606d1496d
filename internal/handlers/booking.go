package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"gliitz-backend/internal/middleware"
	"gliitz-backend/internal/models"
	"gliitz-backend/internal/repository"
)

type BookingHandler struct {
	bookingRepo *repository.BookingRepo
	venueRepo   *repository.VenueRepo
	redis       *redis.Client
}

func NewBookingHandler(bookingRepo *repository.BookingRepo, venueRepo *repository.VenueRepo, redisClient *redis.Client) *BookingHandler {
	return &BookingHandler{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		redis:       redisClient,
	}
}

// Create records a booking request and enqueues it for the concierge desk.
// The response is immediate; dispatch happens in the worker pool.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResp("UNAUTHORIZED", "Authentication required", r))
		return
	}

	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	fields := map[string]string{}
	if !validCategories[req.Category] {
		fields["category"] = "Unknown category"
	}
	if req.PartySize != nil && (*req.PartySize < 1 || *req.PartySize > 100) {
		fields["party_size"] = "Party size must be between 1 and 100"
	}
	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	if req.VenueID != nil {
		if _, err := h.venueRepo.GetByID(r.Context(), *req.VenueID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Venue not found", r))
			} else {
				writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to verify venue", r))
			}
			return
		}
	}

	booking := &models.BookingRequest{
		UserID:         userID,
		ConversationID: req.ConversationID,
		VenueID:        req.VenueID,
		Category:       req.Category,
		PartySize:      req.PartySize,
		Timeframe:      req.Timeframe,
		Notes:          req.Notes,
		Status:         models.BookingStatusPending,
	}
	if err := h.bookingRepo.Create(r.Context(), booking); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create booking", r))
		return
	}

	job, _ := json.Marshal(models.BookingJob{BookingID: booking.ID, UserID: userID})
	if err := h.redis.LPush(r.Context(), models.BookingQueue, string(job)).Err(); err != nil {
		// The booking row stays pending; a requeue sweep can pick it up.
		log.Printf("failed to enqueue booking %s: %v", booking.ID, err)
	}

	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResp("UNAUTHORIZED", "Authentication required", r))
		return
	}

	limit, offset := paginationParams(r, 20)
	bookings, err := h.bookingRepo.ListByUser(r.Context(), userID, limit, offset)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to list bookings", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"bookings": bookings})
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResp("UNAUTHORIZED", "Authentication required", r))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid booking ID", r))
		return
	}

	booking, err := h.bookingRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Booking not found", r))
		} else {
			writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load booking", r))
		}
		return
	}
	if booking.UserID != userID {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "Access denied", r))
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

// Cancel marks a pending or sent booking cancelled. Confirmed bookings go
// through the concierge desk, not the API.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResp("UNAUTHORIZED", "Authentication required", r))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid booking ID", r))
		return
	}

	booking, err := h.bookingRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Booking not found", r))
		} else {
			writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load booking", r))
		}
		return
	}
	if booking.UserID != userID {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "Access denied", r))
		return
	}
	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusSent {
		writeJSON(w, http.StatusConflict, errorResp("CONFLICT", "Booking can no longer be cancelled", r))
		return
	}

	if err := h.bookingRepo.UpdateStatus(r.Context(), id, models.BookingStatusCancelled); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to cancel booking", r))
		return
	}

	booking.Status = models.BookingStatusCancelled
	writeJSON(w, http.StatusOK, booking)
}
