package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gliitz-backend/internal/intent"
	"gliitz-backend/internal/models"
	"gliitz-backend/internal/repository"
)

var validCategories = map[string]bool{
	intent.CategoryRestaurant: true,
	intent.CategoryYacht:      true,
	intent.CategoryVilla:      true,
	intent.CategoryEvent:      true,
	intent.CategorySpa:        true,
	intent.CategoryChauffeur:  true,
	intent.CategoryClub:       true,
}

type VenueHandler struct {
	venueRepo *repository.VenueRepo
}

func NewVenueHandler(venueRepo *repository.VenueRepo) *VenueHandler {
	return &VenueHandler{venueRepo: venueRepo}
}

// List returns directory entries for one category, optionally narrowed by a
// mood tag (?tag=romantic).
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if !validCategories[category] {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"category": "Unknown category"}, r))
		return
	}

	limit, _ := paginationParams(r, 10)
	tag := r.URL.Query().Get("tag")

	var (
		venues []models.Venue
		err    error
	)
	if tag != "" {
		venues, err = h.venueRepo.ListByCategoryAndTag(r.Context(), category, tag, limit)
	} else {
		venues, err = h.venueRepo.ListByCategory(r.Context(), category, limit)
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to list venues", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"venues": venues})
}

func (h *VenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid venue ID", r))
		return
	}

	venue, err := h.venueRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Venue not found", r))
		} else {
			writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load venue", r))
		}
		return
	}

	writeJSON(w, http.StatusOK, venue)
}
