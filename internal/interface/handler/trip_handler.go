package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/internal/domain/repository"
	"tripwise-service/internal/infrastructure/middleware"
	"tripwise-service/pkg/logger"
	"tripwise-service/pkg/utils"
)

// TripHandler serves trip CRUD for the authenticated caller.
type TripHandler struct {
	trips  repository.TripRepository
	logger logger.Logger
}

// NewTripHandler creates a new trip handler
func NewTripHandler(trips repository.TripRepository, logger logger.Logger) *TripHandler {
	return &TripHandler{trips: trips, logger: logger}
}

type tripRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Review      string `json:"review"`
}

// Create handles POST /api/trips
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	trip := &entity.Trip{
		UserID:      middleware.UserID(r.Context()),
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Review:      req.Review,
	}

	if err := h.trips.Create(r.Context(), trip); err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to create trip", err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Trip created successfully",
		"trip":    trip,
	})
}

// List handles GET /api/trips
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	trips, err := h.trips.FindByUser(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to fetch trips", err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(trips),
		"trips":   trips,
	})
}

// Get handles GET /api/trips/:id
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, ok := h.ownedTrip(w, r, ps)
	if !ok {
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"trip":    trip,
	})
}

// Update handles PUT /api/trips/:id
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, ok := h.ownedTrip(w, r, ps)
	if !ok {
		return
	}

	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	trip.Destination = req.Destination
	trip.StartDate = req.StartDate
	trip.EndDate = req.EndDate
	trip.Review = req.Review

	if err := h.trips.Update(r.Context(), trip); err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to update trip", err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Trip updated successfully",
		"trip":    trip,
	})
}

// Delete handles DELETE /api/trips/:id
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, ok := h.ownedTrip(w, r, ps)
	if !ok {
		return
	}

	if err := h.trips.Delete(r.Context(), trip.ID); err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to delete trip", err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Trip deleted successfully",
	})
}

// ownedTrip loads the trip from the path and enforces ownership. On failure
// it writes the response and returns ok=false.
func (h *TripHandler) ownedTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (*entity.Trip, bool) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Trip not found")
		return nil, false
	}

	trip, err := h.trips.FindByID(r.Context(), id)
	if err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to fetch trip", err.Error())
		return nil, false
	}
	if trip == nil {
		utils.Fail(w, http.StatusNotFound, "Trip not found")
		return nil, false
	}
	if trip.UserID != middleware.UserID(r.Context()) {
		utils.Fail(w, http.StatusForbidden, "Unauthorized access to this trip")
		return nil, false
	}
	return trip, true
}
