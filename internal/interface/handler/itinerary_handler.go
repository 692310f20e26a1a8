package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/internal/domain/repository"
	"tripwise-service/internal/infrastructure/middleware"
	"tripwise-service/pkg/logger"
	"tripwise-service/pkg/utils"
)

// ItineraryHandler serves itinerary CRUD for the authenticated caller.
type ItineraryHandler struct {
	itineraries repository.ItineraryRepository
	trips       repository.TripRepository
	logger      logger.Logger
}

// NewItineraryHandler creates a new itinerary handler
func NewItineraryHandler(itineraries repository.ItineraryRepository, trips repository.TripRepository, logger logger.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		itineraries: itineraries,
		trips:       trips,
		logger:      logger,
	}
}

type itineraryRequest struct {
	TripID         string                   `json:"tripId"`
	Type           string                   `json:"type"`
	NumberOfPeople int                      `json:"numberOfPeople"`
	Content        *entity.ItineraryContent `json:"content"`
}

// Create handles POST /api/itineraries
func (h *ItineraryHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.UserID(r.Context())

	var req itineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.TripID == "" || req.Type == "" || req.Content == nil {
		utils.Fail(w, http.StatusBadRequest, "Missing required fields: tripId, type, or content")
		return
	}

	tripID, err := primitive.ObjectIDFromHex(req.TripID)
	if err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	trip, err := h.trips.FindByID(r.Context(), tripID)
	if err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to fetch trip", err.Error())
		return
	}
	if trip == nil || trip.UserID != userID {
		utils.Fail(w, http.StatusNotFound, "Trip not found or you do not have access to this trip")
		return
	}

	existing, err := h.itineraries.FindByTripAndType(r.Context(), tripID, req.Type)
	if err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to create itinerary", err.Error())
		return
	}
	if existing != nil {
		writeDomainError(w, &entity.ConflictError{
			Message:  fmt.Sprintf("A %s itinerary already exists for this trip", req.Type),
			Existing: existing,
		})
		return
	}

	itinerary := &entity.Itinerary{
		UserID:         userID,
		TripID:         tripID,
		Type:           req.Type,
		NumberOfPeople: req.NumberOfPeople,
		Content:        *req.Content,
	}

	if err := h.itineraries.Create(r.Context(), itinerary); err != nil {
		if h.itineraries.IsDuplicateKey(err) {
			writeDomainError(w, &entity.ConflictError{
				Message: fmt.Sprintf("A %s itinerary already exists for this trip", req.Type),
			})
			return
		}
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to create itinerary", err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"success":   true,
		"message":   "Itinerary created successfully",
		"itinerary": itinerary,
	})
}

// List handles GET /api/itineraries with optional tripId and type filters
func (h *ItineraryHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	filter := repository.ItineraryFilter{Type: query.Get("type")}
	if tripIDStr := query.Get("tripId"); tripIDStr != "" {
		tripID, err := primitive.ObjectIDFromHex(tripIDStr)
		if err != nil {
			utils.Fail(w, http.StatusBadRequest, "Invalid trip ID")
			return
		}
		filter.TripID = &tripID
	}

	itineraries, err := h.itineraries.FindByUser(r.Context(), middleware.UserID(r.Context()), filter)
	if err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to fetch itineraries", err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"count":       len(itineraries),
		"itineraries": itineraries,
	})
}

// Get handles GET /api/itineraries/:id
func (h *ItineraryHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itinerary, ok := h.ownedItinerary(w, r, ps)
	if !ok {
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"itinerary": itinerary,
	})
}

type itineraryUpdateRequest struct {
	Type    string                   `json:"type"`
	Content *entity.ItineraryContent `json:"content"`
}

// Update handles PUT /api/itineraries/:id
func (h *ItineraryHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itinerary, ok := h.ownedItinerary(w, r, ps)
	if !ok {
		return
	}

	var req itineraryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// A type change must not collide with the trip's other itinerary.
	if req.Type != "" && req.Type != itinerary.Type {
		existing, err := h.itineraries.FindByTripAndType(r.Context(), itinerary.TripID, req.Type)
		if err != nil {
			utils.FailWithError(w, http.StatusInternalServerError, "Failed to update itinerary", err.Error())
			return
		}
		if existing != nil {
			writeDomainError(w, &entity.ConflictError{
				Message:  fmt.Sprintf("A %s itinerary already exists for this trip", req.Type),
				Existing: existing,
			})
			return
		}
		itinerary.Type = req.Type
	}
	if req.Content != nil {
		itinerary.Content = *req.Content
	}

	if err := h.itineraries.Update(r.Context(), itinerary); err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to update itinerary", err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Itinerary updated successfully",
		"itinerary": itinerary,
	})
}

// Delete handles DELETE /api/itineraries/:id
func (h *ItineraryHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itinerary, ok := h.ownedItinerary(w, r, ps)
	if !ok {
		return
	}

	if err := h.itineraries.Delete(r.Context(), itinerary.ID); err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to delete itinerary", err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Itinerary deleted successfully",
	})
}

func (h *ItineraryHandler) ownedItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (*entity.Itinerary, bool) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Itinerary not found")
		return nil, false
	}

	itinerary, err := h.itineraries.FindByID(r.Context(), id)
	if err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to fetch itinerary", err.Error())
		return nil, false
	}
	if itinerary == nil {
		utils.Fail(w, http.StatusNotFound, "Itinerary not found")
		return nil, false
	}
	if itinerary.UserID != middleware.UserID(r.Context()) {
		utils.Fail(w, http.StatusForbidden, "Unauthorized access to this itinerary")
		return nil, false
	}
	return itinerary, true
}
