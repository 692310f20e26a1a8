package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/internal/domain/repository"
	"tripwise-service/internal/infrastructure/middleware"
	"tripwise-service/pkg/logger"
	"tripwise-service/pkg/utils"
)

// ItineraryGenerator runs the generation pipeline for one request.
type ItineraryGenerator interface {
	Generate(ctx context.Context, req entity.PlanRequest, userID string) (*entity.PlannedItinerary, error)
}

// AIHandler serves itinerary generation and saving.
type AIHandler struct {
	planner     ItineraryGenerator
	trips       repository.TripRepository
	itineraries repository.ItineraryRepository
	logger      logger.Logger
}

// NewAIHandler creates a new AI handler
func NewAIHandler(planner ItineraryGenerator, trips repository.TripRepository, itineraries repository.ItineraryRepository, logger logger.Logger) *AIHandler {
	return &AIHandler{
		planner:     planner,
		trips:       trips,
		itineraries: itineraries,
		logger:      logger,
	}
}

// Generate handles POST /api/ai/generate-itinerary
func (h *AIHandler) Generate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req entity.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	itinerary, err := h.planner.Generate(r.Context(), req, middleware.UserID(r.Context()))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	message := fmt.Sprintf("%s itinerary generated successfully for %s (%d people)",
		capitalize(itinerary.Type), req.Destination, itinerary.NumberOfPeople)

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   message,
		"itinerary": itinerary,
	})
}

type saveItineraryRequest struct {
	TripID         string                   `json:"tripId"`
	Type           string                   `json:"type"`
	Content        *entity.ItineraryContent `json:"content"`
	NumberOfPeople int                      `json:"numberOfPeople"`
}

// SaveGenerated handles POST /api/ai/save-itinerary
func (h *AIHandler) SaveGenerated(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.UserID(r.Context())

	var req saveItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.TripID == "" || req.Type == "" || req.Content == nil || req.NumberOfPeople == 0 {
		utils.Fail(w, http.StatusBadRequest, "Missing required fields: tripId, type, content, or numberOfPeople")
		return
	}
	if req.Type != entity.TypeBudget && req.Type != entity.TypeLuxury {
		utils.Fail(w, http.StatusBadRequest, `Type must be "budget" or "luxury"`)
		return
	}
	if req.NumberOfPeople < 1 {
		utils.Fail(w, http.StatusBadRequest, "Number of people must be a positive integer")
		return
	}

	tripID, err := primitive.ObjectIDFromHex(req.TripID)
	if err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	// The trip must exist and belong to the caller. Missing and foreign
	// trips get the same answer.
	trip, err := h.trips.FindByID(r.Context(), tripID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if trip == nil || trip.UserID != userID {
		utils.Fail(w, http.StatusNotFound, "Trip not found or you do not have access to this trip")
		return
	}

	existing, err := h.itineraries.FindByTripAndType(r.Context(), tripID, req.Type)
	if err != nil {
		writeDomainError(w, err)
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
		// Two saves can race past the pre-check; the unique index decides.
		if h.itineraries.IsDuplicateKey(err) {
			writeDomainError(w, &entity.ConflictError{
				Message: fmt.Sprintf("A %s itinerary already exists for this trip", req.Type),
			})
			return
		}
		writeDomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"success":   true,
		"message":   "Generated itinerary saved successfully",
		"itinerary": itinerary,
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
