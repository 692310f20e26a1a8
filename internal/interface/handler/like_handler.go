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

// LikeHandler serves per-day itinerary reactions.
type LikeHandler struct {
	likes  repository.LikeRepository
	logger logger.Logger
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(likes repository.LikeRepository, logger logger.Logger) *LikeHandler {
	return &LikeHandler{likes: likes, logger: logger}
}

type likeRequest struct {
	ItineraryID string `json:"itineraryId"`
	DayNumber   int    `json:"dayNumber"`
	Liked       bool   `json:"liked"`
}

// Create handles POST /api/itinerary-likes
func (h *LikeHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.UserID(r.Context())

	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	itineraryID, err := primitive.ObjectIDFromHex(req.ItineraryID)
	if err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	existing, err := h.likes.FindOne(r.Context(), userID, itineraryID, req.DayNumber)
	if err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to create itinerary like", err.Error())
		return
	}
	if existing != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success":       false,
			"message":       "You have already liked/disliked this itinerary day",
			"itineraryLike": existing,
		})
		return
	}

	like := &entity.ItineraryLike{
		UserID:      userID,
		ItineraryID: itineraryID,
		DayNumber:   req.DayNumber,
		Liked:       req.Liked,
	}

	if err := h.likes.Create(r.Context(), like); err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to create itinerary like", err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"success":       true,
		"message":       "Itinerary like created successfully",
		"itineraryLike": like,
	})
}

// List handles GET /api/itinerary-likes with an optional itineraryId filter
func (h *LikeHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var itineraryID *primitive.ObjectID
	if idStr := r.URL.Query().Get("itineraryId"); idStr != "" {
		id, err := primitive.ObjectIDFromHex(idStr)
		if err != nil {
			utils.Fail(w, http.StatusBadRequest, "Invalid itinerary ID")
			return
		}
		itineraryID = &id
	}

	likes, err := h.likes.FindByUser(r.Context(), middleware.UserID(r.Context()), itineraryID)
	if err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to fetch itinerary likes", err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"count":          len(likes),
		"itineraryLikes": likes,
	})
}

// Update handles PUT /api/itinerary-likes/:id
func (h *LikeHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	like, ok := h.ownedLike(w, r, ps)
	if !ok {
		return
	}

	var req struct {
		Liked bool `json:"liked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := h.likes.UpdateLiked(r.Context(), like.ID, req.Liked)
	if err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to update itinerary like", err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"message":       "Itinerary like updated successfully",
		"itineraryLike": updated,
	})
}

// Delete handles DELETE /api/itinerary-likes/:id
func (h *LikeHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	like, ok := h.ownedLike(w, r, ps)
	if !ok {
		return
	}

	if err := h.likes.Delete(r.Context(), like.ID); err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to delete itinerary like", err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Itinerary like deleted successfully",
	})
}

func (h *LikeHandler) ownedLike(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (*entity.ItineraryLike, bool) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Itinerary like not found")
		return nil, false
	}

	like, err := h.likes.FindByID(r.Context(), id)
	if err != nil {
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to fetch itinerary like", err.Error())
		return nil, false
	}
	if like == nil {
		utils.Fail(w, http.StatusNotFound, "Itinerary like not found")
		return nil, false
	}
	if like.UserID != middleware.UserID(r.Context()) {
		utils.Fail(w, http.StatusForbidden, "Unauthorized access to this itinerary like")
		return nil, false
	}
	return like, true
}
