package handler

import (
	"errors"
	"net/http"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/pkg/utils"
)

// writeDomainError maps the error taxonomy to HTTP responses. Upstream
// hotel/weather degradation never reaches here; it is absorbed by the
// resolvers.
func writeDomainError(w http.ResponseWriter, err error) {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		utils.Fail(w, http.StatusBadRequest, ve.Message)
		return
	}

	var ce *entity.ConflictError
	if errors.As(err, &ce) {
		utils.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success":   false,
			"message":   ce.Message,
			"itinerary": ce.Existing,
		})
		return
	}

	switch {
	case errors.Is(err, entity.ErrNotFound):
		utils.Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, entity.ErrForbidden):
		utils.Fail(w, http.StatusForbidden, err.Error())
	case errors.Is(err, entity.ErrModelOutputMalformed):
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to generate valid itinerary format", err.Error())
	case errors.Is(err, entity.ErrModelInvocation):
		utils.FailWithError(w, http.StatusInternalServerError, "Failed to generate itinerary", err.Error())
	default:
		utils.FailWithError(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
