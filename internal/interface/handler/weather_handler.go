package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tripwise-service/internal/domain/repository"
	"tripwise-service/pkg/logger"
	"tripwise-service/pkg/utils"
)

// WeatherHandler serves the standalone weather lookup. Unlike the rest of
// the API it responds with the bare report, not the success envelope.
type WeatherHandler struct {
	weather repository.WeatherRepository
	logger  logger.Logger
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(weather repository.WeatherRepository, logger logger.Logger) *WeatherHandler {
	return &WeatherHandler{weather: weather, logger: logger}
}

// Historical handles POST /api/weather/historical
func (h *WeatherHandler) Historical(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		Location string `json:"location"`
		Date     string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}

	if req.Location == "" || req.Date == "" {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": "Location and date are required"})
		return
	}

	date, ok := utils.ParseDate(req.Date)
	if !ok {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	report, err := h.weather.DayReport(r.Context(), req.Location, date)
	if err != nil {
		h.logger.Error("Weather report failed", "location", req.Location, "error", err)
		utils.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	utils.JSON(w, http.StatusOK, report)
}
