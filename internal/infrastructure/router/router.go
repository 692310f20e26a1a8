package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"tripwise-service/internal/infrastructure/middleware"
	"tripwise-service/internal/interface/handler"
)

// Handlers bundles everything the HTTP surface serves.
type Handlers struct {
	AI          *handler.AIHandler
	Trips       *handler.TripHandler
	Itineraries *handler.ItineraryHandler
	Likes       *handler.LikeHandler
	Weather     *handler.WeatherHandler
}

// New builds the HTTP handler: API routes behind JWT auth, plus the
// unauthenticated weather, health, and metrics endpoints, wrapped in CORS.
func New(h Handlers, auth *middleware.Auth) http.Handler {
	r := httprouter.New()

	r.POST("/api/ai/generate-itinerary", auth.Authenticate(h.AI.Generate))
	r.POST("/api/ai/save-itinerary", auth.Authenticate(h.AI.SaveGenerated))

	r.POST("/api/trips", auth.Authenticate(h.Trips.Create))
	r.GET("/api/trips", auth.Authenticate(h.Trips.List))
	r.GET("/api/trips/:id", auth.Authenticate(h.Trips.Get))
	r.PUT("/api/trips/:id", auth.Authenticate(h.Trips.Update))
	r.DELETE("/api/trips/:id", auth.Authenticate(h.Trips.Delete))

	r.POST("/api/itineraries", auth.Authenticate(h.Itineraries.Create))
	r.GET("/api/itineraries", auth.Authenticate(h.Itineraries.List))
	r.GET("/api/itineraries/:id", auth.Authenticate(h.Itineraries.Get))
	r.PUT("/api/itineraries/:id", auth.Authenticate(h.Itineraries.Update))
	r.DELETE("/api/itineraries/:id", auth.Authenticate(h.Itineraries.Delete))

	r.POST("/api/itinerary-likes", auth.Authenticate(h.Likes.Create))
	r.GET("/api/itinerary-likes", auth.Authenticate(h.Likes.List))
	r.PUT("/api/itinerary-likes/:id", auth.Authenticate(h.Likes.Update))
	r.DELETE("/api/itinerary-likes/:id", auth.Authenticate(h.Likes.Delete))

	r.POST("/api/weather/historical", h.Weather.Historical)

	r.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	r.GET("/health", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	return cors.AllowAll().Handler(r)
}
