package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ItinerariesGenerated prometheus.Counter
	HotelFallbacks       prometheus.Counter
	WeatherFallbacks     prometheus.Counter
	GenerationTime       prometheus.Histogram
	ErrorsCount          *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ItinerariesGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "itineraries_generated_total",
			Help:      "The total number of itineraries generated",
		}),
		HotelFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hotel_fallbacks_total",
			Help:      "Times the fixed hotel list was substituted for a failed lookup",
		}),
		WeatherFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_fallbacks_total",
			Help:      "Times the uniform weather fallback was substituted for a failed forecast",
		}),
		GenerationTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "itinerary_generation_time_seconds",
			Help:      "Time taken to run the full generation pipeline",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
