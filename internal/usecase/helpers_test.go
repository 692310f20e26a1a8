package usecase

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/pkg/metrics"
)

// newTestMetrics builds unregistered metrics so each test can construct its
// own set without colliding in the default registry.
func newTestMetrics() *metrics.Metrics {
	return &metrics.Metrics{
		ItinerariesGenerated: prometheus.NewCounter(prometheus.CounterOpts{Name: "itineraries_generated_total"}),
		HotelFallbacks:       prometheus.NewCounter(prometheus.CounterOpts{Name: "hotel_fallbacks_total"}),
		WeatherFallbacks:     prometheus.NewCounter(prometheus.CounterOpts{Name: "weather_fallbacks_total"}),
		GenerationTime:       prometheus.NewHistogram(prometheus.HistogramOpts{Name: "itinerary_generation_time_seconds"}),
		ErrorsCount:          prometheus.NewCounterVec(prometheus.CounterOpts{Name: "errors_total"}, []string{"operation"}),
	}
}

type fakeHotelRepo struct {
	candidates []entity.HotelCandidate
	err        error
	calls      int
}

func (f *fakeHotelRepo) SearchHotels(_ context.Context, _ string, _, _ time.Time) ([]entity.HotelCandidate, error) {
	f.calls++
	return f.candidates, f.err
}

type fakeWeatherRepo struct {
	series map[string]*entity.HourlySeries
	err    error
	calls  int
}

func (f *fakeWeatherRepo) HourlyForDay(_ context.Context, _ string, date time.Time) (*entity.HourlySeries, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.series[date.Format("2006-01-02")]
	if !ok {
		return nil, context.DeadlineExceeded
	}
	return s, nil
}

func (f *fakeWeatherRepo) DayReport(_ context.Context, _ string, _ time.Time) (*entity.WeatherReport, error) {
	return nil, nil
}

type fakeModel struct {
	output string
	err    error
	calls  int
	prompt string
}

func (f *fakeModel) Generate(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func (f *fakeModel) ModelName() string { return "fake-model" }

type fakeInteractions struct {
	recorded []*entity.LLMInteraction
	err      error
}

func (f *fakeInteractions) Record(_ context.Context, interaction *entity.LLMInteraction) error {
	f.recorded = append(f.recorded, interaction)
	return f.err
}
