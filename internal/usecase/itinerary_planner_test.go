package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/internal/domain/repository"
	"tripwise-service/pkg/logger"
)

func newTestPlanner(t *testing.T, hotels *fakeHotelRepo, weather *fakeWeatherRepo, model *fakeModel, interactions *fakeInteractions) *ItineraryPlanner {
	t.Helper()
	m := newTestMetrics()
	var ir repository.InteractionRepository
	if interactions != nil {
		ir = interactions
	}
	return NewItineraryPlanner(
		NewRequestValidator(mustDate(t, "2025-04-25"), 16),
		NewHotelResolver(hotels, m, logger.NewNop()),
		NewWeatherResolver(weather, m, logger.NewNop()),
		model,
		ir,
		m,
		logger.NewNop(),
	)
}

func workingWeather() *fakeWeatherRepo {
	return &fakeWeatherRepo{series: map[string]*entity.HourlySeries{
		"2025-04-26": {Temperatures: []float64{20}, Precipitation: []float64{0}},
		"2025-04-27": {Temperatures: []float64{21}, Precipitation: []float64{0}},
		"2025-04-28": {Temperatures: []float64{22}, Precipitation: []float64{0}},
	}}
}

func TestPlannerGeneratesItinerary(t *testing.T) {
	hotels := &fakeHotelRepo{candidates: []entity.HotelCandidate{{Name: "Le Meurice", Rating: 4.8}}}
	model := &fakeModel{output: "```json\n" + minimalItineraryJSON + "\n```"}
	interactions := &fakeInteractions{}
	p := newTestPlanner(t, hotels, workingWeather(), model, interactions)

	got, err := p.Generate(context.Background(), validRequest(), "user-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got.Type != entity.TypeBudget || got.NumberOfPeople != 2 {
		t.Errorf("result metadata = %s/%d, want budget/2", got.Type, got.NumberOfPeople)
	}
	if len(got.Content.Days) != 1 {
		t.Errorf("content days = %d, want 1 from model output", len(got.Content.Days))
	}

	if !strings.Contains(model.prompt, "Le Meurice") {
		t.Error("prompt does not carry the resolved hotel name")
	}
	if !strings.Contains(model.prompt, "Day 3 (2025-04-28)") {
		t.Error("prompt does not carry the third weather day")
	}

	if len(interactions.recorded) != 1 {
		t.Fatalf("recorded %d interactions, want 1", len(interactions.recorded))
	}
	rec := interactions.recorded[0]
	if !rec.Success || rec.UserID != "user-1" || rec.ModelUsed != "fake-model" {
		t.Errorf("interaction = %+v, want success for user-1 on fake-model", rec)
	}
	if rec.PromptChars != len(model.prompt) {
		t.Errorf("PromptChars = %d, want %d", rec.PromptChars, len(model.prompt))
	}
}

func TestPlannerAppliesDefaults(t *testing.T) {
	model := &fakeModel{output: minimalItineraryJSON}
	p := newTestPlanner(t, &fakeHotelRepo{}, workingWeather(), model, nil)

	req := validRequest()
	req.Type = ""
	req.NumberOfPeople = 0

	got, err := p.Generate(context.Background(), req, "user-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got.Type != entity.TypeBudget || got.NumberOfPeople != 1 {
		t.Errorf("defaults = %s/%d, want budget/1", got.Type, got.NumberOfPeople)
	}
}

func TestPlannerRejectsBeforeExternalCalls(t *testing.T) {
	hotels := &fakeHotelRepo{}
	weather := workingWeather()
	model := &fakeModel{output: minimalItineraryJSON}
	p := newTestPlanner(t, hotels, weather, model, nil)

	req := validRequest()
	req.Destination = ""

	_, err := p.Generate(context.Background(), req, "user-1")
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Generate() error = %v, want validation error", err)
	}
	if hotels.calls != 0 || weather.calls != 0 || model.calls != 0 {
		t.Errorf("external calls = %d/%d/%d, want none for a rejected request",
			hotels.calls, weather.calls, model.calls)
	}
}

func TestPlannerSurvivesUpstreamFailures(t *testing.T) {
	// Hotel and weather lookups both fail; the pipeline still generates
	// from the fallback lists.
	hotels := &fakeHotelRepo{err: errors.New("hotel api down")}
	weather := &fakeWeatherRepo{err: errors.New("weather api down")}
	model := &fakeModel{output: minimalItineraryJSON}
	p := newTestPlanner(t, hotels, weather, model, nil)

	_, err := p.Generate(context.Background(), validRequest(), "user-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(model.prompt, "Generic Hotel, City Lodge, Traveler’s Inn") {
		t.Error("prompt does not carry the fallback hotel list")
	}
	if !strings.Contains(model.prompt, "Day 1 (2025-04-26): Avg Temp 25°C, Mild, Precipitation 0mm") {
		t.Error("prompt does not carry the uniform weather fallback")
	}
}

func TestPlannerModelInvocationError(t *testing.T) {
	model := &fakeModel{err: errors.New("rpc unavailable")}
	interactions := &fakeInteractions{}
	p := newTestPlanner(t, &fakeHotelRepo{}, workingWeather(), model, interactions)

	_, err := p.Generate(context.Background(), validRequest(), "user-1")
	if !errors.Is(err, entity.ErrModelInvocation) {
		t.Fatalf("Generate() error = %v, want ErrModelInvocation", err)
	}

	if len(interactions.recorded) != 1 {
		t.Fatalf("recorded %d interactions, want 1", len(interactions.recorded))
	}
	rec := interactions.recorded[0]
	if rec.Success || rec.ErrorDetail == "" {
		t.Errorf("interaction = %+v, want failure with detail", rec)
	}
}

func TestPlannerMalformedOutputIsTerminal(t *testing.T) {
	model := &fakeModel{output: "Sorry, I cannot produce an itinerary."}
	p := newTestPlanner(t, &fakeHotelRepo{}, workingWeather(), model, nil)

	_, err := p.Generate(context.Background(), validRequest(), "user-1")
	if !errors.Is(err, entity.ErrModelOutputMalformed) {
		t.Fatalf("Generate() error = %v, want ErrModelOutputMalformed", err)
	}
	if model.calls != 1 {
		t.Errorf("model calls = %d, want exactly 1 (no retry)", model.calls)
	}
}

func TestPlannerAuditFailureIsSwallowed(t *testing.T) {
	model := &fakeModel{output: minimalItineraryJSON}
	interactions := &fakeInteractions{err: errors.New("postgres down")}
	p := newTestPlanner(t, &fakeHotelRepo{}, workingWeather(), model, interactions)

	if _, err := p.Generate(context.Background(), validRequest(), "user-1"); err != nil {
		t.Fatalf("Generate() error = %v, want audit failures ignored", err)
	}
}
