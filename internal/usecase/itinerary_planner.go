package usecase

import (
	"context"
	"fmt"
	"time"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/internal/domain/repository"
	"tripwise-service/pkg/logger"
	"tripwise-service/pkg/metrics"
)

// ItineraryPlanner runs the generation pipeline: validate the request,
// resolve hotels and weather (each with its own fallback), compose the
// prompt, invoke the model, and parse the output. The stages run strictly
// in sequence; only validation and model-output failures are terminal.
type ItineraryPlanner struct {
	validator       *RequestValidator
	hotelResolver   *HotelResolver
	weatherResolver *WeatherResolver
	model           repository.GenerativeRepository
	interactions    repository.InteractionRepository
	metrics         *metrics.Metrics
	logger          logger.Logger
}

// NewItineraryPlanner creates a new itinerary planner
func NewItineraryPlanner(
	validator *RequestValidator,
	hotelResolver *HotelResolver,
	weatherResolver *WeatherResolver,
	model repository.GenerativeRepository,
	interactions repository.InteractionRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *ItineraryPlanner {
	return &ItineraryPlanner{
		validator:       validator,
		hotelResolver:   hotelResolver,
		weatherResolver: weatherResolver,
		model:           model,
		interactions:    interactions,
		metrics:         metrics,
		logger:          logger,
	}
}

// Generate runs the full pipeline for one request.
func (p *ItineraryPlanner) Generate(ctx context.Context, req entity.PlanRequest, userID string) (*entity.PlannedItinerary, error) {
	started := time.Now()

	req.ApplyDefaults()

	validated, err := p.validator.Validate(req)
	if err != nil {
		p.metrics.ErrorsCount.WithLabelValues("validate_request").Inc()
		return nil, err
	}

	p.logger.Info("Generating itinerary",
		"destination", req.Destination,
		"type", req.Type,
		"days", validated.DayCount,
		"people", req.NumberOfPeople)

	hotelNames := p.hotelResolver.Resolve(ctx, req.Destination, validated.Start, validated.End)
	weather := p.weatherResolver.Resolve(ctx, req.Destination, validated.Start, validated.DayCount)

	prompt := BuildPrompt(validated, hotelNames, weather)

	raw, err := p.invoke(ctx, prompt, userID)
	if err != nil {
		p.metrics.ErrorsCount.WithLabelValues("invoke_model").Inc()
		return nil, err
	}

	content, err := ParseItineraryContent(raw)
	if err != nil {
		p.logger.Error("Failed to parse model output",
			"destination", req.Destination,
			"error", err)
		p.metrics.ErrorsCount.WithLabelValues("parse_output").Inc()
		return nil, err
	}

	p.metrics.ItinerariesGenerated.Inc()
	p.metrics.GenerationTime.Observe(time.Since(started).Seconds())

	return &entity.PlannedItinerary{
		Type:           req.Type,
		NumberOfPeople: req.NumberOfPeople,
		Content:        *content,
	}, nil
}

// invoke calls the generative model once, recording the audit trail either
// way. Audit failures are logged and swallowed.
func (p *ItineraryPlanner) invoke(ctx context.Context, prompt, userID string) (string, error) {
	interaction := entity.NewLLMInteraction(userID, p.model.ModelName())
	interaction.PromptChars = len(prompt)

	started := time.Now()
	raw, err := p.model.Generate(ctx, prompt)
	interaction.LatencyMs = time.Since(started).Milliseconds()

	if err != nil {
		interaction.Success = false
		interaction.ErrorDetail = err.Error()
		p.record(ctx, interaction)
		return "", fmt.Errorf("%w: %v", entity.ErrModelInvocation, err)
	}

	interaction.Success = true
	interaction.OutputChars = len(raw)
	p.record(ctx, interaction)
	return raw, nil
}

func (p *ItineraryPlanner) record(ctx context.Context, interaction *entity.LLMInteraction) {
	if p.interactions == nil {
		return
	}
	if err := p.interactions.Record(ctx, interaction); err != nil {
		p.logger.Error("Failed to record model interaction", "error", err)
	}
}
