package usecase

import (
	"strings"
	"testing"

	"tripwise-service/internal/domain/entity"
)

func testValidated(t *testing.T) *ValidatedRequest {
	t.Helper()
	return &ValidatedRequest{
		Request: entity.PlanRequest{
			Destination:    "Paris",
			StartDate:      "2025-04-26",
			EndDate:        "2025-04-28",
			Preferences:    []string{"museums", "food"},
			Type:           entity.TypeBudget,
			NumberOfPeople: 2,
		},
		Start:    mustDate(t, "2025-04-26"),
		End:      mustDate(t, "2025-04-28"),
		DayCount: 3,
	}
}

func TestBuildPromptContents(t *testing.T) {
	hotels := []string{"Le Meurice", "Hotel Lutetia"}
	weather := []entity.DayWeather{
		{DayNumber: 1, Date: "2025-04-26", AvgTemperature: 18.5, Precipitation: 0, Condition: entity.ConditionMild},
		{DayNumber: 2, Date: "2025-04-27", AvgTemperature: 16, Precipitation: 2.4, Condition: entity.ConditionRainy},
		{DayNumber: 3, Date: "2025-04-28", AvgTemperature: 26.1, Precipitation: 0, Condition: entity.ConditionSunny},
	}

	prompt := BuildPrompt(testValidated(t), hotels, weather)

	wantFragments := []string{
		"Create a detailed budget travel itinerary for Paris for 3 days from 2025-04-26 to 2025-04-28 for 2 people.",
		"Traveler preferences: museums, food",
		"Suggested hotels (use these for accommodation suggestions): Le Meurice, Hotel Lutetia",
		"Day 1 (2025-04-26): Avg Temp 18.5°C, Mild, Precipitation 0mm",
		"Day 2 (2025-04-27): Avg Temp 16°C, Rainy, Precipitation 2.4mm",
		"Day 3 (2025-04-28): Avg Temp 26.1°C, Sunny, Precipitation 0mm",
		`"name": "One of: Le Meurice, Hotel Lutetia"`,
		"Brief summary of the 3-day trip to Paris for 2 people",
		"For budget type, adjust costs appropriately (affordable options)",
		"Only return the JSON with no additional text",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(prompt, frag) {
			t.Errorf("prompt missing %q", frag)
		}
	}
}

func TestBuildPromptLuxuryGuidance(t *testing.T) {
	v := testValidated(t)
	v.Request.Type = entity.TypeLuxury

	prompt := BuildPrompt(v, []string{"Ritz"}, nil)
	if !strings.Contains(prompt, "For luxury type, adjust costs appropriately (high-end experiences)") {
		t.Error("prompt missing luxury cost guidance")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	hotels := []string{"A", "B"}
	weather := []entity.DayWeather{{DayNumber: 1, Date: "2025-04-26", AvgTemperature: 20, Condition: entity.ConditionMild}}

	first := BuildPrompt(testValidated(t), hotels, weather)
	second := BuildPrompt(testValidated(t), hotels, weather)
	if first != second {
		t.Error("BuildPrompt() is not deterministic for identical inputs")
	}
}
