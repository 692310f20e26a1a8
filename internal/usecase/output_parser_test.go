package usecase

import (
	"errors"
	"testing"

	"tripwise-service/internal/domain/entity"
)

const minimalItineraryJSON = `{
  "days": [
    {
      "dayNumber": 1,
      "weather": {"avgTemperature": 20, "precipitation": 0, "condition": "Mild"},
      "activities": [
        {"time": "09:00", "description": "Walk the old town", "cost": 0, "costPerPerson": 0, "location": "Old Town"}
      ],
      "accommodation": {"name": "City Lodge", "cost": 80, "costPerPerson": 40, "address": "1 Main St"},
      "totalDailyCost": 80,
      "totalDailyCostPerPerson": 40
    }
  ],
  "totalCost": 80,
  "totalCostPerPerson": 40,
  "transportationOptions": [
    {"type": "Metro", "cost": 5, "costPerPerson": 2.5, "duration": "all day"}
  ],
  "summary": "One easy day."
}`

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n\t", `{"a":1}`},
		{"empty after stripping", "```json\n```", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseItineraryContent(t *testing.T) {
	content, err := ParseItineraryContent("```json\n" + minimalItineraryJSON + "\n```")
	if err != nil {
		t.Fatalf("ParseItineraryContent() error = %v", err)
	}
	if len(content.Days) != 1 {
		t.Fatalf("Days = %d, want 1", len(content.Days))
	}
	day := content.Days[0]
	if day.DayNumber != 1 || day.Accommodation.Name != "City Lodge" {
		t.Errorf("day = %+v, want dayNumber 1 at City Lodge", day)
	}
	if len(day.Activities) != 1 || day.Activities[0].Time != "09:00" {
		t.Errorf("activities = %+v, want one at 09:00", day.Activities)
	}
	if content.TotalCost != 80 || content.TotalCostPerPerson != 40 {
		t.Errorf("totals = %g/%g, want 80/40", content.TotalCost, content.TotalCostPerPerson)
	}
	if content.Summary != "One easy day." {
		t.Errorf("summary = %q", content.Summary)
	}
}

func TestParseItineraryContentMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"fences only", "```json\n```"},
		{"prose", "I could not generate an itinerary this time."},
		{"truncated json", `{"days": [{"dayNumber": 1`},
		{"trailing prose", minimalItineraryJSON + "\nHope this helps!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseItineraryContent(tt.in)
			if !errors.Is(err, entity.ErrModelOutputMalformed) {
				t.Errorf("ParseItineraryContent() error = %v, want ErrModelOutputMalformed", err)
			}
		})
	}
}
