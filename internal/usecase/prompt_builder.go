package usecase

import (
	"fmt"
	"strings"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/pkg/utils"
)

// BuildPrompt renders the validated request and resolved hotel/weather data
// into the model prompt. The rendering is deterministic: identical inputs
// produce byte-identical prompts. The JSON schema embedded below is the
// contract the output parser decodes against; the two must stay in sync.
func BuildPrompt(v *ValidatedRequest, hotelNames []string, weather []entity.DayWeather) string {
	req := v.Request
	hotels := strings.Join(hotelNames, ", ")

	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed %s travel itinerary for %s for %d days from %s to %s for %d people.\n\n",
		req.Type, req.Destination, v.DayCount, utils.FormatDate(v.Start), utils.FormatDate(v.End), req.NumberOfPeople)

	fmt.Fprintf(&b, "Traveler preferences: %s\n\n", strings.Join(req.Preferences, ", "))

	fmt.Fprintf(&b, "Suggested hotels (use these for accommodation suggestions): %s\n\n", hotels)

	b.WriteString("Weather forecast:\n")
	for _, w := range weather {
		fmt.Fprintf(&b, "Day %d (%s): Avg Temp %g°C, %s, Precipitation %gmm\n",
			w.DayNumber, w.Date, w.AvgTemperature, w.Condition, w.Precipitation)
	}
	b.WriteString("\n")

	b.WriteString("Format the response as a valid JSON object following EXACTLY this structure:\n")
	fmt.Fprintf(&b, `{
  "days": [
    {
      "dayNumber": 1,
      "weather": {
        "avgTemperature": 25,
        "precipitation": 0,
        "condition": "Sunny"
      },
      "activities": [
        {
          "time": "09:00",
          "description": "Activity description",
          "cost": 10,
          "costPerPerson": 10,
          "location": "Location name"
        }
      ],
      "accommodation": {
        "name": "One of: %s",
        "cost": 50,
        "costPerPerson": 50,
        "address": "Accommodation address"
      },
      "totalDailyCost": 100,
      "totalDailyCostPerPerson": 100
    }
  ],
  "totalCost": 500,
  "totalCostPerPerson": 500,
  "transportationOptions": [
    {
      "type": "Transportation type",
      "cost": 20,
      "costPerPerson": 20,
      "duration": "Duration info"
    }
  ],
  "summary": "Brief summary of the %d-day trip to %s for %d people, highlighting key experiences and attractions."
}
`, hotels, v.DayCount, req.Destination, req.NumberOfPeople)
	b.WriteString("\n")

	costGuidance := "affordable options"
	if req.Type == entity.TypeLuxury {
		costGuidance = "high-end experiences"
	}

	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- For %s type, adjust costs appropriately (%s)\n", req.Type, costGuidance)
	b.WriteString("- Include 4-6 activities per day with varied morning, afternoon, and evening options\n")
	b.WriteString("- Adjust activities based on weather: prefer indoor activities (museums, dining) for rainy days, outdoor activities (beaches, hikes) for sunny/mild days\n")
	b.WriteString("- All costs should be in USD as numbers without $ symbol\n")
	fmt.Fprintf(&b, "- Calculate both total costs for the group (%d people) and per person costs\n", req.NumberOfPeople)
	b.WriteString("- Be specific with activity descriptions and locations\n")
	b.WriteString("- Use the provided hotel names for accommodation suggestions\n")
	b.WriteString("- Include a concise trip summary highlighting key experiences\n")
	b.WriteString("- Only return the JSON with no additional text\n")
	b.WriteString("- Ensure the JSON is valid and properly formatted\n")

	return b.String()
}
