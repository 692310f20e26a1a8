package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"tripwise-service/internal/domain/entity"
)

// StripFences removes markdown code-fence wrappers the model tends to emit
// around its JSON, plus surrounding whitespace.
func StripFences(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ParseItineraryContent strips formatting wrappers and strictly parses the
// model output as the expected JSON shape. Any parse failure is terminal:
// fabricating a fallback itinerary here would misrepresent unavailable
// model output as real data.
func ParseItineraryContent(raw string) (*entity.ItineraryContent, error) {
	jsonText := StripFences(raw)
	if jsonText == "" {
		return nil, fmt.Errorf("%w: empty model response", entity.ErrModelOutputMalformed)
	}

	var content entity.ItineraryContent
	if err := json.Unmarshal([]byte(jsonText), &content); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrModelOutputMalformed, err)
	}
	return &content, nil
}
