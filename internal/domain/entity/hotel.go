package entity

// HotelCandidate is a single hotel returned by the city search, before
// rating filtering. Candidates are advisory context for the generative step
// and are never persisted.
type HotelCandidate struct {
	Name   string
	Rating float64
}

// FallbackHotelNames returns the fixed substitution list used whenever hotel
// resolution fails. The pipeline never aborts because of hotel lookups.
func FallbackHotelNames() []string {
	return []string{"Generic Hotel", "City Lodge", "Traveler’s Inn"}
}
