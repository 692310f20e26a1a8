package entity

import "math"

// Weather conditions derived from a day's hourly series.
const (
	ConditionSunny = "Sunny"
	ConditionRainy = "Rainy"
	ConditionMild  = "Mild"
)

// DayWeather summarizes one calendar day of the trip. DayNumber is 1-based
// and sequential; Date is YYYY-MM-DD.
type DayWeather struct {
	DayNumber      int     `json:"dayNumber"`
	Date           string  `json:"date"`
	AvgTemperature float64 `json:"avgTemperature"`
	Precipitation  float64 `json:"precipitation"`
	Condition      string  `json:"condition"`
}

// FallbackDayWeather is the uniform substitute used when any day of the trip
// fails to resolve: a mild 25°C day with no precipitation.
func FallbackDayWeather(dayNumber int, date string) DayWeather {
	return DayWeather{
		DayNumber:      dayNumber,
		Date:           date,
		AvgTemperature: 25,
		Precipitation:  0,
		Condition:      ConditionMild,
	}
}

// ClassifyCondition derives the day condition from the averaged temperature
// and summed precipitation. Precipitation takes priority over temperature.
func ClassifyCondition(avgTemperature, totalPrecipitation float64) string {
	if totalPrecipitation > 0 {
		return ConditionRainy
	}
	if avgTemperature > 25 {
		return ConditionSunny
	}
	return ConditionMild
}

// RoundTemperature rounds an averaged temperature to one decimal place.
func RoundTemperature(t float64) float64 {
	return math.Round(t*10) / 10
}

// HourlySeries holds the parallel hourly temperature and precipitation
// readings for a single day at a resolved location.
type HourlySeries struct {
	Times         []string
	Temperatures  []float64
	Precipitation []float64
}

// HourlyPoint is one reading of the standalone weather report.
type HourlyPoint struct {
	Time          string `json:"time"`
	Hour          string `json:"hour"`
	Temperature   string `json:"temperature"`
	Precipitation string `json:"precipitation"`
}

// WeatherReport is the response of the standalone weather endpoint: the raw
// hourly series for one location and day, plus geocoding metadata.
type WeatherReport struct {
	Location string        `json:"location"`
	Country  string        `json:"country"`
	Date     string        `json:"date"`
	Hourly   []HourlyPoint `json:"hourly"`
}
