package bot

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"nimbus/internal/dates"
	"nimbus/internal/nlu"
	"nimbus/internal/owm"
)

func formatCurrent(location string, intent nlu.Intent, obs owm.Observation) string {
	switch intent {
	case nlu.Temperature:
		return fmt.Sprintf("The current temperature in %s is %g°F.", location, obs.Temperature)
	case nlu.Humidity:
		return fmt.Sprintf("The current humidity in %s is %d%%.", location, obs.Humidity)
	case nlu.WindSpeed:
		return fmt.Sprintf("The current wind speed in %s is %g mph.", location, obs.WindSpeed)
	default:
		return fmt.Sprintf("The current weather in %s is %s with a temperature of %g°F.",
			location, obs.Description, obs.Temperature)
	}
}

// formatForecast renders the 3-hour entries matching the target calendar
// date, in chronological order. Zero matching entries is not an error; it
// gets its own message, distinct from a transport failure.
func formatForecast(location string, date time.Time, entries []owm.Entry) string {
	var lines []string
	for _, e := range entries {
		if !dates.SameDay(e.Timestamp, date) {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s, %g°F",
			e.Timestamp.Format("03:04 PM"), capitalize(e.Description), e.Temperature))
	}

	if len(lines) == 0 {
		return fmt.Sprintf("No forecast data available for %s on %s.",
			location, date.Format("2006-01-02"))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Forecast for %s on %s:\n", location, date.Format("Monday, January 02"))
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}

func currentFetchError(location string, err error) string {
	var unknown *owm.UnknownLocationError
	switch {
	case errors.Is(err, owm.ErrMissingAPIKey):
		return missingKeyMessage
	case errors.As(err, &unknown):
		return fmt.Sprintf("Could not find weather data for %s. Please check the location name.", location)
	default:
		return fmt.Sprintf("Error fetching weather data: %v", err)
	}
}

func forecastFetchError(location string, err error) string {
	var unknown *owm.UnknownLocationError
	switch {
	case errors.Is(err, owm.ErrMissingAPIKey):
		return missingKeyMessage
	case errors.As(err, &unknown):
		return fmt.Sprintf("Could not find forecast data for %s. Please check the location name.", location)
	default:
		return fmt.Sprintf("Error fetching forecast data: %v", err)
	}
}

const missingKeyMessage = "Error: OPENWEATHERMAP_API_KEY not found. Please set it in your .env file."

// capitalize uppercases the first rune and lowercases the rest, matching
// the provider's all-lowercase descriptions ("scattered clouds").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
