// Package nlu turns an understood question (location, date, keywords) into
// a single routing decision.
package nlu

import (
	"strings"
	"time"

	"nimbus/internal/dates"
)

// Intent is the category of weather measurement a question asks for.
type Intent int

const (
	CurrentWeather Intent = iota
	Temperature
	Humidity
	WindSpeed
	Forecast
)

func (i Intent) String() string {
	switch i {
	case Temperature:
		return "temperature"
	case Humidity:
		return "humidity"
	case WindSpeed:
		return "wind_speed"
	case Forecast:
		return "forecast"
	default:
		return "current_weather"
	}
}

// Classify maps keywords in the question to an intent. The search is a
// case-insensitive substring scan with fixed precedence; the first match
// wins even when several keywords appear. futureDate reports whether the
// resolved target date lies strictly after today, which is why
// classification runs only after date resolution.
func Classify(text string, futureDate bool) Intent {
	q := strings.ToLower(text)
	switch {
	case strings.Contains(q, "temperature"):
		return Temperature
	case strings.Contains(q, "humidity"):
		return Humidity
	case strings.Contains(q, "wind"):
		return WindSpeed
	case strings.Contains(q, "forecast") || futureDate:
		return Forecast
	default:
		return CurrentWeather
	}
}

// OutcomeKind tags the routing decision.
type OutcomeKind int

const (
	OutcomeNoLocation OutcomeKind = iota
	OutcomePastWeather
	OutcomeForecastOutOfRange
	OutcomeForecast
	OutcomeCurrentMeasurement
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNoLocation:
		return "no_location"
	case OutcomePastWeather:
		return "past_weather"
	case OutcomeForecastOutOfRange:
		return "forecast_out_of_range"
	case OutcomeForecast:
		return "forecast"
	default:
		return "current_measurement"
	}
}

// Outcome is the single decision artifact the dispatch stage consumes.
// Which fields are meaningful depends on Kind: Location and Date for
// forecasts, Location and Intent for current measurements.
type Outcome struct {
	Kind     OutcomeKind
	Location string
	Intent   Intent
	Date     time.Time
}

// ForecastHorizon is the provider's maximum forecast range in days.
const ForecastHorizon = 5

// Route applies the temporal policy. It is pure, deterministic, and total:
// every combination of inputs maps to exactly one outcome. Dates are
// compared by local calendar date only.
//
// The future/forecast branch is checked before the same-day branch, so an
// explicit "forecast" question about today still routes to a forecast.
func Route(location string, intent Intent, target, today time.Time) Outcome {
	targetDay := dates.Day(target)
	todayDay := dates.Day(today)

	switch {
	case strings.TrimSpace(location) == "":
		return Outcome{Kind: OutcomeNoLocation}
	case targetDay.Before(todayDay):
		return Outcome{Kind: OutcomePastWeather, Location: location, Date: targetDay}
	case targetDay.After(todayDay) || intent == Forecast:
		if targetDay.After(todayDay.AddDate(0, 0, ForecastHorizon)) {
			return Outcome{Kind: OutcomeForecastOutOfRange, Location: location, Date: targetDay}
		}
		return Outcome{Kind: OutcomeForecast, Location: location, Date: targetDay}
	default:
		return Outcome{Kind: OutcomeCurrentMeasurement, Location: location, Intent: intent, Date: todayDay}
	}
}
