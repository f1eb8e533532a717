// Package bot orchestrates the question-answering pipeline: entity
// extraction, date resolution, intent classification, temporal routing,
// weather retrieval, and formatting.
package bot

import (
	"context"
	"log/slog"
	"time"

	"nimbus/internal/dates"
	"nimbus/internal/nlp"
	"nimbus/internal/nlu"
	"nimbus/internal/owm"
)

// WeatherService is the outbound boundary to the weather provider.
type WeatherService interface {
	Current(ctx context.Context, location string) (owm.Observation, error)
	Forecast(ctx context.Context, location string) ([]owm.Entry, error)
}

// Bot answers free-text weather questions. Each call to Answer is an
// independent pipeline run; the bot holds no cross-query state and is safe
// for concurrent use.
type Bot struct {
	extractor *nlp.Extractor
	resolver  *dates.Resolver
	weather   WeatherService
	log       *slog.Logger
	now       func() time.Time
}

type Option func(*Bot)

func WithLogger(l *slog.Logger) Option {
	return func(b *Bot) { b.log = l }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Bot) { b.now = now }
}

func New(extractor *nlp.Extractor, resolver *dates.Resolver, weather WeatherService, opts ...Option) *Bot {
	b := &Bot{
		extractor: extractor,
		resolver:  resolver,
		weather:   weather,
		log:       slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Answer runs the full pipeline for one question. It is synchronous and
// never returns an error: every failure path resolves to a sentence for the
// user. Policy rejections (no location, past date, beyond the forecast
// horizon) are answered without touching the network.
func (b *Bot) Answer(ctx context.Context, question string) string {
	now := b.now()

	entities, err := b.extractor.Extract(question)
	if err != nil {
		b.log.Debug("entity extraction failed", "error", err)
	}

	target := b.resolver.Resolve(entities.DateExpression, now)
	future := entities.DateExpression != "" && dates.Day(target).After(dates.Day(now))
	intent := nlu.Classify(question, future)
	outcome := nlu.Route(entities.Location, intent, target, now)

	b.log.Debug("routed question",
		"location", entities.Location,
		"date_expression", entities.DateExpression,
		"target_date", dates.Day(target).Format("2006-01-02"),
		"intent", intent.String(),
		"outcome", outcome.Kind.String(),
	)

	switch outcome.Kind {
	case nlu.OutcomeNoLocation:
		return "Could not determine the location from your question."
	case nlu.OutcomePastWeather:
		return "I'm sorry, but I cannot retrieve historical weather data with the current plan."
	case nlu.OutcomeForecastOutOfRange:
		return "I can only provide a 5-day forecast. " + outcome.Date.Format("2006-01-02") + " is too far in the future."
	case nlu.OutcomeForecast:
		entries, err := b.weather.Forecast(ctx, outcome.Location)
		if err != nil {
			return forecastFetchError(outcome.Location, err)
		}
		return formatForecast(outcome.Location, outcome.Date, entries)
	default:
		observation, err := b.weather.Current(ctx, outcome.Location)
		if err != nil {
			return currentFetchError(outcome.Location, err)
		}
		return formatCurrent(outcome.Location, outcome.Intent, observation)
	}
}
