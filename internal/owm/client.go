// Package owm is a minimal OpenWeatherMap client covering the two read-only
// endpoints the bot needs: current conditions and the 5-day/3-hour forecast.
package owm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// ErrMissingAPIKey is returned before any network call when the client was
// constructed without a credential.
var ErrMissingAPIKey = errors.New("owm: missing API key")

// UnknownLocationError reports a place name the provider could not resolve.
// It covers both an explicit 404 and a 200 payload missing its weather
// block.
type UnknownLocationError struct {
	Location string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("owm: unknown location %q", e.Location)
}

type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("API returned status %d", e.status)
	}
	return fmt.Sprintf("API returned status %d: %s", e.status, e.body)
}

// Observation is a current-conditions snapshot. Fetched once per request,
// never cached.
type Observation struct {
	Description string
	Temperature float64
	Humidity    int
	WindSpeed   float64
}

// Entry is one 3-hour forecast slot.
type Entry struct {
	Timestamp   time.Time
	Description string
	Temperature float64
}

type Client struct {
	apiKey     string
	units      string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithUnits(units string) Option {
	return func(c *Client) { c.units = units }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRateLimit caps outbound calls at rps requests per second with the
// given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		units:   "imperial",
		baseURL: "https://api.openweathermap.org/data/2.5",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		// The free tier allows 60 calls/min; stay under it.
		limiter: rate.NewLimiter(rate.Limit(1), 3),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current fetches the current conditions for a free-text location. Single
// attempt, no retries.
func (c *Client) Current(ctx context.Context, location string) (Observation, error) {
	body, err := c.get(ctx, "/weather", location)
	if err != nil {
		return Observation{}, err
	}

	var resp struct {
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return Observation{}, fmt.Errorf("decoding current weather: %w", err)
	}
	if len(resp.Weather) == 0 {
		// A 200 without a weather block means the query string did not
		// resolve to a known place.
		return Observation{}, &UnknownLocationError{Location: location}
	}

	return Observation{
		Description: resp.Weather[0].Description,
		Temperature: resp.Main.Temp,
		Humidity:    resp.Main.Humidity,
		WindSpeed:   resp.Wind.Speed,
	}, nil
}

// Forecast fetches the 5-day/3-hour forecast for a free-text location.
// Entries are returned in provider order (chronological); filtering to a
// target date is the caller's job.
func (c *Client) Forecast(ctx context.Context, location string) ([]Entry, error) {
	body, err := c.get(ctx, "/forecast", location)
	if err != nil {
		return nil, err
	}

	var resp struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Weather []struct {
				Description string `json:"description"`
			} `json:"weather"`
		} `json:"list"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding forecast: %w", err)
	}
	if len(resp.List) == 0 {
		return nil, &UnknownLocationError{Location: location}
	}

	entries := make([]Entry, 0, len(resp.List))
	for _, item := range resp.List {
		description := ""
		if len(item.Weather) > 0 {
			description = item.Weather[0].Description
		}
		entries = append(entries, Entry{
			Timestamp:   time.Unix(item.Dt, 0),
			Description: description,
			Temperature: item.Main.Temp,
		})
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, path, location string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", location)
	params.Set("appid", c.apiKey)
	params.Set("units", c.units)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, &UnknownLocationError{Location: location}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{status: resp.StatusCode, body: string(body)}
	}
	return body, nil
}
