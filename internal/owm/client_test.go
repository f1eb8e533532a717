package owm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const currentPayload = `{
	"weather": [{"description": "scattered clouds"}],
	"main": {"temp": 72.5, "humidity": 40},
	"wind": {"speed": 8.2},
	"name": "London"
}`

const forecastPayload = `{
	"list": [
		{"dt": 1741942800, "main": {"temp": 58.1}, "weather": [{"description": "light rain"}]},
		{"dt": 1741953600, "main": {"temp": 61.0}, "weather": [{"description": "scattered clouds"}]}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test-key", WithBaseURL(srv.URL), WithRateLimit(1000, 1000))
}

func TestCurrent(t *testing.T) {
	var gotQuery, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))
		w.Write([]byte(currentPayload))
	})

	obs, err := c.Current(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, "/weather", gotPath)
	assert.Equal(t, "London", gotQuery)
	assert.Equal(t, Observation{
		Description: "scattered clouds",
		Temperature: 72.5,
		Humidity:    40,
		WindSpeed:   8.2,
	}, obs)
}

func TestForecast(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		w.Write([]byte(forecastPayload))
	})

	entries, err := c.Forecast(context.Background(), "New York")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "light rain", entries[0].Description)
	assert.Equal(t, 58.1, entries[0].Temperature)
	assert.Equal(t, time.Unix(1741942800, 0), entries[0].Timestamp)
	assert.True(t, entries[0].Timestamp.Before(entries[1].Timestamp))
}

func TestUnknownLocation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	})

	_, err := c.Current(context.Background(), "Atlantis")
	var unknown *UnknownLocationError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Atlantis", unknown.Location)
}

func TestMissingWeatherBlockMeansUnknownLocation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cod": 200}`))
	})

	_, err := c.Current(context.Background(), "Nowhere")
	var unknown *UnknownLocationError
	assert.ErrorAs(t, err, &unknown)
}

func TestServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Current(context.Background(), "London")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

// A missing credential is reported before any network activity.
func TestMissingAPIKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := New("", WithBaseURL(srv.URL))
	_, err := c.Current(context.Background(), "London")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = c.Forecast(context.Background(), "London")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.False(t, called)
}
