package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func berlin() StaticLocation {
	return StaticLocation{Value: Location{
		Latitude: 52.52, Longitude: 13.405, City: "Berlin", Available: true,
	}}
}

func TestOpenMeteo_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "52.5200", r.URL.Query().Get("latitude"))
		fmt.Fprint(w, `{"current_weather":{"temperature":21.5,"weathercode":61}}`)
	}))
	defer srv.Close()

	c := NewOpenMeteoClient(berlin())
	c.SetEndpoint(srv.URL)

	got := c.Current(context.Background())
	require.True(t, got.Available)
	assert.Equal(t, 21.5, got.Temp)
	assert.Equal(t, "rain", got.Condition)
}

func TestOpenMeteo_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewOpenMeteoClient(berlin())
	c.SetEndpoint(srv.URL)

	assert.False(t, c.Current(context.Background()).Available)
}

func TestOpenMeteo_SkipsWhenLocationUnknown(t *testing.T) {
	c := NewOpenMeteoClient(StaticLocation{})
	c.SetEndpoint("http://127.0.0.1:1") // must never be called
	assert.False(t, c.Current(context.Background()).Available)
}

func TestDescribeWeatherCode(t *testing.T) {
	cases := map[int]string{
		0: "clear", 2: "clouds", 45: "fog", 55: "rain",
		71: "snow", 81: "rain", 96: "storm",
	}
	for code, want := range cases {
		got, _ := describeWeatherCode(code)
		assert.Equal(t, want, got, "code %d", code)
	}
}

func TestLocationFromEnv(t *testing.T) {
	t.Setenv("PULSE_LATITUDE", "48.85")
	t.Setenv("PULSE_LONGITUDE", "2.35")
	t.Setenv("PULSE_CITY", "Paris")

	loc := LocationFromEnv().Current(context.Background())
	require.True(t, loc.Available)
	assert.Equal(t, "Paris", loc.City)

	t.Setenv("PULSE_LATITUDE", "")
	assert.False(t, LocationFromEnv().Current(context.Background()).Available)
}
