package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

// OpenMeteoClient fetches current weather from the Open-Meteo API for a
// fixed location. No API key required. Failures degrade to an unavailable
// reading; weather never blocks context synthesis.
type OpenMeteoClient struct {
	endpoint string
	location LocationProvider
	http     *http.Client
}

// NewOpenMeteoClient creates a weather provider reading coordinates from
// the given location provider.
func NewOpenMeteoClient(location LocationProvider) *OpenMeteoClient {
	return &OpenMeteoClient{
		endpoint: "https://api.open-meteo.com/v1/forecast",
		location: location,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// SetEndpoint overrides the API endpoint. Tests only.
func (c *OpenMeteoClient) SetEndpoint(endpoint string) {
	c.endpoint = endpoint
}

type openMeteoResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

func (c *OpenMeteoClient) Current(ctx context.Context) Weather {
	loc := c.location.Current(ctx)
	if !loc.Available {
		return Weather{}
	}

	ctx, cancel := context.WithTimeout(ctx, 4*time.Second)
	defer cancel()

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', 4, 64))
	q.Set("current_weather", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return Weather{}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Weather{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Weather{}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Weather{}
	}

	var parsed openMeteoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Weather{}
	}

	condition, icon := describeWeatherCode(parsed.CurrentWeather.WeatherCode)
	return Weather{
		Temp:      parsed.CurrentWeather.Temperature,
		Condition: condition,
		Icon:      icon,
		Available: true,
	}
}

// describeWeatherCode maps WMO weather codes to the condition keywords the
// deterministic context strategy matches on.
func describeWeatherCode(code int) (condition, icon string) {
	switch {
	case code == 0:
		return "clear", "☀"
	case code <= 3:
		return "clouds", "⛅"
	case code == 45 || code == 48:
		return "fog", "🌫"
	case code >= 51 && code <= 67:
		return "rain", "🌧"
	case code >= 71 && code <= 77:
		return "snow", "🌨"
	case code >= 80 && code <= 82:
		return "rain", "🌧"
	case code >= 85 && code <= 86:
		return "snow", "🌨"
	case code >= 95:
		return "storm", "⛈"
	default:
		return "clouds", "⛅"
	}
}

// LocationFromEnv builds a location provider from PULSE_LATITUDE,
// PULSE_LONGITUDE, PULSE_CITY, and PULSE_COUNTRY. Without coordinates the
// location reads as unavailable and weather lookups are skipped.
func LocationFromEnv() LocationProvider {
	latStr := os.Getenv("PULSE_LATITUDE")
	lonStr := os.Getenv("PULSE_LONGITUDE")
	if latStr == "" || lonStr == "" {
		return StaticLocation{}
	}
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if errLat != nil || errLon != nil {
		fmt.Fprintln(os.Stderr, "warn: ignoring malformed PULSE_LATITUDE/PULSE_LONGITUDE")
		return StaticLocation{}
	}
	return StaticLocation{Value: Location{
		Latitude:  lat,
		Longitude: lon,
		City:      os.Getenv("PULSE_CITY"),
		Country:   os.Getenv("PULSE_COUNTRY"),
		Available: true,
	}}
}
