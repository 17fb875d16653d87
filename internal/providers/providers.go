// Package providers supplies the environmental collaborators the context
// synthesizer merges in: weather and location. Both are best-effort; a
// provider that cannot answer returns a value with Available=false and the
// synthesizer carries on without it.
package providers

import "context"

// Weather is a point-in-time weather reading.
type Weather struct {
	Temp      float64
	Condition string
	Icon      string
	Available bool
}

// Location is the user's coarse position.
type Location struct {
	Latitude  float64
	Longitude float64
	City      string
	Country   string
	Available bool
}

type WeatherProvider interface {
	Current(ctx context.Context) Weather
}

type LocationProvider interface {
	Current(ctx context.Context) Location
}

// StaticWeather always returns the same reading. Used when no weather
// source is configured and in tests.
type StaticWeather struct {
	Value Weather
}

func (s StaticWeather) Current(context.Context) Weather { return s.Value }

// StaticLocation always returns the same position.
type StaticLocation struct {
	Value Location
}

func (s StaticLocation) Current(context.Context) Location { return s.Value }
