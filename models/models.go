package models

import (
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// TimestampLayout is the UTC layout used wherever an observation time is shown.
const TimestampLayout = "2006-01-02 15:04:05"

// WeatherRecord is a snapshot of the current conditions at one location.
// Providers only return fully populated records.
type WeatherRecord struct {
	City         string    `json:"city"`
	TemperatureC float64   `json:"temperature_celsius"` // °C
	Humidity     int       `json:"humidity"`            // %
	WindSpeed    float64   `json:"wind_speed"`          // m/s
	Description  string    `json:"description"`
	ObservedAt   time.Time `json:"observed_at"`
}

// Field is one printable key/value pair of a record.
type Field struct {
	Key   string
	Value any
}

// Timestamp returns the observation time in UTC as YYYY-MM-DD HH:MM:SS.
func (r WeatherRecord) Timestamp() string {
	return r.ObservedAt.UTC().Format(TimestampLayout)
}

// TemperatureF converts the Celsius temperature, rounded to two decimals.
func (r WeatherRecord) TemperatureF() float64 {
	return math.Round((r.TemperatureC*9/5+32)*100) / 100
}

// Fields lists the record in display order.
func (r WeatherRecord) Fields() []Field {
	return []Field{
		{Key: "city", Value: r.City},
		{Key: "temperature_celsius", Value: r.TemperatureC},
		{Key: "humidity", Value: r.Humidity},
		{Key: "wind_speed", Value: r.WindSpeed},
		{Key: "description", Value: r.Description},
		{Key: "timestamp", Value: r.Timestamp()},
	}
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
