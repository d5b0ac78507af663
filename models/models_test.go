package models

import (
	"testing"
	"time"
)

func TestWeatherRecord_TemperatureF(t *testing.T) {
	tests := []struct {
		celsius float64
		want    float64
	}{
		{15.0, 59.0},
		{0, 32},
		{-40, -40},
		{100, 212},
		{21.37, 70.47}, // 70.466
		{-3.33, 26.01}, // 26.006
	}
	for _, tt := range tests {
		got := WeatherRecord{TemperatureC: tt.celsius}.TemperatureF()
		if got != tt.want {
			t.Errorf("TemperatureF(%v) = %v, want %v", tt.celsius, got, tt.want)
		}
	}
}

func TestWeatherRecord_Timestamp(t *testing.T) {
	r := WeatherRecord{ObservedAt: time.Unix(1704110400, 0)}
	if got := r.Timestamp(); got != "2024-01-01 12:00:00" {
		t.Errorf("Timestamp() = %q, want %q", got, "2024-01-01 12:00:00")
	}

	// non-UTC locations are rendered in UTC
	loc := time.FixedZone("UTC+2", 2*60*60)
	r = WeatherRecord{ObservedAt: time.Date(2024, 1, 1, 14, 0, 0, 0, loc)}
	if got := r.Timestamp(); got != "2024-01-01 12:00:00" {
		t.Errorf("Timestamp() = %q, want %q", got, "2024-01-01 12:00:00")
	}
}

func TestWeatherRecord_Fields(t *testing.T) {
	r := WeatherRecord{
		City:         "London",
		TemperatureC: 15.0,
		Humidity:     70,
		WindSpeed:    4.1,
		Description:  "Clear sky",
		ObservedAt:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	want := []Field{
		{"city", "London"},
		{"temperature_celsius", 15.0},
		{"humidity", 70},
		{"wind_speed", 4.1},
		{"description", "Clear sky"},
		{"timestamp", "2024-01-01 12:00:00"},
	}
	got := r.Fields()
	if len(got) != len(want) {
		t.Fatalf("Fields() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Fields()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"clear sky", "Clear sky"},
		{"Clear sky", "Clear sky"},
		{"OVERCAST CLOUDS", "Overcast clouds"},
		{"ясно", "Ясно"},
		{"x", "X"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
