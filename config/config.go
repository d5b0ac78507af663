package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL    = "https://api.openweathermap.org/data/2.5/weather"
	DefaultTimeout   = 10 * time.Second
	DefaultLatitude  = 51.5074
	DefaultLongitude = -0.1278
)

type Config struct {
	APIKey    string
	APIURL    string
	Timeout   time.Duration
	OutputDir string
	LogLevel  string
	Latitude  float64
	Longitude float64
}

// Load reads the optional .env file and the process environment.
// A missing API_KEY is not an error here: the provider reports it when asked to fetch.
func Load() *Config {
	// .env is optional
	_ = godotenv.Load()

	return &Config{
		APIKey:    getEnv("API_KEY", ""),
		APIURL:    getEnv("OPENWEATHER_API_URL", DefaultAPIURL),
		Timeout:   time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", int(DefaultTimeout/time.Second))) * time.Second,
		OutputDir: getEnv("OUTPUT_DIR", "."),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Latitude:  DefaultLatitude,
		Longitude: DefaultLongitude,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil || intValue <= 0 {
		return defaultValue
	}
	return intValue
}
