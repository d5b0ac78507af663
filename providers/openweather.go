package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hmichalski/cbre-programming-task/models"
)

const (
	openWeatherURL     = "https://api.openweathermap.org/data/2.5/weather"
	openWeatherTimeout = 10 * time.Second
)

type OpenWeatherProvider struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewOpenWeatherProvider(apiKey, baseURL string, timeout time.Duration) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = openWeatherURL
	}
	if timeout <= 0 {
		timeout = openWeatherTimeout
	}
	return &OpenWeatherProvider{
		apiKey: apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return "OpenWeatherMap"
}

func (p *OpenWeatherProvider) IsAvailable() bool {
	return p.apiKey != ""
}

// openWeatherResponse uses pointers so that absent and null keys can be told
// apart from zero values.
type openWeatherResponse struct {
	Name *string `json:"name"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *int     `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Dt *int64 `json:"dt"`
}

// GetWeather fetches current conditions for the given coordinates. Every
// failure is a *FetchError; no request is sent when the API key is missing.
func (p *OpenWeatherProvider) GetWeather(ctx context.Context, latitude, longitude float64) (*models.WeatherRecord, error) {
	if !p.IsAvailable() {
		return nil, configError(ErrMissingAPIKey)
	}

	req, err := p.buildRequest(ctx, latitude, longitude)
	if err != nil {
		return nil, configError(err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, transportError("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, transportError("%w: %d (invalid API key)", ErrBadStatus, resp.StatusCode)
		case http.StatusNotFound:
			return nil, transportError("%w: %d (location not found)", ErrBadStatus, resp.StatusCode)
		}
		return nil, transportError("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var result openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, dataShapeError("%w: %w", ErrMalformedResponse, err)
	}

	return mapResponse(result)
}

func (p *OpenWeatherProvider) buildRequest(ctx context.Context, latitude, longitude float64) (*http.Request, error) {
	endpoint, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if id := correlationID(ctx); id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
	return req, nil
}

func mapResponse(r openWeatherResponse) (*models.WeatherRecord, error) {
	missing := func(field string) error {
		return dataShapeError("%w: missing %s", ErrMalformedResponse, field)
	}

	switch {
	case r.Name == nil:
		return nil, missing("name")
	case r.Main == nil:
		return nil, missing("main")
	case r.Main.Temp == nil:
		return nil, missing("main.temp")
	case r.Main.Humidity == nil:
		return nil, missing("main.humidity")
	case r.Wind == nil:
		return nil, missing("wind")
	case r.Wind.Speed == nil:
		return nil, missing("wind.speed")
	case len(r.Weather) == 0:
		return nil, missing("weather[0]")
	case r.Weather[0].Description == nil:
		return nil, missing("weather[0].description")
	case r.Dt == nil:
		return nil, missing("dt")
	}

	return &models.WeatherRecord{
		City:         *r.Name,
		TemperatureC: *r.Main.Temp,
		Humidity:     *r.Main.Humidity,
		WindSpeed:    *r.Wind.Speed,
		Description:  models.Capitalize(*r.Weather[0].Description),
		ObservedAt:   time.Unix(*r.Dt, 0).UTC(),
	}, nil
}
