package providers

import (
	"context"

	"github.com/hmichalski/cbre-programming-task/models"
)

// Provider is the interface every current-conditions source implements.
type Provider interface {
	Name() string
	GetWeather(ctx context.Context, latitude, longitude float64) (*models.WeatherRecord, error)
	IsAvailable() bool
}

type correlationIDKey struct{}

// WithCorrelationID attaches an ID that providers forward as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func correlationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}
