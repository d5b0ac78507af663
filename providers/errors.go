package providers

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey     = errors.New("API key is not configured")
	ErrRequestFailed     = errors.New("request failed")
	ErrBadStatus         = errors.New("unexpected HTTP status")
	ErrMalformedResponse = errors.New("unexpected data format")
)

// ErrorKind is a stable label for why a fetch produced no record.
type ErrorKind string

const (
	KindConfig    ErrorKind = "config"
	KindTransport ErrorKind = "transport"
	KindDataShape ErrorKind = "data_shape"
	KindUnknown   ErrorKind = "unknown"
)

// FetchError is returned by providers for every failed fetch.
type FetchError struct {
	Kind ErrorKind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func configError(err error) error {
	return &FetchError{Kind: KindConfig, Err: err}
}

func transportError(format string, args ...any) error {
	return &FetchError{Kind: KindTransport, Err: fmt.Errorf(format, args...)}
}

func dataShapeError(format string, args ...any) error {
	return &FetchError{Kind: KindDataShape, Err: fmt.Errorf(format, args...)}
}

// KindOf classifies err. It returns "" for nil.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}

	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return KindConfig
	case errors.Is(err, ErrRequestFailed), errors.Is(err, ErrBadStatus):
		return KindTransport
	case errors.Is(err, ErrMalformedResponse):
		return KindDataShape
	}
	return KindUnknown
}
