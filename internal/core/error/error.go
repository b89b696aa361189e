package errx

import (
	"errors"
	"fmt"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage describes a missing key in Redis.
	RedisNotFoundMessage = "record not found"
	// GatewayErrorMessage describes generative backend failures.
	GatewayErrorMessage = "generative backend failed"
	// LookupErrorMessage describes weather lookup failures.
	LookupErrorMessage = "weather lookup failed"
)

// Sentinel errors for every failure class the session boundary has to
// translate into a user-visible reply. Callers match with errors.Is.
var (
	// ErrMalformedFrame marks an undecodable inbound frame. The frame is
	// dropped and the connection stays open.
	ErrMalformedFrame = errors.New("malformed inbound frame")
	// ErrUpstreamTimeout marks a generative call that exceeded its deadline.
	ErrUpstreamTimeout = errors.New("generative backend timed out")
	// ErrUpstreamParse marks a generative response with no usable candidate.
	ErrUpstreamParse = errors.New("generative backend returned no usable candidate")
	// ErrLookupUnavailable marks a failed weather lookup. The service is
	// treated as fully unavailable, partial data is never surfaced.
	ErrLookupUnavailable = errors.New("weather lookup unavailable")
	// ErrStoreUnavailable marks a failed profile upsert. Log-only, the reply
	// already computed is still delivered.
	ErrStoreUnavailable = errors.New("profile store unavailable")
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

// WrapGateway classifies a generative backend failure, keeping the cause in
// the chain. Deadline expiry is a timeout, everything else an unusable reply.
func WrapGateway(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUpstreamTimeout) || errors.Is(err, ErrUpstreamParse) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUpstreamParse, err)
}

// WrapLookup marks a weather service failure as total unavailability.
func WrapLookup(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrLookupUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrLookupUnavailable, err)
}
