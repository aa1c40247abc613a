package statemachine

import "errors"

var (
	// ErrUnknownService indicates a streaming query addressed a ServiceId
	// with no live instance. Non-streaming queries fall back to a
	// transient instance instead of returning this error -- see
	// Manager.Query.
	ErrUnknownService = errors.New("unknown service")

	// ErrUnknownType indicates a create or restore referenced a service
	// type with no registered factory. The manager returns it from the
	// operation that hit it and goes on applying later entries; it does
	// not halt.
	ErrUnknownType = errors.New("unknown service type")

	// ErrDecode indicates the envelope bytes were malformed.
	ErrDecode = errors.New("malformed envelope")
)
