package client

import (
	"fmt"
	"time"
)

// TransportError is a network or HTTP-level failure. When the backend
// supplied a detail message it is surfaced verbatim; otherwise a generic
// message stands in.
type TransportError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "error communicating with the generation service"
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError is a well-formed transport response carrying a
// business-level failure (envelope status other than success).
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "error generating component"
}

// TimeoutError means a modification request did not settle within the
// client-side deadline. The underlying network call is not aborted; its
// eventual result is discarded.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("modification request timed out after %s", e.Timeout)
}

// InvalidResponseError means the request succeeded but normalization
// produced no usable source code.
type InvalidResponseError struct{}

func (e *InvalidResponseError) Error() string {
	return "the service response contained no component code"
}
