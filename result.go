package parsefetch

import "fmt"

// ErrorKind classifies an ErrorDetail.
type ErrorKind string

const (
	// KindParse marks decode, bind and validation failures.
	KindParse ErrorKind = "parse"

	// KindNetwork marks failures of the fetch primitive itself.
	KindNetwork ErrorKind = "network"

	// KindHTTP marks responses rejected before their body was decoded.
	KindHTTP ErrorKind = "http"
)

// ErrorDetail describes one failure in a Result.
// Status, StatusText and BodyText are only set for KindHTTP.
type ErrorDetail struct {
	Kind       ErrorKind `json:"kind"`
	Message    string    `json:"message"`
	Status     int       `json:"status,omitempty"`
	StatusText string    `json:"statusText,omitempty"`
	BodyText   string    `json:"bodyText,omitempty"`
	Cause      error     `json:"-"`
}

func (d ErrorDetail) Error() string {
	return d.Message
}

func (d ErrorDetail) Unwrap() error {
	return d.Cause
}

// Result is the outcome of a safe parse. When Success is true Data holds the
// value and Errors is empty; otherwise Errors holds at least one detail and
// Data is the zero value.
type Result[T any] struct {
	Success bool          `json:"success"`
	Data    T             `json:"data,omitempty"`
	Errors  []ErrorDetail `json:"errors,omitempty"`
}

// Ok returns a successful Result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail returns a failed Result carrying errs.
func Fail[T any](errs ...ErrorDetail) Result[T] {
	return Result[T]{Errors: errs}
}

// Failure returns a failed Result with one parse detail per message.
// It is the usual way for a SafeValidator to reject a value.
func Failure[T any](messages ...string) Result[T] {
	errs := make([]ErrorDetail, len(messages))
	for i, m := range messages {
		errs[i] = ErrorDetail{Kind: KindParse, Message: m, Cause: ErrValidation}
	}
	return Fail[T](errs...)
}

// Unwrap converts the Result to the error-returning form.
func (r Result[T]) Unwrap() (T, error) {
	if r.Success {
		return r.Data, nil
	}
	var zero T
	return zero, &Error{Errors: r.Errors}
}

// Err returns nil on success and an *Error otherwise.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	return &Error{Errors: r.Errors}
}

// parseDetail builds a parse-kind detail from a failure cause.
func parseDetail(cause error) ErrorDetail {
	return ErrorDetail{
		Kind:    KindParse,
		Message: failurePrefix + messageOf(cause),
		Cause:   cause,
	}
}

// networkDetail builds a network-kind detail from a fetch failure.
func networkDetail(cause error) ErrorDetail {
	return ErrorDetail{
		Kind:    KindNetwork,
		Message: failurePrefix + messageOf(cause),
		Cause:   fmt.Errorf("%w: %w", ErrNetwork, cause),
	}
}
