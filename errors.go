package parsefetch

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNilResponse indicates a parse was attempted on a nil response.
	ErrNilResponse = errors.New("parsefetch: nil response")

	// ErrNoBody indicates the response carries no readable body.
	ErrNoBody = errors.New("parsefetch: response has no body")

	// ErrBodyConsumed indicates the body was already read once.
	ErrBodyConsumed = errors.New("parsefetch: body already consumed")

	// ErrHTTPStatus indicates a response status outside the 2xx range.
	ErrHTTPStatus = errors.New("parsefetch: unsuccessful http status")

	// ErrDecode indicates a strategy failed to decode the body.
	ErrDecode = errors.New("parsefetch: decode failed")

	// ErrValidation indicates a validator rejected the decoded value.
	ErrValidation = errors.New("parsefetch: validation failed")

	// ErrNetwork indicates the fetch primitive itself failed.
	ErrNetwork = errors.New("parsefetch: network failure")

	// ErrBind indicates a decoded value could not be bound to the target type.
	ErrBind = errors.New("parsefetch: bind failed")

	// ErrPathNotFound indicates a Pluck path selected nothing.
	ErrPathNotFound = errors.New("parsefetch: path not found")
)

// unknownError stands in for failures that carry no message.
const unknownError = "Unknown error"

// DecodeError is returned by a Strategy when reading or decoding a body fails.
// Its message has the form "Failed to <Op>: <cause>".
type DecodeError struct {
	Op    string // what was attempted, e.g. "parse JSON"
	Cause error  // original failure, nil when unknown
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Failed to %s: %s", e.Op, messageOf(e.Cause))
}

func (e *DecodeError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrDecode}
	}
	return []error{ErrDecode, e.Cause}
}

// newDecodeError creates a DecodeError for a strategy failure.
func newDecodeError(op string, cause error) error {
	return &DecodeError{Op: op, Cause: cause}
}

// Error is the error returned by the error-returning surfaces. It carries
// every ErrorDetail of the failed Result.
type Error struct {
	Errors []ErrorDetail
}

// Error joins the detail messages with ", ".
func (e *Error) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, d := range e.Errors {
		msgs[i] = d.Message
	}
	return strings.Join(msgs, ", ")
}

func (e *Error) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, d := range e.Errors {
		errs[i] = d
	}
	return errs
}

// messageOf returns err's message, or "Unknown error" when there is none.
func messageOf(err error) string {
	if err == nil || err.Error() == "" {
		return unknownError
	}
	return err.Error()
}

// panicError converts a recovered panic value into an error.
func panicError(r any) error {
	switch v := r.(type) {
	case nil:
		return nil
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return fmt.Errorf("%v", v)
	}
}
