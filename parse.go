package parsefetch

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// Message prefixes shared by every surface.
const (
	errorPrefix   = "ParseFetch Error:"
	failurePrefix = "parseFetch failed: "
)

// Options configures a single parse.
type Options[T any] struct {
	// ContentType overrides the response's Content-Type header for strategy
	// selection and binding.
	ContentType string

	// Reviver post-processes JSON bodies. It is ignored by other strategies.
	Reviver Reviver

	// Validator checks or transforms the decoded value. At most one
	// validator runs per parse.
	Validator Validator[T]

	// CaptureErrorBody reads the body of a non-2xx response into the http
	// ErrorDetail's BodyText. By default the body is left unread.
	CaptureErrorBody bool
}

// parseResponse runs a parse on resp and emits its completion event.
// Every public surface goes through here.
func parseResponse[T any](ctx context.Context, callID string, resp *Response, opts Options[T]) (result Result[T]) {
	typeName := typeNameOf[T]()
	start := time.Now()
	defer func() {
		emitParseComplete(ctx, callID, typeName, time.Since(start), len(result.Errors), result.Err())
	}()

	return run(ctx, callID, typeName, resp, opts)
}

// run is the core routine: preconditions, strategy selection, decode,
// then validation or binding.
func run[T any](ctx context.Context, callID, typeName string, resp *Response, opts Options[T]) Result[T] {
	if resp == nil || resp.Response == nil {
		return Fail[T](ErrorDetail{
			Kind:    KindParse,
			Message: errorPrefix + "Response is nil",
			Cause:   ErrNilResponse,
		})
	}

	if !resp.OK() {
		return Fail[T](httpDetail(resp, opts.CaptureErrorBody))
	}

	if !resp.HasBody() {
		return Fail[T](ErrorDetail{
			Kind:       KindHTTP,
			Message:    errorPrefix + "Response has no body",
			Status:     resp.StatusCode,
			StatusText: resp.StatusText(),
			Cause:      ErrNoBody,
		})
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = resp.ContentType()
	}
	strategy := SelectStrategy(contentType)
	emitParseStart(ctx, callID, contentType, strategy.Family(), typeName)

	decoded, err := strategy.Decode(resp, DecodeOptions{Reviver: opts.Reviver})
	if err != nil {
		return Fail[T](parseDetail(err))
	}

	if opts.Validator != nil {
		return applyValidator(opts.Validator, decoded)
	}

	out, err := bind[T](decoded, contentType)
	if err != nil {
		return Fail[T](parseDetail(err))
	}
	return Ok(out)
}

// httpDetail describes a non-2xx response.
func httpDetail(resp *Response, captureBody bool) ErrorDetail {
	d := ErrorDetail{
		Kind:       KindHTTP,
		Message:    fmt.Sprintf("%sHTTP %d: %s", errorPrefix, resp.StatusCode, resp.StatusText()),
		Status:     resp.StatusCode,
		StatusText: resp.StatusText(),
		Cause:      ErrHTTPStatus,
	}
	if captureBody && resp.HasBody() {
		if text, err := resp.Text(); err == nil {
			d.BodyText = text
		}
	}
	return d
}

// typeNameOf returns a readable name for T, used in events.
func typeNameOf[T any]() string {
	return reflect.TypeFor[T]().String()
}
