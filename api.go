// Package parsefetch provides content-type aware parsing of HTTP response bodies.
//
// A response body is decoded by the strategy owning its content type, then
// optionally checked or transformed by a Validator, and the outcome is
// reported either as an error or as a Result.
//
// # Strategies
//
// Content types are classified into families, tested in this order:
//
//   - json       - structured decode (map[string]any, []any, ...), optional Reviver
//   - xml        - body as text, no XML parsing
//   - text       - body as text
//   - additional - forms, YAML, GraphQL, ... as text
//   - binary     - body as []byte
//
// A tag belongs to a family when it contains one of the family's members, so
// "application/json; charset=utf-8" is JSON. Unknown and empty tags fall back
// to a default strategy that reads text.
//
// # Surfaces
//
// Parse returns (T, error); SafeParse returns a Result[T]. Both run the same
// routine and differ only in how a failure is reported:
//
//	user, err := parsefetch.Parse(ctx, resp, parsefetch.Options[User]{})
//
//	res := parsefetch.SafeParse(ctx, resp, parsefetch.Options[User]{})
//	if !res.Success {
//	    for _, e := range res.Errors {
//	        log.Println(e.Kind, e.Message)
//	    }
//	}
//
// # Validators
//
// A Validator receives the decoded value. Validators that report failure as
// an error implement Validator; validators that report it as a Result
// implement SafeValidator. Either kind works with either surface.
//
// When no validator is given and the decoded value is not already a T, it
// is bound into T with the Codec registered for the content type, JSON by
// default. Codecs live in the json, xml, yaml, msgpack and bson subpackages:
//
//	parsefetch.RegisterCodec(yaml.New())
//	cfg, err := parsefetch.Parse(ctx, resp, parsefetch.Options[Config]{})
//
// # Decorator
//
// Decorate wraps a FetchFunc so calls can be parsed without an explicit
// await step. The call starts immediately:
//
//	client := parsefetch.Decorate(parsefetch.FromClient(http.DefaultClient))
//	user, err := parsefetch.ParsePending(client.Fetch(ctx, req), parsefetch.Options[User]{})
//
// SafeFetch reports network failures as Results with a network ErrorDetail.
//
// # Events
//
// Fetch and parse events are emitted through capitan (see signals.go).
package parsefetch

import (
	"context"
	"net/http"
)

// SafeParse decodes resp and reports every outcome as a Result.
func SafeParse[T any](ctx context.Context, resp *http.Response, opts Options[T]) Result[T] {
	var wrapped *Response
	if resp != nil {
		wrapped = NewResponse(resp)
	}
	return parseResponse(ctx, "", wrapped, opts)
}

// Parse decodes resp. On failure it returns an *Error whose message joins
// the messages of every ErrorDetail with ", ".
func Parse[T any](ctx context.Context, resp *http.Response, opts Options[T]) (T, error) {
	return SafeParse(ctx, resp, opts).Unwrap()
}
