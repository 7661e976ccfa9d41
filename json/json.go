// Package json provides a JSON codec for binding response bodies.
package json

import (
	gojson "github.com/goccy/go-json"

	"github.com/zoobzio/parsefetch"
)

// jsonCodec implements parsefetch.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec backed by goccy/go-json.
func New() parsefetch.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return gojson.Unmarshal(data, v)
}
