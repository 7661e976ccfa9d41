// Package xml provides an XML codec for binding response bodies.
//
// The XML strategy returns bodies as text; register this codec (or use
// parsefetch.As) to bind that text into tagged structs.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/parsefetch"
)

// xmlCodec implements parsefetch.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() parsefetch.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
