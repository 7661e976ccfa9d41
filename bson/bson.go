// Package bson provides a BSON codec for binding response bodies.
package bson

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zoobzio/parsefetch"
)

// bsonCodec implements parsefetch.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec. Marshal accepts documents only (structs, maps,
// bson.D).
func New() parsefetch.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
