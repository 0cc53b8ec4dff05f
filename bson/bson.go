// Package bson provides a BSON resource format implementation.
package bson

import (
	"github.com/zoobzio/numcode"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonFormat implements numcode.Format for BSON.
type bsonFormat struct{}

// New returns a BSON format.
func New() numcode.Format {
	return &bsonFormat{}
}

// ContentType returns the MIME type for BSON.
func (f *bsonFormat) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (f *bsonFormat) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (f *bsonFormat) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
