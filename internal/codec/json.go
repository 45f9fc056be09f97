// Package codec provides the JSON codec used on the HTTP boundary. Decoding
// keeps numbers as json.Number instead of float64, so untyped probe values
// keep their literal form end to end, matching how raw documents are decoded
// before parsing.
package codec

import (
	"bytes"
	"encoding/json"

	"github.com/go-kratos/kratos/v2/encoding"
)

// Name is the codec name in the kratos encoding registry.
const Name = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// Register installs the codec, replacing whatever "json" codec is currently
// registered. Callers building a server or client invoke it explicitly so
// the outcome does not depend on package init order.
func Register() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func (jsonCodec) Name() string { return Name }
