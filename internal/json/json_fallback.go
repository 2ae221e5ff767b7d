//go:build !((linux || darwin || windows) && (amd64 || arm64))

package json

import (
	"encoding/json"
	"io"
)

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// NewEncoder returns a streaming encoder writing one JSON value per line.
func NewEncoder(w io.Writer) Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	return enc
}

// Encoder is a JSON encoder.
type Encoder interface {
	Encode(v any) error
	SetEscapeHTML(on bool)
	SetIndent(prefix, indent string)
}
