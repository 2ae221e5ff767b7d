//go:build (linux || darwin || windows) && (amd64 || arm64)

// Package json encodes the command-line output. It uses sonic where sonic
// runs and encoding/json elsewhere.
package json

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// NewEncoder returns a streaming encoder writing one JSON value per line.
func NewEncoder(w io.Writer) Encoder {
	enc := api.NewEncoder(w)
	enc.SetEscapeHTML(false)

	return enc
}

// Encoder is a JSON encoder.
type Encoder = sonic.Encoder
